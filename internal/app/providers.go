package app

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Zerocrossing/zero-scribe/internal/app/api"
	openaiengine "github.com/Zerocrossing/zero-scribe/internal/app/api/openai"
	"github.com/Zerocrossing/zero-scribe/internal/app/api/whisperx_server"
	"github.com/Zerocrossing/zero-scribe/internal/app/common"
	appconfig "github.com/Zerocrossing/zero-scribe/internal/app/config"
	"github.com/Zerocrossing/zero-scribe/internal/app/pipeline"
	"github.com/Zerocrossing/zero-scribe/internal/config"
)

// provideEngine selects the transcription engine. A YAML engines file wins
// when ZSCRIBE_ENGINES_CONFIG points at one; otherwise selection comes from
// the environment.
func provideEngine() api.Engine {
	if configPath := os.Getenv("ZSCRIBE_ENGINES_CONFIG"); configPath != "" {
		enginesConfig, err := appconfig.LoadEnginesConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load engines config: %v\n", err)
		}
		return engineFromConfig(enginesConfig)
	}

	env, err := config.GetEnv()
	if err != nil {
		log.Fatalf("engine configuration error: %v\n", err)
	}

	switch env.Engine {
	case config.EngineOpenAI:
		return openaiengine.NewOpenAIEngine(openaiengine.GetClient())
	default:
		return whisperx_server.NewWhisperXServerEngine(whisperx_server.Config{
			BaseURL: env.WhisperXServerURL,
		})
	}
}

func engineFromConfig(enginesConfig *appconfig.EnginesConfig) api.Engine {
	engine := enginesConfig.Engines[enginesConfig.DefaultEngine]

	switch engine.Type {
	case config.EngineOpenAI:
		return openaiengine.NewOpenAIEngine(openaiengine.GetClient())
	case config.EngineWhisperXServer:
		return whisperx_server.NewWhisperXServerEngine(whisperx_server.Config{
			BaseURL:   engine.Settings.BaseURL,
			Language:  engine.Settings.Language,
			BatchSize: engine.Settings.BatchSize,
			Timeout:   engine.Settings.Timeout(),
		})
	default:
		log.Fatalf("unknown engine type %q in engines config\n", engine.Type)
		return nil
	}
}

func provideLogger() *zap.Logger {
	return common.MustNewLogger(os.Getenv("ZSCRIBE_DEV_LOG") != "")
}

func provideProgressConfig() pipeline.ProgressConfig {
	return pipeline.ProgressConfig{Enabled: true}
}
