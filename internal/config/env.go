package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Engine selection values understood by the wire provider.
const (
	EngineWhisperXServer = "whisperx_server"
	EngineOpenAI         = "openai"
)

// Env holds the environment-driven configuration for a run.
type Env struct {
	Engine            string
	WhisperXServerURL string
	OpenAIAPIKey      string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Variables set system-wide win, so a missing file is not an error.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Printf("Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// GetEnv reads and validates the configuration. Fail-fast: an unknown
// engine or a missing credential for the selected engine is an error here,
// not deep inside a run.
func GetEnv() (*Env, error) {
	env := &Env{
		Engine:            strings.TrimSpace(os.Getenv("ZSCRIBE_ENGINE")),
		WhisperXServerURL: strings.TrimSpace(os.Getenv("WHISPERX_SERVER_URL")),
		OpenAIAPIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}

	if env.Engine == "" {
		env.Engine = EngineWhisperXServer
	}

	switch env.Engine {
	case EngineWhisperXServer:
		if env.WhisperXServerURL == "" {
			return nil, fmt.Errorf("WHISPERX_SERVER_URL must be set when ZSCRIBE_ENGINE=%s", EngineWhisperXServer)
		}
	case EngineOpenAI:
		if env.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set when ZSCRIBE_ENGINE=%s", EngineOpenAI)
		}
		if !strings.HasPrefix(env.OpenAIAPIKey, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
	default:
		return nil, fmt.Errorf("unknown engine %q (supported: %s, %s)",
			env.Engine, EngineWhisperXServer, EngineOpenAI)
	}

	return env, nil
}

// InitializeConfig loads the environment and validates configuration.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Env, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	env, err := GetEnv()
	if err != nil {
		return nil, err
	}

	return env, nil
}
