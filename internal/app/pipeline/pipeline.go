package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zerocrossing/zero-scribe/internal/app/api"
	"github.com/Zerocrossing/zero-scribe/internal/app/merge"
	"github.com/Zerocrossing/zero-scribe/internal/app/model"
	"github.com/Zerocrossing/zero-scribe/internal/app/scribe"
	"github.com/Zerocrossing/zero-scribe/internal/app/track"
	"github.com/Zerocrossing/zero-scribe/internal/app/util/files"
)

// Pipeline turns an unpacked recording directory into one merged transcript
// document. Tracks are transcribed serially: the engine holds exclusive
// model/accelerator memory, so per-track concurrency is an anti-goal.
type Pipeline struct {
	engine   api.Engine
	logger   *zap.Logger
	progress ProgressConfig
}

func NewPipeline(engine api.Engine, logger *zap.Logger, progress ProgressConfig) *Pipeline {
	return &Pipeline{
		engine:   engine,
		logger:   logger,
		progress: progress,
	}
}

// Close releases the engine's model resources. Call exactly once, after Run.
func (p *Pipeline) Close() error {
	return p.engine.Close()
}

// Run discovers the per-speaker tracks in inputDir, transcribes each one,
// merges the results and writes the document to outputPath (overwriting it
// if present). The first failed track aborts the run: a silently missing
// speaker would corrupt the merged timeline.
func (p *Pipeline) Run(inputDir string, outputPath string) error {
	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))

	recording, err := track.NewRecordingDir(inputDir)
	if err != nil {
		return err
	}
	logger.Info("discovered tracks",
		zap.String("dir", inputDir),
		zap.Int("count", len(recording.Tracks)))

	pm := NewProgressManager(p.progress)
	bar := pm.CreateBar(len(recording.Tracks), "transcribing")

	transcripts := make([]model.SpeakerTranscript, 0, len(recording.Tracks))
	for _, t := range recording.Tracks {
		logger.Info("transcribing track",
			zap.String("path", t.Path),
			zap.String("speaker", t.SpeakerID))

		transcript, err := scribe.TranscribeTrack(p.engine, t)
		if err != nil {
			return err
		}
		transcripts = append(transcripts, transcript)
		bar.Increment()
	}
	pm.Wait()

	doc := merge.Merge(model.TranscriptCollection{Transcripts: transcripts})

	if err := files.WriteToFile(doc, outputPath); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrWriteOutput, outputPath, err)
	}
	logger.Info("merged transcript written",
		zap.String("output", outputPath),
		zap.Int("speakers", len(transcripts)),
		zap.Int("bytes", len(doc)))
	return nil
}
