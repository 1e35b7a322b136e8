package api

import (
	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

// Transcriber defines the external ASR capability: raw timestamped
// segments plus the detected language for one audio file.
type Transcriber interface {
	Transcribe(audioPath string) (*model.RawTranscription, error)
}

// Aligner defines the external forced-alignment capability: refines raw
// segments with per-word timing for the given language.
type Aligner interface {
	Align(audioPath string, language string, segments []model.RawSegment) ([]model.Segment, error)
}

// Engine bundles both capabilities behind one scoped resource. Close
// releases whatever model/accelerator memory the engine holds; the pipeline
// calls it exactly once, after the last track of a run.
type Engine interface {
	Transcriber
	Aligner
	Close() error
}
