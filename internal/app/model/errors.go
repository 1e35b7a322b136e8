package model

import "errors"

// Failure taxonomy for a pipeline run. Callers match with errors.Is.
var (
	// ErrMalformedFileName means an audio file's stem does not follow the
	// Craig naming convention and no speaker can be attributed to it.
	ErrMalformedFileName = errors.New("malformed audio file name")

	// ErrTranscriptionFailure wraps any failure from the external ASR or
	// alignment capability. Never retried here.
	ErrTranscriptionFailure = errors.New("transcription failed")

	// ErrWriteOutput means the merged transcript could not be written.
	ErrWriteOutput = errors.New("failed to write output document")

	// ErrInvalidSegment means a segment violates start <= end.
	ErrInvalidSegment = errors.New("invalid segment timing")
)
