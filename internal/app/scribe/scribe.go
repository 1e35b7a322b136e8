package scribe

import (
	"fmt"

	"github.com/Zerocrossing/zero-scribe/internal/app/api"
	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

// TranscribeTrack runs one track through the external ASR capability, then
// the alignment capability for the detected language, and stamps every
// resulting segment with the track's speaker id. No retry: an engine
// failure propagates unchanged and the track contributes nothing.
func TranscribeTrack(engine api.Engine, track model.AudioTrack) (model.SpeakerTranscript, error) {
	raw, err := engine.Transcribe(track.Path)
	if err != nil {
		return model.SpeakerTranscript{}, fmt.Errorf("%w: track %s: %v",
			model.ErrTranscriptionFailure, track.Path, err)
	}

	aligned, err := engine.Align(track.Path, raw.Language, raw.Segments)
	if err != nil {
		return model.SpeakerTranscript{}, fmt.Errorf("%w: track %s: %v",
			model.ErrTranscriptionFailure, track.Path, err)
	}

	segments := make([]model.Segment, len(aligned))
	for i, segment := range aligned {
		segment.SpeakerID = track.SpeakerID
		segments[i] = segment
	}

	return model.SpeakerTranscript{SpeakerID: track.SpeakerID, Segments: segments}, nil
}
