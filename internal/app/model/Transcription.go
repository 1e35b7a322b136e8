package model

import "fmt"

// Word carries per-word alignment detail from the aligner. It is passed
// through to the output layer unmodified; the merge engine never inspects it.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Score float64 `json:"score,omitempty"`
}

// RawSegment is a timestamped span of recognized speech before alignment.
type RawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// RawTranscription is the ASR capability's output for one track.
type RawTranscription struct {
	Segments []RawSegment `json:"segments"`
	Language string       `json:"language"`
}

// Segment is an aligned span of speech attributed to one speaker.
type Segment struct {
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Text      string  `json:"text"`
	Words     []Word  `json:"words,omitempty"`
	SpeakerID string  `json:"speaker"`
}

// NewSegment validates the timing invariant at construction time.
func NewSegment(start, end float64, text string, words []Word, speakerID string) (Segment, error) {
	if start > end {
		return Segment{}, fmt.Errorf("%w: start %f > end %f", ErrInvalidSegment, start, end)
	}
	return Segment{
		Start:     start,
		End:       end,
		Text:      text,
		Words:     words,
		SpeakerID: speakerID,
	}, nil
}

// SpeakerTranscript is the full aligned transcription of one track.
// Immutable once constructed; owned by the pipeline run that produced it.
type SpeakerTranscript struct {
	SpeakerID string
	Segments  []Segment
}

// TranscriptCollection is the merge engine's input. The order of the
// transcripts is irrelevant to the merged result.
type TranscriptCollection struct {
	Transcripts []SpeakerTranscript
}
