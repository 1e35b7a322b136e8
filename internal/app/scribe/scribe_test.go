package scribe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zerocrossing/zero-scribe/internal/app/model"
	"github.com/Zerocrossing/zero-scribe/internal/app/testutil"
)

func alignedSegment(t *testing.T, start, end float64, text string) model.Segment {
	t.Helper()
	segment, err := model.NewSegment(start, end, text, []model.Word{
		{Word: text, Start: start, End: end, Score: 0.9},
	}, "")
	require.NoError(t, err)
	return segment
}

func TestTranscribeTrack_StampsSpeaker(t *testing.T) {
	engine := testutil.NewMockEngine()
	engine.AddTrack("/rec/1-alice_1.wav",
		&model.RawTranscription{
			Segments: []model.RawSegment{{Start: 0, End: 1, Text: "hi"}},
			Language: "en",
		},
		[]model.Segment{alignedSegment(t, 0, 1, "hi")},
	)

	track := model.AudioTrack{Path: "/rec/1-alice_1.wav", SpeakerID: "alice"}
	transcript, err := TranscribeTrack(engine, track)
	require.NoError(t, err)

	assert.Equal(t, "alice", transcript.SpeakerID)
	require.Len(t, transcript.Segments, 1)
	assert.Equal(t, "alice", transcript.Segments[0].SpeakerID)
	assert.Equal(t, "hi", transcript.Segments[0].Text)
	assert.NotEmpty(t, transcript.Segments[0].Words, "word detail must pass through")

	// ASR first, then alignment, on the same file.
	assert.Equal(t, []string{"/rec/1-alice_1.wav"}, engine.TranscribeCalls)
	assert.Equal(t, []string{"/rec/1-alice_1.wav"}, engine.AlignCalls)
}

func TestTranscribeTrack_ASRFailurePropagates(t *testing.T) {
	engine := testutil.NewMockEngine()
	engine.ErrorMap["/rec/1-alice_1.wav"] = errors.New("model exploded")

	track := model.AudioTrack{Path: "/rec/1-alice_1.wav", SpeakerID: "alice"}
	_, err := TranscribeTrack(engine, track)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTranscriptionFailure)
	assert.Contains(t, err.Error(), "model exploded")
	assert.Empty(t, engine.AlignCalls, "alignment must not run after a failed ASR call")
}

func TestTranscribeTrack_AlignFailurePropagates(t *testing.T) {
	engine := testutil.NewMockEngine()
	engine.AddTrack("/rec/1-alice_1.wav",
		&model.RawTranscription{
			Segments: []model.RawSegment{{Start: 0, End: 1, Text: "hi"}},
			Language: "en",
		},
		nil,
	)
	engine.AlignErrorMap["/rec/1-alice_1.wav"] = errors.New("alignment exploded")

	track := model.AudioTrack{Path: "/rec/1-alice_1.wav", SpeakerID: "alice"}
	_, err := TranscribeTrack(engine, track)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTranscriptionFailure)
}
