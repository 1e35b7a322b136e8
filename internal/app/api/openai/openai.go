package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

// OpenAIEngine implements transcription and alignment using the OpenAI
// Whisper API. Verbose JSON responses already carry word-level timing, so
// alignment maps the response instead of running a second model.
type OpenAIEngine struct {
	client *openai.Client

	mu    sync.Mutex
	cache map[string]openai.AudioResponse
}

// NewOpenAIEngine creates a new OpenAIEngine instance.
func NewOpenAIEngine(client *openai.Client) *OpenAIEngine {
	return &OpenAIEngine{
		client: client,
		cache:  make(map[string]openai.AudioResponse),
	}
}

// Transcribe uses the OpenAI API for remote transcription with segment and
// word timestamps. The verbose response is cached per file so Align does not
// have to call the API again.
func (e *OpenAIEngine) Transcribe(audioPath string) (*model.RawTranscription, error) {
	ctx := context.Background()

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularitySegment,
			openai.TranscriptionTimestampGranularityWord,
		},
	}
	resp, err := e.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %s", err)
	}

	e.mu.Lock()
	e.cache[audioPath] = resp
	e.mu.Unlock()

	segments := make([]model.RawSegment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, model.RawSegment{Start: s.Start, End: s.End, Text: s.Text})
	}

	language := resp.Language
	if language == "" {
		language = "en"
	}
	return &model.RawTranscription{Segments: segments, Language: language}, nil
}

// Align distributes the word timings from the cached verbose response over
// the raw segments by time overlap. The language parameter is unused: the
// API aligns in whatever language it transcribed.
func (e *OpenAIEngine) Align(audioPath string, language string, segments []model.RawSegment) ([]model.Segment, error) {
	e.mu.Lock()
	resp, ok := e.cache[audioPath]
	e.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no transcription response cached for %s, call Transcribe first", audioPath)
	}

	aligned := make([]model.Segment, 0, len(segments))
	for _, raw := range segments {
		var words []model.Word
		for _, w := range resp.Words {
			if w.Start < raw.End && w.End > raw.Start {
				words = append(words, model.Word{Word: w.Word, Start: w.Start, End: w.End})
			}
		}

		segment, err := model.NewSegment(raw.Start, raw.End, raw.Text, words, "")
		if err != nil {
			return nil, err
		}
		aligned = append(aligned, segment)
	}
	return aligned, nil
}

// Close drops the cached responses. The API itself holds no per-run state.
func (e *OpenAIEngine) Close() error {
	e.mu.Lock()
	e.cache = make(map[string]openai.AudioResponse)
	e.mu.Unlock()
	return nil
}
