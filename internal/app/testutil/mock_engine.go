package testutil

import (
	"fmt"
	"sync"

	"github.com/Zerocrossing/zero-scribe/internal/app/api"
	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

var _ api.Engine = (*MockEngine)(nil)

// MockEngine is a configurable in-memory implementation of api.Engine for
// testing pipeline and adapter behavior without a real model.
type MockEngine struct {
	mu sync.Mutex

	// Configuration
	Transcriptions map[string]*model.RawTranscription // keyed by audio path
	Alignments     map[string][]model.Segment         // keyed by audio path
	ErrorMap       map[string]error                   // per-path forced failure
	AlignErrorMap  map[string]error

	// State tracking
	TranscribeCalls []string
	AlignCalls      []string
	CloseCount      int
}

// NewMockEngine creates a MockEngine with empty configuration maps.
func NewMockEngine() *MockEngine {
	return &MockEngine{
		Transcriptions: make(map[string]*model.RawTranscription),
		Alignments:     make(map[string][]model.Segment),
		ErrorMap:       make(map[string]error),
		AlignErrorMap:  make(map[string]error),
	}
}

// AddTrack registers a canned result: the raw transcription returned by
// Transcribe and the aligned segments returned by Align for audioPath.
func (m *MockEngine) AddTrack(audioPath string, raw *model.RawTranscription, aligned []model.Segment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transcriptions[audioPath] = raw
	m.Alignments[audioPath] = aligned
}

func (m *MockEngine) Transcribe(audioPath string) (*model.RawTranscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TranscribeCalls = append(m.TranscribeCalls, audioPath)
	if err, exists := m.ErrorMap[audioPath]; exists {
		return nil, err
	}
	if raw, exists := m.Transcriptions[audioPath]; exists {
		return raw, nil
	}
	return nil, fmt.Errorf("no canned transcription for %s", audioPath)
}

func (m *MockEngine) Align(audioPath string, language string, segments []model.RawSegment) ([]model.Segment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AlignCalls = append(m.AlignCalls, audioPath)
	if err, exists := m.AlignErrorMap[audioPath]; exists {
		return nil, err
	}
	if aligned, exists := m.Alignments[audioPath]; exists {
		return aligned, nil
	}
	return nil, fmt.Errorf("no canned alignment for %s", audioPath)
}

func (m *MockEngine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCount++
	return nil
}
