package whisperx_server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

func tempAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "1-alice_1.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVE"), 0644))
	return path
}

func TestWhisperXServerEngine_Transcribe(t *testing.T) {
	var gotPath string
	var gotBatchSize string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotBatchSize = r.FormValue("batch_size")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "1-alice_1.wav", header.Filename)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"segments": []map[string]interface{}{
				{"start": 0.0, "end": 1.5, "text": " Hi there"},
			},
			"language": "en",
		})
	}))
	defer server.Close()

	engine := NewWhisperXServerEngine(Config{BaseURL: server.URL, BatchSize: 8})

	raw, err := engine.Transcribe(tempAudioFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/transcribe", gotPath)
	assert.Equal(t, "8", gotBatchSize)
	assert.Equal(t, "en", raw.Language)
	require.Len(t, raw.Segments, 1)
	assert.Equal(t, " Hi there", raw.Segments[0].Text)
	assert.Equal(t, 1.5, raw.Segments[0].End)
}

func TestWhisperXServerEngine_Transcribe_DefaultsLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"segments": []interface{}{}})
	}))
	defer server.Close()

	engine := NewWhisperXServerEngine(Config{BaseURL: server.URL})

	raw, err := engine.Transcribe(tempAudioFile(t))
	require.NoError(t, err)
	assert.Equal(t, "en", raw.Language)
}

func TestWhisperXServerEngine_Align(t *testing.T) {
	var gotLanguage string
	var gotSegments []model.RawSegment
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/align", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotLanguage = r.FormValue("language")
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("segments")), &gotSegments))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"segments": []map[string]interface{}{
				{
					"start": 0.02,
					"end":   1.48,
					"text":  " Hi there",
					"words": []map[string]interface{}{
						{"word": "Hi", "start": 0.02, "end": 0.3, "score": 0.99},
						{"word": "there", "start": 0.35, "end": 1.48, "score": 0.97},
					},
				},
			},
		})
	}))
	defer server.Close()

	engine := NewWhisperXServerEngine(Config{BaseURL: server.URL})

	segments, err := engine.Align(tempAudioFile(t), "en",
		[]model.RawSegment{{Start: 0, End: 1.5, Text: " Hi there"}})
	require.NoError(t, err)

	assert.Equal(t, "en", gotLanguage)
	require.Len(t, gotSegments, 1)

	require.Len(t, segments, 1)
	assert.Equal(t, " Hi there", segments[0].Text)
	require.Len(t, segments[0].Words, 2)
	assert.Equal(t, "Hi", segments[0].Words[0].Word)
	assert.Equal(t, 0.99, segments[0].Words[0].Score)
	assert.Empty(t, segments[0].SpeakerID, "speaker attribution belongs to the adapter")
}

func TestWhisperXServerEngine_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	engine := NewWhisperXServerEngine(Config{BaseURL: server.URL})

	_, err := engine.Transcribe(tempAudioFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestWhisperXServerEngine_MissingAudioFile(t *testing.T) {
	engine := NewWhisperXServerEngine(Config{BaseURL: "http://localhost:0"})

	_, err := engine.Transcribe("/not/a/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open audio file")
}

func TestWhisperXServerEngine_Close(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	engine := NewWhisperXServerEngine(Config{BaseURL: server.URL})
	require.NoError(t, engine.Close())
	assert.Equal(t, "/unload", gotPath)
}

func TestNewWhisperXServerEngine_Defaults(t *testing.T) {
	engine := NewWhisperXServerEngine(Config{BaseURL: "http://example.com"})

	assert.Equal(t, "/transcribe", engine.config.TranscribePath)
	assert.Equal(t, "/align", engine.config.AlignPath)
	assert.Equal(t, "/unload", engine.config.UnloadPath)
	assert.Equal(t, 16, engine.config.BatchSize)
	assert.NotZero(t, engine.config.Timeout)
}
