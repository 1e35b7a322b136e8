package whisperx_server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

// WhisperXServerEngine implements transcription and alignment via HTTP to a
// whisperx serving process.
type WhisperXServerEngine struct {
	config Config
	client *http.Client
}

// Config represents configuration for the whisperx server HTTP API.
type Config struct {
	BaseURL        string        `yaml:"base_url"`        // Base URL of the server (e.g., "http://192.168.1.100:9000")
	TranscribePath string        `yaml:"transcribe_path"` // Transcription endpoint path (default: "/transcribe")
	AlignPath      string        `yaml:"align_path"`      // Alignment endpoint path (default: "/align")
	UnloadPath     string        `yaml:"unload_path"`     // Model unload endpoint path (default: "/unload")
	Timeout        time.Duration `yaml:"timeout"`         // Request timeout
	Language       string        `yaml:"language"`        // Force a language instead of auto-detect
	BatchSize      int           `yaml:"batch_size"`      // Whisper batch size
}

type transcribeResponse struct {
	Segments []model.RawSegment `json:"segments"`
	Language string             `json:"language"`
}

type alignResponse struct {
	Segments []alignedSegment `json:"segments"`
}

type alignedSegment struct {
	Start float64      `json:"start"`
	End   float64      `json:"end"`
	Text  string       `json:"text"`
	Words []model.Word `json:"words"`
}

// NewWhisperXServerEngine creates a new whisperx server HTTP engine.
func NewWhisperXServerEngine(config Config) *WhisperXServerEngine {
	// Set defaults
	if config.TranscribePath == "" {
		config.TranscribePath = "/transcribe"
	}
	if config.AlignPath == "" {
		config.AlignPath = "/align"
	}
	if config.UnloadPath == "" {
		config.UnloadPath = "/unload"
	}
	if config.Timeout == 0 {
		// Whole-call recordings take a while on CPU-only hosts.
		config.Timeout = 15 * time.Minute
	}
	if config.BatchSize == 0 {
		config.BatchSize = 16
	}

	return &WhisperXServerEngine{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Transcribe uploads the audio file and returns raw segments plus the
// detected language.
func (e *WhisperXServerEngine) Transcribe(audioPath string) (*model.RawTranscription, error) {
	fields := map[string]string{
		"batch_size": strconv.Itoa(e.config.BatchSize),
	}
	if e.config.Language != "" {
		fields["language"] = e.config.Language
	}

	body, err := e.postAudio(e.config.TranscribePath, audioPath, fields)
	if err != nil {
		return nil, err
	}

	var resp transcribeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode transcribe response: %v", err)
	}
	if resp.Language == "" {
		resp.Language = "en"
	}

	return &model.RawTranscription{Segments: resp.Segments, Language: resp.Language}, nil
}

// Align uploads the audio file together with the raw segments and returns
// segments refined with per-word timing. Speaker attribution is left to the
// caller.
func (e *WhisperXServerEngine) Align(audioPath string, language string, segments []model.RawSegment) ([]model.Segment, error) {
	segmentsJSON, err := json.Marshal(segments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode segments: %v", err)
	}

	fields := map[string]string{
		"language": language,
		"segments": string(segmentsJSON),
	}

	body, err := e.postAudio(e.config.AlignPath, audioPath, fields)
	if err != nil {
		return nil, err
	}

	var resp alignResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode align response: %v", err)
	}

	aligned := make([]model.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segment, err := model.NewSegment(s.Start, s.End, s.Text, s.Words, "")
		if err != nil {
			return nil, fmt.Errorf("server returned %v", err)
		}
		aligned = append(aligned, segment)
	}
	return aligned, nil
}

// Close asks the server to release its loaded models.
func (e *WhisperXServerEngine) Close() error {
	resp, err := e.client.Post(e.config.BaseURL+e.config.UnloadPath, "application/json", nil)
	if err != nil {
		return fmt.Errorf("unload request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unload request returned status %d", resp.StatusCode)
	}
	return nil
}

// postAudio uploads one audio file plus form fields to the given endpoint
// and returns the raw response body.
func (e *WhisperXServerEngine) postAudio(path string, audioPath string, fields map[string]string) ([]byte, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %v", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy audio data: %v", err)
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, e.config.BaseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
