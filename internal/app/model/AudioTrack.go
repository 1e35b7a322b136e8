package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AudioTrack is one speaker's isolated recording from a Craig archive.
// The speaker id is derived from the file name, e.g. "1-alice_123456.wav"
// belongs to speaker "alice".
type AudioTrack struct {
	Path      string
	SpeakerID string
}

// NewAudioTrack builds a fully-formed track from a file path, deriving the
// speaker id up front so the value is immutable afterwards.
func NewAudioTrack(path string) (AudioTrack, error) {
	speakerID, err := SpeakerIDFromFileName(path)
	if err != nil {
		return AudioTrack{}, err
	}
	return AudioTrack{Path: path, SpeakerID: speakerID}, nil
}

// SpeakerIDFromFileName extracts the speaker id from a Craig track file
// name: the second hyphen-delimited token of the stem, cut at the first
// underscore.
func SpeakerIDFromFileName(path string) (string, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(stem, "-")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: no hyphen in stem %q", ErrMalformedFileName, stem)
	}

	speakerID := strings.SplitN(parts[1], "_", 2)[0]
	if speakerID == "" {
		return "", fmt.Errorf("%w: empty speaker in stem %q", ErrMalformedFileName, stem)
	}
	return speakerID, nil
}
