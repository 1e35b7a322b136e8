package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakerIDFromFileName(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"craig convention", "1-alice_123456.wav", "alice", false},
		{"full path", "/data/rec/2-bob_99.flac", "bob", false},
		{"no discriminator suffix", "3-carol.aac", "carol", false},
		{"extra hyphens keep second token", "1-alice-smith_42.wav", "alice", false},
		{"underscore inside discriminator", "1-dave_12_34.wav", "dave", false},
		{"no hyphen", "alice_123456.wav", "", true},
		{"empty speaker token", "1-_123456.wav", "", true},
		{"hyphen only", "-", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpeakerIDFromFileName(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedFileName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAudioTrack(t *testing.T) {
	track, err := NewAudioTrack("/rec/1-alice_123456.wav")
	require.NoError(t, err)
	assert.Equal(t, "/rec/1-alice_123456.wav", track.Path)
	assert.Equal(t, "alice", track.SpeakerID)

	_, err = NewAudioTrack("/rec/nohyphen.wav")
	assert.ErrorIs(t, err, ErrMalformedFileName)
}
