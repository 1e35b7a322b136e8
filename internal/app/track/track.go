package track

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

// validExtensions is the audio container allow-list for Craig archives.
var validExtensions = map[string]bool{
	".aac":  true,
	".wav":  true,
	".flac": true,
}

// RecordingDir holds what an unpacked Craig archive contains: the
// per-speaker tracks plus the incidental info.txt metadata file.
type RecordingDir struct {
	Path     string
	Tracks   []model.AudioTrack
	InfoFile string
}

// NewRecordingDir scans dir and returns a fully-formed RecordingDir.
// Any audio file with a stem that does not follow the Craig naming
// convention fails the whole scan.
func NewRecordingDir(dir string) (RecordingDir, error) {
	tracks, err := DiscoverTracks(dir)
	if err != nil {
		return RecordingDir{}, err
	}
	return RecordingDir{
		Path:     dir,
		Tracks:   tracks,
		InfoFile: filepath.Join(dir, "info.txt"),
	}, nil
}

// DiscoverTracks lists dir (read-only) and builds one AudioTrack per audio
// file, ordered by file name so runs are deterministic.
func DiscoverTracks(dir string) ([]model.AudioTrack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording directory %s: %w", dir, err)
	}

	audioEntries := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && validExtensions[strings.ToLower(filepath.Ext(entry.Name()))]
	})
	sort.Slice(audioEntries, func(i, j int) bool {
		return audioEntries[i].Name() < audioEntries[j].Name()
	})

	tracks := make([]model.AudioTrack, 0, len(audioEntries))
	for _, entry := range audioEntries {
		t, err := model.NewAudioTrack(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
