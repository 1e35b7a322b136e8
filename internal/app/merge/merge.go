package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Zerocrossing/zero-scribe/internal/app/model"
)

// Merge combines the per-speaker transcripts into a single chronologically
// ordered, speaker-grouped document. The order of the transcripts in the
// collection does not affect the result; segments that share a start time
// keep their flattening order. Pure function, no failure modes.
func Merge(collection model.TranscriptCollection) string {
	segments := lo.FlatMap(collection.Transcripts, func(t model.SpeakerTranscript, _ int) []model.Segment {
		return t.Segments
	})

	// SliceStable keeps the flattening order for equal start times; the
	// tie-break is part of the contract, not a sort-library accident.
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	var doc strings.Builder
	lastSpeaker := ""
	hasSpeaker := false
	for _, segment := range segments {
		if !hasSpeaker || segment.SpeakerID != lastSpeaker {
			if hasSpeaker {
				doc.WriteString("\n\n")
			}
			fmt.Fprintf(&doc, "%s (%s):\n", segment.SpeakerID, formatTimestamp(segment.Start))
			doc.WriteString(strings.TrimSpace(segment.Text))
		} else {
			// Continuation of the same speaker: whisper-style models emit
			// leading spaces as token boundaries, so no trimming here.
			doc.WriteString(" ")
			doc.WriteString(segment.Text)
		}
		lastSpeaker = segment.SpeakerID
		hasSpeaker = true
	}
	return doc.String()
}

// formatTimestamp renders seconds as zero-padded HH:MM:SS, floored to whole
// seconds. Hours are computed from the total and are not capped at 24.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
