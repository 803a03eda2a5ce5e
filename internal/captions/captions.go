// Package captions groups word-level transcription timestamps into short
// display segments and renders them as SRT.
package captions

import (
	"strings"

	"shorts-backend/internal/models"
)

// DefaultGroupSize is how many words a caption shows at once.
const DefaultGroupSize = 3

// Word is a single word with its spoken time range, as returned by the
// transcriber.
type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// GroupWords partitions words into consecutive groups of at most groupSize
// and collapses each group into one caption segment: start of the first
// word, end of the last, text space-joined and trimmed. Word order is taken
// as given. The final group may be short; an empty input yields nil.
func GroupWords(words []Word, groupSize int) []models.CaptionSegment {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}

	var segments []models.CaptionSegment
	for i := 0; i < len(words); i += groupSize {
		end := i + groupSize
		if end > len(words) {
			end = len(words)
		}
		group := words[i:end]

		parts := make([]string, len(group))
		for j, w := range group {
			parts[j] = w.Text
		}
		segments = append(segments, models.CaptionSegment{
			ID:    len(segments) + 1,
			Start: group[0].Start,
			End:   group[len(group)-1].End,
			Text:  strings.TrimSpace(strings.Join(parts, " ")),
		})
	}
	return segments
}

// TimedCaptions re-splits already grouped segments into captions of at most
// maxWords words, spreading each segment's time range evenly across its
// words. Useful when the transcriber only returned sentence-level segments.
func TimedCaptions(segments []models.CaptionSegment, maxWords int) []models.CaptionSegment {
	if maxWords <= 0 {
		maxWords = DefaultGroupSize
	}

	var out []models.CaptionSegment
	for _, seg := range segments {
		words := strings.Fields(seg.Text)
		if len(words) == 0 {
			continue
		}
		perWord := (seg.End - seg.Start) / float64(len(words))

		for i := 0; i < len(words); i += maxWords {
			end := i + maxWords
			if end > len(words) {
				end = len(words)
			}
			capEnd := seg.Start + float64(end)*perWord
			if capEnd > seg.End {
				capEnd = seg.End
			}
			out = append(out, models.CaptionSegment{
				ID:    len(out) + 1,
				Start: seg.Start + float64(i)*perWord,
				End:   capEnd,
				Text:  strings.Join(words[i:end], " "),
			})
		}
	}
	return out
}
