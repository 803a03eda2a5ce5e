package captions

import (
	"fmt"
	"math"
	"strings"

	"shorts-backend/internal/models"
)

// SRT renders segments as a SubRip file. Cue numbers are positional,
// independent of the segments' own ids.
func SRT(segments []models.CaptionSegment) string {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, srtTime(seg.Start), srtTime(seg.End), seg.Text)
	}
	return b.String()
}

// srtTime formats seconds as the SRT timestamp form HH:MM:SS,mmm.
func srtTime(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := int(seconds) % 60
	ms := int(math.Floor(math.Mod(seconds, 1) * 1000))
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
