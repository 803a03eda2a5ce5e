package captions

import (
	"strings"
	"testing"

	"shorts-backend/internal/models"
)

func TestGroupWordsEmpty(t *testing.T) {
	if got := GroupWords(nil, 3); len(got) != 0 {
		t.Errorf("got %d segments from empty input", len(got))
	}
}

func TestGroupWordsExample(t *testing.T) {
	words := []Word{
		{Start: 0, End: 0.5, Text: "Hey"},
		{Start: 0.5, End: 1.0, Text: "there"},
		{Start: 1.0, End: 1.4, Text: "friend"},
		{Start: 1.4, End: 1.8, Text: "!"},
	}
	got := GroupWords(words, 3)

	want := []models.CaptionSegment{
		{ID: 1, Start: 0, End: 1.4, Text: "Hey there friend"},
		{ID: 2, Start: 1.4, End: 1.8, Text: "!"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGroupWordsSegmentCount(t *testing.T) {
	cases := []struct {
		n, g, want int
	}{
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{9, 3, 3},
		{10, 4, 3},
		{7, 1, 7},
	}
	for _, c := range cases {
		words := make([]Word, c.n)
		for i := range words {
			words[i] = Word{Start: float64(i), End: float64(i) + 0.5, Text: "w"}
		}
		got := GroupWords(words, c.g)
		if len(got) != c.want {
			t.Errorf("n=%d g=%d: got %d segments, want %d", c.n, c.g, len(got), c.want)
		}
		// All groups full-size except possibly the last.
		for i, seg := range got[:len(got)-1] {
			if n := len(strings.Fields(seg.Text)); n != c.g {
				t.Errorf("n=%d g=%d: segment %d has %d words", c.n, c.g, i, n)
			}
		}
	}
}

func TestGroupWordsRoundTrip(t *testing.T) {
	words := []Word{
		{0, 0.4, "one"}, {0.4, 0.7, "two"}, {0.7, 1.1, "three"},
		{1.1, 1.5, "four"}, {1.5, 1.9, "five"},
	}
	segs := GroupWords(words, 2)

	var parts []string
	for _, s := range segs {
		parts = append(parts, s.Text)
	}
	joined := strings.Join(parts, " ")
	if joined != "one two three four five" {
		t.Errorf("round trip = %q", joined)
	}
}

func TestGroupWordsDefaultSize(t *testing.T) {
	words := make([]Word, 6)
	for i := range words {
		words[i] = Word{Text: "w"}
	}
	if got := GroupWords(words, 0); len(got) != 2 {
		t.Errorf("got %d segments with default group size, want 2", len(got))
	}
}

func TestTimedCaptions(t *testing.T) {
	segs := []models.CaptionSegment{
		{ID: 1, Start: 0, End: 3, Text: "one two three four five six"},
	}
	got := TimedCaptions(segs, 3)
	if len(got) != 2 {
		t.Fatalf("got %d captions, want 2", len(got))
	}
	if got[0].Start != 0 || got[0].End != 1.5 {
		t.Errorf("first caption range = (%v, %v), want (0, 1.5)", got[0].Start, got[0].End)
	}
	if got[1].End > 3 {
		t.Errorf("caption end %v exceeds segment end", got[1].End)
	}
	if got[1].Text != "four five six" {
		t.Errorf("second caption text = %q", got[1].Text)
	}
}

func TestSRT(t *testing.T) {
	segs := []models.CaptionSegment{
		{ID: 1, Start: 0, End: 2.5, Text: "Hello"},
		{ID: 2, Start: 2.5, End: 65.25, Text: "world"},
	}
	got := SRT(segs)
	want := "1\n00:00:00,000 --> 00:00:02,500\nHello\n\n2\n00:00:02,500 --> 00:01:05,250\nworld\n\n"
	if got != want {
		t.Errorf("SRT output:\n%s\nwant:\n%s", got, want)
	}
}
