package music

import (
	"strings"
	"testing"
)

func TestComposePromptDeterministic(t *testing.T) {
	a := ComposePrompt("educational", "a script about AI tech")
	b := ComposePrompt("educational", "a script about AI tech")
	if a != b {
		t.Errorf("same input gave different prompts:\n%s\n%s", a, b)
	}
}

func TestComposePromptFallback(t *testing.T) {
	got := ComposePrompt("does-not-exist", "")
	if !strings.HasPrefix(got, basePrompts["educational"]) {
		t.Errorf("unrecognized template did not fall back to educational: %q", got)
	}

	// Case-insensitive lookup.
	if ComposePrompt("NEWS", "") != ComposePrompt("news", "") {
		t.Error("template lookup is case-sensitive")
	}
}

func TestComposePromptTriggers(t *testing.T) {
	got := ComposePrompt("trendy", "How AI helps you achieve success")
	if !strings.Contains(got, "tech-inspired, modern digital sound") {
		t.Errorf("tech trigger missing: %q", got)
	}
	if !strings.Contains(got, "success-oriented, triumphant feeling") {
		t.Errorf("success trigger missing: %q", got)
	}

	plain := ComposePrompt("trendy", "a calm morning routine")
	if strings.Contains(plain, "tech-inspired") || strings.Contains(plain, "success-oriented") {
		t.Errorf("trigger clause appended without a matching keyword: %q", plain)
	}
}

func TestComposePromptClosingClause(t *testing.T) {
	for _, script := range []string{"", "anything"} {
		got := ComposePrompt("news", script)
		if !strings.HasSuffix(got, closingClause) {
			t.Errorf("prompt missing closing clause: %q", got)
		}
	}
}

func TestLibraryLookups(t *testing.T) {
	if len(AllTracks()) != 7 {
		t.Errorf("library has %d tracks, want 7", len(AllTracks()))
	}
	tr, ok := TrackByID("calm-2")
	if !ok || tr.Name != "Serenity" {
		t.Errorf("TrackByID(calm-2) = %+v, %v", tr, ok)
	}
	if _, ok := TrackByID("nope"); ok {
		t.Error("TrackByID found a track that does not exist")
	}
	c, ok := CategoryByID("electro")
	if !ok || len(c.Tracks) != 2 {
		t.Errorf("CategoryByID(electro) = %+v, %v", c, ok)
	}
}
