package catalog

import "testing"

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("news")
	if !ok || tpl.Name != "News & Facts" {
		t.Errorf("TemplateByID(news) = %+v, %v", tpl, ok)
	}
	if _, ok := TemplateByID("missing"); ok {
		t.Error("found a template that does not exist")
	}
}

func TestTemplatesByCategory(t *testing.T) {
	got := TemplatesByCategory("learning")
	if len(got) != 1 || got[0].ID != "educational" {
		t.Errorf("TemplatesByCategory(learning) = %+v", got)
	}
}

func TestCaptionStyleFallback(t *testing.T) {
	if got := CaptionStyleFor("Trendy"); got.FontFamily != "Nunito, sans-serif" {
		t.Errorf("caption style lookup not case-insensitive: %+v", got)
	}
	if got := CaptionStyleFor("unknown"); got != captionStyles["educational"] {
		t.Errorf("unknown template did not fall back to educational style: %+v", got)
	}
}

func TestVoiceByID(t *testing.T) {
	v, ok := VoiceByID("pNInz6obpgDQGcFmaJgB")
	if !ok || v.Name != "Adam" {
		t.Errorf("VoiceByID = %+v, %v", v, ok)
	}
}
