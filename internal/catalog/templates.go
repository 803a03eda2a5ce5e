// Package catalog holds the static reference data the wizard and assembler
// consult: visual templates, narration voices and per-template caption
// styling. Read-only, no lifecycle.
package catalog

import "strings"

// Template is a visual style the wizard offers for the generated short.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PreviewURL  string `json:"preview_url"`
	Premium     bool   `json:"is_premium"`
}

var Templates = []Template{
	{ID: "educational", Name: "Educational", Category: "Learning", Description: "Clean, professional style perfect for educational content", PreviewURL: "/templates/educational-preview.jpg"},
	{ID: "entertainment", Name: "Entertainment", Category: "Fun", Description: "Dynamic and colorful style for entertaining content", PreviewURL: "/templates/entertainment-preview.jpg"},
	{ID: "news", Name: "News & Facts", Category: "Information", Description: "Professional news-style layout for factual content", PreviewURL: "/templates/news-preview.jpg"},
	{ID: "motivational", Name: "Motivational", Category: "Inspiration", Description: "Inspiring gradient backgrounds with bold typography", PreviewURL: "/templates/motivational-preview.jpg"},
	{ID: "trendy", Name: "Trendy", Category: "Social", Description: "Modern social media style with vibrant colors", PreviewURL: "/templates/trendy-preview.jpg"},
}

// TemplateByID looks up a template by id.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TemplatesByCategory returns every template in the given category.
func TemplatesByCategory(category string) []Template {
	var out []Template
	for _, t := range Templates {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// FreeTemplates returns the non-premium templates.
func FreeTemplates() []Template {
	var out []Template
	for _, t := range Templates {
		if !t.Premium {
			out = append(out, t)
		}
	}
	return out
}

// CaptionStyle describes how burned-in captions render for a template.
type CaptionStyle struct {
	FontSize        int    `json:"fontSize"`
	FontFamily      string `json:"fontFamily"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Position        string `json:"position"`
	Alignment       string `json:"alignment"`
	MaxWidth        int    `json:"maxWidth"`
	Padding         int    `json:"padding"`
}

var captionStyles = map[string]CaptionStyle{
	"educational":   {FontSize: 24, FontFamily: "Inter, sans-serif", Color: "#FFFFFF", BackgroundColor: "rgba(0, 0, 0, 0.8)", Position: "bottom", Alignment: "center", MaxWidth: 80, Padding: 12},
	"entertainment": {FontSize: 28, FontFamily: "Poppins, sans-serif", Color: "#FFFF00", BackgroundColor: "rgba(0, 0, 0, 0.7)", Position: "bottom", Alignment: "center", MaxWidth: 85, Padding: 10},
	"motivational":  {FontSize: 32, FontFamily: "Montserrat, sans-serif", Color: "#FFFFFF", BackgroundColor: "rgba(255, 69, 0, 0.9)", Position: "center", Alignment: "center", MaxWidth: 90, Padding: 16},
	"news":          {FontSize: 22, FontFamily: "Roboto, sans-serif", Color: "#FFFFFF", BackgroundColor: "rgba(0, 0, 0, 0.9)", Position: "bottom", Alignment: "center", MaxWidth: 75, Padding: 8},
	"trendy":        {FontSize: 26, FontFamily: "Nunito, sans-serif", Color: "#FF1493", BackgroundColor: "rgba(255, 255, 255, 0.9)", Position: "bottom", Alignment: "center", MaxWidth: 85, Padding: 12},
}

// CaptionStyleFor returns the caption style for a template, falling back to
// the educational style for unknown templates.
func CaptionStyleFor(template string) CaptionStyle {
	if s, ok := captionStyles[strings.ToLower(template)]; ok {
		return s
	}
	return captionStyles["educational"]
}
