// Package music holds the background-music library and the prompt composer
// used when a track is generated instead of picked from the library.
package music

import "strings"

var basePrompts = map[string]string{
	"educational":   "Professional background music for educational content, calm and focused, instrumental, suitable for learning",
	"entertainment": "Upbeat and engaging background music, fun and energetic, instrumental, perfect for entertainment",
	"motivational":  "Inspiring and uplifting background music, motivational and empowering, instrumental, builds energy",
	"news":          "Professional news-style background music, serious and authoritative, instrumental, broadcast quality",
	"trendy":        "Modern and trendy background music, social media style, catchy and contemporary, instrumental",
}

// trigger appends its clause when the script mentions any of its keywords.
// Triggers are additive, not mutually exclusive.
type trigger struct {
	keywords []string
	clause   string
}

var triggers = []trigger{
	{[]string{"tech", "ai"}, ", tech-inspired, modern digital sound"},
	{[]string{"success", "achieve"}, ", success-oriented, triumphant feeling"},
}

const closingClause = ", 60 seconds duration, high quality"

// ComposePrompt derives a music generation prompt from the chosen visual
// template and the script's content. Unknown templates fall back to the
// educational base phrase. Deterministic for any input.
func ComposePrompt(templateCategory, script string) string {
	base, ok := basePrompts[strings.ToLower(templateCategory)]
	if !ok {
		base = basePrompts["educational"]
	}

	var b strings.Builder
	b.WriteString(base)

	lower := strings.ToLower(script)
	for _, tr := range triggers {
		for _, kw := range tr.keywords {
			if strings.Contains(lower, kw) {
				b.WriteString(tr.clause)
				break
			}
		}
	}

	b.WriteString(closingClause)
	return b.String()
}
