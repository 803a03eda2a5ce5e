package music

// LibraryTrack is one entry in the predefined music library.
type LibraryTrack struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	URL         string  `json:"url,omitempty"`
	PreviewURL  string  `json:"preview_url,omitempty"`
}

// Category groups library tracks by mood.
type Category struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tracks      []LibraryTrack `json:"tracks"`
}

var Categories = []Category{
	{
		ID:          "motivational",
		Name:        "Motivational",
		Description: "Inspiring and uplifting background music",
		Tracks: []LibraryTrack{
			{ID: "motivational-1", Name: "Rise Up", Category: "Motivational", Description: "Uplifting and inspiring instrumental", Duration: 60, PreviewURL: "/audio/previews/rise-up.mp3"},
			{ID: "motivational-2", Name: "Success Journey", Category: "Motivational", Description: "Energetic and empowering background music", Duration: 45, PreviewURL: "/audio/previews/success-journey.mp3"},
		},
	},
	{
		ID:          "calm",
		Name:        "Calm",
		Description: "Peaceful and relaxing background music",
		Tracks: []LibraryTrack{
			{ID: "calm-1", Name: "Peaceful Mind", Category: "Calm", Description: "Soft and gentle instrumental", Duration: 60, PreviewURL: "/audio/previews/peaceful-mind.mp3"},
			{ID: "calm-2", Name: "Serenity", Category: "Calm", Description: "Relaxing ambient background", Duration: 50, PreviewURL: "/audio/previews/serenity.mp3"},
		},
	},
	{
		ID:          "electro",
		Name:        "Electro",
		Description: "Modern electronic and tech-focused music",
		Tracks: []LibraryTrack{
			{ID: "electro-1", Name: "Digital Future", Category: "Electro", Description: "Modern tech-inspired electronic music", Duration: 55, PreviewURL: "/audio/previews/digital-future.mp3"},
			{ID: "electro-2", Name: "Cyber Pulse", Category: "Electro", Description: "Energetic electronic background", Duration: 40, PreviewURL: "/audio/previews/cyber-pulse.mp3"},
		},
	},
	{
		ID:          "suspense",
		Name:        "Suspense",
		Description: "Dramatic and tension-building music",
		Tracks: []LibraryTrack{
			{ID: "suspense-1", Name: "Building Tension", Category: "Suspense", Description: "Dramatic and mysterious background", Duration: 65, PreviewURL: "/audio/previews/building-tension.mp3"},
		},
	},
}

// AllTracks flattens the library across categories.
func AllTracks() []LibraryTrack {
	var out []LibraryTrack
	for _, c := range Categories {
		out = append(out, c.Tracks...)
	}
	return out
}

// TrackByID looks up a library track by id.
func TrackByID(id string) (LibraryTrack, bool) {
	for _, t := range AllTracks() {
		if t.ID == id {
			return t, true
		}
	}
	return LibraryTrack{}, false
}

// CategoryByID looks up a category by id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
