package models

import "time"

type AspectRatio string

const (
	AspectWide     AspectRatio = "16:9"
	AspectVertical AspectRatio = "9:16"
	AspectSquare   AspectRatio = "1:1"
)

type Project struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	AspectRatio AspectRatio `json:"aspectRatio"`
}

type TrackType string

const (
	TrackVideo     TrackType = "video"
	TrackMusic     TrackType = "music"
	TrackVoiceover TrackType = "voiceover"
)

// TrackRole is the well-known track id within a bundle. The editor addresses
// tracks by these ids without reading track contents first, so they are fixed
// strings rather than generated identifiers.
type TrackRole string

const (
	RoleMainVideo TrackRole = "main-video"
	RoleVoiceover TrackRole = "voiceover-track"
	RoleMusic     TrackRole = "music-track"
)

type Track struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Label     string    `json:"label"`
	Locked    bool      `json:"locked"`
	Type      TrackType `json:"type"`
}

type MediaKind string

const (
	MediaImage     MediaKind = "image"
	MediaVideo     MediaKind = "video"
	MediaMusic     MediaKind = "music"
	MediaVoiceover MediaKind = "voiceover"
)

type MediaStatus string

const (
	StatusPending   MediaStatus = "pending"
	StatusRunning   MediaStatus = "running"
	StatusCompleted MediaStatus = "completed"
	StatusFailed    MediaStatus = "failed"
)

// Provenance selects the MediaItem variant: a "generated" item carries the
// generation request/response, an "uploaded" item carries only its URL.
type Provenance string

const (
	ProvenanceGenerated Provenance = "generated"
	ProvenanceUploaded  Provenance = "uploaded"
)

type MediaItem struct {
	ID        string      `json:"id"`
	Kind      Provenance  `json:"kind"`
	ProjectID string      `json:"projectId"`
	MediaType MediaKind   `json:"mediaType"`
	Status    MediaStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`

	// Generated variant only.
	EndpointID string            `json:"endpointId,omitempty"`
	RequestID  string            `json:"requestId,omitempty"`
	Input      map[string]any    `json:"input,omitempty"`
	Output     map[string]any    `json:"output,omitempty"`

	URL      string    `json:"url,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Generated reports whether the item was produced by an AI generation call.
func (m *MediaItem) Generated() bool { return m.Kind == ProvenanceGenerated }

// Metadata is the per-kind metadata bag. Exactly one of the typed sections
// is populated for media the assembler emits; Extra holds anything a future
// producer attaches that has no typed shape yet.
type Metadata struct {
	Voiceover *VoiceoverMetadata `json:"voiceover,omitempty"`
	Image     *ImageMetadata     `json:"image,omitempty"`
	Music     *MusicMetadata     `json:"music,omitempty"`
	Extra     map[string]any     `json:"extra,omitempty"`
}

type VoiceoverMetadata struct {
	VoiceID  string           `json:"voice_id"`
	Script   string           `json:"script"`
	Captions []CaptionSegment `json:"captions,omitempty"`
}

type ImageMetadata struct {
	Template    string      `json:"template"`
	AspectRatio AspectRatio `json:"aspectRatio"`
}

type MusicMetadata struct {
	MusicType     string `json:"musicType"`
	SelectedMusic string `json:"selectedMusic,omitempty"`
}

type ContentType string

const (
	ContentPrompt    ContentType = "prompt"
	ContentImage     ContentType = "image"
	ContentVideo     ContentType = "video"
	ContentVoiceover ContentType = "voiceover"
	ContentMusic     ContentType = "music"
)

// KeyFrameData always carries the media reference; Prompt and URL are set
// for the image/video shapes.
type KeyFrameData struct {
	Type    ContentType `json:"type"`
	MediaID string      `json:"mediaId"`
	Prompt  string      `json:"prompt,omitempty"`
	URL     string      `json:"url,omitempty"`
}

type KeyFrame struct {
	ID        string       `json:"id"`
	Timestamp float64      `json:"timestamp"`
	Duration  float64      `json:"duration"`
	TrackID   string       `json:"trackId"`
	Data      KeyFrameData `json:"data"`
}

type CaptionSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// MusicSource is the wizard's music choice: a library track, a generated
// piece, or none at all.
type MusicSource string

const (
	MusicNone      MusicSource = "none"
	MusicLibrary   MusicSource = "library"
	MusicGenerated MusicSource = "generated"
)

// WizardState is the accumulated output of the creation wizard. Optional
// fields left empty mean the corresponding feature was skipped, not an error.
type WizardState struct {
	Prompt           string           `json:"prompt"`
	Script           string           `json:"script"`
	SelectedVoice    string           `json:"selectedVoice"`
	SelectedTemplate string           `json:"selectedTemplate"`
	AudioURL         string           `json:"audioUrl,omitempty"`
	VisualURL        string           `json:"visualUrl,omitempty"`
	SelectedMusic    string           `json:"selectedMusic,omitempty"`
	MusicURL         string           `json:"musicUrl,omitempty"`
	MusicType        MusicSource      `json:"musicType,omitempty"`
	Captions         []CaptionSegment `json:"captions,omitempty"`
}

// WantsMusic reports whether the wizard made a playable music selection.
// The type governs: a stray musicUrl with musicType "none" is ignored.
func (w WizardState) WantsMusic() bool {
	return w.MusicType != "" && w.MusicType != MusicNone && w.MusicURL != ""
}
