// Package assemble turns a completed wizard state into an editor project
// bundle: one project, its tracks, the media items behind them and the
// keyframes that place those items on the timeline.
package assemble

import (
	"fmt"
	"time"

	"shorts-backend/internal/models"

	"github.com/google/uuid"
)

// Endpoint identifiers recorded on generated media items, naming which AI
// backend produced the asset.
const (
	EndpointImage  = "fal-ai"
	EndpointSpeech = "elevenlabs"
	EndpointMusic  = "suno"
)

// DefaultKeyFrameDuration is a placeholder; the editor recomputes clip length
// from the measured audio duration. See the note on Assemble.
const DefaultKeyFrameDuration = 60.0

// Assemble builds a self-consistent bundle from the wizard's accumulated
// generation results. It is a pure transform: no I/O, no failure path.
// Missing optional fields suppress the corresponding entities entirely;
// no placeholder tracks or empty media items are emitted.
//
// Every keyframe starts at 0 with DefaultKeyFrameDuration regardless of the
// actual audio length; audio-bearing keyframes are tagged with the "video"
// content type. Both are longstanding conventions the editor depends on,
// preserved as-is.
func Assemble(state models.WizardState) models.Bundle {
	projectID := uuid.NewString()
	now := time.Now()

	project := models.Project{
		ID:          projectID,
		Title:       fmt.Sprintf("AI Generated Short - %s", now.Format("1/2/2006")),
		Description: state.Prompt,
		AspectRatio: models.AspectVertical,
	}

	// Fixed track order: video, voiceover, then music. Downstream consumers
	// index into this slice by well-known id.
	tracks := []models.Track{
		{
			ID:        string(models.RoleMainVideo),
			ProjectID: projectID,
			Label:     "Video",
			Locked:    false,
			Type:      models.TrackVideo,
		},
		{
			ID:        string(models.RoleVoiceover),
			ProjectID: projectID,
			Label:     "Voice Over",
			Locked:    false,
			Type:      models.TrackVoiceover,
		},
	}
	if state.WantsMusic() {
		tracks = append(tracks, models.Track{
			ID:        string(models.RoleMusic),
			ProjectID: projectID,
			Label:     "Background Music",
			Locked:    false,
			Type:      models.TrackMusic,
		})
	}

	var mediaItems []models.MediaItem
	var keyframes []models.KeyFrame

	if state.VisualURL != "" {
		visualID := uuid.NewString()
		mediaItems = append(mediaItems, models.MediaItem{
			ID:         visualID,
			Kind:       models.ProvenanceGenerated,
			EndpointID: EndpointImage,
			RequestID:  uuid.NewString(),
			ProjectID:  projectID,
			MediaType:  models.MediaImage,
			Status:     models.StatusCompleted,
			CreatedAt:  now,
			Input:      map[string]any{"prompt": state.Prompt, "template": state.SelectedTemplate},
			Output:     map[string]any{"url": state.VisualURL},
			URL:        state.VisualURL,
			Metadata: &models.Metadata{Image: &models.ImageMetadata{
				Template:    state.SelectedTemplate,
				AspectRatio: models.AspectVertical,
			}},
		})
		keyframes = append(keyframes, models.KeyFrame{
			ID:        uuid.NewString(),
			Timestamp: 0,
			Duration:  DefaultKeyFrameDuration,
			TrackID:   string(models.RoleMainVideo),
			Data: models.KeyFrameData{
				Type:    models.ContentImage,
				MediaID: visualID,
				Prompt:  state.Prompt,
				URL:     state.VisualURL,
			},
		})
	}

	if state.AudioURL != "" {
		voiceID := uuid.NewString()
		mediaItems = append(mediaItems, models.MediaItem{
			ID:         voiceID,
			Kind:       models.ProvenanceGenerated,
			EndpointID: EndpointSpeech,
			RequestID:  uuid.NewString(),
			ProjectID:  projectID,
			MediaType:  models.MediaVoiceover,
			Status:     models.StatusCompleted,
			CreatedAt:  now,
			Input:      map[string]any{"text": state.Script, "voice_id": state.SelectedVoice},
			Output:     map[string]any{"url": state.AudioURL},
			URL:        state.AudioURL,
			Metadata: &models.Metadata{Voiceover: &models.VoiceoverMetadata{
				VoiceID:  state.SelectedVoice,
				Script:   state.Script,
				Captions: state.Captions,
			}},
		})
		keyframes = append(keyframes, models.KeyFrame{
			ID:        uuid.NewString(),
			Timestamp: 0,
			Duration:  DefaultKeyFrameDuration,
			TrackID:   string(models.RoleVoiceover),
			Data: models.KeyFrameData{
				Type:    models.ContentVideo, // editor convention for audio-only content
				MediaID: voiceID,
				Prompt:  state.Script,
				URL:     state.AudioURL,
			},
		})
	}

	if state.WantsMusic() {
		musicID := uuid.NewString()
		musicMeta := &models.Metadata{Music: &models.MusicMetadata{
			MusicType:     string(state.MusicType),
			SelectedMusic: state.SelectedMusic,
		}}

		if state.MusicType == models.MusicGenerated {
			mediaItems = append(mediaItems, models.MediaItem{
				ID:         musicID,
				Kind:       models.ProvenanceGenerated,
				EndpointID: EndpointMusic,
				RequestID:  uuid.NewString(),
				ProjectID:  projectID,
				MediaType:  models.MediaMusic,
				Status:     models.StatusCompleted,
				CreatedAt:  now,
				Input: map[string]any{
					"prompt":   fmt.Sprintf("Background music for %s content", state.SelectedTemplate),
					"template": state.SelectedTemplate,
				},
				Output:   map[string]any{"url": state.MusicURL},
				URL:      state.MusicURL,
				Metadata: musicMeta,
			})
		} else {
			mediaItems = append(mediaItems, models.MediaItem{
				ID:        musicID,
				Kind:      models.ProvenanceUploaded,
				ProjectID: projectID,
				MediaType: models.MediaMusic,
				Status:    models.StatusCompleted,
				CreatedAt: now,
				URL:       state.MusicURL,
				Metadata:  musicMeta,
			})
		}
		keyframes = append(keyframes, models.KeyFrame{
			ID:        uuid.NewString(),
			Timestamp: 0,
			Duration:  DefaultKeyFrameDuration,
			TrackID:   string(models.RoleMusic),
			Data: models.KeyFrameData{
				Type:    models.ContentVideo, // editor convention for audio-only content
				MediaID: musicID,
				Prompt:  fmt.Sprintf("Background music for %s", state.SelectedTemplate),
				URL:     state.MusicURL,
			},
		})
	}

	return models.Bundle{
		Project:    project,
		Tracks:     tracks,
		MediaItems: mediaItems,
		KeyFrames:  keyframes,
		Source:     state,
	}
}
