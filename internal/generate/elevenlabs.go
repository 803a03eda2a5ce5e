package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shorts-backend/internal/catalog"

	"github.com/rs/zerolog/log"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

// ElevenLabsClient implements SpeechSynthesizer against the ElevenLabs
// text-to-speech API.
type ElevenLabsClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewElevenLabsClient(apiKey string) *ElevenLabsClient {
	return &ElevenLabsClient{
		APIKey:  apiKey,
		BaseURL: elevenLabsBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	body, err := json.Marshal(map[string]any{
		"text":     text,
		"model_id": "eleven_monolingual_v1",
		"voice_settings": map[string]any{
			"stability":         0.5,
			"similarity_boost":  0.5,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeech, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/text-to-speech/%s", c.BaseURL, voiceID), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeech, err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeech, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: status %d: %s", ErrSpeech, resp.StatusCode, detail)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeech, err)
	}
	return audio, nil
}

// ListVoices fetches the live voice list, falling back to the static
// catalog when the API is unreachable so the wizard always has voices to
// offer.
func (c *ElevenLabsClient) ListVoices(ctx context.Context) ([]catalog.Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/voices", nil)
	if err != nil {
		return catalog.Voices, nil
	}
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("voice listing unavailable, serving static catalog")
		return catalog.Voices, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("voice listing unavailable, serving static catalog")
		return catalog.Voices, nil
	}

	var payload struct {
		Voices []struct {
			VoiceID     string `json:"voice_id"`
			Name        string `json:"name"`
			Category    string `json:"category"`
			Description string `json:"description"`
		} `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Msg("voice listing undecodable, serving static catalog")
		return catalog.Voices, nil
	}

	voices := make([]catalog.Voice, 0, len(payload.Voices))
	for _, v := range payload.Voices {
		category := v.Category
		if category == "" {
			category = "Unknown"
		}
		description := v.Description
		if description == "" {
			description = v.Name + " voice"
		}
		voices = append(voices, catalog.Voice{
			VoiceID:     v.VoiceID,
			Name:        v.Name,
			Category:    category,
			Description: description,
		})
	}
	return voices, nil
}
