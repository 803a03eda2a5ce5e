package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sunoBaseURL = "https://studio-api.suno.ai/api"

// SunoClient implements MusicGenerator against the Suno studio API. Music
// generation is asynchronous: Generate starts a job and CheckStatus polls it
// until the audio URL appears.
type SunoClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewSunoClient(apiKey string) *SunoClient {
	return &SunoClient{
		APIKey:  apiKey,
		BaseURL: sunoBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *SunoClient) Generate(ctx context.Context, r MusicRequest) (MusicGeneration, error) {
	body, err := json.Marshal(map[string]any{
		"prompt":            r.Prompt,
		"make_instrumental": r.Instrumental,
		"wait_audio":        false,
	})
	if err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/generate/v2/", bytes.NewReader(body))
	if err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return MusicGeneration{}, fmt.Errorf("%w: status %d: %s", ErrMusic, resp.StatusCode, detail)
	}

	var payload struct {
		ID    string `json:"id"`
		Clips []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"clips"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}

	gen := MusicGeneration{ID: payload.ID, Status: "processing"}
	if gen.ID == "" && len(payload.Clips) > 0 {
		gen.ID = payload.Clips[0].ID
	}
	if len(payload.Clips) > 0 {
		gen.Title = payload.Clips[0].Title
	}
	if gen.ID == "" {
		return MusicGeneration{}, fmt.Errorf("%w: no generation id in response", ErrMusic)
	}
	return gen, nil
}

func (c *SunoClient) CheckStatus(ctx context.Context, id string) (MusicGeneration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/get?ids=%s", c.BaseURL, id), nil)
	if err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return MusicGeneration{}, fmt.Errorf("%w: status %d", ErrMusic, resp.StatusCode)
	}

	var clips []struct {
		ID       string  `json:"id"`
		Status   string  `json:"status"`
		AudioURL string  `json:"audio_url"`
		Title    string  `json:"title"`
		Duration float64 `json:"duration"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&clips); err != nil {
		return MusicGeneration{}, fmt.Errorf("%w: %v", ErrMusic, err)
	}
	if len(clips) == 0 {
		return MusicGeneration{}, fmt.Errorf("%w: generation %s not found", ErrMusic, id)
	}

	clip := clips[0]
	status := "processing"
	if clip.Status == "complete" {
		status = "completed"
	}
	return MusicGeneration{
		ID:       clip.ID,
		Status:   status,
		Title:    clip.Title,
		AudioURL: clip.AudioURL,
		Duration: clip.Duration,
	}, nil
}
