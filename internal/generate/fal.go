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

const falBaseURL = "https://fal.run/fal-ai/flux/schnell"

// FalClient implements ImageGenerator against the fal.ai inference API.
type FalClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewFalClient(apiKey string) *FalClient {
	return &FalClient{
		APIKey:  apiKey,
		BaseURL: falBaseURL,
		HTTP:    &http.Client{Timeout: 120 * time.Second},
	}
}

// Generate requests one vertical image styled after the chosen template and
// returns its URL.
func (c *FalClient) Generate(ctx context.Context, prompt, template string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"prompt":     fmt.Sprintf("%s, %s style, vertical composition", prompt, template),
		"image_size": "portrait_16_9",
		"num_images": 1,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImage, err)
	}
	req.Header.Set("Authorization", "Key "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("%w: status %d: %s", ErrImage, resp.StatusCode, detail)
	}

	var payload struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImage, err)
	}
	if len(payload.Images) == 0 || payload.Images[0].URL == "" {
		return "", fmt.Errorf("%w: no image in response", ErrImage)
	}
	return payload.Images[0].URL, nil
}
