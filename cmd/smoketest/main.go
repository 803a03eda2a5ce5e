// Command smoketest replays a known-good wizard payload against a running
// backend and verifies the create → reconcile → read-back flow end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"shorts-backend/internal/models"

	"github.com/spf13/cobra"
)

var baseURL string

func main() {
	root := &cobra.Command{
		Use:   "smoketest",
		Short: "Exercise the create-project flow against a running backend",
		RunE:  run,
	}
	root.Flags().StringVar(&baseURL, "base-url", "http://localhost:8083", "backend base URL")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	payload := models.WizardState{
		Prompt:           "Test editor integration - create a short video about AI tools",
		Script:           "Hey there! Welcome to our AI tools tutorial. Today we'll explore amazing AI technologies that can transform your content creation workflow.",
		SelectedVoice:    "21m00Tcm4TlvDq8ikWAM",
		SelectedTemplate: "educational",
		AudioURL:         "https://example.com/test-audio.mp3",
		VisualURL:        "https://example.com/test-visual.png",
		SelectedMusic:    "motivational-1",
		MusicURL:         "https://example.com/test-music.mp3",
		MusicType:        models.MusicLibrary,
		Captions: []models.CaptionSegment{
			{ID: 1, Start: 0.0, End: 2.5, Text: "Hey there! Welcome to our AI tools tutorial."},
			{ID: 2, Start: 2.5, End: 5.0, Text: "Today we'll explore amazing AI technologies"},
		},
	}

	client := &http.Client{Timeout: 30 * time.Second}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := client.Post(baseURL+"/api/v1/projects", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("create project: status %d", resp.StatusCode)
	}

	var created struct {
		Success   bool   `json:"success"`
		ProjectID string `json:"projectId"`
		EditorURL string `json:"editorUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("decode create response: %w", err)
	}
	if !created.Success || created.ProjectID == "" {
		return fmt.Errorf("create project: unexpected response %+v", created)
	}
	fmt.Println("project created:", created.ProjectID)
	fmt.Println("editor url:", created.EditorURL)

	rec, err := client.Post(baseURL+"/api/v1/projects/"+created.ProjectID+"/reconcile", "application/json", nil)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	defer rec.Body.Close()
	if rec.StatusCode != http.StatusOK {
		return fmt.Errorf("reconcile: status %d", rec.StatusCode)
	}
	fmt.Println("project reconciled")

	get, err := client.Get(baseURL + "/api/v1/projects/" + created.ProjectID)
	if err != nil {
		return fmt.Errorf("read back: %w", err)
	}
	defer get.Body.Close()
	if get.StatusCode != http.StatusOK {
		return fmt.Errorf("read back: status %d", get.StatusCode)
	}

	var bundle models.Bundle
	if err := json.NewDecoder(get.Body).Decode(&bundle); err != nil {
		return fmt.Errorf("decode bundle: %w", err)
	}
	fmt.Printf("bundle: %d tracks, %d media items, %d keyframes\n",
		len(bundle.Tracks), len(bundle.MediaItems), len(bundle.KeyFrames))

	if len(bundle.Tracks) != 3 {
		return fmt.Errorf("expected 3 tracks with library music, got %d", len(bundle.Tracks))
	}
	fmt.Println("smoke test passed")
	return nil
}
