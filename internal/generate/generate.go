// Package generate defines the AI collaborator interfaces the wizard flow
// depends on, plus the HTTP clients behind them. Everything downstream
// consumes the interfaces so tests run against fakes.
package generate

import (
	"context"
	"errors"

	"shorts-backend/internal/catalog"
	"shorts-backend/internal/models"
)

// Per-collaborator sentinel errors so callers can tell which backend failed.
var (
	ErrScript     = errors.New("script generation failed")
	ErrSpeech     = errors.New("speech synthesis failed")
	ErrImage      = errors.New("image generation failed")
	ErrMusic      = errors.New("music generation failed")
	ErrTranscribe = errors.New("transcription failed")
)

// ScriptGenerator writes and revises narration scripts.
type ScriptGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Improve(ctx context.Context, script, feedback string) (string, error)
}

// SpeechSynthesizer renders a script with a chosen voice and lists the
// voices on offer.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
	ListVoices(ctx context.Context) ([]catalog.Voice, error)
}

// ImageGenerator produces the background visual for a template.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt, template string) (string, error)
}

// MusicRequest parameterizes a music generation call.
type MusicRequest struct {
	Prompt       string  `json:"prompt"`
	Instrumental bool    `json:"instrumental"`
	Duration     float64 `json:"duration"`
}

// MusicGeneration is the state of one asynchronous music generation.
type MusicGeneration struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"` // processing | completed | failed
	Title    string  `json:"title,omitempty"`
	AudioURL string  `json:"audio_url,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// MusicGenerator starts a generation and polls its status.
type MusicGenerator interface {
	Generate(ctx context.Context, req MusicRequest) (MusicGeneration, error)
	CheckStatus(ctx context.Context, id string) (MusicGeneration, error)
}

// Transcription is the word-timestamped result of transcribing audio, with
// the words already grouped into caption segments.
type Transcription struct {
	Text     string                  `json:"text"`
	Segments []models.CaptionSegment `json:"segments"`
	Language string                  `json:"language"`
	Duration float64                 `json:"duration"`
}

// Transcriber turns audio bytes into timed captions.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (Transcription, error)
}
