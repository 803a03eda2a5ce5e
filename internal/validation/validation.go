// Package validation checks uploaded audio before it reaches the
// transcriber, and the wizard fields the assembler's handlers accept.
package validation

import (
	"errors"
	"mime/multipart"
	"strings"
)

const (
	// Transcription uploads are narration clips, not full renders.
	MaxAudioSize = 25 * 1024 * 1024 // 25MB, the Whisper API ceiling
)

var (
	ErrFileTooLarge    = errors.New("audio file too large - maximum 25MB allowed")
	ErrInvalidFileType = errors.New("invalid file type - only mp3, mp4, m4a, wav, webm, ogg allowed")
	ErrFilenameTooLong = errors.New("filename too long - maximum 255 characters")
	ErrEmptyFile       = errors.New("file is empty")
)

var allowedAudioTypes = map[string]bool{
	"audio/mpeg":  true,
	"audio/mp3":   true,
	"audio/mp4":   true,
	"audio/m4a":   true,
	"audio/wav":   true,
	"audio/wave":  true,
	"audio/x-wav": true,
	"audio/ogg":   true,
	"audio/webm":  true,
	"video/mp4":   true,
	"video/webm":  true,
}

// ValidateAudioUpload checks a multipart audio file for transcription or
// speech storage.
func ValidateAudioUpload(fh *multipart.FileHeader) error {
	if fh.Size == 0 {
		return ErrEmptyFile
	}
	if fh.Size > MaxAudioSize {
		return ErrFileTooLarge
	}
	if len(fh.Filename) > 255 {
		return ErrFilenameTooLong
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = guessContentType(fh.Filename)
	}
	if !allowedAudioTypes[contentType] {
		return ErrInvalidFileType
	}
	return nil
}

func guessContentType(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return "application/octet-stream"
	}

	switch strings.ToLower(filename[idx+1:]) {
	case "mp3":
		return "audio/mpeg"
	case "mp4":
		return "audio/mp4"
	case "m4a":
		return "audio/m4a"
	case "wav":
		return "audio/wav"
	case "ogg":
		return "audio/ogg"
	case "webm":
		return "audio/webm"
	}
	return "application/octet-stream"
}

// ValidateWizardPrompt bounds the free-text idea the script generator is
// called with.
func ValidateWizardPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.New("prompt is required")
	}
	if len(prompt) > 2000 {
		return errors.New("prompt too long - maximum 2000 characters")
	}
	return nil
}

// ValidateVoiceID rejects obviously malformed voice identifiers before they
// hit the speech backend.
func ValidateVoiceID(voiceID string) error {
	if voiceID == "" {
		return errors.New("voiceId is required")
	}
	if len(voiceID) > 100 {
		return errors.New("voiceId too long")
	}
	return nil
}
