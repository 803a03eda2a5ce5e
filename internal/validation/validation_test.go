package validation

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

func audioHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateAudioUpload(t *testing.T) {
	if err := ValidateAudioUpload(audioHeader("take1.mp3", "audio/mpeg", 1024)); err != nil {
		t.Fatalf("valid upload rejected: %v", err)
	}

	if err := ValidateAudioUpload(audioHeader("take1.mp3", "audio/mpeg", 0)); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("empty file: got %v, want ErrEmptyFile", err)
	}
	if err := ValidateAudioUpload(audioHeader("take1.mp3", "audio/mpeg", MaxAudioSize+1)); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("oversized file: got %v, want ErrFileTooLarge", err)
	}
	if err := ValidateAudioUpload(audioHeader(strings.Repeat("a", 256)+".mp3", "audio/mpeg", 1024)); !errors.Is(err, ErrFilenameTooLong) {
		t.Errorf("long filename: got %v, want ErrFilenameTooLong", err)
	}
	if err := ValidateAudioUpload(audioHeader("notes.pdf", "application/pdf", 1024)); !errors.Is(err, ErrInvalidFileType) {
		t.Errorf("pdf upload: got %v, want ErrInvalidFileType", err)
	}
}

func TestValidateAudioUploadGuessesType(t *testing.T) {
	// Browsers sometimes omit the part's content type.
	if err := ValidateAudioUpload(audioHeader("take1.wav", "", 1024)); err != nil {
		t.Errorf("wav without content type rejected: %v", err)
	}
	if err := ValidateAudioUpload(audioHeader("take1", "", 1024)); !errors.Is(err, ErrInvalidFileType) {
		t.Errorf("extensionless file: got %v, want ErrInvalidFileType", err)
	}
}

func TestValidateWizardPrompt(t *testing.T) {
	if err := ValidateWizardPrompt("a video about space"); err != nil {
		t.Errorf("valid prompt rejected: %v", err)
	}
	if err := ValidateWizardPrompt("   "); err == nil {
		t.Error("blank prompt accepted")
	}
	if err := ValidateWizardPrompt(strings.Repeat("x", 2001)); err == nil {
		t.Error("oversized prompt accepted")
	}
}

func TestValidateVoiceID(t *testing.T) {
	if err := ValidateVoiceID("21m00Tcm4TlvDq8ikWAM"); err != nil {
		t.Errorf("valid voice id rejected: %v", err)
	}
	if err := ValidateVoiceID(""); err == nil {
		t.Error("empty voice id accepted")
	}
	if err := ValidateVoiceID(strings.Repeat("v", 101)); err == nil {
		t.Error("oversized voice id accepted")
	}
}
