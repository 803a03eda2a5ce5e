package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shorts-backend/internal/catalog"
	"shorts-backend/internal/generate"
	"shorts-backend/internal/models"
)

type fakeScripts struct{ fail bool }

func (f *fakeScripts) Generate(_ context.Context, prompt string) (string, error) {
	if f.fail {
		return "", generate.ErrScript
	}
	return "script for " + prompt, nil
}

func (f *fakeScripts) Improve(_ context.Context, script, feedback string) (string, error) {
	return script + " (" + feedback + ")", nil
}

type fakeSpeech struct{}

func (fakeSpeech) Synthesize(context.Context, string, string) ([]byte, error) {
	return []byte("mp3"), nil
}

func (fakeSpeech) ListVoices(context.Context) ([]catalog.Voice, error) {
	return catalog.Voices, nil
}

type fakeTranscriber struct{}

func (fakeTranscriber) Transcribe(_ context.Context, _ []byte, _ string) (generate.Transcription, error) {
	return generate.Transcription{
		Text:     "Hey there friend !",
		Segments: []models.CaptionSegment{{ID: 1, Start: 0, End: 1.4, Text: "Hey there friend"}},
		Language: "en",
		Duration: 1.8,
	}, nil
}

func TestGenerateScript(t *testing.T) {
	h := &GenerateHandler{Scripts: &fakeScripts{}}
	req := httptest.NewRequest("POST", "/api/v1/script", bytes.NewBufferString(`{"prompt":"cats"}`))
	rec := httptest.NewRecorder()
	h.GenerateScript(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["script"] != "script for cats" {
		t.Errorf("script = %q", resp["script"])
	}
}

func TestGenerateScriptEmptyPrompt(t *testing.T) {
	h := &GenerateHandler{Scripts: &fakeScripts{}}
	req := httptest.NewRequest("POST", "/api/v1/script", bytes.NewBufferString(`{"prompt":"  "}`))
	rec := httptest.NewRecorder()
	h.GenerateScript(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateScriptUpstreamFailure(t *testing.T) {
	h := &GenerateHandler{Scripts: &fakeScripts{fail: true}}
	req := httptest.NewRequest("POST", "/api/v1/script", bytes.NewBufferString(`{"prompt":"cats"}`))
	rec := httptest.NewRecorder()
	h.GenerateScript(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestListVoices(t *testing.T) {
	h := &GenerateHandler{Speech: fakeSpeech{}}
	rec := httptest.NewRecorder()
	h.ListVoices(rec, httptest.NewRequest("GET", "/api/v1/voices", nil))

	var resp struct {
		Voices []catalog.Voice `json:"voices"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Voices) != len(catalog.Voices) {
		t.Errorf("got %d voices, want %d", len(resp.Voices), len(catalog.Voices))
	}
}

func TestTranscribe(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("audio", "clip.mp3")
	part.Write([]byte("fake-mp3"))
	mw.Close()

	h := &GenerateHandler{Transcriber: fakeTranscriber{}}
	req := httptest.NewRequest("POST", "/api/v1/transcribe", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Transcribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var tr generate.Transcription
	json.Unmarshal(rec.Body.Bytes(), &tr)
	if len(tr.Segments) != 1 || tr.Language != "en" {
		t.Errorf("transcription = %+v", tr)
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("model", "whisper-1")
	mw.Close()

	h := &GenerateHandler{Transcriber: fakeTranscriber{}}
	req := httptest.NewRequest("POST", "/api/v1/transcribe", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Transcribe(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
