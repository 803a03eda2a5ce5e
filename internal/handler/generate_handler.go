package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"shorts-backend/internal/generate"
	"shorts-backend/internal/music"
	"shorts-backend/internal/storage"
	"shorts-backend/internal/validation"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// GenerateHandler fronts the AI collaborators: script, speech, image, music
// and transcription. Retry policy lives with the caller; failures pass
// through as explicit errors.
type GenerateHandler struct {
	Scripts     generate.ScriptGenerator
	Speech      generate.SpeechSynthesizer
	Images      generate.ImageGenerator
	Music       generate.MusicGenerator
	Transcriber generate.Transcriber
	Storage     storage.Storage
}

func (h *GenerateHandler) GenerateScript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validation.ValidateWizardPrompt(req.Prompt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	script, err := h.Scripts.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Error().Err(err).Msg("script generation failed")
		writeError(w, http.StatusBadGateway, "failed to generate script")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"script": script})
}

func (h *GenerateHandler) ImproveScript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Script   string `json:"script"`
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Script == "" {
		writeError(w, http.StatusBadRequest, "script is required")
		return
	}

	improved, err := h.Scripts.Improve(r.Context(), req.Script, req.Feedback)
	if err != nil {
		log.Error().Err(err).Msg("script improvement failed")
		writeError(w, http.StatusBadGateway, "failed to improve script")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"script": improved})
}

func (h *GenerateHandler) ListVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := h.Speech.ListVoices(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("voice listing failed")
		writeError(w, http.StatusBadGateway, "failed to list voices")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"voices": voices})
}

// SynthesizeSpeech renders the script with the chosen voice, stores the
// audio and returns its URL for the wizard to carry forward.
func (h *GenerateHandler) SynthesizeSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text    string `json:"text"`
		VoiceID string `json:"voiceId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if err := validation.ValidateVoiceID(req.VoiceID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	audio, err := h.Speech.Synthesize(r.Context(), req.Text, req.VoiceID)
	if err != nil {
		log.Error().Err(err).Str("voice", req.VoiceID).Msg("speech synthesis failed")
		writeError(w, http.StatusBadGateway, "failed to synthesize speech")
		return
	}

	url, err := h.Storage.Save(bytes.NewReader(audio), "voiceover.mp3", "audio/mpeg")
	if err != nil {
		log.Error().Err(err).Msg("voiceover save failed")
		writeError(w, http.StatusInternalServerError, "failed to store audio")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"audioUrl": url})
}

func (h *GenerateHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt   string `json:"prompt"`
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validation.ValidateWizardPrompt(req.Prompt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.Images.Generate(r.Context(), req.Prompt, req.Template)
	if err != nil {
		log.Error().Err(err).Msg("image generation failed")
		writeError(w, http.StatusBadGateway, "failed to generate image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// GenerateMusic starts an asynchronous music generation. The prompt is
// composed from the chosen template and the script's content.
func (h *GenerateHandler) GenerateMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template string `json:"template"`
		Script   string `json:"script"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	gen, err := h.Music.Generate(r.Context(), generate.MusicRequest{
		Prompt:       music.ComposePrompt(req.Template, req.Script),
		Instrumental: true,
		Duration:     60,
	})
	if err != nil {
		log.Error().Err(err).Msg("music generation failed")
		writeError(w, http.StatusBadGateway, "failed to generate music")
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

func (h *GenerateHandler) MusicStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	gen, err := h.Music.CheckStatus(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("generation", id).Msg("music status check failed")
		writeError(w, http.StatusBadGateway, "failed to check generation status")
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

// Transcribe accepts a multipart audio upload and returns word-grouped
// caption segments.
func (h *GenerateHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(validation.MaxAudioSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, fh, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	if err := validation.ValidateAudioUpload(fh); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	audio, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read audio")
		return
	}

	tr, err := h.Transcriber.Transcribe(r.Context(), audio, fh.Filename)
	if err != nil {
		log.Error().Err(err).Msg("transcription failed")
		writeError(w, http.StatusBadGateway, "failed to transcribe audio")
		return
	}
	writeJSON(w, http.StatusOK, tr)
}
