package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"shorts-backend/internal/assemble"
	"shorts-backend/internal/models"
	"shorts-backend/internal/reconcile"
	"shorts-backend/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// ProjectHandler covers the project lifecycle: assembling a bundle from a
// completed wizard state, reconciling it into durable storage on first load
// of the editor, and reading it back.
type ProjectHandler struct {
	Projects   store.ProjectStore
	Drafts     store.DraftStore
	Reconciler *reconcile.Reconciler
}

// CreateProject accepts the wizard's accumulated state, assembles a project
// bundle and stashes it in the draft store for the editor to pick up.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var state models.WizardState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	bundle := assemble.Assemble(state)
	if err := bundle.Validate(); err != nil {
		// The assembler is total over well-formed input; a failure here is a
		// bug, not a user error.
		log.Error().Err(err).Msg("assembled bundle failed validation")
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	raw, err := json.Marshal(bundle)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}
	if err := h.Drafts.Put(r.Context(), store.DraftKey(bundle.Project.ID), raw, store.DefaultDraftTTL); err != nil {
		log.Error().Err(err).Msg("draft store write failed")
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	log.Info().
		Str("project", bundle.Project.ID).
		Int("tracks", len(bundle.Tracks)).
		Int("media", len(bundle.MediaItems)).
		Int("keyframes", len(bundle.KeyFrames)).
		Msg("project assembled from wizard state")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"projectId":   bundle.Project.ID,
		"projectData": bundle,
		"editorUrl":   fmt.Sprintf("/app?project=%s", bundle.Project.ID),
		"message":     "Project created successfully",
	})
}

// ReconcileProject performs the one-time migration of a drafted bundle into
// the durable store. Safe to call repeatedly.
func (h *ProjectHandler) ReconcileProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	if err := h.Reconciler.Reconcile(r.Context(), projectID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reconcile.ErrMalformedDraft) {
			status = http.StatusUnprocessableEntity
		}
		log.Error().Err(err).Str("project", projectID).Msg("reconcile failed")
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reconciled"})
}

// GetProject returns a reconciled project bundle.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	bundle, err := h.Projects.GetBundle(r.Context(), projectID)
	if errors.Is(err, store.ErrProjectNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("project", projectID).Msg("bundle read failed")
		writeError(w, http.StatusInternalServerError, "failed to load project")
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
