package handler

import (
	"net/http"

	"shorts-backend/internal/catalog"
	"shorts-backend/internal/music"
)

// CatalogHandler serves the static reference data the wizard renders:
// visual templates and the background-music library.
type CatalogHandler struct{}

func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": catalog.Templates})
}

func (h *CatalogHandler) MusicLibrary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": music.Categories})
}
