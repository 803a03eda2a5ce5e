package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shorts-backend/internal/models"
	"shorts-backend/internal/reconcile"
	"shorts-backend/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func newTestHandler() (*ProjectHandler, *store.MemoryProjectStore, *store.MemoryDraftStore) {
	projects := store.NewMemoryProjectStore()
	drafts := store.NewMemoryDraftStore()
	h := &ProjectHandler{
		Projects:   projects,
		Drafts:     drafts,
		Reconciler: reconcile.New(projects, drafts, zerolog.Nop()),
	}
	return h, projects, drafts
}

func testRouter(h *ProjectHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/projects", h.CreateProject).Methods("POST")
	r.HandleFunc("/api/v1/projects/{id}", h.GetProject).Methods("GET")
	r.HandleFunc("/api/v1/projects/{id}/reconcile", h.ReconcileProject).Methods("POST")
	return r
}

func TestCreateProjectStashesDraft(t *testing.T) {
	h, _, drafts := newTestHandler()

	body := `{
		"prompt": "Test editor integration",
		"script": "Hey there!",
		"selectedVoice": "21m00Tcm4TlvDq8ikWAM",
		"selectedTemplate": "educational",
		"audioUrl": "https://example.com/a.mp3",
		"visualUrl": "https://example.com/i.png",
		"musicType": "library",
		"musicUrl": "https://example.com/m.mp3",
		"selectedMusic": "motivational-1"
	}`
	req := httptest.NewRequest("POST", "/api/v1/projects", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Success     bool          `json:"success"`
		ProjectID   string        `json:"projectId"`
		ProjectData models.Bundle `json:"projectData"`
		EditorURL   string        `json:"editorUrl"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.ProjectID == "" {
		t.Fatalf("response = %+v", resp)
	}
	if len(resp.ProjectData.Tracks) != 3 || len(resp.ProjectData.MediaItems) != 3 {
		t.Errorf("bundle has %d tracks and %d media items, want 3 and 3",
			len(resp.ProjectData.Tracks), len(resp.ProjectData.MediaItems))
	}
	if resp.EditorURL != "/app?project="+resp.ProjectID {
		t.Errorf("editorUrl = %q", resp.EditorURL)
	}

	if _, err := drafts.Get(context.Background(), store.DraftKey(resp.ProjectID)); err != nil {
		t.Errorf("draft not stashed: %v", err)
	}
}

func TestCreateProjectBadJSON(t *testing.T) {
	h, _, _ := newTestHandler()
	req := httptest.NewRequest("POST", "/api/v1/projects", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReconcileThenGet(t *testing.T) {
	h, _, drafts := newTestHandler()
	router := testRouter(h)

	// Create.
	create := httptest.NewRequest("POST", "/api/v1/projects",
		bytes.NewBufferString(`{"prompt":"P","script":"S","selectedVoice":"v1","selectedTemplate":"educational","audioUrl":"a.mp3","visualUrl":"i.png","musicType":"none"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, create)
	var created struct {
		ProjectID string `json:"projectId"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)

	// Reconcile twice; both succeed, draft is gone after the first.
	for i := 0; i < 2; i++ {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/projects/"+created.ProjectID+"/reconcile", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("reconcile call %d: status %d, body %s", i+1, rec.Code, rec.Body)
		}
	}
	if drafts.Len() != 0 {
		t.Error("draft survived reconciliation")
	}

	// Read back.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/projects/"+created.ProjectID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}
	var got models.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if len(got.Tracks) != 2 || len(got.MediaItems) != 2 || len(got.KeyFrames) != 2 {
		t.Errorf("bundle = %d/%d/%d tracks/media/keyframes, want 2/2/2",
			len(got.Tracks), len(got.MediaItems), len(got.KeyFrames))
	}
}

func TestReconcileMalformedDraft(t *testing.T) {
	h, _, drafts := newTestHandler()
	drafts.Put(context.Background(), store.DraftKey("p1"), []byte("garbage"), 0)

	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/projects/p1/reconcile", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if drafts.Len() != 1 {
		t.Error("malformed draft was evicted")
	}
}

func TestGetProjectNotFound(t *testing.T) {
	h, _, _ := newTestHandler()
	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/projects/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
