package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shorts-backend/internal/models"
)

// MemoryProjectStore is an in-memory ProjectStore used by tests and local
// runs without a database.
type MemoryProjectStore struct {
	mu       sync.Mutex
	projects map[string]models.Project
	// children keyed by project id
	tracks map[string][]models.Track
	media  map[string][]models.MediaItem
	frames map[string][]models.KeyFrame

	// FailInserts makes every write after the project upsert fail, for
	// exercising the reconciler's retry path.
	FailInserts bool
}

func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{
		projects: make(map[string]models.Project),
		tracks:   make(map[string][]models.Track),
		media:    make(map[string][]models.MediaItem),
		frames:   make(map[string][]models.KeyFrame),
	}
}

func (s *MemoryProjectStore) Exists(_ context.Context, projectID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.projects[projectID]
	return ok, nil
}

func (s *MemoryProjectStore) UpsertProject(_ context.Context, p models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p
	return nil
}

func (s *MemoryProjectStore) InsertTrack(_ context.Context, t models.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailInserts {
		return fmt.Errorf("insert track %s: store unavailable", t.ID)
	}
	s.tracks[t.ProjectID] = append(s.tracks[t.ProjectID], t)
	return nil
}

func (s *MemoryProjectStore) InsertMediaItem(_ context.Context, m models.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailInserts {
		return fmt.Errorf("insert media item %s: store unavailable", m.ID)
	}
	s.media[m.ProjectID] = append(s.media[m.ProjectID], m)
	return nil
}

func (s *MemoryProjectStore) InsertKeyFrame(_ context.Context, projectID string, k models.KeyFrame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailInserts {
		return fmt.Errorf("insert keyframe %s: store unavailable", k.ID)
	}
	s.frames[projectID] = append(s.frames[projectID], k)
	return nil
}

func (s *MemoryProjectStore) GetBundle(_ context.Context, projectID string) (*models.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return &models.Bundle{
		Project:    p,
		Tracks:     s.tracks[projectID],
		MediaItems: s.media[projectID],
		KeyFrames:  s.frames[projectID],
	}, nil
}

// TrackCount reports how many tracks are stored for a project.
func (s *MemoryProjectStore) TrackCount(projectID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tracks[projectID])
}

// Delete removes a project and its children. Used when a failed write burst
// needs cleaning up in tests.
func (s *MemoryProjectStore) Delete(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, projectID)
	delete(s.tracks, projectID)
	delete(s.media, projectID)
	delete(s.frames, projectID)
}

// MemoryDraftStore is an in-memory DraftStore. TTLs are recorded but not
// enforced; tests drive eviction explicitly.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *MemoryDraftStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.drafts[key]
	if !ok {
		return nil, ErrNoDraft
	}
	return val, nil
}

func (s *MemoryDraftStore) Put(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = value
	return nil
}

func (s *MemoryDraftStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}

// Len reports how many drafts are held.
func (s *MemoryDraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
