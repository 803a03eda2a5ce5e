// Package store provides the durable project store and the ephemeral draft
// store behind narrow interfaces so handlers and the reconciler never depend
// on a concrete backend.
package store

import (
	"context"
	"errors"
	"time"

	"shorts-backend/internal/models"
)

var (
	// ErrNoDraft is returned by DraftStore.Get when no draft exists for the key.
	ErrNoDraft = errors.New("draft not found")
	// ErrProjectNotFound is returned when a project id is absent from the
	// durable store.
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectStore is the durable home of reconciled projects. Inserts preserve
// the caller's ids so cross-references inside a bundle stay valid.
type ProjectStore interface {
	Exists(ctx context.Context, projectID string) (bool, error)
	UpsertProject(ctx context.Context, p models.Project) error
	InsertTrack(ctx context.Context, t models.Track) error
	InsertMediaItem(ctx context.Context, m models.MediaItem) error
	InsertKeyFrame(ctx context.Context, projectID string, k models.KeyFrame) error
	GetBundle(ctx context.Context, projectID string) (*models.Bundle, error)
}

// BundleWriter is implemented by stores that can persist a whole bundle
// atomically. The reconciler prefers it over the item-by-item inserts, so a
// crash mid-reconciliation can never leave a project record without its
// tracks, media and keyframes.
type BundleWriter interface {
	WriteBundle(ctx context.Context, b *models.Bundle) error
}

// DraftStore holds serialized bundles between wizard completion and first
// reconciliation. Short-lived by design.
type DraftStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// DraftKey is the draft-store key for a project's pending bundle.
func DraftKey(projectID string) string { return "project_" + projectID }
