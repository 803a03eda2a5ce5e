// Package reconcile migrates a project bundle from the ephemeral draft store
// into the durable project store, exactly once per project id.
package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shorts-backend/internal/models"
	"shorts-backend/internal/store"

	"github.com/rs/zerolog"
)

// ErrMalformedDraft wraps a draft that could not be decoded as a bundle.
// The draft is left in place so a fixed build can retry.
var ErrMalformedDraft = errors.New("malformed draft bundle")

type Reconciler struct {
	Projects store.ProjectStore
	Drafts   store.DraftStore
	Log      zerolog.Logger
}

func New(projects store.ProjectStore, drafts store.DraftStore, log zerolog.Logger) *Reconciler {
	return &Reconciler{Projects: projects, Drafts: drafts, Log: log}
}

// Reconcile moves the pending draft for projectID into durable storage.
//
// Absent draft: no-op. Malformed draft or failed write: the error is
// returned and the draft is preserved so the next invocation can retry.
// Project already durable: writes are skipped. In every successful pass the
// draft is removed, so repeated invocations become pure no-ops.
func (r *Reconciler) Reconcile(ctx context.Context, projectID string) error {
	key := store.DraftKey(projectID)

	raw, err := r.Drafts.Get(ctx, key)
	if errors.Is(err, store.ErrNoDraft) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reconcile %s: %w", projectID, err)
	}

	var bundle models.Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return fmt.Errorf("reconcile %s: %w: %v", projectID, ErrMalformedDraft, err)
	}
	if err := bundle.Validate(); err != nil {
		return fmt.Errorf("reconcile %s: %w: %v", projectID, ErrMalformedDraft, err)
	}

	// The existence check is the sole double-insert guard, so it runs
	// immediately before the write burst rather than being cached from an
	// earlier point in time.
	exists, err := r.Projects.Exists(ctx, bundle.Project.ID)
	if err != nil {
		return fmt.Errorf("reconcile %s: %w", projectID, err)
	}

	if !exists {
		if err := r.writeBundle(ctx, &bundle); err != nil {
			return fmt.Errorf("reconcile %s: %w", projectID, err)
		}
		r.Log.Info().
			Str("project", bundle.Project.ID).
			Int("tracks", len(bundle.Tracks)).
			Int("media", len(bundle.MediaItems)).
			Int("keyframes", len(bundle.KeyFrames)).
			Msg("draft reconciled into durable store")
	} else {
		r.Log.Debug().Str("project", bundle.Project.ID).Msg("project already reconciled")
	}

	if err := r.Drafts.Remove(ctx, key); err != nil {
		return fmt.Errorf("reconcile %s: evict draft: %w", projectID, err)
	}
	return nil
}

// writeBundle persists the bundle in dependency order: project first, then
// tracks and media items, then the keyframes that reference them. Stores
// that can write the whole bundle atomically are preferred, so a crash can
// never leave a project record without its children.
func (r *Reconciler) writeBundle(ctx context.Context, b *models.Bundle) error {
	if w, ok := r.Projects.(store.BundleWriter); ok {
		return w.WriteBundle(ctx, b)
	}

	if err := r.Projects.UpsertProject(ctx, b.Project); err != nil {
		return err
	}
	for _, t := range b.Tracks {
		if err := r.Projects.InsertTrack(ctx, t); err != nil {
			return err
		}
	}
	for _, m := range b.MediaItems {
		if err := r.Projects.InsertMediaItem(ctx, m); err != nil {
			return err
		}
	}
	for _, k := range b.KeyFrames {
		if err := r.Projects.InsertKeyFrame(ctx, b.Project.ID, k); err != nil {
			return err
		}
	}
	return nil
}
