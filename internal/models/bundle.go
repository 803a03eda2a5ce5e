package models

import "fmt"

// Bundle is the assembler's output: one project plus the tracks, media items
// and keyframes that belong to it, shaped for transfer to the draft store and
// one-time reconciliation into the durable store. Source keeps the raw wizard
// state that produced it.
type Bundle struct {
	Project    Project     `json:"project"`
	Tracks     []Track     `json:"tracks"`
	MediaItems []MediaItem `json:"mediaItems"`
	KeyFrames  []KeyFrame  `json:"keyframes"`
	Source     WizardState `json:"aiContent"`
}

// Validate checks the bundle's referential integrity: every keyframe must
// point at a track and a media item inside the same bundle, every track must
// belong to the bundle's project, and no two entities may share an id.
func (b *Bundle) Validate() error {
	seen := map[string]bool{b.Project.ID: true}
	tracks := map[string]bool{}
	media := map[string]bool{}

	for _, t := range b.Tracks {
		if seen[t.ID] {
			return fmt.Errorf("duplicate id %q", t.ID)
		}
		seen[t.ID] = true
		tracks[t.ID] = true
		if t.ProjectID != b.Project.ID {
			return fmt.Errorf("track %q belongs to project %q, not %q", t.ID, t.ProjectID, b.Project.ID)
		}
	}
	for _, m := range b.MediaItems {
		if seen[m.ID] {
			return fmt.Errorf("duplicate id %q", m.ID)
		}
		seen[m.ID] = true
		media[m.ID] = true
		if m.ProjectID != b.Project.ID {
			return fmt.Errorf("media item %q belongs to project %q, not %q", m.ID, m.ProjectID, b.Project.ID)
		}
	}
	for _, k := range b.KeyFrames {
		if seen[k.ID] {
			return fmt.Errorf("duplicate id %q", k.ID)
		}
		seen[k.ID] = true
		if !tracks[k.TrackID] {
			return fmt.Errorf("keyframe %q references missing track %q", k.ID, k.TrackID)
		}
		if !media[k.Data.MediaID] {
			return fmt.Errorf("keyframe %q references missing media item %q", k.ID, k.Data.MediaID)
		}
		if k.Timestamp < 0 {
			return fmt.Errorf("keyframe %q has negative timestamp", k.ID)
		}
		if k.Duration <= 0 {
			return fmt.Errorf("keyframe %q has non-positive duration", k.ID)
		}
	}
	return nil
}
