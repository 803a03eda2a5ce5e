package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shorts-backend/internal/models"
)

const queryTimeout = 5 * time.Second

// PostgresStore implements ProjectStore (and BundleWriter) on top of
// database/sql with the lib/pq driver. JSON-shaped columns (media input,
// output, metadata, keyframe data) are stored as JSONB.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) Exists(ctx context.Context, projectID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("project exists check: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) UpsertProject(ctx context.Context, p models.Project) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return upsertProject(ctx, s.DB, p)
}

func (s *PostgresStore) InsertTrack(ctx context.Context, t models.Track) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return insertTrack(ctx, s.DB, t)
}

func (s *PostgresStore) InsertMediaItem(ctx context.Context, m models.MediaItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return insertMediaItem(ctx, s.DB, m)
}

func (s *PostgresStore) InsertKeyFrame(ctx context.Context, projectID string, k models.KeyFrame) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return insertKeyFrame(ctx, s.DB, projectID, k)
}

// WriteBundle persists the four collections in one transaction, in
// dependency order. Either the whole bundle lands or none of it does, which
// keeps "project row exists" equivalent to "bundle is complete".
func (s *PostgresStore) WriteBundle(ctx context.Context, b *models.Bundle) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bundle write: %w", err)
	}
	defer tx.Rollback()

	if err := upsertProject(ctx, tx, b.Project); err != nil {
		return err
	}
	for _, t := range b.Tracks {
		if err := insertTrack(ctx, tx, t); err != nil {
			return err
		}
	}
	for _, m := range b.MediaItems {
		if err := insertMediaItem(ctx, tx, m); err != nil {
			return err
		}
	}
	for _, k := range b.KeyFrames {
		if err := insertKeyFrame(ctx, tx, b.Project.ID, k); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bundle write: %w", err)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertProject(ctx context.Context, db execer, p models.Project) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, aspect_ratio)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    aspect_ratio = EXCLUDED.aspect_ratio
	`, p.ID, p.Title, p.Description, string(p.AspectRatio))
	if err != nil {
		return fmt.Errorf("upsert project %s: %w", p.ID, err)
	}
	return nil
}

func insertTrack(ctx context.Context, db execer, t models.Track) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tracks (id, project_id, label, locked, type)
		VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.ProjectID, t.Label, t.Locked, string(t.Type))
	if err != nil {
		return fmt.Errorf("insert track %s: %w", t.ID, err)
	}
	return nil
}

func insertMediaItem(ctx context.Context, db execer, m models.MediaItem) error {
	input, err := jsonOrNull(m.Input)
	if err != nil {
		return fmt.Errorf("encode media input: %w", err)
	}
	output, err := jsonOrNull(m.Output)
	if err != nil {
		return fmt.Errorf("encode media output: %w", err)
	}
	metadata, err := jsonOrNull(m.Metadata)
	if err != nil {
		return fmt.Errorf("encode media metadata: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO media_items
			(id, kind, project_id, media_type, status, created_at,
			 endpoint_id, request_id, input, output, url, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, m.ID, string(m.Kind), m.ProjectID, string(m.MediaType), string(m.Status),
		m.CreatedAt, nullString(m.EndpointID), nullString(m.RequestID),
		input, output, nullString(m.URL), metadata)
	if err != nil {
		return fmt.Errorf("insert media item %s: %w", m.ID, err)
	}
	return nil
}

func insertKeyFrame(ctx context.Context, db execer, projectID string, k models.KeyFrame) error {
	data, err := json.Marshal(k.Data)
	if err != nil {
		return fmt.Errorf("encode keyframe data: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO keyframes (id, project_id, ts, duration, track_id, data)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, k.ID, projectID, k.Timestamp, k.Duration, k.TrackID, data)
	if err != nil {
		return fmt.Errorf("insert keyframe %s: %w", k.ID, err)
	}
	return nil
}

// GetBundle reads a reconciled project back out for the editor.
func (s *PostgresStore) GetBundle(ctx context.Context, projectID string) (*models.Bundle, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	b := &models.Bundle{}
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, title, description, aspect_ratio FROM projects WHERE id = $1
	`, projectID).Scan(&b.Project.ID, &b.Project.Title, &b.Project.Description, &b.Project.AspectRatio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", projectID, err)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, project_id, label, locked, type FROM tracks
		WHERE project_id = $1 ORDER BY seq
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Label, &t.Locked, &t.Type); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		b.Tracks = append(b.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}

	mrows, err := s.DB.QueryContext(ctx, `
		SELECT id, kind, project_id, media_type, status, created_at,
		       endpoint_id, request_id, input, output, url, metadata
		FROM media_items WHERE project_id = $1 ORDER BY seq
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("load media items: %w", err)
	}
	defer mrows.Close()
	for mrows.Next() {
		m, err := scanMediaItem(mrows)
		if err != nil {
			return nil, err
		}
		b.MediaItems = append(b.MediaItems, m)
	}
	if err := mrows.Err(); err != nil {
		return nil, fmt.Errorf("load media items: %w", err)
	}

	krows, err := s.DB.QueryContext(ctx, `
		SELECT id, ts, duration, track_id, data
		FROM keyframes
		WHERE project_id = $1
		ORDER BY seq
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("load keyframes: %w", err)
	}
	defer krows.Close()
	for krows.Next() {
		var k models.KeyFrame
		var data []byte
		if err := krows.Scan(&k.ID, &k.Timestamp, &k.Duration, &k.TrackID, &data); err != nil {
			return nil, fmt.Errorf("scan keyframe: %w", err)
		}
		if err := json.Unmarshal(data, &k.Data); err != nil {
			return nil, fmt.Errorf("decode keyframe data: %w", err)
		}
		b.KeyFrames = append(b.KeyFrames, k)
	}
	if err := krows.Err(); err != nil {
		return nil, fmt.Errorf("load keyframes: %w", err)
	}

	return b, nil
}

func scanMediaItem(rows *sql.Rows) (models.MediaItem, error) {
	var m models.MediaItem
	var endpointID, requestID, url sql.NullString
	var input, output, metadata []byte

	err := rows.Scan(&m.ID, &m.Kind, &m.ProjectID, &m.MediaType, &m.Status,
		&m.CreatedAt, &endpointID, &requestID, &input, &output, &url, &metadata)
	if err != nil {
		return m, fmt.Errorf("scan media item: %w", err)
	}
	m.EndpointID = endpointID.String
	m.RequestID = requestID.String
	m.URL = url.String

	if len(input) > 0 {
		if err := json.Unmarshal(input, &m.Input); err != nil {
			return m, fmt.Errorf("decode media input: %w", err)
		}
	}
	if len(output) > 0 {
		if err := json.Unmarshal(output, &m.Output); err != nil {
			return m, fmt.Errorf("decode media output: %w", err)
		}
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &m.Metadata); err != nil {
			return m, fmt.Errorf("decode media metadata: %w", err)
		}
	}
	return m, nil
}

func jsonOrNull(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return nil, nil
		}
	case *models.Metadata:
		if t == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
