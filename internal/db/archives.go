package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// ErrArchiveNotFound indicates no archive exists for the requested ID.
type ErrArchiveNotFound struct {
	ID uuid.UUID
}

func (e *ErrArchiveNotFound) Error() string {
	return fmt.Sprintf("archive not found: %s", e.ID)
}

// SaveArchive persists a completed session and returns the archive ID.
func (db *DB) SaveArchive(ctx context.Context, archive types.SessionArchive) (uuid.UUID, error) {
	stateJSON, err := json.Marshal(archive.State)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	transcriptJSON, err := json.Marshal(archive.Transcript)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}
	formJSON, err := json.Marshal(archive.FormData)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal form data: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO session_archives (session_id, state, transcript, form_data, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 RETURNING id`,
		archive.SessionID, stateJSON, transcriptJSON, formJSON, archive.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save archive: %w", err)
	}
	return id, nil
}

// GetArchive loads one archived session.
func (db *DB) GetArchive(ctx context.Context, id uuid.UUID) (types.SessionArchive, error) {
	var (
		archive        types.SessionArchive
		stateJSON      []byte
		transcriptJSON []byte
		formJSON       []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, session_id, state, transcript, form_data, created_at, completed_at
		 FROM session_archives WHERE id = $1`,
		id,
	).Scan(&archive.ID, &archive.SessionID, &stateJSON, &transcriptJSON, &formJSON,
		&archive.CreatedAt, &archive.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.SessionArchive{}, &ErrArchiveNotFound{ID: id}
	}
	if err != nil {
		return types.SessionArchive{}, fmt.Errorf("failed to load archive: %w", err)
	}

	if err := json.Unmarshal(stateJSON, &archive.State); err != nil {
		return types.SessionArchive{}, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if err := json.Unmarshal(transcriptJSON, &archive.Transcript); err != nil {
		return types.SessionArchive{}, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}
	if err := json.Unmarshal(formJSON, &archive.FormData); err != nil {
		return types.SessionArchive{}, fmt.Errorf("failed to unmarshal form data: %w", err)
	}
	return archive, nil
}

// ArchiveSummary is one row of the archive listing.
type ArchiveSummary struct {
	ID          uuid.UUID   `json:"id"`
	SessionID   uuid.UUID   `json:"session_id"`
	Stage       types.Stage `json:"stage"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt time.Time   `json:"completed_at"`
}

// ListArchives returns the most recent archives, newest first.
func (db *DB) ListArchives(ctx context.Context, limit int) ([]ArchiveSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, state->>'stage', created_at, completed_at
		 FROM session_archives
		 ORDER BY completed_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}
	defer rows.Close()

	var summaries []ArchiveSummary
	for rows.Next() {
		var s ArchiveSummary
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Stage, &s.CreatedAt, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archive row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive rows: %w", err)
	}
	return summaries, nil
}
