package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hoanghai1803/localpages/internal/models"
)

// UpsertContentParams carries the fields written by an insert-or-overwrite
// of one cached content entry.
type UpsertContentParams struct {
	Key        string
	Content    string
	HowCreated string
	WhyCreated string
	// ResetReview clears human_reviewed and the reviewer metadata. Set when
	// the content body has materially changed (regeneration), so a stale
	// sign-off cannot survive a rewrite.
	ResetReview bool
}

// UpsertContent inserts a content entry or overwrites it if a row with the
// same key already exists. updated_at is always refreshed; created_at is
// preserved on the update path.
func (s *Store) UpsertContent(ctx context.Context, p UpsertContentParams) error {
	var err error
	if p.ResetReview {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO ai_content (key, content, how_created, why_created)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET
				content        = excluded.content,
				how_created    = excluded.how_created,
				why_created    = excluded.why_created,
				updated_at     = datetime('now'),
				human_reviewed = 0,
				reviewed_by    = NULL,
				reviewed_at    = NULL`,
			p.Key, p.Content, nullableString(p.HowCreated), nullableString(p.WhyCreated),
		)
	} else {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO ai_content (key, content, how_created, why_created)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET
				content     = excluded.content,
				how_created = excluded.how_created,
				why_created = excluded.why_created,
				updated_at  = datetime('now')`,
			p.Key, p.Content, nullableString(p.HowCreated), nullableString(p.WhyCreated),
		)
	}
	if err != nil {
		return fmt.Errorf("upserting content %q: %w", p.Key, err)
	}
	return nil
}

// GetContent returns the content entry with the given key.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetContent(ctx context.Context, key string) (*models.ContentEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT key, content, created_at, updated_at, how_created, why_created,
				human_reviewed, reviewed_by, reviewed_at
		 FROM ai_content WHERE key = ?`, key)

	entry, err := scanContentEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting content by key: %w", err)
	}
	return entry, nil
}

// ListContent returns every cached content entry, ordered by key.
func (s *Store) ListContent(ctx context.Context) ([]models.ContentEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, content, created_at, updated_at, how_created, why_created,
				human_reviewed, reviewed_by, reviewed_at
		 FROM ai_content ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}
	defer rows.Close()

	var entries []models.ContentEntry
	for rows.Next() {
		entry, err := scanContentEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning content entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content entries: %w", err)
	}
	return entries, nil
}

// DeleteContent removes the content entry with the given key. Deleting is
// how an operator forces regeneration on the next page visit.
// Returns ErrNotFound if no matching row exists.
func (s *Store) DeleteContent(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ai_content WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting content %q: %w", key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkContentReviewed records a human sign-off on the entry.
// Returns ErrNotFound if no matching row exists.
func (s *Store) MarkContentReviewed(ctx context.Context, key, reviewedBy string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE ai_content
		 SET human_reviewed = 1, reviewed_by = ?, reviewed_at = datetime('now')
		 WHERE key = ?`, reviewedBy, key)
	if err != nil {
		return fmt.Errorf("marking content reviewed %q: %w", key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is a minimal interface satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanContentEntry scans a single ai_content row into a models.ContentEntry.
func scanContentEntry(row scanner) (*models.ContentEntry, error) {
	var (
		entry      models.ContentEntry
		createdAt  string
		updatedAt  string
		howCreated sql.NullString
		whyCreated sql.NullString
		reviewedBy sql.NullString
		reviewedAt sql.NullString
	)

	if err := row.Scan(
		&entry.Key, &entry.Content, &createdAt, &updatedAt,
		&howCreated, &whyCreated, &entry.HumanReviewed, &reviewedBy, &reviewedAt,
	); err != nil {
		return nil, err
	}

	entry.CreatedAt = parseTime(createdAt)
	entry.UpdatedAt = parseTime(updatedAt)
	entry.HowCreated = howCreated.String
	entry.WhyCreated = whyCreated.String
	entry.ReviewedBy = reviewedBy.String
	entry.ReviewedAt = parseTimePtr(nullStringToPtr(reviewedAt))

	return &entry, nil
}
