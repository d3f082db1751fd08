package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const segmentColumns = `id, user_id, site_id, name, conditions, created_at, updated_at`

// CreateSegmentParams represents parameters for creating a segment
type CreateSegmentParams struct {
	UserID     uuid.UUID
	SiteID     *uuid.UUID
	Name       string
	Conditions JSONB
}

const sqlCreateSegment = `
INSERT INTO segments (user_id, site_id, name, conditions)
VALUES ($1, $2, $3, $4)
RETURNING ` + segmentColumns

// CreateSegment creates a new segment
func (s *Store) CreateSegment(ctx context.Context, params CreateSegmentParams) (Segment, error) {
	var segment Segment
	err := s.db.GetContext(ctx, &segment, sqlCreateSegment,
		params.UserID,
		params.SiteID,
		params.Name,
		params.Conditions)
	if err != nil {
		return Segment{}, fmt.Errorf("failed to create segment: %w", err)
	}
	return segment, nil
}

const sqlGetSegmentByID = `
SELECT ` + segmentColumns + `
FROM segments
WHERE id = $1
`

// GetSegmentByID retrieves a segment by ID
func (s *Store) GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (Segment, error) {
	var segment Segment
	err := s.db.GetContext(ctx, &segment, sqlGetSegmentByID, segmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Segment{}, ErrNotFound
		}
		return Segment{}, fmt.Errorf("failed to get segment: %w", err)
	}
	return segment, nil
}

const sqlGetSegmentsByUser = `
SELECT ` + segmentColumns + `
FROM segments
WHERE user_id = $1
ORDER BY created_at DESC
`

// GetSegmentsByUser retrieves all segments owned by a user
func (s *Store) GetSegmentsByUser(ctx context.Context, userID uuid.UUID) ([]Segment, error) {
	var segments []Segment
	err := s.db.SelectContext(ctx, &segments, sqlGetSegmentsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	return segments, nil
}

// UpdateSegmentParams represents parameters for updating a segment
type UpdateSegmentParams struct {
	Name       *string
	SiteID     *uuid.UUID
	Conditions JSONB
}

const sqlUpdateSegment = `
UPDATE segments
SET name = COALESCE($2, name),
    site_id = COALESCE($3, site_id),
    conditions = COALESCE($4, conditions),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + segmentColumns

// UpdateSegment updates a segment
func (s *Store) UpdateSegment(ctx context.Context, segmentID uuid.UUID, params UpdateSegmentParams) (Segment, error) {
	var segment Segment
	err := s.db.GetContext(ctx, &segment, sqlUpdateSegment,
		segmentID,
		params.Name,
		params.SiteID,
		params.Conditions)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Segment{}, ErrNotFound
		}
		return Segment{}, fmt.Errorf("failed to update segment: %w", err)
	}
	return segment, nil
}

const sqlDeleteSegment = `
DELETE FROM segments
WHERE id = $1
`

// DeleteSegment permanently removes a segment
func (s *Store) DeleteSegment(ctx context.Context, segmentID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSegment, segmentID)
	if err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
