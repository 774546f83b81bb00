package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ruminaider/brickshelf/internal/collection"
	"go.uber.org/zap"
)

const setColumns = `id, number, name, theme, piece_count, year, status, date_received, image_url, created_at`

// AddSet stores a new set for userID. A missing ID is generated and a zero
// CreatedAt is set to now. The stored record is returned.
func (d *DB) AddSet(ctx context.Context, userID string, s collection.Set) (collection.Set, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	date, err := encodeDate(s.DateReceived)
	if err != nil {
		return collection.Set{}, err
	}

	_, err = d.exec(ctx, `INSERT INTO sets (`+setColumns+`, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Number, s.Name, nullString(s.Theme), nullInt(s.PieceCount), nullInt(s.Year),
		string(s.Status), date, s.ImageURL, s.CreatedAt, userID)
	if err != nil {
		return collection.Set{}, fmt.Errorf("adding set %q: %w", s.Name, err)
	}
	d.logger.Debug("set added", zap.String("user", userID), zap.String("id", s.ID))
	return s, nil
}

// UpdateSet overwrites every field of an existing set.
func (d *DB) UpdateSet(ctx context.Context, userID string, s collection.Set) error {
	date, err := encodeDate(s.DateReceived)
	if err != nil {
		return err
	}
	res, err := d.exec(ctx, `UPDATE sets SET number = ?, name = ?, theme = ?, piece_count = ?, year = ?,
		status = ?, date_received = ?, image_url = ? WHERE id = ? AND user_id = ?`,
		s.Number, s.Name, nullString(s.Theme), nullInt(s.PieceCount), nullInt(s.Year),
		string(s.Status), date, s.ImageURL, s.ID, userID)
	if err != nil {
		return fmt.Errorf("updating set %s: %w", s.ID, err)
	}
	return requireRow(res, "set "+s.ID)
}

// UpdateStatus changes only the status of a set.
func (d *DB) UpdateStatus(ctx context.Context, userID, id string, status collection.Status) error {
	res, err := d.exec(ctx, `UPDATE sets SET status = ? WHERE id = ? AND user_id = ?`, string(status), id, userID)
	if err != nil {
		return fmt.Errorf("updating status of %s: %w", id, err)
	}
	return requireRow(res, "set "+id)
}

// DeleteSet removes a set.
func (d *DB) DeleteSet(ctx context.Context, userID, id string) error {
	res, err := d.exec(ctx, `DELETE FROM sets WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting set %s: %w", id, err)
	}
	return requireRow(res, "set "+id)
}

// GetSet returns one set.
func (d *DB) GetSet(ctx context.Context, userID, id string) (collection.Set, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+setColumns+` FROM sets WHERE id = ? AND user_id = ?`, id, userID)
	s, err := scanSet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return collection.Set{}, fmt.Errorf("set %s: %w", id, ErrNotFound)
	}
	return s, err
}

// ListSets returns every set of userID in insertion order.
func (d *DB) ListSets(ctx context.Context, userID string) ([]collection.Set, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+setColumns+` FROM sets WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}
	defer rows.Close()

	var sets []collection.Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}
	return sets, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSet(row scanner) (collection.Set, error) {
	var (
		s      collection.Set
		theme  sql.NullString
		pieces sql.NullInt64
		year   sql.NullInt64
		status string
		date   sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Number, &s.Name, &theme, &pieces, &year, &status, &date, &s.ImageURL, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return collection.Set{}, err
		}
		return collection.Set{}, fmt.Errorf("reading set: %w", err)
	}
	s.Status = collection.Status(status)
	if theme.Valid {
		s.Theme = collection.Ptr(theme.String)
	}
	if pieces.Valid {
		s.PieceCount = collection.Ptr(int(pieces.Int64))
	}
	if year.Valid {
		s.Year = collection.Ptr(int(year.Int64))
	}
	if date.Valid {
		// A bad value leaves the set without a date instead of failing the list.
		_ = json.Unmarshal([]byte(date.String), &s.DateReceived)
	}
	return s, nil
}

// encodeDate stores the date as JSON so legacy timestamps keep their shape.
func encodeDate(d collection.DateValue) (sql.NullString, error) {
	if d.IsZero() {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encoding date: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
