package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ruminaider/brickshelf/internal/sections"
)

// LoadHomeSections returns the stored home configuration of userID. The
// boolean is false when the user never saved one.
func (d *DB) LoadHomeSections(ctx context.Context, userID string) ([]sections.Config, bool, error) {
	var raw string
	err := d.db.QueryRowContext(ctx, `SELECT home_sections FROM preferences WHERE user_id = ?`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading home sections: %w", err)
	}

	var list sections.List
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false, err
	}
	if list == nil {
		list = sections.List{}
	}
	return list, true, nil
}

// SaveHomeSections replaces the whole stored configuration of userID.
func (d *DB) SaveHomeSections(ctx context.Context, userID string, list []sections.Config) error {
	data, err := json.Marshal(sections.List(list))
	if err != nil {
		return fmt.Errorf("encoding home sections: %w", err)
	}
	_, err = d.exec(ctx, `INSERT INTO preferences (user_id, home_sections, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET home_sections = excluded.home_sections, updated_at = excluded.updated_at`,
		userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving home sections: %w", err)
	}
	return nil
}
