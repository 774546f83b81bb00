package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Share is the public-view state of a collection.
type Share struct {
	UserID  string
	Token   string
	Enabled bool
}

// EnableShare turns on the public view for userID. An existing token is
// reused so previously shared links keep working.
func (d *DB) EnableShare(ctx context.Context, userID string) (Share, error) {
	existing, err := d.ShareStatus(ctx, userID)
	switch {
	case err == nil:
		if _, err := d.exec(ctx, `UPDATE shares SET enabled = 1 WHERE user_id = ?`, userID); err != nil {
			return Share{}, fmt.Errorf("enabling share: %w", err)
		}
		existing.Enabled = true
		return existing, nil
	case !errors.Is(err, ErrNotFound):
		return Share{}, err
	}

	token := uuid.NewString()
	if _, err := d.exec(ctx, `INSERT INTO shares (user_id, token, enabled, created_at) VALUES (?, ?, 1, ?)`,
		userID, token, time.Now().UTC()); err != nil {
		return Share{}, fmt.Errorf("creating share: %w", err)
	}
	d.logger.Info("share enabled", zap.String("user", userID))
	return Share{UserID: userID, Token: token, Enabled: true}, nil
}

// DisableShare turns off the public view. The token is kept.
func (d *DB) DisableShare(ctx context.Context, userID string) error {
	res, err := d.exec(ctx, `UPDATE shares SET enabled = 0 WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("disabling share: %w", err)
	}
	return requireRow(res, "share")
}

// ShareStatus returns the share record of userID.
func (d *DB) ShareStatus(ctx context.Context, userID string) (Share, error) {
	s := Share{UserID: userID}
	err := d.db.QueryRowContext(ctx, `SELECT token, enabled FROM shares WHERE user_id = ?`, userID).Scan(&s.Token, &s.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return Share{}, fmt.Errorf("share: %w", ErrNotFound)
	}
	if err != nil {
		return Share{}, fmt.Errorf("reading share: %w", err)
	}
	return s, nil
}

// LookupShare resolves a token to its owner. Disabled shares are reported
// as not found.
func (d *DB) LookupShare(ctx context.Context, token string) (string, error) {
	var userID string
	err := d.db.QueryRowContext(ctx, `SELECT user_id FROM shares WHERE token = ? AND enabled = 1`, token).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("share token: %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("looking up share: %w", err)
	}
	return userID, nil
}
