package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"algebramon/internal/profile"
)

// ProfileRepo implements profile.Store on SQLite.
type ProfileRepo struct {
	db *sql.DB
}

var _ profile.Store = (*ProfileRepo)(nil)

// Load fetches a profile by user ID.
func (r *ProfileRepo) Load(ctx context.Context, userID string) (*profile.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, display_name, starter_name, starter_type,
		       level, xp, badges, created_at, updated_at
		FROM profiles WHERE user_id = ?`, userID)

	var p profile.Profile
	var badges string
	err := row.Scan(&p.UserID, &p.DisplayName, &p.Starter.Name, &p.Starter.Type,
		&p.Level, &p.XP, &badges, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := json.Unmarshal([]byte(badges), &p.Badges); err != nil {
		return nil, fmt.Errorf("decode badges: %w", err)
	}
	return &p, nil
}

// Create inserts a new profile.
func (r *ProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	if p.Level < 1 {
		p.Level = 1
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	badges, err := encodeBadges(p.Badges)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, display_name, starter_name, starter_type,
			level, xp, badges, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.DisplayName, p.Starter.Name, p.Starter.Type,
		p.Level, p.XP, badges, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// Update writes the mutable profile fields.
func (r *ProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	p.UpdatedAt = time.Now().UTC()

	badges, err := encodeBadges(p.Badges)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET display_name = ?, starter_name = ?, starter_type = ?,
		    level = ?, xp = ?, badges = ?, updated_at = ?
		WHERE user_id = ?`,
		p.DisplayName, p.Starter.Name, p.Starter.Type,
		p.Level, p.XP, badges, p.UpdatedAt, p.UserID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func encodeBadges(badges []string) (string, error) {
	if badges == nil {
		badges = []string{}
	}
	b, err := json.Marshal(badges)
	if err != nil {
		return "", fmt.Errorf("encode badges: %w", err)
	}
	return string(b), nil
}
