package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"algebramon/internal/stamina"
)

const staminaKey = "stamina"

// KVRepo is a small key-value table for client state that doesn't
// deserve its own schema.
type KVRepo struct {
	db *sql.DB
}

// Get returns the value for key, ok=false when absent.
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

// Set upserts a value.
func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// SaveStamina persists the gauge under a fixed key.
func (r *KVRepo) SaveStamina(value int) error {
	return r.Set(context.Background(), staminaKey, strconv.Itoa(value))
}

var _ stamina.Saver = (*KVRepo)(nil)

// LoadStamina restores the gauge value, defaulting to full when no
// value was ever saved or the stored one doesn't parse.
func (r *KVRepo) LoadStamina(ctx context.Context) (int, error) {
	v, ok, err := r.Get(ctx, staminaKey)
	if err != nil {
		return stamina.Max, err
	}
	if !ok {
		return stamina.Max, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return stamina.Max, nil
	}
	return n, nil
}
