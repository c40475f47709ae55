// Package profile defines the player profile and its store contract.
package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// Starter is the companion picked on first run. Its type maps to a
// question category and grants a study XP bonus there.
type Starter struct {
	Name string
	Type string
}

// Profile is the durable player state.
type Profile struct {
	UserID      string
	DisplayName string
	Starter     Starter
	Level       int
	XP          int
	Badges      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store persists profiles.
type Store interface {
	// Load fetches a profile, ErrNotFound when absent.
	Load(ctx context.Context, userID string) (*Profile, error)

	// Create inserts a new profile. Level floors at 1.
	Create(ctx context.Context, p *Profile) error

	// Update writes level, XP, badges, starter, and display name.
	Update(ctx context.Context, p *Profile) error
}
