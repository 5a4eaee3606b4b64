package player

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a player does not exist
	ErrNotFound = errors.New("player not found")
	// ErrConflict is returned when a save races a newer write
	ErrConflict = errors.New("player version conflict")
)

// Repository persists whole player aggregates. Save succeeds only when the
// stored version matches the loaded one, so concurrent writers cannot
// silently overwrite each other.
type Repository interface {
	Get(ctx context.Context, id string) (*Player, error)
	Save(ctx context.Context, p *Player) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
