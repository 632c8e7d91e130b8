package core

import (
	"context"
	"errors"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// Get returns ErrProfileNotFound for a user with no profile row.
	Get(ctx context.Context, userID int64) (*Profile, error)
	// Create inserts a profile with the default summary.
	Create(ctx context.Context, userID int64) (*Profile, error)
	UpdateSummary(ctx context.Context, userID int64, summary string) error
}

type ChatLogRepository interface {
	Add(ctx context.Context, entry ChatLogEntry) error
}

type MemoryRepository interface {
	Add(ctx context.Context, entry MemoryEntry) error
	// Search returns at most limit matches above threshold for the given
	// user, in the order the backing search procedure returns them.
	Search(ctx context.Context, userID int64, vector []float32, threshold float64, limit int) ([]MemoryMatch, error)
}
