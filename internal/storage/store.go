// Package storage persists task lists between sessions.
package storage

import (
	"context"

	"monet/internal/domain"
)

// Store loads and saves the whole task list. Implementations decode records
// with the codec package, so a corrupted record is skipped with a warning and
// a time that cannot be decoded aborts Load.
type Store interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Close() error
}
