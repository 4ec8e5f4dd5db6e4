package storage

import (
	"context"

	"github.com/slok/tsk/internal/model"
)

// Repository is the interface for task collection persistence.
//
// Load returns a fresh collection when nothing has been stored yet, it never
// writes. Save replaces the whole stored collection.
type Repository interface {
	Load(ctx context.Context) (*model.TaskCollection, error)
	Save(ctx context.Context, c model.TaskCollection) error
}
