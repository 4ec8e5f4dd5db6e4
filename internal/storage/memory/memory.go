package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
type Repository struct {
	collection *model.TaskCollection
	saves      int
	mu         sync.RWMutex
	logger     log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{logger: cfg.Logger}, nil
}

// Load returns a copy of the stored collection, or a new one if nothing was saved.
func (r *Repository) Load(ctx context.Context) (*model.TaskCollection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.collection == nil {
		return model.NewTaskCollection(), nil
	}

	return clone(*r.collection), nil
}

// Save stores a copy of the collection.
func (r *Repository) Save(ctx context.Context, c model.TaskCollection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.collection = clone(c)
	r.saves++
	r.logger.Debugf("Saved %d tasks in repository", len(c.Tasks))

	return nil
}

// Saves returns how many times the collection has been saved.
func (r *Repository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.saves
}

func clone(c model.TaskCollection) *model.TaskCollection {
	tasks := make(map[int]model.Task, len(c.Tasks))
	maps.Copy(tasks, c.Tasks)
	return &model.TaskCollection{NextID: c.NextID, Tasks: tasks}
}
