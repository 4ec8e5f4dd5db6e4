package list

import (
	"context"
	"fmt"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
	"github.com/slok/tsk/internal/storage"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists tasks with optional filtering.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// IncompleteOnly skips the finished tasks.
	IncompleteOnly bool
}

// Run lists the tasks in ascending ID order. It never saves.
func (s *Service) Run(ctx context.Context, req Request) ([]model.IndexedTask, error) {
	s.logger.Debugf("listing tasks (incomplete only: %v)", req.IncompleteOnly)

	c, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	tasks := c.Indexed()

	if req.IncompleteOnly {
		filtered := make([]model.IndexedTask, 0, len(tasks))
		for _, t := range tasks {
			if !t.Finished {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	s.logger.Debugf("found %d tasks", len(tasks))
	return tasks, nil
}
