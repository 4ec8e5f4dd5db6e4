package done

import (
	"context"
	"fmt"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
	"github.com/slok/tsk/internal/storage"
)

// ServiceConfig is the configuration for the done service.
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

// Service marks tasks as finished.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new done service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the done request parameters.
type Request struct {
	// ID is the identifier of the task to finish.
	ID int
}

// Run marks the task as finished. Finishing an already finished task is not an error.
// If the task doesn't exist nothing is saved.
func (s *Service) Run(ctx context.Context, req Request) (*model.IndexedTask, error) {
	c, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	task, ok := c.Tasks[req.ID]
	if !ok {
		return nil, &model.NotFoundError{ID: req.ID}
	}

	if task.Finished {
		s.logger.Debugf("task %d already finished", req.ID)
	}
	task.Finished = true
	c.Tasks[req.ID] = task

	if err := s.repo.Save(ctx, *c); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Infof("finished task %d", req.ID)
	return &model.IndexedTask{ID: req.ID, Task: task}, nil
}
