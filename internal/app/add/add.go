package add

import (
	"context"
	"fmt"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
	"github.com/slok/tsk/internal/storage"
)

// ServiceConfig is the configuration for the add service.
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

// Service adds new tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the add request parameters.
type Request struct {
	// Description is the task text, empty descriptions are accepted.
	Description string
}

// Run adds a new unfinished task and returns it with its allocated ID.
func (s *Service) Run(ctx context.Context, req Request) (*model.IndexedTask, error) {
	c, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	task := model.Task{Description: req.Description, Finished: false}
	id := c.AllocateID()
	c.Tasks[id] = task

	if err := s.repo.Save(ctx, *c); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Infof("added task %d", id)
	return &model.IndexedTask{ID: id, Task: task}, nil
}
