package lib

import (
	"context"
	"fmt"

	"github.com/slok/tsk/internal/app/add"
	"github.com/slok/tsk/internal/app/done"
	"github.com/slok/tsk/internal/app/list"
	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/storage"
	"github.com/slok/tsk/internal/storage/memory"
	"github.com/slok/tsk/internal/storage/sqlite"
	"github.com/slok/tsk/internal/storage/taskfile"
)

// Config configures the SDK client.
//
// An empty Config{} uses `taskfile.json` in the working directory.
type Config struct {
	// Storage selects the storage backend.
	// Default: [StorageJSON].
	Storage StorageType

	// Path is the taskfile or database path.
	// Default: `taskfile.json` for JSON, `taskfile.db` for SQLite.
	Path string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Storage == "" {
		c.Storage = StorageJSON
	}

	if c.Path == "" {
		switch c.Storage {
		case StorageSQLite:
			c.Path = sqlite.DefaultPath
		default:
			c.Path = taskfile.DefaultPath
		}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for managing tasks programmatically.
//
// Every call loads the stored tasks, so changes made by other processes are
// seen, but concurrent writers are not coordinated.
type Client struct {
	add  *add.Service
	list *list.Service
	done *done.Service
}

// New creates a new SDK client. Nothing is read or written until a method is called.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return nil, mapError(fmt.Errorf("could not create repository: %w", err))
	}

	addSvc, err := add.NewService(add.ServiceConfig{Repository: repo, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create add service: %w", err)
	}
	listSvc, err := list.NewService(list.ServiceConfig{Repository: repo, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create list service: %w", err)
	}
	doneSvc, err := done.NewService(done.ServiceConfig{Repository: repo, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create done service: %w", err)
	}

	return &Client{add: addSvc, list: listSvc, done: doneSvc}, nil
}

func newRepository(cfg Config) (storage.Repository, error) {
	switch cfg.Storage {
	case StorageJSON:
		return taskfile.NewRepository(taskfile.RepositoryConfig{Path: cfg.Path, Logger: cfg.Logger})
	case StorageSQLite:
		return sqlite.NewRepository(sqlite.RepositoryConfig{DBPath: cfg.Path, Logger: cfg.Logger})
	case StorageMemory:
		return memory.NewRepository(memory.RepositoryConfig{Logger: cfg.Logger})
	}

	return nil, fmt.Errorf("unsupported storage type: %s: %w", cfg.Storage, ErrNotValid)
}

// AddTask adds a new unfinished task and returns it with its assigned ID.
// Empty descriptions are accepted.
func (c *Client) AddTask(ctx context.Context, description string) (*Task, error) {
	t, err := c.add.Run(ctx, add.Request{Description: description})
	if err != nil {
		return nil, mapError(err)
	}

	task := fromInternalTask(*t)
	return &task, nil
}

// ListTasks returns the tasks in ascending ID order.
func (c *Client) ListTasks(ctx context.Context, opts ListTasksOpts) ([]Task, error) {
	ts, err := c.list.Run(ctx, list.Request{IncompleteOnly: opts.IncompleteOnly})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(ts), nil
}

// MarkDone marks the task as finished. Marking a finished task again is not an error.
func (c *Client) MarkDone(ctx context.Context, id int) (*Task, error) {
	t, err := c.done.Run(ctx, done.Request{ID: id})
	if err != nil {
		return nil, mapError(err)
	}

	task := fromInternalTask(*t)
	return &task, nil
}
