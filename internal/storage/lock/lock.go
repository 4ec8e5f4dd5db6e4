// Package lock serializes tsk processes that share the same task storage.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
)

const defaultRetryDelay = 50 * time.Millisecond

// Config is the configuration for the storage lock.
type Config struct {
	// StoragePath is the path of the storage to protect, the lock uses a sibling `.lock` file.
	StoragePath string
	RetryDelay  time.Duration
	Logger      log.Logger
}

func (c *Config) defaults() error {
	if c.StoragePath == "" {
		return fmt.Errorf("storage path is required")
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Lock"})
	return nil
}

// Acquire blocks until the advisory lock is held or the context ends.
// The returned func releases the lock.
func Acquire(ctx context.Context, cfg Config) (release func() error, err error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	path := cfg.StoragePath + ".lock"
	fl := flock.New(path)

	ok, err := fl.TryLockContext(ctx, cfg.RetryDelay)
	if err != nil {
		return nil, &model.IOError{Op: "lock", Path: path, Err: err}
	}
	if !ok {
		return nil, &model.IOError{Op: "lock", Path: path, Err: fmt.Errorf("lock not acquired")}
	}
	cfg.Logger.Debugf("Acquired lock %s", path)

	return func() error {
		if err := fl.Unlock(); err != nil {
			return &model.IOError{Op: "unlock", Path: path, Err: err}
		}
		cfg.Logger.Debugf("Released lock %s", path)
		return nil
	}, nil
}
