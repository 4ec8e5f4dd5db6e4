package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/storage"
	"github.com/slok/tsk/internal/storage/lock"
	"github.com/slok/tsk/internal/storage/sqlite"
	"github.com/slok/tsk/internal/storage/taskfile"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	// StorageTypeJSON stores the tasks in a JSON taskfile.
	StorageTypeJSON = "json"
	// StorageTypeSQLite stores the tasks in a SQLite database.
	StorageTypeSQLite = "sqlite"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug       bool
	NoLog       bool
	NoColor     bool
	LoggerType  string
	StorageType string
	Path        string
	Lock        bool

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("storage", "Selects the task storage type.").Default(StorageTypeJSON).EnumVar(&c.StorageType, StorageTypeJSON, StorageTypeSQLite)
	app.Flag("taskfile", fmt.Sprintf("Path to the task storage file (default %q, or %q with sqlite storage).", taskfile.DefaultPath, sqlite.DefaultPath)).StringVar(&c.Path)
	app.Flag("lock", "Hold an advisory lock on a sibling .lock file while the command runs.").BoolVar(&c.Lock)

	return c
}

// StoragePath returns the configured storage path or the default for the storage type.
func (c RootCommand) StoragePath() string {
	if c.Path != "" {
		return c.Path
	}
	if c.StorageType == StorageTypeSQLite {
		return sqlite.DefaultPath
	}
	return taskfile.DefaultPath
}

// newRepository returns the configured task repository. When locking is enabled the
// lock is already held and the returned release func must be called once done.
func (c RootCommand) newRepository(ctx context.Context) (repo storage.Repository, release func(), err error) {
	path := c.StoragePath()
	logger := c.Logger

	switch c.StorageType {
	case StorageTypeSQLite:
		repo, err = sqlite.NewRepository(sqlite.RepositoryConfig{DBPath: path, Logger: logger})
	default:
		repo, err = taskfile.NewRepository(taskfile.RepositoryConfig{Path: path, Logger: logger})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not create repository: %w", err)
	}

	release = func() {}
	if c.Lock {
		unlock, err := lock.Acquire(ctx, lock.Config{StoragePath: path, Logger: logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not lock storage: %w", err)
		}
		release = func() {
			if err := unlock(); err != nil {
				logger.Warningf("could not release storage lock: %s", err)
			}
		}
	}

	return repo, release, nil
}
