package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
	"github.com/slok/tsk/internal/storage/sqlite/migrations"
)

// DefaultPath is the database location used when none is configured.
const DefaultPath = "taskfile.db"

const currIDCounter = "curr_id"

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
//
// The database is opened on each operation, and it's only created on the first save.
type Repository struct {
	dbPath string
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{dbPath: cfg.DBPath, logger: cfg.Logger}, nil
}

// Load reads the whole collection, a missing database is an empty collection.
func (r *Repository) Load(ctx context.Context) (*model.TaskCollection, error) {
	if _, err := os.Stat(r.dbPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debugf("Database %s missing, starting empty", r.dbPath)
			return model.NewTaskCollection(), nil
		}
		return nil, &model.IOError{Op: "read", Path: r.dbPath, Err: err}
	}

	db, err := r.open(ctx)
	if err != nil {
		return nil, &model.ParseError{Path: r.dbPath, Err: err}
	}
	defer db.Close()

	c := &model.TaskCollection{Tasks: map[int]model.Task{}}

	err = db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, currIDCounter).Scan(&c.NextID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &model.ParseError{Path: r.dbPath, Err: fmt.Errorf("missing %s counter", currIDCounter)}
		}
		return nil, &model.IOError{Op: "read", Path: r.dbPath, Err: err}
	}

	rows, err := db.QueryContext(ctx, `SELECT id, description, finished FROM tasks ORDER BY id`)
	if err != nil {
		return nil, &model.IOError{Op: "read", Path: r.dbPath, Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int
			t  model.Task
		)
		if err := rows.Scan(&id, &t.Description, &t.Finished); err != nil {
			return nil, &model.ParseError{Path: r.dbPath, Err: fmt.Errorf("could not scan row: %w", err)}
		}
		c.Tasks[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, &model.IOError{Op: "read", Path: r.dbPath, Err: err}
	}

	if err := c.Validate(); err != nil {
		return nil, &model.ParseError{Path: r.dbPath, Err: err}
	}

	r.logger.Debugf("Loaded %d tasks from %s", len(c.Tasks), r.dbPath)
	return c, nil
}

// Save replaces all the stored tasks and the ID counter in a single transaction.
func (r *Repository) Save(ctx context.Context, c model.TaskCollection) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := os.MkdirAll(filepath.Dir(r.dbPath), 0755); err != nil {
		return &model.IOError{Op: "create directory for", Path: r.dbPath, Err: err}
	}

	db, err := r.open(ctx)
	if err != nil {
		return &model.IOError{Op: "open", Path: r.dbPath, Err: err}
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &model.IOError{Op: "write", Path: r.dbPath, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return &model.IOError{Op: "write", Path: r.dbPath, Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (id, description, finished) VALUES (?, ?, ?)`)
	if err != nil {
		return &model.IOError{Op: "write", Path: r.dbPath, Err: err}
	}
	defer stmt.Close()

	for _, t := range c.Indexed() {
		if _, err := stmt.ExecContext(ctx, t.ID, t.Description, t.Finished); err != nil {
			return &model.IOError{Op: "write", Path: r.dbPath, Err: fmt.Errorf("could not insert task %d: %w", t.ID, err)}
		}
	}

	query := `INSERT INTO counters (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, query, currIDCounter, c.NextID); err != nil {
		return &model.IOError{Op: "write", Path: r.dbPath, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &model.IOError{Op: "write", Path: r.dbPath, Err: err}
	}

	r.logger.Debugf("Saved %d tasks to %s", len(c.Tasks), r.dbPath)
	return nil
}

// open opens the database and brings its schema up to date.
func (r *Repository) open(ctx context.Context) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", r.dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(migrations.MigratorConfig{DB: db, Logger: r.logger})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	return db, nil
}
