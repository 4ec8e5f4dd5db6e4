// Package taskfile stores the task collection in a pretty-printed JSON file.
package taskfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"github.com/slok/tsk/internal/log"
	"github.com/slok/tsk/internal/model"
)

// DefaultPath is the taskfile location used when none is configured.
const DefaultPath = "taskfile.json"

// RepositoryConfig is the configuration for the taskfile repository.
type RepositoryConfig struct {
	Path   string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Taskfile"})
	return nil
}

// Repository is a JSON file implementation of storage.Repository.
type Repository struct {
	path   string
	logger log.Logger
}

// NewRepository creates a new taskfile repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{path: cfg.Path, logger: cfg.Logger}, nil
}

// Load reads the taskfile, a missing file is an empty collection.
func (r *Repository) Load(ctx context.Context) (*model.TaskCollection, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debugf("Taskfile %s missing, starting empty", r.path)
			return model.NewTaskCollection(), nil
		}
		return nil, &model.IOError{Op: "read", Path: r.path, Err: err}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c, err := decode(data)
	if err != nil {
		return nil, &model.ParseError{Path: r.path, Err: err}
	}

	r.logger.Debugf("Loaded %d tasks from %s", len(c.Tasks), r.path)
	return c, nil
}

// Save overwrites the taskfile with the whole collection.
func (r *Repository) Save(ctx context.Context, c model.TaskCollection) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	data, err := encode(c)
	if err != nil {
		return fmt.Errorf("could not encode tasks: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return &model.IOError{Op: "write", Path: r.path, Err: err}
	}

	r.logger.Debugf("Saved %d tasks to %s", len(c.Tasks), r.path)
	return nil
}

// file is the on-disk representation of the collection.
type file struct {
	CurrID *int      `json:"curr_id"`
	Tasks  fileTasks `json:"tasks"`
}

type fileTask struct {
	Description string `json:"description"`
	Finished    bool   `json:"finished"`
}

// fileTasks is encoded as a JSON object keyed by the stringified task ID, in
// ascending numeric order.
type fileTasks map[int]fileTask

func (t fileTasks) MarshalJSON() ([]byte, error) {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.Itoa(id))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (t *fileTasks) UnmarshalJSON(data []byte) error {
	var raw map[string]fileTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	tasks := make(fileTasks, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("invalid task ID %q", k)
		}
		tasks[id] = v
	}
	*t = tasks

	return nil
}

func decode(data []byte) (*model.TaskCollection, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.CurrID == nil {
		return nil, fmt.Errorf("missing curr_id")
	}

	c := &model.TaskCollection{
		NextID: *f.CurrID,
		Tasks:  make(map[int]model.Task, len(f.Tasks)),
	}
	for id, t := range f.Tasks {
		c.Tasks[id] = model.Task{Description: t.Description, Finished: t.Finished}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func encode(c model.TaskCollection) ([]byte, error) {
	currID := c.NextID
	f := file{
		CurrID: &currID,
		Tasks:  make(fileTasks, len(c.Tasks)),
	}
	for id, t := range c.Tasks {
		f.Tasks[id] = fileTask{Description: t.Description, Finished: t.Finished}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
