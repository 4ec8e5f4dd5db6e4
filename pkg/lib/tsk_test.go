package lib_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tsk/pkg/lib"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		cfg   lib.Config
		expIs error
	}{
		"Default config should work.":        {cfg: lib.Config{}},
		"Memory storage should work.":        {cfg: lib.Config{Storage: lib.StorageMemory}},
		"SQLite storage should work.":        {cfg: lib.Config{Storage: lib.StorageSQLite}},
		"Unknown storage should fail.":       {cfg: lib.Config{Storage: "xml"}, expIs: lib.ErrNotValid},
		"Explicit JSON storage should work.": {cfg: lib.Config{Storage: lib.StorageJSON, Path: "/tmp/x.json"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client, err := lib.New(test.cfg)
			if test.expIs != nil {
				assert.ErrorIs(t, err, test.expIs)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestClient(t *testing.T) {
	newConfigs := map[string]func(t *testing.T) lib.Config{
		"json": func(t *testing.T) lib.Config {
			return lib.Config{Storage: lib.StorageJSON, Path: filepath.Join(t.TempDir(), "taskfile.json")}
		},
		"sqlite": func(t *testing.T) lib.Config {
			return lib.Config{Storage: lib.StorageSQLite, Path: filepath.Join(t.TempDir(), "tasks.db")}
		},
		"memory": func(t *testing.T) lib.Config {
			return lib.Config{Storage: lib.StorageMemory}
		},
	}

	for name, newConfig := range newConfigs {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)
			ctx := context.Background()

			client, err := lib.New(newConfig(t))
			require.NoError(err)

			tasks, err := client.ListTasks(ctx, lib.ListTasksOpts{})
			require.NoError(err)
			assert.Empty(tasks)

			t1, err := client.AddTask(ctx, "buy milk")
			require.NoError(err)
			assert.Equal(&lib.Task{ID: 1, Description: "buy milk"}, t1)

			t2, err := client.AddTask(ctx, "")
			require.NoError(err)
			assert.Equal(&lib.Task{ID: 2, Description: ""}, t2)

			done, err := client.MarkDone(ctx, 1)
			require.NoError(err)
			assert.True(done.Finished)

			_, err = client.MarkDone(ctx, 1)
			require.NoError(err)

			_, err = client.MarkDone(ctx, 3)
			assert.ErrorIs(err, lib.ErrNotFound)

			tasks, err = client.ListTasks(ctx, lib.ListTasksOpts{})
			require.NoError(err)
			assert.Equal([]lib.Task{
				{ID: 1, Description: "buy milk", Finished: true},
				{ID: 2, Description: ""},
			}, tasks)

			tasks, err = client.ListTasks(ctx, lib.ListTasksOpts{IncompleteOnly: true})
			require.NoError(err)
			assert.Equal([]lib.Task{{ID: 2, Description: ""}}, tasks)
		})
	}
}

func TestClientParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskfile.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	client, err := lib.New(lib.Config{Path: path})
	require.NoError(t, err)

	_, err = client.ListTasks(context.Background(), lib.ListTasksOpts{})
	assert.ErrorIs(t, err, lib.ErrParse)
}

func TestClientIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "taskfile.json")

	client, err := lib.New(lib.Config{Path: path})
	require.NoError(t, err)

	_, err = client.AddTask(context.Background(), "a")
	assert.ErrorIs(t, err, lib.ErrIO)
}
