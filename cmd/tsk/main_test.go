package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tsk/internal/model"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func runTsk(t *testing.T, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), append([]string{"tsk"}, args...), strings.NewReader(""), &stdout, &stderr)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskfile.json")
	tf := "--taskfile=" + path

	res := runTsk(t, tf, "add", "buy milk")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Equal(t, `{
  "curr_id": 2,
  "tasks": {
    "1": {
      "description": "buy milk",
      "finished": false
    }
  }
}
`, readFile(t, path))

	res = runTsk(t, tf, "add", "walk dog")
	require.NoError(t, res.err)
	assert.Equal(t, `{
  "curr_id": 3,
  "tasks": {
    "1": {
      "description": "buy milk",
      "finished": false
    },
    "2": {
      "description": "walk dog",
      "finished": false
    }
  }
}
`, readFile(t, path))

	res = runTsk(t, tf, "done", "1")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, readFile(t, path), `"description": "buy milk",
      "finished": true`)
	assert.Contains(t, readFile(t, path), `"description": "walk dog",
      "finished": false`)

	res = runTsk(t, tf, "list")
	require.NoError(t, res.err)
	assert.Equal(t, "Task 1: buy milk (Complete)\nTask 2: walk dog (Incomplete)\n", res.stdout)

	res = runTsk(t, tf, "list", "--incomplete-only")
	require.NoError(t, res.err)
	assert.Equal(t, "Task 2: walk dog (Incomplete)\n", res.stdout)

	res = runTsk(t, tf, "list", "-i")
	require.NoError(t, res.err)
	assert.Equal(t, "Task 2: walk dog (Incomplete)\n", res.stdout)

	// Marking twice is idempotent.
	before := readFile(t, path)
	res = runTsk(t, tf, "done", "1")
	require.NoError(t, res.err)
	assert.Equal(t, before, readFile(t, path))
}

func TestRunListEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskfile.json")

	res := runTsk(t, "--taskfile", path, "list")
	require.NoError(t, res.err)
	assert.Equal(t, "No tasks to display.\n", res.stdout)
	assert.Empty(t, res.stderr)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "listing should not create the taskfile")
}

func TestRunListAllFinishedIncompleteOnly(t *testing.T) {
	tf := "--taskfile=" + filepath.Join(t.TempDir(), "taskfile.json")

	require.NoError(t, runTsk(t, tf, "add", "a").err)
	require.NoError(t, runTsk(t, tf, "done", "1").err)

	res := runTsk(t, tf, "list", "-i")
	require.NoError(t, res.err)
	assert.Equal(t, "No tasks to display.\n", res.stdout)
}

func TestRunDoneNotFound(t *testing.T) {
	tests := map[string]struct {
		prepare func(t *testing.T, tf string)
		id      string
	}{
		"Missing taskfile.": {
			prepare: func(t *testing.T, tf string) {},
			id:      "1",
		},
		"Existing taskfile without the ID.": {
			prepare: func(t *testing.T, tf string) {
				require.NoError(t, runTsk(t, tf, "add", "a").err)
				require.NoError(t, runTsk(t, tf, "add", "b").err)
			},
			id: "7",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "taskfile.json")
			tf := "--taskfile=" + path
			test.prepare(t, tf)

			var before *string
			if data, err := os.ReadFile(path); err == nil {
				s := string(data)
				before = &s
			}

			res := runTsk(t, tf, "done", test.id)
			require.Error(t, res.err)
			assert.ErrorIs(t, res.err, model.ErrNotFound)
			assert.Contains(t, res.err.Error(), "Task with ID "+test.id+" not found")

			// Nothing is written.
			data, err := os.ReadFile(path)
			if before == nil {
				assert.True(t, os.IsNotExist(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, *before, string(data))
			}
		})
	}
}

func TestRunInvalidTaskfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskfile.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	for _, args := range [][]string{{"list"}, {"add", "a"}, {"done", "1"}} {
		res := runTsk(t, append([]string{"--taskfile", path}, args...)...)
		assert.ErrorIs(t, res.err, model.ErrParse, "command %v", args)
		assert.Empty(t, res.stdout)
	}

	assert.Equal(t, "not json", readFile(t, path))
}

func TestRunInvalidArgs(t *testing.T) {
	tf := "--taskfile=" + filepath.Join(t.TempDir(), "taskfile.json")

	tests := map[string][]string{
		"Missing add description.": {tf, "add"},
		"Missing done ID.":         {tf, "done"},
		"Non integer done ID.":     {tf, "done", "one"},
		"Unknown command.":         {tf, "remove", "1"},
		"Unknown list format.":     {tf, "list", "--format", "xml"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			res := runTsk(t, args...)
			assert.Error(t, res.err)
		})
	}
}

func TestRunListFormats(t *testing.T) {
	tf := "--taskfile=" + filepath.Join(t.TempDir(), "taskfile.json")
	require.NoError(t, runTsk(t, tf, "add", "buy milk").err)

	res := runTsk(t, tf, "list", "--format", "json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `[{"id": 1, "description": "buy milk", "finished": false}]`, res.stdout)

	res = runTsk(t, tf, "list", "--format", "yaml")
	require.NoError(t, res.err)
	assert.YAMLEq(t, "- id: 1\n  description: buy milk\n  finished: false\n", res.stdout)

	res = runTsk(t, tf, "list", "--format", "table")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "buy milk")
}

func TestRunSQLiteStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	flags := []string{"--storage", "sqlite", "--taskfile", path}
	run := func(args ...string) runResult { return runTsk(t, append(flags, args...)...) }

	res := run("list")
	require.NoError(t, res.err)
	assert.Equal(t, "No tasks to display.\n", res.stdout)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, run("add", "buy milk").err)
	require.NoError(t, run("add", "walk dog").err)
	require.NoError(t, run("done", "1").err)

	res = run("list")
	require.NoError(t, res.err)
	assert.Equal(t, "Task 1: buy milk (Complete)\nTask 2: walk dog (Incomplete)\n", res.stdout)

	res = run("done", "3")
	assert.ErrorIs(t, res.err, model.ErrNotFound)
}

func TestRunWithLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskfile.json")

	require.NoError(t, runTsk(t, "--lock", "--taskfile", path, "add", "buy milk").err)

	res := runTsk(t, "--lock", "--taskfile", path, "list")
	require.NoError(t, res.err)
	assert.Equal(t, "Task 1: buy milk (Incomplete)\n", res.stdout)

	_, err := os.Stat(path + ".lock")
	assert.NoError(t, err)
}

func TestRunDebugLogsToStderr(t *testing.T) {
	tf := "--taskfile=" + filepath.Join(t.TempDir(), "taskfile.json")

	res := runTsk(t, "--debug", "--no-color", tf, "add", "buy milk")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "added task 1")
}
