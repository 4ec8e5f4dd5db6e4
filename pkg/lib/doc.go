// Package lib provides a Go SDK for managing tsk tasks programmatically.
//
// It works on the same storage the tsk CLI uses, so tasks added with the SDK
// are listed by the CLI and the other way around.
//
// # Quick Start
//
//	client, err := lib.New(lib.Config{Path: "taskfile.json"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := client.AddTask(ctx, "buy milk")
//	client.MarkDone(ctx, task.ID)
//	tasks, err := client.ListTasks(ctx, lib.ListTasksOpts{IncompleteOnly: true})
//
// # Storage
//
//   - [StorageJSON]: the pretty-printed JSON taskfile (default).
//   - [StorageSQLite]: a SQLite database.
//   - [StorageMemory]: in-memory storage for tests, nothing is persisted.
//
// # Errors
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: the task does not exist.
//   - [ErrParse]: the storage exists but its content is not valid.
//   - [ErrIO]: the storage could not be read or written.
package lib
