package model

import (
	"fmt"
	"sort"
)

// Task is a single to-do item.
type Task struct {
	Description string
	Finished    bool
}

// Status returns the human readable completion status of the task.
func (t Task) Status() string {
	if t.Finished {
		return "Complete"
	}
	return "Incomplete"
}

// IndexedTask is a task together with the identifier it is stored under.
type IndexedTask struct {
	ID int
	Task
}

// TaskCollection is the full persisted state: the next identifier counter plus
// all the tasks keyed by identifier.
//
// Identifiers are never reused, every key in Tasks is lower than NextID.
type TaskCollection struct {
	NextID int
	Tasks  map[int]Task
}

// NewTaskCollection returns an empty collection whose first allocated ID will be 1.
func NewTaskCollection() *TaskCollection {
	return &TaskCollection{
		NextID: 1,
		Tasks:  map[int]Task{},
	}
}

// AllocateID returns the next free identifier and advances the counter.
func (c *TaskCollection) AllocateID() int {
	id := c.NextID
	c.NextID++
	return id
}

// IDs returns the identifiers of the collection in ascending order.
func (c TaskCollection) IDs() []int {
	ids := make([]int, 0, len(c.Tasks))
	for id := range c.Tasks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Indexed returns the tasks of the collection in ascending ID order.
func (c TaskCollection) Indexed() []IndexedTask {
	tasks := make([]IndexedTask, 0, len(c.Tasks))
	for _, id := range c.IDs() {
		tasks = append(tasks, IndexedTask{ID: id, Task: c.Tasks[id]})
	}
	return tasks
}

// Validate checks the ID invariants of the collection.
func (c TaskCollection) Validate() error {
	if c.NextID < 1 {
		return fmt.Errorf("next ID must be positive, got: %d: %w", c.NextID, ErrNotValid)
	}

	for id := range c.Tasks {
		if id < 1 {
			return fmt.Errorf("task ID must be positive, got: %d: %w", id, ErrNotValid)
		}
		if id >= c.NextID {
			return fmt.Errorf("task ID %d is not lower than next ID %d: %w", id, c.NextID, ErrNotValid)
		}
	}

	return nil
}
