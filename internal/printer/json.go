package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/tsk/internal/model"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskItem represents a task in the structured list outputs.
type taskItem struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Finished    bool   `json:"finished" yaml:"finished"`
}

func toItems(tasks []model.IndexedTask) []taskItem {
	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{
			ID:          t.ID,
			Description: t.Description,
			Finished:    t.Finished,
		}
	}
	return items
}

// PrintTasks prints tasks as a JSON array, empty lists print `[]`.
func (j *JSONPrinter) PrintTasks(tasks []model.IndexedTask) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(toItems(tasks))
}
