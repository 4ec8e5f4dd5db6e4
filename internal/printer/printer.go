package printer

import (
	"fmt"
	"io"

	"github.com/slok/tsk/internal/model"
)

// NoTasksMessage is printed by the human oriented printers when there is nothing to show.
const NoTasksMessage = "No tasks to display."

// Format is an output format for the printers.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats are all the supported output formats.
var Formats = []string{string(FormatText), string(FormatTable), string(FormatJSON), string(FormatYAML)}

// Printer knows how to print task information in different formats.
type Printer interface {
	PrintTasks(tasks []model.IndexedTask) error
}

// New returns the printer for the format writing to w.
func New(format Format, w io.Writer) (Printer, error) {
	switch format {
	case FormatText, "":
		return NewTextPrinter(w), nil
	case FormatTable:
		return NewTablePrinter(w), nil
	case FormatJSON:
		return NewJSONPrinter(w), nil
	case FormatYAML:
		return NewYAMLPrinter(w), nil
	}

	return nil, fmt.Errorf("unknown format %q: %w", format, model.ErrNotValid)
}

// TextPrinter prints one line per task.
type TextPrinter struct {
	writer io.Writer
}

// NewTextPrinter creates a new text printer.
func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{writer: w}
}

// PrintTasks prints a `Task {id}: {description} ({status})` line per task.
func (p *TextPrinter) PrintTasks(tasks []model.IndexedTask) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(p.writer, NoTasksMessage)
		return err
	}

	for _, t := range tasks {
		if _, err := fmt.Fprintf(p.writer, "Task %d: %s (%s)\n", t.ID, t.Description, t.Status()); err != nil {
			return err
		}
	}

	return nil
}
