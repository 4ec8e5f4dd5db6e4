package printer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/slok/tsk/internal/model"
)

// TablePrinter prints tasks in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintTasks prints tasks in a table format.
func (t *TablePrinter) PrintTasks(tasks []model.IndexedTask) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(t.writer, NoTasksMessage)
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "DESCRIPTION", "STATUS"})
	for _, task := range tasks {
		tw.AppendRow(table.Row{strconv.Itoa(task.ID), task.Description, task.Status()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(t.writer, tw.Render())
	return err
}
