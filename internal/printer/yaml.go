package printer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/slok/tsk/internal/model"
)

// YAMLPrinter prints task information in YAML format.
type YAMLPrinter struct {
	writer io.Writer
}

// NewYAMLPrinter creates a new YAML printer.
func NewYAMLPrinter(w io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer: w}
}

// PrintTasks prints tasks as a YAML sequence, empty lists print `[]`.
func (y *YAMLPrinter) PrintTasks(tasks []model.IndexedTask) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(toItems(tasks)); err != nil {
		return err
	}
	return enc.Close()
}
