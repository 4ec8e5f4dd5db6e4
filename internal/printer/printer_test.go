package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tsk/internal/model"
	"github.com/slok/tsk/internal/printer"
)

func tasksFixture() []model.IndexedTask {
	return []model.IndexedTask{
		{ID: 1, Task: model.Task{Description: "buy milk", Finished: true}},
		{ID: 2, Task: model.Task{Description: "walk dog"}},
	}
}

func TestPrinterPrintTasks(t *testing.T) {
	tests := map[string]struct {
		format printer.Format
		tasks  []model.IndexedTask
		expOut string
	}{
		"Text should print a line per task.": {
			format: printer.FormatText,
			tasks:  tasksFixture(),
			expOut: "Task 1: buy milk (Complete)\nTask 2: walk dog (Incomplete)\n",
		},
		"Text without tasks should print the empty message.": {
			format: printer.FormatText,
			tasks:  nil,
			expOut: "No tasks to display.\n",
		},
		"Text should print empty descriptions as they are.": {
			format: printer.FormatText,
			tasks:  []model.IndexedTask{{ID: 3, Task: model.Task{}}},
			expOut: "Task 3:  (Incomplete)\n",
		},
		"Default format should be text.": {
			format: "",
			tasks:  tasksFixture()[1:],
			expOut: "Task 2: walk dog (Incomplete)\n",
		},
		"JSON should print an array of tasks.": {
			format: printer.FormatJSON,
			tasks:  tasksFixture(),
			expOut: `[
  {
    "id": 1,
    "description": "buy milk",
    "finished": true
  },
  {
    "id": 2,
    "description": "walk dog",
    "finished": false
  }
]
`,
		},
		"JSON without tasks should print an empty array.": {
			format: printer.FormatJSON,
			tasks:  []model.IndexedTask{},
			expOut: "[]\n",
		},
		"YAML should print a sequence of tasks.": {
			format: printer.FormatYAML,
			tasks:  tasksFixture(),
			expOut: `- id: 1
  description: buy milk
  finished: true
- id: 2
  description: walk dog
  finished: false
`,
		},
		"YAML without tasks should print an empty sequence.": {
			format: printer.FormatYAML,
			tasks:  nil,
			expOut: "[]\n",
		},
		"Table without tasks should print the empty message.": {
			format: printer.FormatTable,
			tasks:  nil,
			expOut: "No tasks to display.\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p, err := printer.New(test.format, &buf)
			require.NoError(t, err)

			err = p.PrintTasks(test.tasks)
			require.NoError(t, err)
			assert.Equal(t, test.expOut, buf.String())
		})
	}
}

func TestTablePrinterPrintTasks(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintTasks(tasksFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, "Complete")
	assert.Contains(t, out, "walk dog")
	assert.Contains(t, out, "Incomplete")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := printer.New("xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, model.ErrNotValid)
}
