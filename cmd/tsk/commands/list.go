package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tsk/internal/app/list"
	"github.com/slok/tsk/internal/printer"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	incompleteOnly bool
	format         string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List all tasks.")
	c.Cmd.Flag("incomplete-only", "Only show the tasks that are not done.").Short('i').BoolVar(&c.incompleteOnly)
	c.Cmd.Flag("format", "Output format.").Default(string(printer.FormatText)).EnumVar(&c.format, printer.Formats...)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	p, err := printer.New(printer.Format(c.format), c.rootCmd.Stdout)
	if err != nil {
		return fmt.Errorf("could not create printer: %w", err)
	}

	repo, release, err := c.rootCmd.newRepository(ctx)
	if err != nil {
		return err
	}
	defer release()

	svc, err := list.NewService(list.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, list.Request{IncompleteOnly: c.incompleteOnly})
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if err := p.PrintTasks(tasks); err != nil {
		return fmt.Errorf("could not print tasks: %w", err)
	}

	return nil
}
