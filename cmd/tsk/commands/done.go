package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tsk/internal/app/done"
)

type DoneCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id int
}

// NewDoneCommand returns the done command.
func NewDoneCommand(rootCmd *RootCommand, app *kingpin.Application) *DoneCommand {
	c := &DoneCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("done", "Mark a task as done.")
	c.Cmd.Arg("id", "The ID of the task.").Required().IntVar(&c.id)

	return c
}

func (c DoneCommand) Name() string { return c.Cmd.FullCommand() }

func (c DoneCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	repo, release, err := c.rootCmd.newRepository(ctx)
	if err != nil {
		return err
	}
	defer release()

	svc, err := done.NewService(done.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if _, err := svc.Run(ctx, done.Request{ID: c.id}); err != nil {
		return fmt.Errorf("could not mark task as done: %w", err)
	}

	return nil
}
