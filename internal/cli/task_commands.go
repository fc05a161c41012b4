package cli

import (
	"context"
	"fmt"
	"strings"

	"kanban/internal/api"
	"kanban/internal/errors"
)

// AddCommand handles add <column> <text>
type AddCommand struct {
	api api.API
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{api: app.api}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewUsageError("add", "add <column> <text>")
	}
	_, err := c.api.AddTask(args[0], strings.Join(args[1:], " "))
	return err
}

// EditCommand handles edit <task> <text>
type EditCommand struct {
	api api.API
	app *App
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{api: app.api, app: app}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewUsageError("edit", "edit <task> <text>")
	}
	changed, err := c.api.UpdateTask(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(c.app.out, "nothing changed")
	}
	return nil
}

// DeleteCommand handles delete <task>
type DeleteCommand struct {
	api api.API
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{api: app.api}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewUsageError("delete", "delete <task>")
	}
	return c.api.DeleteTask(args[0])
}
