package cli

import (
	"context"
	"fmt"

	"kanban/internal/api"
	"kanban/internal/errors"
)

// DragCommand handles drag <task>
type DragCommand struct {
	app *App
}

// NewDragCommand creates a new drag command handler
func NewDragCommand(app *App) *DragCommand {
	return &DragCommand{app: app}
}

// Execute runs the drag command
func (c *DragCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewUsageError("drag", "drag <task>")
	}
	if err := c.app.api.DragStart(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "dragging %s\n", args[0])
	return nil
}

// DropCommand handles drop [target]
type DropCommand struct {
	app *App
}

// NewDropCommand creates a new drop command handler
func NewDropCommand(app *App) *DropCommand {
	return &DropCommand{app: app}
}

// Execute runs the drop command. Without a target the drag ends with no move.
func (c *DropCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewUsageError("drop", "drop [target]")
	}
	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	changed, err := c.app.api.DragEnd(target)
	if err != nil {
		return err
	}
	reportUnchanged(c.app, changed)
	return nil
}

// CancelCommand handles cancel
type CancelCommand struct {
	app *App
}

// NewCancelCommand creates a new cancel command handler
func NewCancelCommand(app *App) *CancelCommand {
	return &CancelCommand{app: app}
}

// Execute runs the cancel command
func (c *CancelCommand) Execute(ctx context.Context, args []string) error {
	if !c.app.api.CancelDrag() {
		return errors.NewNoDragError()
	}
	fmt.Fprintln(c.app.out, "drag cancelled")
	return nil
}

// MoveCommand handles move <task> <target>
type MoveCommand struct {
	api api.API
	app *App
}

// NewMoveCommand creates a new move command handler
func NewMoveCommand(app *App) *MoveCommand {
	return &MoveCommand{api: app.api, app: app}
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewUsageError("move", "move <task> <target>")
	}
	changed, err := c.api.Move(args[0], args[1])
	if err != nil {
		return err
	}
	reportUnchanged(c.app, changed)
	return nil
}

func reportUnchanged(app *App, changed bool) {
	if !changed {
		fmt.Fprintln(app.out, "nothing changed")
	}
}
