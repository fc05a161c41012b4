package cli

import (
	"context"
	"strings"

	"kanban/internal/errors"
)

// Command represents one board session command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a registry holding every session command
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("show", NewShowCommand(app))
	registry.Register("add", NewAddCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("drag", NewDragCommand(app))
	registry.Register("drop", NewDropCommand(app))
	registry.Register("cancel", NewCancelCommand(app))
	registry.Register("move", NewMoveCommand(app))
	registry.Register("export", NewExportCommand(app))
	registry.Register("theme", NewThemeCommand(app))
	registry.Register("settings", NewSettingsCommand(app))
	registry.Register("help", NewHelpCommand(app))
	registry.Register("quit", NewQuitCommand(app))
	registry.Register("exit", NewQuitCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[strings.ToLower(commandName)]
	if !exists {
		return errors.NewUnknownCommandError(commandName)
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the help text of the board session
func (r *CommandRegistry) GetUsage() string {
	return `commands:
  show                       draw the board
  add <column> <text>        add a card to todo, inProgress or done
  edit <task> <text>         replace the text of a card
  delete <task>              remove a card
  drag <task>                pick up a card
  drop [target]              drop the picked up card on a card or column
  cancel                     put the picked up card back
  move <task> <target>       drag and drop in one step
  export [csv|json]          write the board
  theme [light|dark|toggle]  show or change the theme
  theme reset                forget the saved theme
  settings                   list saved settings
  help                       show this help
  quit                       leave the session`
}
