package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kanban/internal/errors"
	"kanban/internal/render"
	"kanban/internal/theme"
)

// ShowCommand draws the board
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	dragging, _ := c.app.api.Dragging()
	out := c.app.renderer.Render(c.app.api.Board(), render.Highlight{Dragging: dragging})
	fmt.Fprint(c.app.out, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(c.app.out)
	}
	return nil
}

// ExportCommand handles export [csv|json]
type ExportCommand struct {
	app *App
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := c.app.config.Commands.ExportDefaultFormat
	if len(args) > 1 {
		return errors.NewUsageError("export", "export [csv|json]")
	}
	if len(args) == 1 {
		format = args[0]
	}
	return render.Export(c.app.out, c.app.api.Board(), format)
}

// SettingsCommand lists the saved settings
type SettingsCommand struct {
	app *App
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(app *App) *SettingsCommand {
	return &SettingsCommand{app: app}
}

// Execute runs the settings command
func (c *SettingsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewUsageError("settings", "settings")
	}
	prefs, err := c.app.api.Preferences(ctx)
	if err != nil {
		return err
	}
	if len(prefs) == 0 {
		fmt.Fprintln(c.app.out, "no saved settings")
		return nil
	}
	for _, p := range prefs {
		fmt.Fprintf(c.app.out, "%s = %s (updated %s)\n", p.Key, p.Value, p.UpdatedAt.Local().Format(time.DateTime))
	}
	return nil
}

// ThemeCommand handles theme [light|dark|toggle|reset]
type ThemeCommand struct {
	app *App
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{app: app}
}

// Execute runs the theme command. The notice raised by the session
// reports the new theme.
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(c.app.out, "theme: %s\n", c.app.api.Theme())
		return nil
	case 1:
	default:
		return errors.NewUsageError("theme", "theme [light|dark|toggle|reset]")
	}

	var (
		next theme.Theme
		err  error
	)
	switch {
	case isReset(args[0]):
		next, err = c.app.api.ResetTheme(ctx)
	case strings.EqualFold(args[0], "toggle"):
		next, err = c.app.api.ToggleTheme(ctx)
	default:
		if next, err = resolveTheme(c.app.api.Theme(), args[0]); err == nil {
			err = c.app.api.SetTheme(ctx, next)
		}
	}
	if err != nil {
		return err
	}
	c.app.renderer.SetTheme(next)
	return nil
}

func isReset(arg string) bool {
	return strings.EqualFold(arg, "reset")
}

// resolveTheme maps a theme argument to the theme to switch to
func resolveTheme(current theme.Theme, arg string) (theme.Theme, error) {
	if strings.EqualFold(arg, "toggle") {
		return current.Toggle(), nil
	}
	t, err := theme.Parse(arg)
	if err != nil {
		return current, errors.NewBadThemeError(arg, "must be light, dark, toggle or reset")
	}
	return t, nil
}

// HelpCommand prints the command list
type HelpCommand struct {
	app *App
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App) *HelpCommand {
	return &HelpCommand{app: app}
}

// Execute runs the help command
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprintln(c.app.out, c.app.registry.GetUsage())
	return nil
}

// QuitCommand ends the session
type QuitCommand struct {
	app *App
}

// NewQuitCommand creates a new quit command handler
func NewQuitCommand(app *App) *QuitCommand {
	return &QuitCommand{app: app}
}

// Execute runs the quit command
func (c *QuitCommand) Execute(ctx context.Context, args []string) error {
	c.app.done = true
	return nil
}
