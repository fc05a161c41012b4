package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"kanban/internal/api"
	"kanban/internal/config"
	"kanban/internal/errors"
	"kanban/internal/render"
)

// Prompt is printed before each line read in interactive mode
const Prompt = "kb> "

// App is the line oriented board session behind `kb board`
type App struct {
	api          api.API
	config       *config.Config
	renderer     *render.Renderer
	out          io.Writer
	logger       zerolog.Logger
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	done         bool
}

// NewApp creates an App writing to out. Notices raised by the session are
// printed as they happen.
func NewApp(apiInstance api.API, cfg *config.Config, out io.Writer, logger zerolog.Logger) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:          apiInstance,
		config:       cfg,
		renderer:     render.NewRenderer(apiInstance.Theme(), cfg.Display.ColumnWidth, cfg.Display.Plain),
		out:          out,
		logger:       logger,
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	apiInstance.Subscribe(app.printNotice)
	return app
}

// Run reads commands from in until EOF or quit. Command errors are
// printed and the loop continues.
func (a *App) Run(ctx context.Context, in io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for !a.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt {
			fmt.Fprint(a.out, Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := a.ExecLine(ctx, line); err != nil {
			a.report(err)
		}
	}
	return scanner.Err()
}

// ExecLine parses and runs one command line
func (a *App) ExecLine(ctx context.Context, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// Done reports whether the quit command ran
func (a *App) Done() bool {
	return a.done
}

// hints follow the error line when the next step is obvious
var hints = map[errors.Code]string{
	errors.CodeDragInProgress: "drop or cancel it first",
	errors.CodeNoDrag:         "pick a card up with drag <task>",
	errors.CodeTaskNotFound:   "show lists the card ids",
}

func (a *App) report(err error) {
	if !a.errorHandler.IsUserError(err) {
		a.logger.Error().Err(err).Msg("command failed")
	}
	fmt.Fprintf(a.out, "error: %s\n", a.errorHandler.Message(err))
	if hint, ok := hints[errors.GetErrorCode(err)]; ok {
		fmt.Fprintf(a.out, "  hint: %s\n", hint)
	}
}

func (a *App) printNotice(ev api.Event) {
	// warnings repeat an error the command itself returns
	if ev.Notice == nil || ev.Notice.Level == api.NoticeWarning {
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", ev.Notice.Level, ev.Notice)
}

// splitArgs splits a command line on spaces. Single or double quotes
// group words; a backslash escapes the next character.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, errors.NewBadLineError(line, "unterminated quote")
	}
	if escaped {
		current.WriteRune('\\')
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
