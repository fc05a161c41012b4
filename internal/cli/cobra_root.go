package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/board"
	"kanban/internal/config"
	"kanban/internal/domain"
	"kanban/internal/logging"
	"kanban/internal/render"
	"kanban/internal/repository/sqlite"
	"kanban/internal/theme"
	"kanban/internal/tui"
	"kanban/internal/validation"
)

// RepositoryOpener opens the settings repository for a loaded configuration
type RepositoryOpener func(cfg *config.Config) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	open   RepositoryOpener

	config   *config.Config
	logger   zerolog.Logger
	closeLog func()
	repo     sqlite.Repository
	themes   *theme.Store
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, open RepositoryOpener) *RootCommand {
	if open == nil {
		open = config.CreateRepository
	}
	root := &RootCommand{
		loader:   loader,
		open:     open,
		logger:   logging.Nop(),
		closeLog: func() {},
	}

	root.cmd = &cobra.Command{
		Use:   "kb",
		Short: "A kanban board for the terminal",
		Long: `kb is a kanban board with three columns: To Do, In Progress and Done.

Cards are moved by drag and drop: pick a card up, then drop it on another
card (it takes that card's place) or on a column (it goes to the end).
The board lives for one session; only the light/dark theme is remembered.

EXAMPLES:
  kb tui                                   # Full screen board
  kb board                                 # Line oriented session
  kb board --script moves.txt              # Run session commands from a file
  kb show --plain                          # Print the sample board
  kb export --format csv > board.csv       # Export the sample board
  kb theme toggle                          # Switch between light and dark
  kb theme reset                           # Forget the saved theme
  kb settings                              # List saved settings

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is YAML, read from KB_CONFIG or ~/.kb/config.yaml.

  Environment variables:
    KB_DB_DIR, KB_DB_FILENAME              Settings database location (default: ~/.kb/kb.db)
    KB_DB_QUERY_TIMEOUT, KB_DB_WRITE_TIMEOUT
    KB_BOARD_CONTENT_MAX                   Max card length (default: 500)
    KB_BOARD_ID_PREFIX                     Prefix of new card ids (default: task-)
    KB_BOARD_SEED                          Start from the sample board (default: true)
    KB_DISPLAY_THEME                       Theme when none is saved (default: dark)
    KB_DISPLAY_COLUMN_WIDTH                Column width (default: 32)
    KB_DISPLAY_PLAIN                       Plain text output (default: false)
    KB_LOG_LEVEL, KB_LOG_FILE              Logging (default: warn, stderr)
    KB_DEBUG                               Force debug logging
    KB_APP_TIMEOUT                         Timeout of one-shot commands (default: 60s)
    KB_APP_VERBOSE                         Print the resolved config and raise logging to info
    KB_EXPORT_DEFAULT_FORMAT               csv or json (default: json)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases what setup opened
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Settings database directory (overrides KB_DB_DIR)")
	flags.String("db-filename", "", "Settings database filename (overrides KB_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides KB_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides KB_DB_WRITE_TIMEOUT)")

	flags.Int("content-max", 0, "Maximum card length (overrides KB_BOARD_CONTENT_MAX)")
	flags.Bool("seed", true, "Start from the sample board (overrides KB_BOARD_SEED)")

	flags.String("theme", "", "Theme for this run, light or dark (not saved)")
	flags.Int("column-width", 0, "Column width (overrides KB_DISPLAY_COLUMN_WIDTH)")
	flags.Bool("plain", false, "Plain text output without colors (overrides KB_DISPLAY_PLAIN)")

	flags.String("log-level", "", "Log level (overrides KB_LOG_LEVEL)")
	flags.String("log-file", "", "Log file (overrides KB_LOG_FILE)")

	flags.Duration("app-timeout", 0, "Timeout of one-shot commands (overrides KB_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Print the resolved config and log at info level (overrides KB_APP_VERBOSE)")
	flags.String("export-format", "", "Default export format (overrides KB_EXPORT_DEFAULT_FORMAT)")
}

// overridesFromFlags collects the flags the user actually set
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	o := &config.ConfigOverrides{}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	dur := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}
	integer := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}
	boolean := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	o.DBDir = str("db-dir")
	o.DBFilename = str("db-filename")
	o.DBQueryTimeout = dur("db-query-timeout")
	o.DBWriteTimeout = dur("db-write-timeout")
	o.ContentMaxLength = integer("content-max")
	o.Seed = boolean("seed")
	o.Theme = str("theme")
	o.ColumnWidth = integer("column-width")
	o.Plain = boolean("plain")
	o.LogLevel = str("log-level")
	o.LogFile = str("log-file")
	o.Timeout = dur("app-timeout")
	o.Verbose = boolean("verbose")
	o.ExportDefaultFormat = str("export-format")
	return o
}

// setup loads configuration, then opens the logger and settings database
func (r *RootCommand) setup(cmd *cobra.Command) error {
	cfg, err := r.loader.LoadWithOverrides(r.overridesFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg

	level := cfg.Logging.Level
	if cfg.Application.Verbose {
		level = verboseLevel(level)
	}
	logger, closeLog, err := logging.New(level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	r.logger = logger
	r.closeLog = closeLog

	repo, err := r.open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	r.repo = repo

	fallback, _ := theme.Parse(cfg.Display.Theme)
	r.themes = theme.NewStore(repo, fallback, logger)

	r.logger.Debug().
		Str("config", r.loader.FilePath()).
		Str("db", cfg.GetDatabasePath()).
		Msg("kb started")

	if cfg.Application.Verbose {
		configPath := r.loader.FilePath()
		if configPath == "" {
			configPath = "(none)"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "config: %s\ndb: %s\nlog level: %s\n", configPath, cfg.GetDatabasePath(), level)
	}
	return nil
}

// verboseLevel lowers level to info. Debug, trace and disabled are kept.
func verboseLevel(level string) string {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl <= zerolog.InfoLevel || lvl == zerolog.Disabled {
		return level
	}
	return zerolog.LevelInfoValue
}

func (r *RootCommand) close() {
	if r.repo != nil {
		if err := r.repo.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("close settings database")
		}
		r.repo = nil
	}
	r.closeLog()
	r.closeLog = func() {}
}

// activeTheme is the --theme flag when given, else the saved theme
func (r *RootCommand) activeTheme(ctx context.Context, cmd *cobra.Command) (theme.Theme, error) {
	if cmd.Flags().Changed("theme") {
		return theme.Parse(r.config.Display.Theme)
	}
	return r.themes.Load(ctx)
}

// newSession builds a board session from the loaded configuration
func (r *RootCommand) newSession(ctx context.Context, cmd *cobra.Command, sequential bool) (api.API, error) {
	t, err := r.activeTheme(ctx, cmd)
	if err != nil {
		return nil, NewErrorHandler().Handle("load theme", err)
	}

	var ids board.IDGenerator = board.NewUUIDGenerator(r.config.Board.IDPrefix)
	if sequential {
		ids = board.NewSequentialGenerator(r.config.Board.IDPrefix, 1)
	}
	validator := validation.NewTaskValidatorWithConfig(r.config)

	initial := domain.NewBoard()
	if r.config.Board.Seed {
		initial = domain.SeedBoard()
	}

	return api.New(api.Options{
		Engine: board.NewEngine(
			board.WithIDGenerator(ids),
			board.WithValidator(validator),
			board.WithLogger(r.logger),
		),
		Validator: validator,
		Themes:    r.themes,
		Theme:     t,
		Board:     &initial,
		Logger:    r.logger,
	}), nil
}

func (r *RootCommand) timeoutContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if r.config != nil && r.config.Application.Timeout > 0 {
		timeout = r.config.Application.Timeout
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func (r *RootCommand) renderer(t theme.Theme) *render.Renderer {
	return render.NewRenderer(t, r.config.Display.ColumnWidth, r.config.Display.Plain)
}

func (r *RootCommand) addSubcommands() {
	var (
		script     string
		sequential bool
		format     string
	)

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive line oriented board session",
		Long: `Start a board session reading one command per line.

Type help inside the session for the command list. With --script the
commands are read from a file and no prompt is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// no timeout: the session waits on the user
			ctx := cmd.Context()
			session, err := r.newSession(ctx, cmd, sequential)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			prompt := true
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
				prompt = false
			}

			app := NewApp(session, r.config, cmd.OutOrStdout(), r.logger)
			return app.Run(ctx, in, prompt)
		},
	}
	boardCmd.Flags().StringVar(&script, "script", "", "Read session commands from a file")
	boardCmd.Flags().BoolVar(&sequential, "sequential-ids", false, "Number new cards task-6, task-7, ... instead of random ids")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Full screen board",
		Long: `Open the full screen board.

Keys: arrows or hjkl move, space picks a card up and drops it, moving
below the last card targets the column itself, esc cancels a drag,
a adds, e edits, x deletes, t toggles the theme, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := r.newSession(ctx, cmd, false)
			if err != nil {
				return err
			}
			return tui.Run(ctx, session, r.renderer(session.Theme()), r.config.Board.ContentMaxLength,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the starting board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			session, err := r.newSession(ctx, cmd, false)
			if err != nil {
				return err
			}
			app := NewApp(session, r.config, cmd.OutOrStdout(), r.logger)
			return app.ExecLine(ctx, "show")
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the starting board as csv or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			session, err := r.newSession(ctx, cmd, false)
			if err != nil {
				return err
			}
			if format == "" {
				format = r.config.Commands.ExportDefaultFormat
			}
			if err := render.Export(cmd.OutOrStdout(), session.Board(), format); err != nil {
				return NewErrorHandler().Handle("export", err)
			}
			return nil
		},
	}
	exportCmd.Flags().StringVar(&format, "format", "", "csv or json (default from KB_EXPORT_DEFAULT_FORMAT)")

	themeCmd := &cobra.Command{
		Use:   "theme [light|dark|toggle|reset]",
		Short: "Show or change the saved theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return r.runTheme(ctx, cmd.OutOrStdout(), args)
		},
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "List the saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			session, err := r.newSession(ctx, cmd, false)
			if err != nil {
				return err
			}
			app := NewApp(session, r.config, cmd.OutOrStdout(), r.logger)
			if err := app.ExecLine(ctx, "settings"); err != nil {
				return NewErrorHandler().Handle("list settings", err)
			}
			return nil
		},
	}

	r.cmd.AddCommand(boardCmd, tuiCmd, showCmd, exportCmd, themeCmd, settingsCmd)
}

func (r *RootCommand) runTheme(ctx context.Context, out io.Writer, args []string) error {
	eh := NewErrorHandler()
	current, err := r.themes.Load(ctx)
	if err != nil {
		return eh.Handle("load theme", err)
	}
	if len(args) == 0 {
		fmt.Fprintln(out, current)
		return nil
	}
	if isReset(args[0]) {
		fallback, err := r.themes.Reset(ctx)
		if err != nil {
			return eh.Handle("reset theme", err)
		}
		fmt.Fprintln(out, fallback)
		return nil
	}

	next, err := resolveTheme(current, args[0])
	if err != nil {
		return eh.HandleSimple(err)
	}
	if err := r.themes.Save(ctx, next); err != nil {
		return eh.Handle("save theme", err)
	}
	fmt.Fprintln(out, next)
	return nil
}
