package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/config"
)

// runRoot executes kb with args against a settings database in dir
func runRoot(t *testing.T, dir string, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(config.NewLoaderWithFile(""), config.CreateRepository)

	out := &bytes.Buffer{}
	cmd := root.Command()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--db-dir", dir, "--log-level", "disabled"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(config.NewLoaderWithFile(""), nil)

	names := []string{}
	for _, c := range root.Command().Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"board", "tui", "show", "export", "theme", "settings"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Show(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "", "show", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "To Do (2)\n")
	assert.Contains(t, out, "    [task-5] Install and configure Tailwind CSS\n")

	out, err = runRoot(t, dir, "", "show", "--plain", "--seed=false")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "    (empty)\n"))
}

func TestRootCommand_Export(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "", "export", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "column,position,id,content", lines[0])
	assert.Equal(t, "done,1,task-5,Install and configure Tailwind CSS", lines[5])

	out, err = runRoot(t, dir, "", "--export-format", "json", "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"columns\": ["), out)

	_, err = runRoot(t, dir, "", "export", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be csv or json")
}

func TestRootCommand_ThemeIsRemembered(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = runRoot(t, dir, "", "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = runRoot(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = runRoot(t, dir, "", "theme", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be light, dark, toggle or reset")

	_, err = os.Stat(filepath.Join(dir, "kb.db"))
	assert.NoError(t, err)
}

func TestRootCommand_ThemeFlagIsNotSaved(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "show\ntheme\nquit\n", "--theme", "light", "--plain", "board")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light\n")

	out, err = runRoot(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestRootCommand_BoardScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "moves.txt")
	require.NoError(t, os.WriteFile(script, []byte(`
add done "Ship it"
move task-6 task-4
move task-1 inProgress
show
`), 0o644))

	out, err := runRoot(t, dir, "", "--plain", "board", "--script", script, "--sequential-ids")
	require.NoError(t, err)

	assert.NotContains(t, out, Prompt)
	assert.Contains(t, out, "[success] Task added: task-6 in Done\n")
	assert.Contains(t, out, "[info] Task moved: to In Progress\n")
	assert.Contains(t, out, "In Progress (2)\n    [task-3] Implement the new data table component\n    [task-1] Design the new dashboard layout\n")
	assert.Contains(t, out, "Done (3)\n    [task-6] Ship it\n    [task-4]")
}

func TestRootCommand_BoardPrompt(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "help\n", "board")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, Prompt), out)
	assert.Contains(t, out, "commands:\n")
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, err := runRoot(t, t.TempDir(), "", "--content-max=-1", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestRootCommand_ThemeResetAndSettings(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "", "settings")
	require.NoError(t, err)
	assert.Equal(t, "no saved settings\n", out)

	_, err = runRoot(t, dir, "", "theme", "light")
	require.NoError(t, err)
	out, err = runRoot(t, dir, "", "settings")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "theme = light (updated "), out)

	out, err = runRoot(t, dir, "", "--theme", "light", "theme", "reset")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out, "reset prints the configured fallback")

	out, err = runRoot(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = runRoot(t, dir, "", "settings")
	require.NoError(t, err)
	assert.Equal(t, "no saved settings\n", out)
}

func TestRootCommand_Verbose(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "", "--verbose", "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "config: (none)\n")
	assert.Contains(t, out, "db: "+filepath.Join(dir, "kb.db")+"\n")
	assert.Contains(t, out, "log level: disabled\n")
	assert.True(t, strings.HasSuffix(out, "dark\n"), out)

	t.Setenv("KB_APP_VERBOSE", "true")
	out, err = runRoot(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "db: ")

	t.Setenv("KB_APP_VERBOSE", "false")
	out, err = runRoot(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestVerboseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"warn", "info"},
		{"error", "info"},
		{"info", "info"},
		{"debug", "debug"},
		{"trace", "trace"},
		{"disabled", "disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, verboseLevel(tt.level))
		})
	}
}
