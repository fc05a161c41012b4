// Package tui is the full screen board: keyboard driven drag and drop
// over an api session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kanban/internal/api"
	"kanban/internal/domain"
	"kanban/internal/errors"
	"kanban/internal/render"
	"kanban/internal/theme"
	"kanban/internal/validation"
)

type inputMode int

const (
	modeBoard inputMode = iota
	modeAdd
	modeEdit
)

// noticeBox keeps the latest notice; subscribers write to it from outside
// the value-typed model.
type noticeBox struct {
	last *api.Notice
}

// Model is the bubbletea model of the board.
type Model struct {
	ctx      context.Context
	api      api.API
	renderer *render.Renderer
	keys     KeyMap
	input    textinput.Model
	notices  *noticeBox

	mode    inputMode
	col     int
	row     int
	editing string
	width   int
}

// New creates the board model. contentMax caps the card input; zero or
// less means the validation default.
func New(ctx context.Context, session api.API, renderer *render.Renderer, contentMax int) Model {
	if contentMax <= 0 {
		contentMax = validation.DefaultContentMaxLength
	}
	ti := textinput.New()
	ti.Placeholder = "Enter task content..."
	ti.Prompt = "> "
	ti.CharLimit = contentMax
	ti.Width = 60

	box := &noticeBox{}
	session.Subscribe(func(ev api.Event) {
		if ev.Notice != nil {
			box.last = ev.Notice
		}
	})

	return Model{
		ctx:      ctx,
		api:      session,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		input:    ti,
		notices:  box,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, session api.API, renderer *render.Renderer, contentMax int, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, session, renderer, contentMax), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeBoard {
			return m.updateInput(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row--
	case key.Matches(msg, m.keys.Down):
		m.row++
	case key.Matches(msg, m.keys.Left):
		m.col--
	case key.Matches(msg, m.keys.Right):
		m.col++
	case key.Matches(msg, m.keys.Grab):
		m = m.grabOrDrop()
	case key.Matches(msg, m.keys.Cancel):
		m.api.CancelDrag()
	case key.Matches(msg, m.keys.Add):
		return m.startInput(modeAdd, "", "")
	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.cursorTask(); ok {
			return m.startInput(modeEdit, task.ID, task.Content)
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.cursorTask(); ok {
			m.fail(m.api.DeleteTask(task.ID))
		}
	case key.Matches(msg, m.keys.Theme):
		if t, err := m.api.ToggleTheme(m.ctx); err == nil {
			m.renderer.SetTheme(t)
		}
	}
	m.clamp()
	return m, nil
}

func (m Model) startInput(mode inputMode, taskID, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.editing = taskID
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return m.stopInput(), nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		var err error
		if m.mode == modeAdd {
			_, err = m.api.AddTask(string(m.column()), value)
		} else {
			_, err = m.api.UpdateTask(m.editing, value)
		}
		if err != nil {
			// keep the input open so the text can be fixed
			m.fail(err)
			return m, nil
		}
		if m.mode == modeAdd {
			m.row = m.columnLen() - 1
		}
		m = m.stopInput()
		m.clamp()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) stopInput() Model {
	m.mode = modeBoard
	m.editing = ""
	m.input.Reset()
	m.input.Blur()
	return m
}

// grabOrDrop picks up the card under the cursor, or drops the card being
// dragged on the hovered card or column end.
func (m Model) grabOrDrop() Model {
	active, dragging := m.api.Dragging()
	if !dragging {
		if task, ok := m.cursorTask(); ok {
			m.fail(m.api.DragStart(task.ID))
		}
		return m
	}

	target := string(m.column())
	if task, ok := m.cursorTask(); ok {
		target = task.ID
	}
	if _, err := m.api.DragEnd(target); err != nil {
		m.fail(err)
		return m
	}
	m.follow(active)
	return m
}

// follow moves the cursor onto taskID wherever it now is.
func (m *Model) follow(taskID string) {
	b := m.api.Board()
	for ci, id := range domain.ColumnOrder {
		if i := b.Columns[id].IndexOf(taskID); i != -1 {
			m.col, m.row = ci, i
			return
		}
	}
}

func (m *Model) fail(err error) {
	// validation failures already raised a warning notice in the session
	if err == nil || validation.IsValidationError(err) {
		return
	}
	level := api.NoticeWarning
	if errors.ShouldLogError(err) {
		level = api.NoticeError
	}
	m.notices.last = &api.Notice{Level: level, Title: "Not done", Message: errors.GetUserMessage(err)}
}

// clamp keeps the cursor on the board. While dragging the cursor may sit
// one past the last card, which targets the column itself.
func (m *Model) clamp() {
	m.col = min(max(m.col, 0), len(domain.ColumnOrder)-1)
	limit := m.columnLen() - 1
	if _, dragging := m.api.Dragging(); dragging {
		limit = m.columnLen()
	}
	m.row = min(max(m.row, 0), max(limit, 0))
}

func (m Model) column() domain.ColumnID {
	return domain.ColumnOrder[m.col]
}

func (m Model) columnLen() int {
	return m.api.Board().Columns[m.column()].Len()
}

func (m Model) cursorTask() (domain.Task, bool) {
	col := m.api.Board().Columns[m.column()]
	if m.row < 0 || m.row >= col.Len() {
		return domain.Task{}, false
	}
	return col.Tasks[m.row], true
}

func (m Model) highlight() render.Highlight {
	h := render.Highlight{}
	if task, ok := m.cursorTask(); ok {
		h.Cursor = task.ID
	}
	if active, ok := m.api.Dragging(); ok {
		h.Dragging = active
		if h.Cursor == "" {
			h.Hover = m.column()
		}
	}
	return h
}

func (m Model) View() string {
	styles := m.renderer.Styles()
	var sb strings.Builder

	b := m.api.Board()
	sb.WriteString(styles.Header.Render(fmt.Sprintf("Kanban Board (%d cards)", b.TaskCount())))
	sb.WriteString("\n")
	sb.WriteString(m.renderer.Render(b, m.highlight()))
	sb.WriteString("\n")

	if m.mode != modeBoard {
		label := "New card in " + domain.ColumnTitles[m.column()]
		if m.mode == modeEdit {
			label = "Edit " + m.editing
		}
		sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, label, m.input.View()))
		sb.WriteString("\n")
	}

	if n := m.notices.last; n != nil {
		sb.WriteString(noticeStyle(styles, n.Level).Render(n.String()))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render(helpLine(m.keys)))
	return sb.String()
}

func noticeStyle(styles theme.Styles, level api.NoticeLevel) lipgloss.Style {
	switch level {
	case api.NoticeSuccess:
		return styles.Success
	case api.NoticeWarning:
		return styles.Warning
	case api.NoticeError:
		return styles.Error
	default:
		return styles.Info
	}
}

func helpLine(k KeyMap) string {
	parts := make([]string, 0, len(k.ShortHelp()))
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
