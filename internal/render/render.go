// Package render draws a board for the terminal and exports it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kanban/internal/domain"
	"kanban/internal/theme"
)

// Highlight marks the cards and column the user is interacting with.
type Highlight struct {
	// Cursor is the task under the cursor.
	Cursor string
	// Dragging is the task currently picked up.
	Dragging string
	// Hover is the column whose end is the drop target.
	Hover domain.ColumnID
}

// Renderer draws boards in one theme.
type Renderer struct {
	styles theme.Styles
	width  int
	plain  bool
}

// NewRenderer creates a Renderer. plain disables colors and borders.
func NewRenderer(t theme.Theme, columnWidth int, plain bool) *Renderer {
	return &Renderer{
		styles: theme.NewStyles(t, columnWidth),
		width:  columnWidth,
		plain:  plain,
	}
}

// Styles returns the styles the renderer draws with.
func (r *Renderer) Styles() theme.Styles {
	return r.styles
}

// SetTheme switches the renderer to t.
func (r *Renderer) SetTheme(t theme.Theme) {
	r.styles = theme.NewStyles(t, r.width)
}

// Render draws the board columns in display order.
func (r *Renderer) Render(b domain.Board, h Highlight) string {
	if r.plain {
		return r.renderPlain(b, h)
	}

	cols := make([]string, 0, len(domain.ColumnOrder))
	for _, col := range b.OrderedColumns() {
		cols = append(cols, r.renderColumn(col, h))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (r *Renderer) renderColumn(col domain.Column, h Highlight) string {
	s := r.styles
	parts := []string{s.ColumnTitle.Render(fmt.Sprintf("%s (%d)", col.Title, col.Len()))}

	if col.Len() == 0 {
		parts = append(parts, s.Empty.Render("No cards"))
	}
	for _, task := range col.Tasks {
		style := s.Card
		switch task.ID {
		case h.Dragging:
			style = s.CardDragging
		case h.Cursor:
			style = s.CardCursor
		}
		parts = append(parts, style.Render(task.Content))
	}
	if h.Hover == col.ID {
		parts = append(parts, s.DropTarget.Render("drop here"))
	}

	return s.Column.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (r *Renderer) renderPlain(b domain.Board, h Highlight) string {
	var sb strings.Builder
	for i, col := range b.OrderedColumns() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s (%d)\n", col.Title, col.Len())
		if col.Len() == 0 {
			sb.WriteString("    (empty)\n")
		}
		for _, task := range col.Tasks {
			fmt.Fprintf(&sb, "  %s [%s] %s\n", marker(task.ID, h), task.ID, task.Content)
		}
		if h.Hover == col.ID {
			sb.WriteString("  > (drop here)\n")
		}
	}
	return sb.String()
}

func marker(taskID string, h Highlight) string {
	switch taskID {
	case h.Dragging:
		return "*"
	case h.Cursor:
		return ">"
	default:
		return " "
	}
}
