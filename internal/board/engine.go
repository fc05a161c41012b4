// Package board implements the kanban reordering engine: the pure
// operations that move, add, edit and delete tasks on a domain.Board.
//
// Every operation takes a Board value and returns a new Board plus a flag
// telling whether anything changed. The input board is never modified.
// Invalid input is not an error; the operation is a no-op.
package board

import (
	"github.com/rs/zerolog"

	"kanban/internal/domain"
	"kanban/internal/validation"
)

// Engine applies board operations.
type Engine struct {
	ids       IDGenerator
	validator *validation.TaskValidator
	logger    zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator sets the generator used for new task ids.
func WithIDGenerator(gen IDGenerator) Option {
	return func(e *Engine) {
		if gen != nil {
			e.ids = gen
		}
	}
}

// WithValidator sets the content validator.
func WithValidator(v *validation.TaskValidator) Option {
	return func(e *Engine) {
		if v != nil {
			e.validator = v
		}
	}
}

// WithLogger sets the logger used to report ignored operations.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an Engine. Without options it uses uuid ids, the
// default content limits and a disabled logger.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		ids:       NewUUIDGenerator(DefaultIDPrefix),
		validator: validation.NewTaskValidator(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LocateColumn returns the column holding the task, scanning in display order.
func (e *Engine) LocateColumn(b domain.Board, taskID string) (domain.ColumnID, bool) {
	_, colID, ok := b.FindTask(taskID)
	return colID, ok
}

// ReorderWithinColumn moves taskID to the index targetTaskID occupies
// before the move. Moving down lands after the target, moving up lands
// before it.
func (e *Engine) ReorderWithinColumn(b domain.Board, columnID domain.ColumnID, taskID, targetTaskID string) (domain.Board, bool) {
	if taskID == targetTaskID {
		return b, false
	}
	col, ok := b.Column(columnID)
	if !ok {
		e.ignored("reorder", "unknown column", columnID, taskID)
		return b, false
	}
	from, to := col.IndexOf(taskID), col.IndexOf(targetTaskID)
	if from == -1 || to == -1 {
		e.ignored("reorder", "task not in column", columnID, taskID)
		return b, false
	}

	out := b.Clone()
	moved := out.Columns[columnID]
	moved.Tasks = arrayMove(moved.Tasks, from, to)
	out.Columns[columnID] = moved
	return out, true
}

// MoveAcrossColumns removes taskID from src and inserts it into dst at the
// index of targetTaskID. An empty or absent target appends to dst.
func (e *Engine) MoveAcrossColumns(b domain.Board, src, dst domain.ColumnID, taskID, targetTaskID string) (domain.Board, bool) {
	if src == dst {
		return b, false
	}
	srcCol, ok := b.Column(src)
	if !ok {
		e.ignored("move", "unknown source column", src, taskID)
		return b, false
	}
	dstCol, ok := b.Column(dst)
	if !ok {
		e.ignored("move", "unknown destination column", dst, taskID)
		return b, false
	}
	from := srcCol.IndexOf(taskID)
	if from == -1 {
		e.ignored("move", "task not in source column", src, taskID)
		return b, false
	}

	out := b.Clone()
	task := srcCol.Tasks[from]

	s := out.Columns[src]
	s.Tasks = removeAt(s.Tasks, from)
	out.Columns[src] = s

	d := out.Columns[dst]
	at := dstCol.IndexOf(targetTaskID)
	if targetTaskID == "" || at == -1 {
		at = len(d.Tasks)
	}
	d.Tasks = insertAt(d.Tasks, at, task)
	out.Columns[dst] = d

	return out, true
}

// AddTask appends a task with a fresh id to the column. The stored
// content is trimmed.
func (e *Engine) AddTask(b domain.Board, columnID domain.ColumnID, content string) (domain.Board, bool) {
	col, ok := b.Column(columnID)
	if !ok {
		e.ignored("add", "unknown column", columnID, "")
		return b, false
	}
	text, err := e.validator.GetValidContent(content)
	if err != nil {
		e.logger.Debug().Err(err).Str("column", string(columnID)).Msg("add ignored")
		return b, false
	}
	id, ok := uniqueID(e.ids, b)
	if !ok {
		e.ignored("add", "could not generate a unique id", columnID, "")
		return b, false
	}

	out := b.Clone()
	col = out.Columns[col.ID]
	col.Tasks = append(col.Tasks, domain.NewTask(id, text))
	out.Columns[col.ID] = col
	return out, true
}

// UpdateTask replaces the content of the task. The stored content is trimmed.
func (e *Engine) UpdateTask(b domain.Board, taskID, content string) (domain.Board, bool) {
	text, err := e.validator.GetValidContent(content)
	if err != nil {
		e.logger.Debug().Err(err).Str("task", taskID).Msg("update ignored")
		return b, false
	}
	task, colID, ok := b.FindTask(taskID)
	if !ok {
		e.ignored("update", "unknown task", "", taskID)
		return b, false
	}
	if task.Content == text {
		return b, false
	}

	out := b.Clone()
	col := out.Columns[colID]
	col.Tasks[col.IndexOf(taskID)].Content = text
	out.Columns[colID] = col
	return out, true
}

// DeleteTask removes the task from whichever column holds it.
func (e *Engine) DeleteTask(b domain.Board, taskID string) (domain.Board, bool) {
	colID, ok := e.LocateColumn(b, taskID)
	if !ok {
		e.ignored("delete", "unknown task", "", taskID)
		return b, false
	}

	out := b.Clone()
	col := out.Columns[colID]
	col.Tasks = removeAt(col.Tasks, col.IndexOf(taskID))
	out.Columns[colID] = col
	return out, true
}

// Drop resolves the end of a drag gesture. overID names either a column
// or a task; a task target means "the column holding that task, at that
// task's position".
func (e *Engine) Drop(b domain.Board, activeID, overID string) (domain.Board, bool) {
	if overID == "" || activeID == overID {
		return b, false
	}
	activeCol, ok := e.LocateColumn(b, activeID)
	if !ok {
		e.ignored("drop", "unknown active task", "", activeID)
		return b, false
	}
	overCol, overTask, ok := e.resolveTarget(b, overID)
	if !ok {
		e.ignored("drop", "unknown drop target", "", overID)
		return b, false
	}

	if activeCol == overCol {
		// dropping on the own column itself has no index to move to
		return e.ReorderWithinColumn(b, activeCol, activeID, overTask)
	}
	return e.MoveAcrossColumns(b, activeCol, overCol, activeID, overTask)
}

// resolveTarget maps a drop target id to its column and, for task
// targets, the task id.
func (e *Engine) resolveTarget(b domain.Board, overID string) (domain.ColumnID, string, bool) {
	if _, ok := b.Column(domain.ColumnID(overID)); ok {
		return domain.ColumnID(overID), "", true
	}
	colID, ok := e.LocateColumn(b, overID)
	if !ok {
		return "", "", false
	}
	return colID, overID, true
}

func (e *Engine) ignored(op, reason string, col domain.ColumnID, taskID string) {
	e.logger.Debug().
		Str("op", op).
		Str("column", string(col)).
		Str("task", taskID).
		Msg(reason)
}

// arrayMove returns a new slice with the element at from moved to to.
func arrayMove(tasks []domain.Task, from, to int) []domain.Task {
	task := tasks[from]
	return insertAt(removeAt(tasks, from), to, task)
}

func removeAt(tasks []domain.Task, i int) []domain.Task {
	out := make([]domain.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

func insertAt(tasks []domain.Task, i int, task domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks)+1)
	out = append(out, tasks[:i]...)
	out = append(out, task)
	return append(out, tasks[i:]...)
}
