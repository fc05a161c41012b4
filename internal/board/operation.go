package board

import "kanban/internal/domain"

// OperationKind names the kind of an Operation.
type OperationKind string

const (
	KindAdd    OperationKind = "add"
	KindUpdate OperationKind = "update"
	KindDelete OperationKind = "delete"
	KindDrop   OperationKind = "drop"
)

// Operation is a single board mutation fed to Apply.
type Operation interface {
	Kind() OperationKind
}

// AddOp appends a new task to a column.
type AddOp struct {
	Column  domain.ColumnID
	Content string
}

// UpdateOp replaces the content of a task.
type UpdateOp struct {
	TaskID  string
	Content string
}

// DeleteOp removes a task.
type DeleteOp struct {
	TaskID string
}

// DropOp completes a drag: Active is the dragged task, Over a task or column id.
type DropOp struct {
	Active string
	Over   string
}

func (AddOp) Kind() OperationKind    { return KindAdd }
func (UpdateOp) Kind() OperationKind { return KindUpdate }
func (DeleteOp) Kind() OperationKind { return KindDelete }
func (DropOp) Kind() OperationKind   { return KindDrop }

// Result is the outcome of Apply.
type Result struct {
	Board   domain.Board
	Changed bool
}

// Apply runs op against b and returns the next board. Unknown operation
// types leave the board unchanged.
func (e *Engine) Apply(b domain.Board, op Operation) Result {
	var (
		next    domain.Board
		changed bool
	)
	switch o := op.(type) {
	case AddOp:
		next, changed = e.AddTask(b, o.Column, o.Content)
	case UpdateOp:
		next, changed = e.UpdateTask(b, o.TaskID, o.Content)
	case DeleteOp:
		next, changed = e.DeleteTask(b, o.TaskID)
	case DropOp:
		next, changed = e.Drop(b, o.Active, o.Over)
	default:
		e.logger.Debug().Msgf("unsupported operation %T", op)
		return Result{Board: b}
	}
	return Result{Board: next, Changed: changed}
}
