package board

import "kanban/internal/domain"

// GestureState is the state of a drag gesture.
type GestureState int

const (
	Idle GestureState = iota
	Dragging
)

func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Gesture tracks one drag at a time. The zero value is Idle.
type Gesture struct {
	state  GestureState
	active string
}

// State returns the current state.
func (g *Gesture) State() GestureState {
	return g.state
}

// Active returns the dragged task id while dragging.
func (g *Gesture) Active() (string, bool) {
	if g.state != Dragging {
		return "", false
	}
	return g.active, true
}

// Start picks up taskID. It fails when a drag is already in progress or
// the task is not on the board.
func (g *Gesture) Start(b domain.Board, taskID string) bool {
	if g.state == Dragging || !b.HasTask(taskID) {
		return false
	}
	g.state = Dragging
	g.active = taskID
	return true
}

// End finishes the drag over overID and returns the drop to apply. It
// returns false when no drag was in progress or there is no target.
func (g *Gesture) End(overID string) (DropOp, bool) {
	if g.state != Dragging {
		return DropOp{}, false
	}
	op := DropOp{Active: g.active, Over: overID}
	g.reset()
	if overID == "" {
		return DropOp{}, false
	}
	return op, true
}

// Cancel abandons the drag. It reports whether a drag was in progress.
func (g *Gesture) Cancel() bool {
	if g.state != Dragging {
		return false
	}
	g.reset()
	return true
}

func (g *Gesture) reset() {
	g.state = Idle
	g.active = ""
}
