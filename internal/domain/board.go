package domain

// Board maps each column id to its column.
//
// Every task id appears in exactly one column, exactly once. Board values
// are treated as immutable: code that changes a board works on a Clone.
type Board struct {
	Columns map[ColumnID]Column `json:"columns"`
}

// NewBoard creates a board with the fixed columns, all empty.
func NewBoard() Board {
	b := Board{Columns: make(map[ColumnID]Column, len(ColumnOrder))}
	for _, id := range ColumnOrder {
		b.Columns[id] = Column{ID: id, Title: ColumnTitles[id], Tasks: []Task{}}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{Columns: make(map[ColumnID]Column, len(b.Columns))}
	for id, col := range b.Columns {
		out.Columns[id] = col.Clone()
	}
	return out
}

// Column returns the column with the given id.
func (b Board) Column(id ColumnID) (Column, bool) {
	col, ok := b.Columns[id]
	return col, ok
}

// OrderedColumns returns the columns in display order.
func (b Board) OrderedColumns() []Column {
	cols := make([]Column, 0, len(b.Columns))
	for _, id := range ColumnOrder {
		if col, ok := b.Columns[id]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// FindTask returns the task with the given id and the column holding it.
func (b Board) FindTask(taskID string) (Task, ColumnID, bool) {
	for _, col := range b.OrderedColumns() {
		if i := col.IndexOf(taskID); i != -1 {
			return col.Tasks[i], col.ID, true
		}
	}
	return Task{}, "", false
}

// HasTask reports whether any column holds the task.
func (b Board) HasTask(taskID string) bool {
	_, _, ok := b.FindTask(taskID)
	return ok
}

// TaskCount returns the number of tasks across all columns.
func (b Board) TaskCount() int {
	n := 0
	for _, col := range b.Columns {
		n += col.Len()
	}
	return n
}
