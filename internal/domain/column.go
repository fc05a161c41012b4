package domain

// ColumnID names one of the fixed board columns.
type ColumnID string

const (
	ColumnTodo       ColumnID = "todo"
	ColumnInProgress ColumnID = "inProgress"
	ColumnDone       ColumnID = "done"
)

// ColumnOrder is the left-to-right display order of the columns.
var ColumnOrder = []ColumnID{ColumnTodo, ColumnInProgress, ColumnDone}

// ColumnTitles holds the display title of each column.
var ColumnTitles = map[ColumnID]string{
	ColumnTodo:       "To Do",
	ColumnInProgress: "In Progress",
	ColumnDone:       "Done",
}

// Column is an ordered bucket of tasks. Index 0 is the top of the column.
type Column struct {
	ID    ColumnID `json:"id"`
	Title string   `json:"title"`
	Tasks []Task   `json:"tasks"`
}

// IndexOf returns the position of the task with the given id, or -1.
func (c Column) IndexOf(taskID string) int {
	for i, t := range c.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// Len returns the number of tasks in the column.
func (c Column) Len() int {
	return len(c.Tasks)
}

// Clone returns a copy of the column that shares no task storage.
func (c Column) Clone() Column {
	tasks := make([]Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	return Column{ID: c.ID, Title: c.Title, Tasks: tasks}
}

// IsKnownColumn reports whether id names one of the fixed columns.
func IsKnownColumn(id string) bool {
	_, ok := ColumnTitles[ColumnID(id)]
	return ok
}
