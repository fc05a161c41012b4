package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.Columns, 3)
	for _, id := range ColumnOrder {
		col, ok := b.Column(id)
		require.True(t, ok)
		assert.Equal(t, id, col.ID)
		assert.Equal(t, ColumnTitles[id], col.Title)
		assert.Empty(t, col.Tasks)
	}
	assert.Equal(t, 0, b.TaskCount())
}

func TestSeedBoard(t *testing.T) {
	b := SeedBoard()

	assert.Equal(t, 5, b.TaskCount())
	assert.Equal(t, 2, b.Columns[ColumnTodo].Len())

	task, col, ok := b.FindTask("task-3")
	require.True(t, ok)
	assert.Equal(t, ColumnInProgress, col)
	assert.Equal(t, "Implement the new data table component", task.Content)
}

func TestBoard_Clone(t *testing.T) {
	original := SeedBoard()
	clone := original.Clone()

	todo := clone.Columns[ColumnTodo]
	todo.Tasks[0].Content = "changed"
	todo.Tasks = append(todo.Tasks, NewTask("task-9", "extra"))
	clone.Columns[ColumnTodo] = todo

	assert.Equal(t, "Design the new dashboard layout", original.Columns[ColumnTodo].Tasks[0].Content)
	assert.Len(t, original.Columns[ColumnTodo].Tasks, 2)
	assert.Equal(t, 6, clone.TaskCount())
}

func TestBoard_FindTask(t *testing.T) {
	b := SeedBoard()

	tests := []struct {
		name       string
		taskID     string
		wantColumn ColumnID
		wantFound  bool
	}{
		{name: "task in first column", taskID: "task-1", wantColumn: ColumnTodo, wantFound: true},
		{name: "task in last column", taskID: "task-5", wantColumn: ColumnDone, wantFound: true},
		{name: "unknown task", taskID: "task-99", wantFound: false},
		{name: "column id is not a task", taskID: "todo", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, col, ok := b.FindTask(tt.taskID)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantColumn, col)
			assert.Equal(t, tt.wantFound, b.HasTask(tt.taskID))
		})
	}
}

func TestColumn_IndexOf(t *testing.T) {
	col := SeedBoard().Columns[ColumnDone]

	assert.Equal(t, 0, col.IndexOf("task-4"))
	assert.Equal(t, 1, col.IndexOf("task-5"))
	assert.Equal(t, -1, col.IndexOf("task-1"))
}

func TestIsKnownColumn(t *testing.T) {
	assert.True(t, IsKnownColumn("todo"))
	assert.True(t, IsKnownColumn("inProgress"))
	assert.True(t, IsKnownColumn("done"))
	assert.False(t, IsKnownColumn("backlog"))
	assert.False(t, IsKnownColumn(""))
}
