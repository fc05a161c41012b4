package domain

// SeedBoard returns the sample board every session starts from.
func SeedBoard() Board {
	b := NewBoard()
	b.Columns[ColumnTodo] = Column{
		ID:    ColumnTodo,
		Title: ColumnTitles[ColumnTodo],
		Tasks: []Task{
			NewTask("task-1", "Design the new dashboard layout"),
			NewTask("task-2", "Develop the API for user authentication"),
		},
	}
	b.Columns[ColumnInProgress] = Column{
		ID:    ColumnInProgress,
		Title: ColumnTitles[ColumnInProgress],
		Tasks: []Task{
			NewTask("task-3", "Implement the new data table component"),
		},
	}
	b.Columns[ColumnDone] = Column{
		ID:    ColumnDone,
		Title: ColumnTitles[ColumnDone],
		Tasks: []Task{
			NewTask("task-4", "Set up the initial project structure"),
			NewTask("task-5", "Install and configure Tailwind CSS"),
		},
	}
	return b
}
