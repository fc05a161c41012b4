package domain

// Task is a single card on the board.
type Task struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// NewTask creates a new Task with the given id and content.
func NewTask(id, content string) Task {
	return Task{
		ID:      id,
		Content: content,
	}
}
