package api

import "kanban/internal/domain"

// NoticeLevel is the severity of a Notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short user-facing message about the last action.
type Notice struct {
	Level   NoticeLevel
	Title   string
	Message string
}

func (n Notice) String() string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + ": " + n.Message
}

// Event is delivered to subscribers after every mutation or rejected
// action. Changed is false for notice-only events.
type Event struct {
	Board   domain.Board
	Changed bool
	Notice  *Notice
}
