package api

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"kanban/internal/board"
	"kanban/internal/domain"
	"kanban/internal/errors"
	"kanban/internal/theme"
	"kanban/internal/validation"
)

// API is the board session used by the interactive front ends. It owns
// the current board and the drag in progress. Calls must be serialized.
type API interface {
	// Board state
	Board() domain.Board
	Dragging() (string, bool)
	Subscribe(fn func(Event)) func()

	// Gestures
	DragStart(taskID string) error
	DragEnd(overID string) (bool, error)
	CancelDrag() bool
	Move(taskID, overID string) (bool, error)

	// Task operations
	AddTask(columnID, content string) (domain.Task, error)
	UpdateTask(taskID, content string) (bool, error)
	DeleteTask(taskID string) error

	// Theme
	Theme() theme.Theme
	SetTheme(ctx context.Context, t theme.Theme) error
	ToggleTheme(ctx context.Context) (theme.Theme, error)
	ResetTheme(ctx context.Context) (theme.Theme, error)
	Preferences(ctx context.Context) ([]domain.Preference, error)
}

// Options configures a new session. Zero fields get defaults: a uuid
// engine, the seed board, the default theme and no persistence.
type Options struct {
	Engine    *board.Engine
	Validator *validation.TaskValidator
	Themes    *theme.Store
	Theme     theme.Theme
	Board     *domain.Board
	Logger    zerolog.Logger
}

type session struct {
	engine      *board.Engine
	validator   *validation.TaskValidator
	themes      *theme.Store
	mapper      *domain.Mapper
	logger      zerolog.Logger
	theme       theme.Theme
	board       domain.Board
	gesture     board.Gesture
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Event)
}

// New creates a new board session.
func New(opts Options) API {
	s := &session{
		engine:      opts.Engine,
		validator:   opts.Validator,
		themes:      opts.Themes,
		mapper:      domain.NewMapper(),
		logger:      opts.Logger,
		theme:       opts.Theme,
	}
	if s.engine == nil {
		s.engine = board.NewEngine(board.WithLogger(opts.Logger))
	}
	if s.validator == nil {
		s.validator = validation.NewTaskValidator()
	}
	if s.theme != theme.Light && s.theme != theme.Dark {
		s.theme = theme.Default
	}
	if opts.Board != nil {
		s.board = opts.Board.Clone()
	} else {
		s.board = domain.SeedBoard()
	}
	return s
}

func (s *session) Board() domain.Board {
	return s.board.Clone()
}

func (s *session) Dragging() (string, bool) {
	return s.gesture.Active()
}

// Subscribe registers fn for events and returns a function removing it.
// Subscribers are called in the order they subscribed.
func (s *session) Subscribe(fn func(Event)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *session) DragStart(taskID string) error {
	if err := s.validator.ValidateTaskID(taskID); err != nil {
		return err
	}
	if active, ok := s.gesture.Active(); ok {
		return errors.NewDragInProgressError(active)
	}
	if !s.gesture.Start(s.board, taskID) {
		return errors.NewTaskNotFoundError(taskID)
	}
	s.logger.Debug().Str("task", taskID).Msg("drag started")
	return nil
}

func (s *session) DragEnd(overID string) (bool, error) {
	active, ok := s.gesture.Active()
	if !ok {
		return false, errors.NewNoDragError()
	}
	op, ok := s.gesture.End(overID)
	if !ok {
		s.logger.Debug().Str("task", active).Msg("drag ended without target")
		return false, nil
	}
	return s.drop(op), nil
}

func (s *session) CancelDrag() bool {
	active, _ := s.gesture.Active()
	if !s.gesture.Cancel() {
		return false
	}
	s.logger.Debug().Str("task", active).Msg("drag cancelled")
	return true
}

func (s *session) Move(taskID, overID string) (bool, error) {
	if err := s.DragStart(taskID); err != nil {
		return false, err
	}
	return s.DragEnd(overID)
}

func (s *session) drop(op board.DropOp) bool {
	from, _ := s.engine.LocateColumn(s.board, op.Active)
	if !s.apply(op) {
		return false
	}
	to, _ := s.engine.LocateColumn(s.board, op.Active)
	if from != to {
		s.notify(&Notice{Level: NoticeInfo, Title: "Task moved", Message: "to " + domain.ColumnTitles[to]}, true)
	} else {
		s.notify(nil, true)
	}
	return true
}

func (s *session) AddTask(columnID, content string) (domain.Task, error) {
	if err := s.validator.ValidateAdd(columnID, content); err != nil {
		s.warn("Task not added", err)
		return domain.Task{}, err
	}
	col := domain.ColumnID(columnID)
	before := s.board.Columns[col].Len()
	if !s.apply(board.AddOp{Column: col, Content: content}) {
		err := errors.NewInvalidInputError("task", content, "could not be added")
		s.warn("Task not added", err)
		return domain.Task{}, err
	}

	added := s.board.Columns[col].Tasks[before]
	s.notify(&Notice{Level: NoticeSuccess, Title: "Task added", Message: fmt.Sprintf("%s in %s", added.ID, domain.ColumnTitles[col])}, true)
	return added, nil
}

func (s *session) UpdateTask(taskID, content string) (bool, error) {
	if err := s.validator.ValidateTaskID(taskID); err != nil {
		return false, err
	}
	if err := s.validator.ValidateContent(content); err != nil {
		s.warn("Task not updated", err)
		return false, err
	}
	if !s.board.HasTask(taskID) {
		return false, errors.NewTaskNotFoundError(taskID)
	}
	if !s.apply(board.UpdateOp{TaskID: taskID, Content: content}) {
		return false, nil
	}
	s.notify(&Notice{Level: NoticeSuccess, Title: "Task updated"}, true)
	return true, nil
}

func (s *session) DeleteTask(taskID string) error {
	if err := s.validator.ValidateTaskID(taskID); err != nil {
		return err
	}
	if !s.board.HasTask(taskID) {
		return errors.NewTaskNotFoundError(taskID)
	}
	if active, ok := s.gesture.Active(); ok && active == taskID {
		s.gesture.Cancel()
	}
	s.apply(board.DeleteOp{TaskID: taskID})
	s.notify(&Notice{Level: NoticeInfo, Title: "Task deleted"}, true)
	return nil
}

func (s *session) Theme() theme.Theme {
	return s.theme
}

func (s *session) SetTheme(ctx context.Context, t theme.Theme) error {
	if _, err := theme.Parse(string(t)); err != nil {
		return errors.NewBadThemeError(string(t), "must be light or dark")
	}
	if s.themes != nil {
		if err := s.themes.Save(ctx, t); err != nil {
			return s.themeFailed(err)
		}
	}
	s.themeChanged(t)
	return nil
}

func (s *session) ToggleTheme(ctx context.Context) (theme.Theme, error) {
	next := s.theme.Toggle()
	if s.themes != nil {
		var err error
		if next, err = s.themes.Toggle(ctx, s.theme); err != nil {
			return s.theme, s.themeFailed(err)
		}
	}
	s.themeChanged(next)
	return next, nil
}

// ResetTheme removes the stored theme and switches to the fallback.
func (s *session) ResetTheme(ctx context.Context) (theme.Theme, error) {
	next := theme.Default
	if s.themes != nil {
		var err error
		if next, err = s.themes.Reset(ctx); err != nil {
			return s.theme, s.themeFailed(err)
		}
	}
	s.themeChanged(next)
	return next, nil
}

func (s *session) themeChanged(t theme.Theme) {
	s.theme = t
	s.notify(&Notice{Level: NoticeInfo, Title: "Theme", Message: t.String()}, false)
}

func (s *session) themeFailed(err error) error {
	s.notify(&Notice{Level: NoticeError, Title: "Theme not saved", Message: errors.GetUserMessage(err)}, false)
	return err
}

// Preferences lists the persisted settings. Without a store it is empty.
func (s *session) Preferences(ctx context.Context) ([]domain.Preference, error) {
	if s.themes == nil {
		return []domain.Preference{}, nil
	}
	settings, err := s.themes.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Preference.FromDatabaseSlice(settings), nil
}

// apply runs op and replaces the board when it changed.
func (s *session) apply(op board.Operation) bool {
	res := s.engine.Apply(s.board, op)
	if !res.Changed {
		s.logger.Debug().Str("op", string(op.Kind())).Stringer("gesture", s.gesture.State()).Msg("no change")
		return false
	}
	s.board = res.Board
	return true
}

func (s *session) warn(title string, err error) {
	msg := err.Error()
	if ve, ok := err.(*validation.ValidationError); ok {
		msg = ve.GetUserFriendlyMessage()
	}
	s.notify(&Notice{Level: NoticeWarning, Title: title, Message: msg}, false)
}

func (s *session) notify(n *Notice, changed bool) {
	if len(s.subscribers) == 0 {
		return
	}
	ev := Event{Board: s.board.Clone(), Changed: changed, Notice: n}
	for _, sub := range s.subscribers {
		sub.fn(ev)
	}
}
