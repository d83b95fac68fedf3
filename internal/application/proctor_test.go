package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/infrastructure/storage"
)

type fakeWindows struct {
	foreground entity.Window
	err        error

	terminated []entity.Window
}

func (f *fakeWindows) Foreground() (entity.Window, error) {
	return f.foreground, f.err
}

func (f *fakeWindows) Terminate(w entity.Window) error {
	f.terminated = append(f.terminated, w)
	return nil
}

type fakeNotifier struct {
	events []string
	frames [][]byte
	err    error
}

func (f *fakeNotifier) Notify(ctx context.Context, session *entity.Session, event string, frame []byte) error {
	f.events = append(f.events, event)
	f.frames = append(f.frames, frame)
	return f.err
}

func TestProctorService_StartSession(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	svc := NewProctorService(repo, nil, nil, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "Exam Browser")
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.Equal(t, "ivanov", session.Candidate)
	require.Zero(t, session.Violations)

	stored, err := repo.ByID(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session, stored)
}

func TestProctorService_RecordReport(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	notifier := &fakeNotifier{}
	svc := NewProctorService(repo, nil, notifier, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	// Сфокусированный кадр счётчик не трогает.
	err = svc.RecordReport(ctx, session.ID, &entity.GazeReport{Direction: entity.DirectionFocused}, nil)
	require.NoError(t, err)
	require.Zero(t, session.Violations)
	require.Empty(t, notifier.events)

	violation := &entity.GazeReport{Violation: true, Direction: entity.DirectionLookingLeft, Yaw: -36}
	err = svc.RecordReport(ctx, session.ID, violation, []byte("frame"))
	require.NoError(t, err)
	require.Equal(t, 1, session.Violations)
	require.Equal(t, []string{"looking_left"}, notifier.events)
	require.Equal(t, []byte("frame"), notifier.frames[0])
}

func TestProctorService_RecordReport_UnknownSession(t *testing.T) {
	svc := NewProctorService(storage.NewMemorySessionRepository(), nil, nil, testLogger())

	err := svc.RecordReport(context.Background(), "missing", &entity.GazeReport{Violation: true}, nil)
	require.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestProctorService_RecordReport_NotifierFailureIsNotEscalated(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	notifier := &fakeNotifier{err: errors.New("chat unreachable")}
	svc := NewProctorService(repo, nil, notifier, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	err = svc.RecordReport(ctx, session.ID, &entity.GazeReport{Violation: true, Direction: entity.DirectionLookingUp}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, session.Violations)
}

func TestProctorService_EnforceFocus_SwitchedWindow(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	windows := &fakeWindows{foreground: entity.Window{ID: 7, PID: 4242, Title: "YouTube — Mozilla Firefox"}}
	notifier := &fakeNotifier{}
	svc := NewProctorService(repo, windows, notifier, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "Exam Browser")
	require.NoError(t, err)

	switched, err := svc.EnforceFocus(ctx, session.ID)
	require.NoError(t, err)
	require.True(t, switched)
	require.Equal(t, 1, session.Violations)
	require.Len(t, windows.terminated, 1)
	require.Equal(t, 4242, windows.terminated[0].PID)
	require.Contains(t, notifier.events[0], "YouTube")
}

func TestProctorService_EnforceFocus_AllowedWindow(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	// Сравнение без учёта регистра и по подстроке: у заголовков бывают суффиксы.
	windows := &fakeWindows{foreground: entity.Window{Title: "exam browser — Session 42"}}
	svc := NewProctorService(repo, windows, nil, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "Exam Browser")
	require.NoError(t, err)

	switched, err := svc.EnforceFocus(ctx, session.ID)
	require.NoError(t, err)
	require.False(t, switched)
	require.Zero(t, session.Violations)
	require.Empty(t, windows.terminated)
}

func TestProctorService_EnforceFocus_WindowErrorIsFailOpen(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	windows := &fakeWindows{err: errors.New("no display")}
	svc := NewProctorService(repo, windows, nil, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "Exam Browser")
	require.NoError(t, err)

	switched, err := svc.EnforceFocus(ctx, session.ID)
	require.NoError(t, err)
	require.False(t, switched)
	require.Zero(t, session.Violations)
}

func TestProctorService_EnforceFocus_DisabledWithoutAllowedTitle(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	windows := &fakeWindows{foreground: entity.Window{Title: "anything"}}
	svc := NewProctorService(repo, windows, nil, testLogger())
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	switched, err := svc.EnforceFocus(ctx, session.ID)
	require.NoError(t, err)
	require.False(t, switched)
}
