package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/infrastructure/storage"
	"proctoring-service/pkg/geometry"
)

type fakeFrameSource struct {
	calls atomic.Int64
	err   error
}

func (f *fakeFrameSource) Next(ctx context.Context) ([]byte, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("frame"), nil
}

func (f *fakeFrameSource) Close() error {
	return nil
}

func TestMonitor_RecordsViolations(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	notifier := &fakeNotifier{}
	proctor := NewProctorService(repo, nil, notifier, testLogger())
	gaze := NewGazeService(
		&fakeLandmarker{frame: poseFrame()},
		&fakeSolver{rvec: geometry.Vec3{Y: deg2rad(0.1)}},
		DefaultThresholds(),
		testLogger(),
	)

	ctx := context.Background()
	session, err := proctor.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	source := &fakeFrameSource{}
	monitor := NewMonitor(gaze, proctor, source, nil, session.ID, 2*time.Millisecond, testLogger())

	runCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	require.NoError(t, monitor.Run(runCtx))

	require.Positive(t, source.calls.Load())
	require.Positive(t, session.Violations)
	require.NotEmpty(t, notifier.events)
	require.Equal(t, "looking_right", notifier.events[0])
}

type fakeAnnotator struct {
	annotated []byte
	err       error
}

func (f *fakeAnnotator) Annotate(frame []byte, report *entity.GazeReport) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.annotated, nil
}

func TestMonitor_AnnotatorErrorKeepsOriginalFrame(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	notifier := &fakeNotifier{}
	proctor := NewProctorService(repo, nil, notifier, testLogger())
	gaze := NewGazeService(
		&fakeLandmarker{frame: poseFrame()},
		&fakeSolver{rvec: geometry.Vec3{Y: deg2rad(0.1)}},
		DefaultThresholds(),
		testLogger(),
	)

	ctx := context.Background()
	session, err := proctor.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	// Сломанный аннотатор (сборка без OpenCV) не должен останавливать
	// цикл и не должен терять кадр: проктору уходит оригинал.
	annotator := &fakeAnnotator{err: errors.New("gocv build tag is not enabled")}
	monitor := NewMonitor(gaze, proctor, &fakeFrameSource{}, annotator, session.ID, 2*time.Millisecond, testLogger())

	runCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	require.NoError(t, monitor.Run(runCtx))
	require.Positive(t, session.Violations)
	require.NotEmpty(t, notifier.frames)
	require.Equal(t, []byte("frame"), notifier.frames[0])
}

func TestMonitor_AnnotatedFrameReachesNotifier(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	notifier := &fakeNotifier{}
	proctor := NewProctorService(repo, nil, notifier, testLogger())
	gaze := NewGazeService(
		&fakeLandmarker{frame: poseFrame()},
		&fakeSolver{rvec: geometry.Vec3{Y: deg2rad(0.1)}},
		DefaultThresholds(),
		testLogger(),
	)

	ctx := context.Background()
	session, err := proctor.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	annotator := &fakeAnnotator{annotated: []byte("annotated")}
	monitor := NewMonitor(gaze, proctor, &fakeFrameSource{}, annotator, session.ID, 2*time.Millisecond, testLogger())

	runCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	require.NoError(t, monitor.Run(runCtx))
	require.NotEmpty(t, notifier.frames)
	require.Equal(t, []byte("annotated"), notifier.frames[0])
}

func TestMonitor_FrameErrorsDoNotStopTheLoop(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	proctor := NewProctorService(repo, nil, nil, testLogger())
	gaze := NewGazeService(&fakeLandmarker{}, &fakeSolver{}, DefaultThresholds(), testLogger())

	ctx := context.Background()
	session, err := proctor.StartSession(ctx, "ivanov", "")
	require.NoError(t, err)

	source := &fakeFrameSource{err: errors.New("camera is gone")}
	monitor := NewMonitor(gaze, proctor, source, nil, session.ID, 2*time.Millisecond, testLogger())

	runCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()

	require.NoError(t, monitor.Run(runCtx))
	require.Greater(t, source.calls.Load(), int64(1))
	require.Zero(t, session.Violations)
}
