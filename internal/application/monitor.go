package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"proctoring-service/internal/domain/port"
)

// Monitor — однопоточный цикл наблюдения: кадр, проверка окна, классификация,
// учёт. Кооперативный опрос по таймеру до отмены контекста.
type Monitor struct {
	gaze      *GazeService
	proctor   *ProctorService
	frames    port.FrameSource
	annotator port.FrameAnnotator
	sessionID string
	interval  time.Duration
	log       *logrus.Logger
}

// NewMonitor собирает цикл наблюдения. Аннотатор опционален.
func NewMonitor(gaze *GazeService, proctor *ProctorService, frames port.FrameSource, annotator port.FrameAnnotator, sessionID string, interval time.Duration, log *logrus.Logger) *Monitor {
	return &Monitor{
		gaze:      gaze,
		proctor:   proctor,
		frames:    frames,
		annotator: annotator,
		sessionID: sessionID,
		interval:  interval,
		log:       log,
	}
}

// Run крутит цикл опроса до отмены контекста. Ошибки отдельных шагов
// логируются, цикл продолжается.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if _, err := m.proctor.EnforceFocus(ctx, m.sessionID); err != nil {
			m.log.WithError(err).Warn("monitor: focus check failed")
		}

		frame, err := m.frames.Next(ctx)
		if err != nil {
			m.log.WithError(err).Warn("monitor: frame capture failed")
			continue
		}

		report := m.gaze.AnalyzeHeadPose(ctx, frame)

		if m.annotator != nil {
			annotated, err := m.annotator.Annotate(frame, report)
			if err != nil {
				m.log.WithError(err).Warn("monitor: frame annotation failed")
			} else {
				frame = annotated
			}
		}

		if err := m.proctor.RecordReport(ctx, m.sessionID, report, frame); err != nil {
			m.log.WithError(err).Warn("monitor: failed to record report")
		}

		m.log.WithFields(logrus.Fields{
			"direction": report.Direction,
			"yaw":       report.Yaw,
			"pitch":     report.Pitch,
			"violation": report.Violation,
		}).Info("frame analyzed")
	}
}
