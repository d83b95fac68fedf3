package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// ProctorService ведёт сессии и следит за единственным разрешённым окном.
type ProctorService struct {
	sessions port.SessionRepository
	windows  port.WindowManager
	notifier port.AlertNotifier
	log      *logrus.Logger
}

// NewProctorService создаёт сервис прокторинга. Менеджер окон и нотификатор
// опциональны: без них соответствующие проверки просто выключены.
func NewProctorService(sessions port.SessionRepository, windows port.WindowManager, notifier port.AlertNotifier, log *logrus.Logger) *ProctorService {
	return &ProctorService{
		sessions: sessions,
		windows:  windows,
		notifier: notifier,
		log:      log,
	}
}

// StartSession открывает новую сессию наблюдения.
func (s *ProctorService) StartSession(ctx context.Context, candidate, allowedWindowTitle string) (*entity.Session, error) {
	session := entity.NewSession(uuid.NewString(), candidate, allowedWindowTitle)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// RecordReport учитывает вердикт по кадру: нарушение увеличивает счётчик
// и уходит проктору вместе с кадром.
func (s *ProctorService) RecordReport(ctx context.Context, sessionID string, report *entity.GazeReport, frame []byte) error {
	session, err := s.sessions.ByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if !report.Violation {
		return nil
	}

	session.CountViolation()
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}

	s.notify(ctx, session, string(report.Direction), frame)

	return nil
}

// EnforceFocus сверяет окно переднего плана с разрешённым и завершает чужое.
// Ошибки оконной системы не считаются нарушением. Возвращает true, если
// переключение окна было зафиксировано.
func (s *ProctorService) EnforceFocus(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.sessions.ByID(ctx, sessionID)
	if err != nil {
		return false, err
	}

	if s.windows == nil || session.AllowedWindowTitle == "" {
		return false, nil
	}

	win, err := s.windows.Foreground()
	if err != nil {
		s.log.WithError(err).Warn("focus check: foreground window is not available")
		return false, nil
	}

	if strings.Contains(strings.ToLower(win.Title), strings.ToLower(session.AllowedWindowTitle)) {
		return false, nil
	}

	s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"window":     win.Title,
		"pid":        win.PID,
	}).Warn("focus check: foreground window switched")

	if err := s.windows.Terminate(win); err != nil {
		s.log.WithError(err).Error("focus check: failed to terminate window")
	}

	session.CountViolation()
	if err := s.sessions.Save(ctx, session); err != nil {
		return true, err
	}

	s.notify(ctx, session, fmt.Sprintf("window switch: %s", win.Title), nil)

	return true, nil
}

func (s *ProctorService) notify(ctx context.Context, session *entity.Session, event string, frame []byte) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Notify(ctx, session, event, frame); err != nil {
		s.log.WithError(err).Warn("alert delivery failed")
	}
}
