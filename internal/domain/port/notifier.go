package port

import (
	"context"

	"proctoring-service/internal/domain/entity"
)

// AlertNotifier доставляет проктору уведомление о нарушении.
type AlertNotifier interface {
	// Notify отправляет событие по сессии; frame может быть пустым.
	Notify(ctx context.Context, session *entity.Session, event string, frame []byte) error
}
