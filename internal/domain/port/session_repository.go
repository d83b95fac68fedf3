package port

import (
	"context"

	"proctoring-service/internal/domain/entity"
)

// SessionRepository — хранилище прокторинг-сессий.
type SessionRepository interface {
	// Save сохраняет сессию.
	Save(ctx context.Context, session *entity.Session) error

	// ByID возвращает сессию по идентификатору.
	ByID(ctx context.Context, id string) (*entity.Session, error)
}
