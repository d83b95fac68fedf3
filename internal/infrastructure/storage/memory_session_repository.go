package storage

import (
	"context"
	"errors"
	"sync"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// ErrSessionNotFound возвращается, когда сессии нет в хранилище.
var ErrSessionNotFound = errors.New("session not found")

// MemorySessionRepository — in-memory хранилище сессий.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*entity.Session),
	}
}

// Save сохраняет сессию.
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return nil
}

// ByID возвращает сессию по идентификатору.
func (r *MemorySessionRepository) ByID(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
