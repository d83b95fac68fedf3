package entity

import "time"

// Session — одна прокторинг-сессия наблюдаемого кандидата.
type Session struct {
	ID                 string    // идентификатор сессии
	Candidate          string    // имя кандидата
	AllowedWindowTitle string    // единственное разрешённое окно (пусто — без контроля окон)
	Violations         int       // счётчик зафиксированных нарушений
	StartedAt          time.Time // начало сессии
}

// NewSession создаёт сессию с нулевым счётчиком нарушений.
func NewSession(id, candidate, allowedWindowTitle string) *Session {
	return &Session{
		ID:                 id,
		Candidate:          candidate,
		AllowedWindowTitle: allowedWindowTitle,
		StartedAt:          time.Now(),
	}
}

// CountViolation фиксирует очередное нарушение.
func (s *Session) CountViolation() {
	s.Violations++
}
