package port

import "context"

// FrameSource — источник закодированных кадров для цикла монитора.
type FrameSource interface {
	// Next возвращает очередной кадр.
	Next(ctx context.Context) ([]byte, error)

	// Close освобождает камеру.
	Close() error
}
