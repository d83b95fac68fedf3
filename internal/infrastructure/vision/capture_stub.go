//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"proctoring-service/internal/domain/port"
)

// WebcamSource — заглушка источника кадров (без OpenCV).
type WebcamSource struct{}

// NewWebcamSource возвращает ошибку, если сборка без тега gocv.
func NewWebcamSource(deviceID int) (*WebcamSource, error) {
	_ = deviceID
	return nil, errors.New("gocv build tag is not enabled")
}

// Next возвращает ошибку, если сборка без тега gocv.
func (s *WebcamSource) Next(ctx context.Context) ([]byte, error) {
	_ = ctx
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не освобождает.
func (s *WebcamSource) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*WebcamSource)(nil)
