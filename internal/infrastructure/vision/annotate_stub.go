//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// GoCVAnnotator — заглушка аннотатора (без OpenCV).
type GoCVAnnotator struct{}

// NewGoCVAnnotator создаёт аннотатор-заглушку.
func NewGoCVAnnotator() *GoCVAnnotator {
	return &GoCVAnnotator{}
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (a *GoCVAnnotator) Annotate(imageData []byte, report *entity.GazeReport) ([]byte, error) {
	_ = imageData
	_ = report
	return nil, errors.New("gocv build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.FrameAnnotator = (*GoCVAnnotator)(nil)
