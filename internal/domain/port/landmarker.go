package port

import (
	"context"

	"proctoring-service/internal/domain/entity"
)

// FaceLandmarker — детектор точек лица.
// Это единственный разделяемый ресурс с состоянием: реализация обязана
// сериализовать доступ — одновременно обрабатывается один кадр.
type FaceLandmarker interface {
	// Detect декодирует кадр и возвращает точки первого найденного лица.
	// nil без ошибки означает, что лиц на кадре нет.
	Detect(ctx context.Context, imageData []byte) (*entity.FaceFrame, error)
}
