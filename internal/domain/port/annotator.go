package port

import "proctoring-service/internal/domain/entity"

// FrameAnnotator наносит вердикт на кадр. Чисто презентационный слой:
// классификация от него не зависит.
type FrameAnnotator interface {
	Annotate(imageData []byte, report *entity.GazeReport) ([]byte, error)
}
