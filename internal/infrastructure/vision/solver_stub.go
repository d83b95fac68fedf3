//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"proctoring-service/internal/domain/port"
	"proctoring-service/pkg/geometry"
)

// GoCVPoseSolver — заглушка решателя позы (без OpenCV).
type GoCVPoseSolver struct{}

// NewGoCVPoseSolver создаёт решатель-заглушку.
func NewGoCVPoseSolver() *GoCVPoseSolver {
	return &GoCVPoseSolver{}
}

// Solve возвращает ошибку, если сборка без тега gocv.
func (s *GoCVPoseSolver) Solve(object []geometry.Point3, image []geometry.Point2, camera *mat.Dense) (geometry.Vec3, error) {
	_ = object
	_ = image
	_ = camera
	return geometry.Vec3{}, errors.New("gocv build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.PoseSolver = (*GoCVPoseSolver)(nil)
