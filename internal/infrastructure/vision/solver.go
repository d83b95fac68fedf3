//go:build gocv
// +build gocv

package vision

import (
	"errors"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"proctoring-service/internal/domain/port"
	"proctoring-service/pkg/geometry"
)

// GoCVPoseSolver решает PnP итеративным методом OpenCV с нулевой дисторсией.
type GoCVPoseSolver struct{}

// NewGoCVPoseSolver создаёт решатель позы.
func NewGoCVPoseSolver() *GoCVPoseSolver {
	return &GoCVPoseSolver{}
}

// Solve возвращает вектор вращения головы по шести соответствиям.
func (s *GoCVPoseSolver) Solve(object []geometry.Point3, image []geometry.Point2, camera *mat.Dense) (geometry.Vec3, error) {
	if len(object) == 0 || len(object) != len(image) {
		return geometry.Vec3{}, errors.New("pose solver: mismatched correspondences")
	}

	objPts := make([]gocv.Point3f, len(object))
	for i, p := range object {
		objPts[i] = gocv.Point3f{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
	}

	imgPts := make([]gocv.Point2f, len(image))
	for i, p := range image {
		imgPts[i] = gocv.Point2f{X: float32(p.X), Y: float32(p.Y)}
	}

	objVec := gocv.NewPoint3fVectorFromPoints(objPts)
	defer objVec.Close()

	imgVec := gocv.NewPoint2fVectorFromPoints(imgPts)
	defer imgVec.Close()

	camMat := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV64F)
	defer camMat.Close()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			camMat.SetDoubleAt(r, c, camera.At(r, c))
		}
	}

	// Дисторсии нет: нулевой вектор 4x1.
	dist := gocv.Zeros(4, 1, gocv.MatTypeCV64F)
	defer dist.Close()

	rvec := gocv.NewMat()
	defer rvec.Close()

	tvec := gocv.NewMat()
	defer tvec.Close()

	if ok := gocv.SolvePnP(objVec, imgVec, camMat, dist, &rvec, &tvec, false, 0); !ok {
		return geometry.Vec3{}, errors.New("pose solver: solution did not converge")
	}

	return geometry.Vec3{
		X: rvec.GetDoubleAt(0, 0),
		Y: rvec.GetDoubleAt(1, 0),
		Z: rvec.GetDoubleAt(2, 0),
	}, nil
}

// Проверка реализации интерфейса
var _ port.PoseSolver = (*GoCVPoseSolver)(nil)
