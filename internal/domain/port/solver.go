package port

import (
	"gonum.org/v1/gonum/mat"

	"proctoring-service/pkg/geometry"
)

// PoseSolver решает задачу perspective-n-point: по соответствиям точек
// модели и картинки и матрице камеры возвращает вектор вращения головы.
// Дисторсия линзы считается нулевой.
type PoseSolver interface {
	Solve(object []geometry.Point3, image []geometry.Point2, camera *mat.Dense) (geometry.Vec3, error)
}
