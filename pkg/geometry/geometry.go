// Package geometry содержит чистую математику оценки позы головы:
// матрицу камеры, формулу Родрига и RQ-разложение вращения.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point2 — точка на изображении в пикселях.
type Point2 struct {
	X, Y float64
}

// Point3 — точка модели в трёхмерных координатах.
type Point3 struct {
	X, Y, Z float64
}

// Vec3 — вектор вращения (ось * угол).
type Vec3 struct {
	X, Y, Z float64
}

// CameraMatrix строит матрицу внутренних параметров камеры по размеру кадра.
// Фокусное расстояние принимается равным ширине кадра, калибровки нет.
//
// Внимание: главная точка задана как (height/2, width/2) — именно в этом
// порядке. Пороги классификации откалиброваны под такую матрицу, менять
// раскладку без пересчёта эталонных углов нельзя.
func CameraMatrix(width, height int) *mat.Dense {
	f := float64(width)

	return mat.NewDense(3, 3, []float64{
		f, 0, float64(height) / 2,
		0, f, float64(width) / 2,
		0, 0, 1,
	})
}

// Rodrigues переводит вектор вращения в матрицу вращения 3x3.
func Rodrigues(r Vec3) *mat.Dense {
	theta := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z)
	if theta < 1e-12 {
		return mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
	}

	kx, ky, kz := r.X/theta, r.Y/theta, r.Z/theta
	c := math.Cos(theta)
	s := math.Sin(theta)
	v := 1 - c

	return mat.NewDense(3, 3, []float64{
		c + kx*kx*v, kx*ky*v - kz*s, kx*kz*v + ky*s,
		ky*kx*v + kz*s, c + ky*ky*v, ky*kz*v - kx*s,
		kz*kx*v - ky*s, kz*ky*v + kx*s, c + kz*kz*v,
	})
}
