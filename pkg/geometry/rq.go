package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const dblEpsilon = 2.220446049250313e-16

// RQDecompose раскладывает матрицу 3x3 в произведение верхнетреугольной и
// ортогональной матриц вращениями Гивенса вокруг осей x, y, z и возвращает
// углы Эйлера в градусах. Порядок шагов, защита через DBL_EPSILON, снятие
// неоднозначности знака и знаковые соглашения углов повторяют RQDecomp3x3
// из OpenCV — углы должны совпадать с ним бит в бит.
func RQDecompose(m *mat.Dense) [3]float64 {
	// Qx обнуляет элемент (2,1).
	s := m.At(2, 1)
	c := m.At(2, 2)
	c, s = givens(c, s)
	qx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})

	var m1 mat.Dense
	m1.Mul(m, qx)

	// Qy обнуляет элемент (2,0).
	s = -m1.At(2, 0)
	c = m1.At(2, 2)
	c, s = givens(c, s)
	qy := mat.NewDense(3, 3, []float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})

	var m2 mat.Dense
	m2.Mul(&m1, qy)

	// Qz обнуляет элемент (1,0).
	s = m2.At(1, 0)
	c = m2.At(1, 1)
	c, s = givens(c, s)
	qz := mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})

	var r mat.Dense
	r.Mul(&m2, qz)

	// Диагональ верхнетреугольной части, кроме последнего элемента, должна
	// быть неотрицательной; при необходимости доворачиваем на 180 градусов.
	switch {
	case r.At(0, 0) < 0 && r.At(1, 1) < 0:
		// Разворот вокруг z.
		qz.Set(0, 0, -qz.At(0, 0))
		qz.Set(0, 1, -qz.At(0, 1))
		qz.Set(1, 0, -qz.At(1, 0))
		qz.Set(1, 1, -qz.At(1, 1))
	case r.At(0, 0) < 0:
		// Разворот вокруг y.
		qz.CloneFrom(qz.T())
		qy.Set(0, 0, -qy.At(0, 0))
		qy.Set(0, 2, -qy.At(0, 2))
		qy.Set(2, 0, -qy.At(2, 0))
		qy.Set(2, 2, -qy.At(2, 2))
	case r.At(1, 1) < 0:
		// Разворот вокруг x.
		qz.CloneFrom(qz.T())
		qy.CloneFrom(qy.T())
		qx.Set(1, 1, -qx.At(1, 1))
		qx.Set(1, 2, -qx.At(1, 2))
		qx.Set(2, 1, -qx.At(2, 1))
		qx.Set(2, 2, -qx.At(2, 2))
	}

	const deg = 180 / math.Pi

	return [3]float64{
		math.Acos(qx.At(1, 1)) * sign(qx.At(1, 2)) * deg,
		math.Acos(qy.At(0, 0)) * sign(qy.At(2, 0)) * deg,
		math.Acos(qz.At(0, 0)) * sign(qz.At(0, 1)) * deg,
	}
}

// givens нормирует пару (c, s) до косинуса и синуса угла поворота.
func givens(c, s float64) (float64, float64) {
	z := 1 / math.Sqrt(c*c+s*s+dblEpsilon)
	return c * z, s * z
}

func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}
