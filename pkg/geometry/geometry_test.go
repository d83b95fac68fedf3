package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCameraMatrix_Layout(t *testing.T) {
	m := CameraMatrix(640, 480)

	require.Equal(t, 640.0, m.At(0, 0))
	require.Equal(t, 640.0, m.At(1, 1))
	require.Equal(t, 1.0, m.At(2, 2))

	// Главная точка намеренно разложена как (height/2, width/2):
	// менять её местами нельзя, пороги посчитаны под эту раскладку.
	require.Equal(t, 240.0, m.At(0, 2))
	require.Equal(t, 320.0, m.At(1, 2))

	require.Equal(t, 0.0, m.At(0, 1))
	require.Equal(t, 0.0, m.At(1, 0))
	require.Equal(t, 0.0, m.At(2, 0))
	require.Equal(t, 0.0, m.At(2, 1))
}

func TestCameraMatrix_RecomputedPerFrame(t *testing.T) {
	a := CameraMatrix(640, 480)
	b := CameraMatrix(1280, 720)

	require.Equal(t, 640.0, a.At(0, 0))
	require.Equal(t, 1280.0, b.At(0, 0))
	require.Equal(t, 360.0, b.At(0, 2))
	require.Equal(t, 640.0, b.At(1, 2))
}

func TestRodrigues_ZeroVector(t *testing.T) {
	r := Rodrigues(Vec3{})

	require.True(t, mat.EqualApprox(r, eye(), 1e-15))
}

func TestRodrigues_AxisRotations(t *testing.T) {
	theta := 0.3
	c, s := math.Cos(theta), math.Sin(theta)

	rx := Rodrigues(Vec3{X: theta})
	require.True(t, mat.EqualApprox(rx, mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}), 1e-12))

	ry := Rodrigues(Vec3{Y: theta})
	require.True(t, mat.EqualApprox(ry, mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}), 1e-12))

	rz := Rodrigues(Vec3{Z: theta})
	require.True(t, mat.EqualApprox(rz, mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}), 1e-12))
}

func TestRodrigues_Orthonormal(t *testing.T) {
	r := Rodrigues(Vec3{X: 0.2, Y: -0.4, Z: 0.1})

	var rtr mat.Dense
	rtr.Mul(r.T(), r)

	require.True(t, mat.EqualApprox(&rtr, eye(), 1e-12))
	require.InDelta(t, 1.0, mat.Det(r), 1e-12)
}

func TestRQDecompose_Identity(t *testing.T) {
	angles := RQDecompose(eye())

	require.InDelta(t, 0, angles[0], 1e-5)
	require.InDelta(t, 0, angles[1], 1e-5)
	require.InDelta(t, 0, angles[2], 1e-5)
}

func TestRQDecompose_AxisAngles(t *testing.T) {
	tests := []struct {
		name string
		rvec Vec3
		want [3]float64
	}{
		{"x positive", Vec3{X: deg2rad(12)}, [3]float64{12, 0, 0}},
		{"x negative", Vec3{X: deg2rad(-7)}, [3]float64{-7, 0, 0}},
		{"y positive", Vec3{Y: deg2rad(25)}, [3]float64{0, 25, 0}},
		{"y negative", Vec3{Y: deg2rad(-25)}, [3]float64{0, -25, 0}},
		{"z positive", Vec3{Z: deg2rad(40)}, [3]float64{0, 0, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angles := RQDecompose(Rodrigues(tt.rvec))

			require.InDelta(t, tt.want[0], angles[0], 1e-5)
			require.InDelta(t, tt.want[1], angles[1], 1e-5)
			require.InDelta(t, tt.want[2], angles[2], 1e-5)
		})
	}
}

func TestRQDecompose_SmallCombinedRotation(t *testing.T) {
	// Малые повороты почти коммутируют: оба угла должны читаться независимо.
	angles := RQDecompose(Rodrigues(Vec3{X: deg2rad(0.06), Y: deg2rad(0.1)}))

	require.InDelta(t, 0.06, angles[0], 1e-4)
	require.InDelta(t, 0.1, angles[1], 1e-4)
}

func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
