package entity

// Direction — дискретное состояние внимания по одному кадру.
type Direction string

const (
	DirectionFocused      Direction = "focused"
	DirectionLookingLeft  Direction = "looking_left"
	DirectionLookingRight Direction = "looking_right"
	DirectionLookingUp    Direction = "looking_up"
	DirectionLookingDown  Direction = "looking_down"
	DirectionNoFace       Direction = "no_face"
	DirectionError        Direction = "error"
)

// GazeReport — итог классификации кадра вместе с углами, которые её дали.
type GazeReport struct {
	Violation bool
	Direction Direction
	Yaw       float64
	Pitch     float64
}

// NoFaceReport — кадр без лица: нарушения нет, углы нулевые.
func NoFaceReport() *GazeReport {
	return &GazeReport{Direction: DirectionNoFace}
}

// ErrorReport — необрабатываемый кадр: нарушением не считается.
func ErrorReport() *GazeReport {
	return &GazeReport{Direction: DirectionError}
}
