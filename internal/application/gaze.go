package app

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
	"proctoring-service/pkg/geometry"
)

// angleScale — множитель углов после RQ-разложения. Пороги откалиброваны
// вместе с ним, менять по отдельности нельзя.
const angleScale = 360

// Thresholds — пороги классификации. Именованная структура вместо магических
// чисел по веткам: в тестах подставляются альтернативные значения.
type Thresholds struct {
	NoseOffset   float64 // допустимое смещение носа от середины глаз, доли ширины кадра
	YawDegrees   float64 // допустимый поворот головы по горизонтали
	PitchDegrees float64 // допустимый наклон головы по вертикали
}

// DefaultThresholds — рабочие пороги сервиса. В рантайме не настраиваются.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NoseOffset:   0.016,
		YawDegrees:   20,
		PitchDegrees: 15,
	}
}

// GazeService классифицирует внимание по кадру двумя независимыми путями:
// дешёвой эвристикой по асимметрии точек и точной оценкой позы головы.
type GazeService struct {
	landmarker port.FaceLandmarker
	solver     port.PoseSolver
	thresholds Thresholds
	log        *logrus.Logger
}

// NewGazeService создаёт сервис классификации взгляда.
func NewGazeService(landmarker port.FaceLandmarker, solver port.PoseSolver, thresholds Thresholds, log *logrus.Logger) *GazeService {
	return &GazeService{
		landmarker: landmarker,
		solver:     solver,
		thresholds: thresholds,
		log:        log,
	}
}

// IsLookingAway — эвристика по асимметрии: нос должен стоять около середины
// отрезка между внешними уголками глаз. Проверяется только горизонталь.
// Вызывающий гарантирует валидный набор точек.
func (s *GazeService) IsLookingAway(set entity.LandmarkSet) bool {
	left := set[entity.LandmarkLeftEyeOuter]
	right := set[entity.LandmarkRightEyeOuter]
	nose := set[entity.LandmarkNoseTip]

	eyeMidX := (left.X + right.X) / 2

	return math.Abs(nose.X-eyeMidX) > s.thresholds.NoseOffset
}

// VerifyGaze прогоняет кадр через детектор и эвристику.
// Любая ошибка и отсутствие лица дают false: кадр, который не удалось
// обработать, сам по себе нарушением не считается.
func (s *GazeService) VerifyGaze(ctx context.Context, imageData []byte) bool {
	frame, err := s.landmarker.Detect(ctx, imageData)
	if err != nil {
		s.log.WithError(err).Warn("verify gaze: frame is not processable")
		return false
	}

	if frame == nil {
		return false
	}

	if !frame.Landmarks.Has(entity.LandmarkLeftEyeOuter, entity.LandmarkRightEyeOuter, entity.LandmarkNoseTip) {
		s.log.Warnf("verify gaze: landmark set is too short (%d points)", len(frame.Landmarks))
		return false
	}

	return s.IsLookingAway(frame.Landmarks)
}

// AnalyzeHeadPose прогоняет кадр через детектор и оценку позы головы.
// Ошибки сворачиваются в отчёт с направлением error без нарушения.
func (s *GazeService) AnalyzeHeadPose(ctx context.Context, imageData []byte) *entity.GazeReport {
	frame, err := s.landmarker.Detect(ctx, imageData)
	if err != nil {
		s.log.WithError(err).Warn("head pose: frame is not processable")
		return entity.ErrorReport()
	}

	if frame == nil {
		return entity.NoFaceReport()
	}

	report, err := s.classifyPose(frame)
	if err != nil {
		s.log.WithError(err).Warn("head pose: classification failed")
		return entity.ErrorReport()
	}

	return report
}

// classifyPose решает PnP по шести опорным точкам и сравнивает углы с порогами.
func (s *GazeService) classifyPose(frame *entity.FaceFrame) (*entity.GazeReport, error) {
	if !frame.Landmarks.Has(entity.PoseLandmarks[:]...) {
		return nil, errors.New("landmark set is too short for pose estimation")
	}

	object := make([]geometry.Point3, 0, len(entity.PoseLandmarks))
	imagePts := make([]geometry.Point2, 0, len(entity.PoseLandmarks))

	for _, idx := range entity.PoseLandmarks {
		lm := frame.Landmarks[idx]

		// Пиксельные координаты усекаются до целых.
		px := float64(int(lm.X * float64(frame.Width)))
		py := float64(int(lm.Y * float64(frame.Height)))

		imagePts = append(imagePts, geometry.Point2{X: px, Y: py})
		object = append(object, geometry.Point3{X: px, Y: py, Z: lm.Z})
	}

	// Матрица камеры считается заново под размер каждого кадра.
	camera := geometry.CameraMatrix(frame.Width, frame.Height)

	rvec, err := s.solver.Solve(object, imagePts, camera)
	if err != nil {
		return nil, err
	}

	angles := geometry.RQDecompose(geometry.Rodrigues(rvec))

	yaw := angles[1] * angleScale
	pitch := angles[0] * angleScale

	// Классификация идёт по сырым углам, округление только для отчёта.
	direction := s.classify(yaw, pitch)

	return &entity.GazeReport{
		Violation: direction != entity.DirectionFocused,
		Direction: direction,
		Yaw:       round2(yaw),
		Pitch:     round2(pitch),
	}, nil
}

// classify сравнивает углы с порогами; срабатывает ровно одна ветка,
// горизонталь имеет приоритет над вертикалью.
func (s *GazeService) classify(yaw, pitch float64) entity.Direction {
	switch {
	case yaw < -s.thresholds.YawDegrees:
		return entity.DirectionLookingLeft
	case yaw > s.thresholds.YawDegrees:
		return entity.DirectionLookingRight
	case pitch < -s.thresholds.PitchDegrees:
		return entity.DirectionLookingDown
	case pitch > s.thresholds.PitchDegrees:
		return entity.DirectionLookingUp
	default:
		return entity.DirectionFocused
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
