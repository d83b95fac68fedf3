package container

import (
	"github.com/sirupsen/logrus"

	app "proctoring-service/internal/application"
	"proctoring-service/internal/domain/port"
	"proctoring-service/internal/infrastructure/storage"
)

// Container связывает сервисы приложения с инфраструктурой.
type Container struct {
	Sessions       *storage.MemorySessionRepository
	GazeService    *app.GazeService
	ProctorService *app.ProctorService
}

func New(landmarker port.FaceLandmarker, solver port.PoseSolver, windows port.WindowManager, notifier port.AlertNotifier, log *logrus.Logger) *Container {
	sessions := storage.NewMemorySessionRepository()
	gazeService := app.NewGazeService(landmarker, solver, app.DefaultThresholds(), log)
	proctorService := app.NewProctorService(sessions, windows, notifier, log)

	return &Container{
		Sessions:       sessions,
		GazeService:    gazeService,
		ProctorService: proctorService,
	}
}
