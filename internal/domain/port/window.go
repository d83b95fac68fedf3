package port

import "proctoring-service/internal/domain/entity"

// WindowManager — доступ к окнам операционной системы.
type WindowManager interface {
	// Foreground возвращает окно переднего плана.
	Foreground() (entity.Window, error)

	// Terminate завершает процесс-владелец окна.
	Terminate(w entity.Window) error
}
