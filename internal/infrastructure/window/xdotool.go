package window

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// XdotoolManager опрашивает окна X11 через утилиту xdotool.
// Алгоритмики здесь нет, только обвязка над системной командой.
type XdotoolManager struct{}

// NewXdotoolManager создаёт менеджер окон.
func NewXdotoolManager() *XdotoolManager {
	return &XdotoolManager{}
}

// Foreground возвращает окно переднего плана: id, заголовок и pid владельца.
func (m *XdotoolManager) Foreground() (entity.Window, error) {
	idRaw, err := m.run("getactivewindow")
	if err != nil {
		return entity.Window{}, fmt.Errorf("active window: %w", err)
	}

	id, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil {
		return entity.Window{}, fmt.Errorf("parse window id %q: %w", idRaw, err)
	}

	title, err := m.run("getwindowname", idRaw)
	if err != nil {
		return entity.Window{}, fmt.Errorf("window title: %w", err)
	}

	pidRaw, err := m.run("getwindowpid", idRaw)
	if err != nil {
		return entity.Window{}, fmt.Errorf("window pid: %w", err)
	}

	pid, err := strconv.Atoi(pidRaw)
	if err != nil {
		return entity.Window{}, fmt.Errorf("parse window pid %q: %w", pidRaw, err)
	}

	return entity.Window{ID: id, PID: pid, Title: title}, nil
}

// Terminate завершает процесс-владелец окна.
func (m *XdotoolManager) Terminate(w entity.Window) error {
	if w.PID <= 0 {
		return errors.New("window has no owner pid")
	}

	proc, err := os.FindProcess(w.PID)
	if err != nil {
		return err
	}

	return proc.Kill()
}

func (m *XdotoolManager) run(args ...string) (string, error) {
	out, err := exec.Command("xdotool", args...).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// Проверка реализации интерфейса
var _ port.WindowManager = (*XdotoolManager)(nil)
