package vision

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/sirupsen/logrus"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// MediapipeLandmarker гоняет кадры через python-процесс с FaceMesh.
// Процесс один на сервис и держит состояние модели, поэтому доступ строго
// последовательный: одновременно обрабатывается ровно один кадр. Таймаутов
// нет — зависший воркер блокирует вызов.
type MediapipeLandmarker struct {
	mu    sync.Mutex
	cmd   *exec.Cmd
	stdin io.WriteCloser
	out   *bufio.Reader
	seq   uint64
	log   *logrus.Logger
}

type workerRequest struct {
	ID    uint64 `json:"id"`
	Image string `json:"image"`
}

type workerLandmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type workerResponse struct {
	ID     uint64             `json:"id"`
	Error  string             `json:"error,omitempty"`
	Width  int                `json:"width"`
	Height int                `json:"height"`
	Faces  [][]workerLandmark `json:"faces"`
}

// NewMediapipeLandmarker запускает воркер и держит его до Close.
func NewMediapipeLandmarker(command []string, log *logrus.Logger) (*MediapipeLandmarker, error) {
	if len(command) == 0 {
		return nil, errors.New("landmark worker command is empty")
	}

	cmd := exec.Command(command[0], command[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("worker stdin: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("worker stdout: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("worker stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start worker: %w", err)
	}

	log.Printf("Landmark worker started (pid %d)", cmd.Process.Pid)

	l := &MediapipeLandmarker{
		cmd:   cmd,
		stdin: stdin,
		out:   bufio.NewReader(stdout),
		log:   log,
	}

	go l.drainStderr(stderr)

	return l, nil
}

// Detect отправляет кадр воркеру и разбирает ответ.
// nil без ошибки означает, что лиц на кадре нет.
func (l *MediapipeLandmarker) Detect(ctx context.Context, imageData []byte) (*entity.FaceFrame, error) {
	_ = ctx

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	payload, err := json.Marshal(workerRequest{
		ID:    l.seq,
		Image: base64.StdEncoding.EncodeToString(imageData),
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	if _, err := l.stdin.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("send frame to worker: %w", err)
	}

	var resp workerResponse
	for {
		line, err := l.out.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("read worker response: %w", err)
		}

		// Воркер пишет в stdout не только ответы: mediapipe и TF при старте
		// печатают баннеры. Всё, что не разбирается как ответ, пропускаем.
		resp = workerResponse{}
		if err := json.Unmarshal(line, &resp); err != nil {
			l.log.Debugf("landmark worker: unexpected output: %s", bytes.TrimSpace(line))
			continue
		}

		// Ответ обязан совпасть с номером запроса, иначе каждый следующий
		// кадр получал бы точки предыдущего.
		if resp.ID != l.seq {
			l.log.Warnf("landmark worker: response id %d does not match request %d, skipping", resp.ID, l.seq)
			continue
		}

		break
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("landmark worker: %s", resp.Error)
	}

	if len(resp.Faces) == 0 {
		return nil, nil
	}

	if resp.Width <= 0 || resp.Height <= 0 {
		return nil, fmt.Errorf("landmark worker: malformed frame size %dx%d", resp.Width, resp.Height)
	}

	// Работаем только с первым лицом.
	face := resp.Faces[0]
	set := make(entity.LandmarkSet, len(face))
	for i, lm := range face {
		set[i] = entity.Landmark{X: lm.X, Y: lm.Y, Z: lm.Z}
	}

	return &entity.FaceFrame{
		Width:     resp.Width,
		Height:    resp.Height,
		Landmarks: set,
	}, nil
}

// Close закрывает stdin воркера и дожидается его завершения.
func (l *MediapipeLandmarker) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.stdin.Close(); err != nil {
		return err
	}

	return l.cmd.Wait()
}

func (l *MediapipeLandmarker) drainStderr(stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		l.log.Debugf("landmark worker: %s", scanner.Text())
	}
}

// Проверка реализации интерфейса
var _ port.FaceLandmarker = (*MediapipeLandmarker)(nil)
