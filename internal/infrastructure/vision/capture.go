//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"proctoring-service/internal/domain/port"
)

// WebcamSource снимает кадры с камеры и отдаёт их в JPEG.
type WebcamSource struct {
	cam *gocv.VideoCapture
}

// NewWebcamSource открывает камеру по номеру устройства.
func NewWebcamSource(deviceID int) (*WebcamSource, error) {
	cam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", deviceID, err)
	}

	return &WebcamSource{cam: cam}, nil
}

// Next возвращает очередной кадр.
func (s *WebcamSource) Next(ctx context.Context) ([]byte, error) {
	_ = ctx

	img := gocv.NewMat()
	defer img.Close()

	if ok := s.cam.Read(&img); !ok || img.Empty() {
		return nil, errors.New("camera frame is not available")
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, img)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())

	return data, nil
}

// Close освобождает камеру.
func (s *WebcamSource) Close() error {
	return s.cam.Close()
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*WebcamSource)(nil)
