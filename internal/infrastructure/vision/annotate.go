//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// GoCVAnnotator печатает вердикт на кадре и возвращает новую картинку.
type GoCVAnnotator struct{}

// NewGoCVAnnotator создаёт аннотатор кадров.
func NewGoCVAnnotator() *GoCVAnnotator {
	return &GoCVAnnotator{}
}

// Annotate наносит подпись с вердиктом в левый верхний угол кадра.
func (a *GoCVAnnotator) Annotate(imageData []byte, report *entity.GazeReport) ([]byte, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	label := "Focused"
	clr := color.RGBA{G: 255, A: 255}
	if report.Violation {
		label = fmt.Sprintf("WARNING: %s (yaw %.2f, pitch %.2f)", report.Direction, report.Yaw, report.Pitch)
		clr = color.RGBA{R: 255, A: 255}
	}

	gocv.PutText(&mat, label, image.Pt(20, 50), gocv.FontHersheySimplex, 1.2, clr, 2)

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.FrameAnnotator = (*GoCVAnnotator)(nil)
