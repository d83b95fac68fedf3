package api

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"

	"proctoring-service/internal/domain/entity"
)

// Health — проверка живости сервиса.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// VerifyGaze — дешёвый путь: эвристика по асимметрии точек.
func (s *Server) VerifyGaze(c *fiber.Ctx) error {
	req, ok := s.parseFrame(c)
	if !ok {
		return nil
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		// Битый base64 нарушением не считается.
		s.log.WithError(err).Warn("verify gaze: invalid base64 payload")
		return c.JSON(VerifyGazeResponse{})
	}

	violation := s.gaze.VerifyGaze(c.UserContext(), image)

	return c.JSON(VerifyGazeResponse{
		Violation:   violation,
		LookingAway: violation,
	})
}

// AnalyzePose — точный путь: оценка позы головы с углами.
func (s *Server) AnalyzePose(c *fiber.Ctx) error {
	req, ok := s.parseFrame(c)
	if !ok {
		return nil
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		s.log.WithError(err).Warn("analyze pose: invalid base64 payload")
		report := entity.ErrorReport()
		return c.JSON(poseResponse(report))
	}

	report := s.gaze.AnalyzeHeadPose(c.UserContext(), image)

	return c.JSON(poseResponse(report))
}

// parseFrame разбирает и валидирует тело запроса; false — ответ уже отправлен.
func (s *Server) parseFrame(c *fiber.Ctx) (*FrameRequest, bool) {
	var req FrameRequest

	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "bad request"})
		return nil, false
	}

	if err := s.validator.Struct(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "image is required"})
		return nil, false
	}

	return &req, true
}

func poseResponse(report *entity.GazeReport) PoseResponse {
	return PoseResponse{
		Violation: report.Violation,
		Direction: string(report.Direction),
		Yaw:       report.Yaw,
		Pitch:     report.Pitch,
	}
}
