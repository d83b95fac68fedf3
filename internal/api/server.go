package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	app "proctoring-service/internal/application"
)

// Server — HTTP-обвязка сервиса прокторинга.
type Server struct {
	engine    *fiber.App
	gaze      *app.GazeService
	validator *validator.Validate
	log       *logrus.Logger
}

// NewServer собирает fiber-приложение с CORS и middleware.
func NewServer(gaze *app.GazeService, corsOrigins string, log *logrus.Logger) *Server {
	engine := fiber.New(fiber.Config{
		AppName:     "proctoring-service",
		BodyLimit:   20 * 1024 * 1024,
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})

	engine.Use(requestID())
	engine.Use(requestLogger(log))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,X-Request-ID",
		AllowCredentials: true,
	}))

	s := &Server{
		engine:    engine,
		gaze:      gaze,
		validator: validator.New(),
		log:       log,
	}

	s.routes()

	return s
}

func (s *Server) routes() {
	s.engine.Get("/healthz", s.Health)
	s.engine.Post("/verify-gaze", s.VerifyGaze)
	s.engine.Post("/analyze-pose", s.AnalyzePose)
}

// Listen запускает сервер на указанном адресе.
func (s *Server) Listen(addr string) error {
	return s.engine.Listen(addr)
}

// Shutdown мягко останавливает сервер.
func (s *Server) Shutdown() error {
	return s.engine.Shutdown()
}
