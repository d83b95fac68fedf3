package main

import (
	"os"
	"os/signal"
	"syscall"

	"proctoring-service/config"
	"proctoring-service/internal/api"
	"proctoring-service/internal/container"
	"proctoring-service/internal/infrastructure/vision"
	"proctoring-service/pkg/log"
)

func main() {
	logger := log.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}

	landmarker, err := vision.NewMediapipeLandmarker(cfg.WorkerCommand, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to start landmark worker")
	}
	defer landmarker.Close()

	solver := vision.NewGoCVPoseSolver()

	c := container.New(landmarker, solver, nil, nil, logger)

	server := api.NewServer(c.GazeService, cfg.CORSOrigins, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("Shutting down")
		if err := server.Shutdown(); err != nil {
			logger.WithError(err).Error("Shutdown failed")
		}
	}()

	logger.Infof("Listening on %s", cfg.HTTPAddr)
	if err := server.Listen(cfg.HTTPAddr); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}
