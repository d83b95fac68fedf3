package main

import (
	"context"
	"os/signal"
	"syscall"

	"proctoring-service/config"
	app "proctoring-service/internal/application"
	"proctoring-service/internal/container"
	"proctoring-service/internal/domain/port"
	"proctoring-service/internal/infrastructure/notify"
	"proctoring-service/internal/infrastructure/vision"
	"proctoring-service/internal/infrastructure/window"
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

	frames, err := vision.NewWebcamSource(cfg.CameraID)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open camera")
	}
	defer frames.Close()

	var notifier port.AlertNotifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err = notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create telegram notifier")
		}
	} else {
		logger.Warn("Telegram is not configured, alerts are disabled")
	}

	c := container.New(landmarker, vision.NewGoCVPoseSolver(), window.NewXdotoolManager(), notifier, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := c.ProctorService.StartSession(ctx, cfg.Candidate, cfg.AllowedWindowTitle)
	if err != nil {
		logger.WithError(err).Fatal("Failed to start session")
	}

	logger.WithFields(log.Fields{
		"session_id": session.ID,
		"candidate":  session.Candidate,
		"interval":   cfg.PollInterval,
	}).Info("Monitoring started")

	monitor := app.NewMonitor(c.GazeService, c.ProctorService, frames, vision.NewGoCVAnnotator(), session.ID, cfg.PollInterval, logger)

	if err := monitor.Run(ctx); err != nil {
		logger.WithError(err).Fatal("Monitor stopped")
	}

	logger.WithField("violations", session.Violations).Info("Monitoring finished")
}
