package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config — настройки сервиса из окружения.
type Config struct {
	HTTPAddr           string        // адрес HTTP-сервера
	CORSOrigins        string        // разрешённые origin'ы фронтенда, через запятую
	WorkerCommand      []string      // команда запуска воркера с FaceMesh
	CameraID           int           // номер камеры для режима монитора
	PollInterval       time.Duration // период опроса в цикле монитора
	Candidate          string        // имя наблюдаемого кандидата
	AllowedWindowTitle string        // заголовок единственного разрешённого окна
	TelegramToken      string        // токен бота для уведомлений проктора
	TelegramChatID     int64         // чат проктора
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001"),
		WorkerCommand:      strings.Fields(getEnv("LANDMARK_WORKER", "python3 scripts/landmark_worker.py")),
		CameraID:           getEnvInt("CAMERA_ID", 0),
		PollInterval:       getEnvDuration("POLL_INTERVAL", time.Second),
		Candidate:          getEnv("CANDIDATE", "unknown"),
		AllowedWindowTitle: os.Getenv("ALLOWED_WINDOW_TITLE"),
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:     int64(getEnvInt("TELEGRAM_CHAT_ID", 0)),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
