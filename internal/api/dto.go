package api

// FrameRequest — один кадр в base64; формат совместим с фронтендом.
type FrameRequest struct {
	Image string `json:"image" validate:"required"`
}

// VerifyGazeResponse — ответ эвристики, оба поля несут один и тот же вердикт.
type VerifyGazeResponse struct {
	Violation   bool `json:"violation"`
	LookingAway bool `json:"looking_away"`
}

// PoseResponse — полный отчёт оценки позы головы.
type PoseResponse struct {
	Violation bool    `json:"violation"`
	Direction string  `json:"direction"`
	Yaw       float64 `json:"yaw"`
	Pitch     float64 `json:"pitch"`
}

// ErrorResponse — ошибка уровня HTTP (невалидное тело запроса).
type ErrorResponse struct {
	Error string `json:"error"`
}
