package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"proctoring-service/internal/domain/entity"
	"proctoring-service/internal/domain/port"
)

// TelegramNotifier шлёт уведомления о нарушениях в чат проктора.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier создаёт нотификатор с токеном бота и чатом проктора.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
	}, nil
}

// Notify отправляет событие; если приложен кадр — уходит фото с подписью.
func (n *TelegramNotifier) Notify(ctx context.Context, session *entity.Session, event string, frame []byte) error {
	_ = ctx

	text := fmt.Sprintf(
		"⚠️ Нарушение: %s\nКандидат: %s\nСессия: %s\nВсего нарушений: %d",
		event, session.Candidate, session.ID, session.Violations,
	)

	if len(frame) > 0 {
		photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{Name: "frame.jpg", Bytes: frame})
		photo.Caption = text
		_, err := n.api.Send(photo)
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.api.Send(msg)

	return err
}

// Проверка реализации интерфейса
var _ port.AlertNotifier = (*TelegramNotifier)(nil)
