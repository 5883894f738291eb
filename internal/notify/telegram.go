package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier - уведомления о назначении программы. Реализация может
// отсутствовать, тогда назначение проходит молча.
type Notifier interface {
	RoutineAssigned(memberName, routineName string) error
}

// TelegramNotifier шлет сообщение в служебный чат тренеров.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) RoutineAssigned(memberName, routineName string) error {
	text := fmt.Sprintf("Клиенту %s назначена программа «%s»", memberName, routineName)
	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.bot.Send(msg)
	return err
}
