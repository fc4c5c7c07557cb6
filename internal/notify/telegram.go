package notify

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tapify_backend/internal/service"
)

// telegramNotifier шлет уведомления через Bot API; только отправка, без поллинга
type telegramNotifier struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramNotifier создает нотификатор. Пустой токен или ошибка авторизации
// не валят приложение - возвращается заглушка
func NewTelegramNotifier(botToken string) service.Notifier {
	if botToken == "" {
		log.Println("telegram notifier disabled: no bot token")
		return &noopNotifier{}
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("telegram notifier disabled: %v", err)
		return &noopNotifier{}
	}

	return &telegramNotifier{bot: bot}
}

func (n *telegramNotifier) Notify(chatID int64, text string) {
	if chatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("failed to send telegram notification to %d: %v", chatID, err)
	}
}

type noopNotifier struct{}

func (n *noopNotifier) Notify(chatID int64, text string) {}
