package notification

import (
	"context"
	"fmt"
	"math"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyInvitation(ctx context.Context, user *domain.User, game *domain.Game) {
	text := fmt.Sprintf(
		"*Вас добавили в игру!*\n\n"+"Игра: %s\n"+"Начало (время указано в UTC): %s",
		game.Name, game.StartAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyTravelAlert(ctx context.Context, user *domain.User, game *domain.Game, travelMin, availableMin float64) {
	text := fmt.Sprintf(
		"*Вы можете не успеть на игру*\n\n"+"Игра: %s\n"+"Начало (время указано в UTC): %s\n"+"Дорога займёт ~%d мин, в запасе %d мин.",
		game.Name,
		game.StartAt.Format("02.01.2006 15:04"),
		int(math.Ceil(travelMin)),
		int(math.Ceil(availableMin)),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, user *domain.User, game *domain.Game) {
	text := fmt.Sprintf(
		"*Игра отменена*\n\n"+"Игра: %s\n"+"Начало (время указано в UTC): %s",
		game.Name, game.StartAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
