// Package notify pushes a Telegram message to the couple whenever a
// guest confirms, so they don't have to keep refreshing the admin page.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"casamento/internal/models"
)

// Notifier sends confirmation notices to a Telegram chat. A nil Notifier
// is valid and does nothing, which keeps the handlers free of config checks.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

// NewNotifier connects the bot. Returns (nil, nil) when token or chat ID
// is unset so notification stays optional.
func NewNotifier(token string, chatID int64, log zerolog.Logger) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	return &Notifier{
		bot:    bot,
		chatID: chatID,
		log:    log.With().Str("component", "telegram").Logger(),
	}, nil
}

// ConfirmationReceived sends one message for the new record. Failures are
// logged, never surfaced: notification must not affect the guest's request.
func (n *Notifier) ConfirmationReceived(rec models.Confirmation) {
	if n == nil {
		return
	}

	text := formatConfirmation(rec)
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.log.Error().Err(err).Str("guest", rec.Name).Msg("failed to send confirmation notice")
	}
}

func formatConfirmation(rec models.Confirmation) string {
	var answer string
	switch rec.Attending {
	case models.AttendanceYes:
		answer = fmt.Sprintf("vai! 🎉 (%d convidados)", rec.Guests)
	case models.AttendanceNo:
		answer = "não vai 😢"
	default:
		answer = "talvez 🤔"
	}

	text := fmt.Sprintf("Nova confirmação: %s %s", rec.Name, answer)
	if rec.Message != "" {
		text += "\n💬 " + rec.Message
	}
	return text
}
