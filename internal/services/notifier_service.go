package services

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"sponsorcrm/internal/logger"
	"sponsorcrm/internal/models"
)

// Notifier pushes short Telegram messages when the system creates records on
// its own (inbound email, renewal conversion). A nil Notifier is a no-op so
// deployments without a bot token need no special-casing.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier returns nil (not an error) when the integration is not
// configured.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init failed: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) LeadCreated(lead *models.Lead, origin string) {
	if n == nil || lead == nil {
		return
	}
	company := lead.Contact.Name
	if lead.Contact.Company != nil && *lead.Contact.Company != "" {
		company = *lead.Contact.Company
	}
	text := fmt.Sprintf("New lead from %s: <b>%s</b>", origin, html.EscapeString(company))
	if lead.Value != nil {
		text += fmt.Sprintf(" (%s)", formatUSD(*lead.Value))
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		logger.L().Warn("telegram notification failed", zap.Error(err), zap.Int64("lead_id", lead.ID))
	}
}
