package telegram

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"atrova/pkg/log"
)

const pollTimeoutSeconds = 60

// Poller receives updates through getUpdates long polling instead of a webhook.
type Poller struct {
	api *tgbotapi.BotAPI
	l   log.Logger
}

var _ Sender = (*Poller)(nil)

// NewPoller authorizes the bot against api.telegram.org.
func NewPoller(token string, l log.Logger) (*Poller, error) {
	return NewPollerWithEndpoint(token, tgbotapi.APIEndpoint, http.DefaultClient, l)
}

// NewPollerWithEndpoint authorizes the bot against a custom endpoint.
// endpoint is a format string taking the token and the method name.
func NewPollerWithEndpoint(token, endpoint string, client *http.Client, l log.Logger) (*Poller, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Poller{api: api, l: l}, nil
}

// Username returns the bot account name.
func (p *Poller) Username() string {
	return p.api.Self.UserName
}

// Run removes any webhook and hands every incoming message to handle until ctx is cancelled.
// Messages are handled one at a time in arrival order.
func (p *Poller) Run(ctx context.Context, handle func(context.Context, *Message)) error {
	if _, err := p.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds
	updates := p.api.GetUpdatesChan(cfg)

	go func() {
		<-ctx.Done()
		p.api.StopReceivingUpdates()
	}()

	p.l.Infof(ctx, "telegram.Poller: polling updates as @%s", p.api.Self.UserName)
	for update := range updates {
		if update.Message == nil || update.Message.Chat == nil {
			continue
		}
		handle(ctx, fromAPIMessage(update.Message))
	}
	return ctx.Err()
}

// SendMessage sends a plain text message to a Telegram chat.
func (p *Poller) SendMessage(chatID int64, text string) error {
	return p.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode.
func (p *Poller) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if _, err := p.api.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}

func fromAPIMessage(m *tgbotapi.Message) *Message {
	msg := &Message{
		MessageID: int64(m.MessageID),
		Date:      int64(m.Date),
		Text:      m.Text,
		Chat:      &Chat{ID: m.Chat.ID, Type: m.Chat.Type},
	}
	if m.From != nil {
		msg.From = &User{
			ID:        m.From.ID,
			FirstName: m.From.FirstName,
			Username:  m.From.UserName,
		}
	}
	return msg
}
