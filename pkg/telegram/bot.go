package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Bot is a minimal Bot API client used by the webhook transport.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

var _ Sender = (*Bot)(nil)

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the bot's method base URL, e.g. for a local Bot API server.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SecretTokenHeader carries the secret registered with SetWebhook on every webhook call.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// sent back in SecretTokenHeader with each update.
func (b *Bot) SetWebhook(webhookURL, secret string) error {
	req := setWebhookRequest{URL: webhookURL, SecretToken: secret, AllowedUpdates: []string{"message"}}
	return b.call("setWebhook", req)
}

// DeleteWebhook removes any registered webhook so long polling can take over.
func (b *Bot) DeleteWebhook() error {
	return b.call("deleteWebhook", map[string]bool{"drop_pending_updates": false})
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	return b.call("sendMessage", sendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode})
}

// call posts payload to a Bot API method and checks the ok flag of the reply.
func (b *Bot) call(method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	resp, err := b.httpClient.Post(fmt.Sprintf("%s/%s", b.apiURL, method), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram %s: status %d: decode response: %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed (status %d): %s", method, resp.StatusCode, apiResp.Description)
	}
	return nil
}
