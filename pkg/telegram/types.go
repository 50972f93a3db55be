package telegram

import (
	"strings"
	"time"
)

// Sender delivers text replies to a chat. Both Bot and Poller implement it.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}

// ChatTypePrivate is the chat type of a one-to-one conversation with the bot.
const ChatTypePrivate = "private"

// Update is the subset of a Bot API update the assistant reacts to.
// Edited messages and callback queries are not decoded.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is an incoming chat message.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      *Chat  `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text,omitempty"`
}

// SentAt converts the unix Date field.
func (m *Message) SentAt() time.Time {
	return time.Unix(m.Date, 0)
}

// Command splits a "/name@bot args" message into its name and arguments.
// ok is false when the text is not a command.
func (m *Message) Command() (name, args string, ok bool) {
	text := strings.TrimSpace(m.Text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	name, args, _ = strings.Cut(text, " ")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name), strings.TrimSpace(args), true
}

// SenderName is the first name of the author, or fallback when unknown.
func (m *Message) SenderName(fallback string) string {
	if m.From == nil || m.From.FirstName == "" {
		return fallback
	}
	return m.From.FirstName
}

// User is a Telegram account.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// Chat is the conversation a message belongs to.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// IsPrivate reports whether replies to this chat reach only the author.
func (c *Chat) IsPrivate() bool {
	return c.Type == ChatTypePrivate
}

type setWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
