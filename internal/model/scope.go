package model

import (
	"strconv"
	"strings"
)

// Scope identifies the caller of a use case.
type Scope struct {
	UserID string
	Source TaskSource
}

// Environment names.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const telegramOwnerPrefix = "telegram_"

// TelegramOwnerID is the owner id used for tasks created from a Telegram user.
func TelegramOwnerID(userID int64) string {
	return telegramOwnerPrefix + strconv.FormatInt(userID, 10)
}

// ParseTelegramOwnerID returns the Telegram user id encoded in owner, if any.
// In private chats the user id is also the chat id.
func ParseTelegramOwnerID(owner string) (int64, bool) {
	raw, ok := strings.CutPrefix(owner, telegramOwnerPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
