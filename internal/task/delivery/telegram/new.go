package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"atrova/internal/task"
	pkgLog "atrova/pkg/log"
	pkgTelegram "atrova/pkg/telegram"
)

// Handler turns Telegram messages into task use case calls.
type Handler interface {
	// HandleWebhook acknowledges a webhook update and processes it in the background.
	HandleWebhook(c *gin.Context)
	// HandleMessage processes one message synchronously. Used by long polling.
	HandleMessage(ctx context.Context, msg *pkgTelegram.Message)
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	sender pkgTelegram.Sender
	loc    *time.Location
}

// New creates a new Telegram delivery handler. Due times are shown in loc.
func New(l pkgLog.Logger, uc task.UseCase, sender pkgTelegram.Sender, loc *time.Location) Handler {
	if loc == nil {
		loc = time.Local
	}
	return &handler{
		l:      l,
		uc:     uc,
		sender: sender,
		loc:    loc,
	}
}
