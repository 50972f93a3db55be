package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"atrova/config/sqlite"
	eventHTTP "atrova/internal/event/delivery/http"
	eventRepo "atrova/internal/event/repository/sqlite"
	eventUC "atrova/internal/event/usecase"
	"atrova/internal/middleware"
	taskHTTP "atrova/internal/task/delivery/http"
	tgDelivery "atrova/internal/task/delivery/telegram"
	taskRepo "atrova/internal/task/repository/sqlite"
	taskUC "atrova/internal/task/usecase"
	pkgTelegram "atrova/pkg/telegram"
)

// setupTaskDomain wires the task repository, use case and HTTP handler,
// plus the Telegram webhook when a sender is configured.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo, err := taskRepo.New(ctx, srv.db, srv.l)
	if err != nil {
		return fmt.Errorf("task repository: %w", err)
	}

	uc := taskUC.New(repo, srv.extractor, srv.parser, srv.calendar, srv.calendarID, srv.l)

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Task domain registered")

	if srv.telegramSender == nil {
		srv.l.Infof(ctx, "Telegram sender not configured, skipping webhook route")
		return nil
	}
	tg := tgDelivery.New(srv.l, uc, srv.telegramSender, srv.parser.Location())
	srv.gin.POST("/webhook/telegram", mw.RateLimit(), mw.SecretToken(pkgTelegram.SecretTokenHeader, srv.telegramSecret), tg.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	return nil
}

// setupEventDomain wires the calendar event domain on a gorm handle over the shared database.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	gdb, err := sqlite.OpenGorm(srv.db)
	if err != nil {
		return fmt.Errorf("event gorm: %w", err)
	}
	repo, err := eventRepo.New(ctx, gdb, srv.l)
	if err != nil {
		return fmt.Errorf("event repository: %w", err)
	}

	uc := eventUC.New(repo, srv.l)
	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
