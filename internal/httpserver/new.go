package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"atrova/config"
	"atrova/internal/extraction"
	taskUC "atrova/internal/task/usecase"
	"atrova/pkg/datemath"
	"atrova/pkg/log"
	pkgTelegram "atrova/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	httpCfg     config.HTTPServerConfig
	rateLimit   config.RateLimitConfig

	// Storage
	db *sql.DB

	// Task domain
	extractor  extraction.UseCase
	parser     *datemath.Parser
	calendar   taskUC.Calendar
	calendarID string

	// Telegram webhook, optional
	telegramSender pkgTelegram.Sender
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	HTTPServer  config.HTTPServerConfig
	RateLimit   config.RateLimitConfig

	DB *sql.DB

	Extractor  extraction.UseCase
	Parser     *datemath.Parser
	Calendar   taskUC.Calendar
	CalendarID string

	// TelegramSender enables POST /webhook/telegram when set.
	TelegramSender pkgTelegram.Sender
	// TelegramSecret, when set, must match the secret token header of each webhook call.
	TelegramSecret string
}

const shutdownTimeout = 10 * time.Second

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		httpCfg:        cfg.HTTPServer,
		rateLimit:      cfg.RateLimit,
		db:             cfg.DB,
		extractor:      cfg.Extractor,
		parser:         cfg.Parser,
		calendar:       cfg.Calendar,
		calendarID:     cfg.CalendarID,
		telegramSender: cfg.TelegramSender,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
