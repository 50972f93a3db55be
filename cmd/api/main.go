package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"atrova/config"
	"atrova/config/sqlite"
	_ "atrova/docs" // Swagger docs
	"atrova/internal/extraction"
	extractionUC "atrova/internal/extraction/usecase"
	"atrova/internal/httpserver"
	taskUC "atrova/internal/task/usecase"
	"atrova/pkg/datemath"
	"atrova/pkg/gcalendar"
	"atrova/pkg/llmprovider"
	"atrova/pkg/log"
	"atrova/pkg/telegram"
)

// @title       Atrova Task Assistant API
// @description Natural-language task capture over HTTP and Telegram, with calendar events and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Atrova API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Connect(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer sqlite.Disconnect(db)

	// 4. Extraction pipeline
	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "LLM providers: %v", manager.Providers())

	parser, err := datemath.NewParser(cfg.Extraction.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid extraction timezone: ", err)
		return
	}

	extractor := extractionUC.New(logger, manager, extraction.Options{
		Timeout:    cfg.Extraction.Timeout,
		Concurrent: cfg.Extraction.Concurrent,
		Scanner:    extraction.ScanMode(cfg.Extraction.Scanner),
		Location:   parser.Location(),
	})

	// 5. Google Calendar (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Telegram webhook (optional)
	var sender telegram.Sender
	if cfg.Telegram.BotToken != "" && cfg.Telegram.Mode == "webhook" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		sender = bot

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram webhook disabled (no token or polling mode)")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		HTTPServer:     cfg.HTTPServer,
		RateLimit:      cfg.RateLimit,
		DB:             db,
		Extractor:      extractor,
		Parser:         parser,
		Calendar:       calendar,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		TelegramSender: sender,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
