package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"atrova/config"
	"atrova/config/sqlite"
	"atrova/internal/extraction"
	extractionUC "atrova/internal/extraction/usecase"
	"atrova/internal/reminder"
	"atrova/internal/reminder/scheduler"
	reminderUC "atrova/internal/reminder/usecase"
	tgDelivery "atrova/internal/task/delivery/telegram"
	taskRepo "atrova/internal/task/repository/sqlite"
	taskUC "atrova/internal/task/usecase"
	"atrova/pkg/datemath"
	"atrova/pkg/gcalendar"
	"atrova/pkg/llmprovider"
	"atrova/pkg/log"
	"atrova/pkg/telegram"
)

// main runs the Telegram bot with long polling and the reminder scheduler.
// Use it where no public URL is available for the webhook.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telegram.BotToken == "" {
		logger.Error(ctx, "TELEGRAM_BOT_TOKEN is required for the bot")
		return
	}

	// Infrastructure
	db, err := sqlite.Connect(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer sqlite.Disconnect(db)

	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

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

	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
		}
	}

	// Task domain
	repo, err := taskRepo.New(ctx, db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task repository: ", err)
		return
	}
	tasks := taskUC.New(repo, extractor, parser, calendar, cfg.GoogleCalendar.CalendarID, logger)

	// Telegram
	poller, err := telegram.NewPoller(cfg.Telegram.BotToken, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Telegram: ", err)
		return
	}
	handler := tgDelivery.New(logger, tasks, poller, parser.Location())

	var wg sync.WaitGroup

	// Reminders
	if cfg.Reminder.Enabled {
		reminderCfg := reminder.Config{
			Interval:  cfg.Reminder.Interval,
			Lookahead: cfg.Reminder.Lookahead,
			Location:  parser.Location(),
		}
		sched, schedErr := scheduler.New(logger, reminderUC.New(logger, tasks, poller, reminderCfg), cfg.Reminder.Interval, parser.Location())
		if schedErr != nil {
			logger.Error(ctx, "Failed to start reminders: ", schedErr)
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.Run(ctx)
		}()
	}

	logger.Infof(ctx, "Bot @%s polling for updates", poller.Username())
	if err := poller.Run(ctx, handler.HandleMessage); err != nil {
		logger.Error(ctx, "Polling stopped: ", err)
		stop()
	}

	wg.Wait()
	logger.Info(ctx, "Bot stopped gracefully")
}
