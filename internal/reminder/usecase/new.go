package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"atrova/internal/reminder"
	"atrova/internal/task"
	"atrova/pkg/log"
	pkgTelegram "atrova/pkg/telegram"
)

const notifiedCacheSize = 4096

type implUseCase struct {
	l         log.Logger
	taskUC    task.UseCase
	sender    pkgTelegram.Sender
	lookahead time.Duration
	loc       *time.Location
	notified  *expirable.LRU[string, struct{}]
}

// New creates the reminder use case. Zero config values fall back to the defaults.
func New(l log.Logger, taskUC task.UseCase, sender pkgTelegram.Sender, cfg reminder.Config) *implUseCase {
	if cfg.Interval <= 0 {
		cfg.Interval = reminder.DefaultInterval
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = reminder.DefaultLookahead
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &implUseCase{
		l:         l,
		taskUC:    taskUC,
		sender:    sender,
		lookahead: cfg.Lookahead,
		loc:       cfg.Location,
		// A task stays in the window for at most lookahead plus one tick.
		notified: expirable.NewLRU[string, struct{}](notifiedCacheSize, nil, cfg.Lookahead+cfg.Interval),
	}
}
