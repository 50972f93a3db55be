package usecase

import (
	"time"

	"atrova/internal/extraction"
	pkgLog "atrova/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	gen   extraction.Generator
	opts  extraction.Options
	clock func() time.Time
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, gen extraction.Generator, opts extraction.Options) *implUseCase {
	return &implUseCase{
		l:     l,
		gen:   gen,
		opts:  opts.WithDefaults(),
		clock: time.Now,
	}
}
