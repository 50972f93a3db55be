package usecase

import (
	"context"

	"atrova/internal/extraction"
)

// generate performs one bounded model call.
func (uc *implUseCase) generate(ctx context.Context, op, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.opts.Timeout)
	defer cancel()

	completion, err := uc.gen.Generate(ctx, prompt, uc.opts.MaxTokens, *uc.opts.Temperature)
	if err != nil {
		uc.l.Warnf(ctx, "internal.extraction.usecase.generate: op=%s err=%v", op, err)
		return "", &extraction.Error{Op: op, Kind: extraction.ErrExtraction, Err: err}
	}

	uc.l.Debugf(ctx, "internal.extraction.usecase.generate: op=%s completion=%q", op, completion)
	return completion, nil
}

// wrap attaches the operation and raw completion to a parse failure.
func (uc *implUseCase) wrap(ctx context.Context, op, completion string, err error) error {
	kind := extraction.KindOf(err)
	if kind == nil {
		kind = extraction.ErrMalformedJSON
	}
	uc.l.Warnf(ctx, "internal.extraction.usecase.wrap: op=%s kind=%v completion=%q", op, kind, completion)
	return &extraction.Error{Op: op, Kind: kind, Completion: completion, Err: err}
}
