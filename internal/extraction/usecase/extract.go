package usecase

import (
	"context"
	"sync"
	"time"

	"atrova/internal/extraction"
)

// ExtractTaskName asks the model for {"task": ...} and parses the completion.
func (uc *implUseCase) ExtractTaskName(ctx context.Context, text string) (extraction.TaskNameResult, error) {
	completion, err := uc.generate(ctx, extraction.OpTaskName, extraction.TaskNamePrompt(text))
	if err != nil {
		return extraction.TaskNameResult{}, err
	}

	res, err := extraction.ParseTaskName(completion, uc.opts.Scanner)
	if err != nil {
		return extraction.TaskNameResult{}, uc.wrap(ctx, extraction.OpTaskName, completion, err)
	}
	return res, nil
}

// ExtractTimestamp asks the model for {"date": ...} relative to now and parses the completion.
func (uc *implUseCase) ExtractTimestamp(ctx context.Context, text string, now time.Time) (extraction.TimestampResult, error) {
	completion, err := uc.generate(ctx, extraction.OpTimestamp, extraction.TimestampPrompt(text, now))
	if err != nil {
		return extraction.TimestampResult{}, err
	}

	res, err := extraction.ParseTimestamp(completion, uc.opts.Scanner)
	if err != nil {
		return extraction.TimestampResult{}, uc.wrap(ctx, extraction.OpTimestamp, completion, err)
	}
	return res, nil
}

// GetTaskDetails anchors on the clock at invocation and runs Extract.
func (uc *implUseCase) GetTaskDetails(ctx context.Context, text string) (extraction.ExtractedTask, error) {
	return uc.Extract(ctx, extraction.TaskRequest{
		Text:       text,
		ReceivedAt: uc.clock().In(uc.opts.Location),
	})
}

// Extract runs both sub-extractions and merges them. Any failure fails the whole call.
func (uc *implUseCase) Extract(ctx context.Context, req extraction.TaskRequest) (extraction.ExtractedTask, error) {
	var (
		name  extraction.TaskNameResult
		stamp extraction.TimestampResult
		nameErr, stampErr error
	)

	if uc.opts.Concurrent {
		// A task-name failure decides the result, so the timestamp call is abandoned.
		callCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			name, nameErr = uc.ExtractTaskName(callCtx, req.Text)
			if nameErr != nil {
				cancel()
			}
		}()
		go func() {
			defer wg.Done()
			stamp, stampErr = uc.ExtractTimestamp(callCtx, req.Text, req.ReceivedAt)
		}()
		wg.Wait()
	} else {
		name, nameErr = uc.ExtractTaskName(ctx, req.Text)
		if nameErr == nil {
			stamp, stampErr = uc.ExtractTimestamp(ctx, req.Text, req.ReceivedAt)
		}
	}

	if nameErr != nil {
		return extraction.ExtractedTask{}, nameErr
	}
	if stampErr != nil {
		return extraction.ExtractedTask{}, stampErr
	}

	uc.l.Infof(ctx, "internal.extraction.usecase.Extract: task=%q timestamp=%q", name.Task, stamp.Date)
	return extraction.ExtractedTask{
		Task:      name.Task,
		Timestamp: stamp.Date,
	}, nil
}
