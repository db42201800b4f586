package concurrency

import (
	"context"
	"time"
)

// ThrottledWorker runs a job per argument, one at a time, with at least
// interval between the start of consecutive jobs. The first failing job
// stops the run.
type ThrottledWorker[T any] struct {
	interval    time.Duration
	jobCallback func(arg T) error
}

func NewThrottledWorker[T any](interval time.Duration, jobCallback func(arg T) error) ThrottledWorker[T] {
	return ThrottledWorker[T]{interval: interval, jobCallback: jobCallback}
}

func (w *ThrottledWorker[T]) Run(ctx context.Context, jobArgs []T) error {

	jobArgsChannel := make(chan T, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)

	var limiter <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		limiter = ticker.C
	}

	first := true
	for arg := range jobArgsChannel {
		if !first && limiter != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-limiter:
			}
		}
		first = false

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.jobCallback(arg); err != nil {
			return err
		}
	}

	return nil
}
