package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"imgtools/internal/logging"
)

// ErrAborted marks a Sequence run stopped by a failed conversion.
var ErrAborted = errors.New("conversion aborted")

// AbortError names the job that stopped a Sequence run.
type AbortError struct {
	Job Job
	Err error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s: convert %s: %v", ErrAborted, e.Job.Source, e.Err)
}

func (e *AbortError) Unwrap() []error {
	return []error{ErrAborted, e.Err}
}

// Sequence converts jobs one at a time, in order.
type Sequence struct {
	Converter Converter
	KeepGoing bool
	Logger    *slog.Logger
	Observer  Observer
}

// Run converts jobs in order. Without KeepGoing the first failure is reported
// to the observer and then returned as an *AbortError; later jobs are not
// attempted.
func (s Sequence) Run(ctx context.Context, jobs []Job) (Summary, error) {
	started := time.Now()
	summary := Summary{Total: len(jobs)}
	logger := s.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(started)
			return summary, err
		}
		outcome := convert(ctx, s.Converter, job, logger)
		summary.record(outcome)
		if s.Observer != nil {
			s.Observer.OnOutcome(i+1, len(jobs), outcome)
		}
		if outcome.OK() || s.KeepGoing {
			continue
		}
		summary.Elapsed = time.Since(started)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, ctxErr
		}
		return summary, &AbortError{Job: job, Err: outcome.Err}
	}

	summary.Elapsed = time.Since(started)
	return summary, nil
}
