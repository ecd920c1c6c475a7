package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"imgtools/internal/logging"
)

// Pool converts jobs concurrently with a fixed number of workers.
type Pool struct {
	Converter Converter
	Workers   int
	Logger    *slog.Logger
	Observer  Observer
}

// Run converts every job and returns the aggregate counts. Outcomes reach the
// observer in completion order. When ctx is cancelled no further jobs are
// dispatched, in-flight jobs finish as failures, and ctx.Err() is returned
// alongside the partial summary.
func (p Pool) Run(ctx context.Context, jobs []Job) (Summary, error) {
	started := time.Now()
	summary := Summary{Total: len(jobs)}
	if len(jobs) == 0 {
		return summary, nil
	}

	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	logger.Info("starting worker pool", logging.Int("workers", workers), logging.Int("jobs", len(jobs)))

	queue := make(chan Job)
	results := make(chan Outcome, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for job := range queue {
				results <- convert(ctx, p.Converter, job, logger.With(logging.Int("worker", id)))
			}
		}(i)
	}

	go func() {
		defer close(queue)
		for _, job := range jobs {
			select {
			case queue <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for outcome := range results {
		done++
		summary.record(outcome)
		if p.Observer != nil {
			p.Observer.OnOutcome(done, len(jobs), outcome)
		}
	}

	summary.Elapsed = time.Since(started)
	logger.Info("worker pool finished",
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, ctx.Err()
}

func convert(ctx context.Context, conv Converter, job Job, logger *slog.Logger) Outcome {
	started := time.Now()
	err := conv.Convert(ctx, job.Source, job.Target)
	outcome := Outcome{Job: job, Err: err, Duration: time.Since(started)}
	if err != nil {
		logger.Warn("conversion failed",
			logging.String(logging.FieldFile, job.Source),
			logging.String(logging.FieldTarget, job.Target),
			logging.Error(err),
		)
	} else {
		logger.Debug("converted",
			logging.String(logging.FieldFile, job.Source),
			logging.String(logging.FieldTarget, job.Target),
			logging.Duration("duration", outcome.Duration),
		)
	}
	return outcome
}
