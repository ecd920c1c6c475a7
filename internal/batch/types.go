package batch

import (
	"context"
	"time"
)

// Converter transcodes one source file into target.
type Converter interface {
	Convert(ctx context.Context, source, target string) error
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(ctx context.Context, source, target string) error

func (f ConverterFunc) Convert(ctx context.Context, source, target string) error {
	return f(ctx, source, target)
}

// Job is one planned conversion.
type Job struct {
	Source string
	Target string
}

// Outcome is the result of attempting one Job.
type Outcome struct {
	Job
	Err      error
	Duration time.Duration
}

// OK reports whether the conversion succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// Attempted is the number of jobs that produced an outcome.
func (s Summary) Attempted() int {
	return s.Succeeded + s.Failed
}

func (s *Summary) record(o Outcome) {
	if o.OK() {
		s.Succeeded++
	} else {
		s.Failed++
	}
}

// Observer receives one call per finished job. done counts finished jobs
// including this one.
type Observer interface {
	OnOutcome(done, total int, o Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(done, total int, o Outcome)

func (f ObserverFunc) OnOutcome(done, total int, o Outcome) {
	f(done, total, o)
}
