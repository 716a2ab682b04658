package stepper

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/san-kum/algoviz/internal/algo"
)

// Stepper paces one run: every checkpoint emits a frame and then suspends
// for the configured delay before the engine may continue.
type Stepper struct {
	run     uint64
	sink    Sink
	delay   time.Duration
	sleep   SleepFunc
	metrics []Metric
	seq     int
}

type Option func(*Stepper)

func WithSleep(fn SleepFunc) Option {
	return func(s *Stepper) { s.sleep = fn }
}

func WithMetrics(m ...Metric) Option {
	return func(s *Stepper) { s.metrics = append(s.metrics, m...) }
}

func New(run uint64, sink Sink, delay time.Duration, opts ...Option) (*Stepper, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("delay must be positive, got %v", delay)
	}
	s := &Stepper{
		run:   run,
		sink:  sink,
		delay: delay,
		sleep: Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, m := range s.metrics {
		m.Reset()
	}
	return s, nil
}

func (s *Stepper) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

// Checkpoint binds the stepper to ctx and returns the callback handed to an
// engine. Once ctx is done the callback returns ctx.Err() without emitting.
func (s *Stepper) Checkpoint(ctx context.Context) algo.Checkpoint {
	return func(values []int, mask algo.Mask) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.seq++
		f := Frame{
			Run:    s.run,
			Seq:    s.seq,
			Values: slices.Clone(values),
			Mask:   slices.Clone(mask),
			Stats:  make(map[string]float64, len(s.metrics)),
		}
		for _, m := range s.metrics {
			m.Observe(f.Values, f.Mask)
			f.Stats[m.Name()] = m.Value()
		}

		if err := s.sink.Emit(ctx, f); err != nil {
			return err
		}
		return s.sleep(ctx, s.delay)
	}
}

// Count is the number of checkpoints emitted so far.
func (s *Stepper) Count() int { return s.seq }

func (s *Stepper) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
