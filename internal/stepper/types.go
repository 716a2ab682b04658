package stepper

import (
	"context"
	"time"

	"github.com/san-kum/algoviz/internal/algo"
)

// Frame is an immutable snapshot taken at one checkpoint.
type Frame struct {
	Run    uint64
	Seq    int
	Values []int
	Mask   algo.Mask
	Stats  map[string]float64
}

// Sink receives frames from a running engine. Emit may block; it must give up
// when ctx is done. Finish is only called for runs that were not cancelled.
type Sink interface {
	Emit(ctx context.Context, f Frame) error
	Finish(ctx context.Context, o Outcome)
}

type Metric interface {
	Name() string
	Observe(values []int, mask algo.Mask)
	Value() float64
	Reset()
}

// SleepFunc suspends for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Outcome summarises a completed run.
type Outcome struct {
	Run         uint64
	Algorithm   string
	Kind        algo.Kind
	Target      int
	Index       int
	Checkpoints int
	Elapsed     time.Duration
	Values      []int
	Metrics     map[string]float64
}

func (o Outcome) Found() bool { return o.Kind == algo.KindSearch && o.Index != algo.NotFound }
