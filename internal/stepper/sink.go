package stepper

import (
	"context"
	"sync"
)

// ChanSink forwards frames and outcomes to channels owned by the caller.
// Sends block until received or ctx is done, which keeps checkpoint N+1 from
// being computed before checkpoint N was handed over.
type ChanSink struct {
	Frames   chan<- Frame
	Outcomes chan<- Outcome
}

func (c ChanSink) Emit(ctx context.Context, f Frame) error {
	select {
	case c.Frames <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c ChanSink) Finish(ctx context.Context, o Outcome) {
	if c.Outcomes == nil {
		return
	}
	select {
	case c.Outcomes <- o:
	case <-ctx.Done():
	}
}

// Recorder keeps every frame and outcome in memory.
type Recorder struct {
	mu       sync.Mutex
	frames   []Frame
	outcomes []Outcome
}

func (r *Recorder) Emit(ctx context.Context, f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func (r *Recorder) Finish(ctx context.Context, o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

func (r *Recorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Outcome(nil), r.outcomes...)
}

// Tee fans frames and outcomes out to several sinks in order.
type Tee []Sink

func (t Tee) Emit(ctx context.Context, f Frame) error {
	for _, s := range t {
		if err := s.Emit(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (t Tee) Finish(ctx context.Context, o Outcome) {
	for _, s := range t {
		s.Finish(ctx, o)
	}
}

// Discard drops everything.
type Discard struct{}

func (Discard) Emit(ctx context.Context, f Frame) error { return nil }
func (Discard) Finish(ctx context.Context, o Outcome) {}
