package session

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/stepper"
)

type Options struct {
	Size int
	Min  int
	Max  int
	Seed int64
}

// Request carries the UI selections at the moment Start is pressed. Target
// is the raw text of the target field.
type Request struct {
	Algorithm string
	Delay     time.Duration
	Target    string
}

// Session owns the dataset and the single animation timeline. Engines run on
// a worker goroutine; Generate, Start and Stop cancel that worker and wait for
// it before touching the dataset again.
type Session struct {
	// ctl serialises Generate, Load, Start and Stop.
	ctl sync.Mutex
	// mu guards the fields below; the worker takes it when it exits.
	mu sync.Mutex

	opts     Options
	rng      *rand.Rand
	registry *algo.Registry
	sink     stepper.Sink
	logger   *log.Logger
	sleep    stepper.SleepFunc

	data   []int
	runs   uint64
	active uint64
	cancel context.CancelFunc
	done   chan struct{}
	last   *stepper.Outcome
}

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithSleep(fn stepper.SleepFunc) Option {
	return func(s *Session) { s.sleep = fn }
}

func WithRegistry(r *algo.Registry) Option {
	return func(s *Session) { s.registry = r }
}

func New(opts Options, sink stepper.Sink, options ...Option) *Session {
	s := &Session{
		opts:     opts,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		registry: algo.NewRegistry(),
		sink:     sink,
		logger:   log.Default(),
		sleep:    stepper.Sleep,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

func (s *Session) Registry() *algo.Registry { return s.registry }

// Generate abandons any run in flight, replaces the dataset with Size random
// integers in [Min, Max] and returns the all-neutral frame to draw.
func (s *Session) Generate() stepper.Frame {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	s.stop()

	n := max(s.opts.Size, 0)
	span := max(s.opts.Max-s.opts.Min+1, 1)
	data := make([]int, n)
	for i := range data {
		data[i] = s.opts.Min + s.rng.Intn(span)
	}
	s.replace(data)

	s.logger.Debug("dataset generated", "size", n, "min", s.opts.Min, "max", s.opts.Max)
	return stepper.Frame{Values: slices.Clone(data), Mask: make(algo.Mask, n)}
}

// Load replaces the dataset with a copy of values, as Generate does.
func (s *Session) Load(values []int) stepper.Frame {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	s.stop()

	s.replace(slices.Clone(values))
	return stepper.Frame{Values: slices.Clone(values), Mask: make(algo.Mask, len(values))}
}

func (s *Session) replace(data []int) {
	s.mu.Lock()
	s.data = data
	s.last = nil
	s.mu.Unlock()
}

// Start validates req and launches the selected engine on the live dataset.
// It returns the id carried by every frame of the new run. Rejected requests
// leave the dataset and any running animation untouched.
func (s *Session) Start(ctx context.Context, req Request) (uint64, error) {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	hasData := s.data != nil
	s.mu.Unlock()
	if !hasData {
		return 0, ErrNoDataset
	}

	a, err := s.registry.Get(req.Algorithm)
	if err != nil {
		return 0, err
	}
	target := 0
	if a.NeedsTarget() {
		target, err = ParseTarget(req.Target)
		if err != nil {
			return 0, err
		}
	}
	if req.Delay <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidDelay, req.Delay)
	}

	s.stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data
	if a.NeedsTarget() {
		slices.Sort(data)
	}

	s.runs++
	run := s.runs
	st, err := stepper.New(run, s.sink, req.Delay,
		stepper.WithSleep(s.sleep),
		stepper.WithMetrics(metrics.NewCheckpoints(), metrics.NewDisorder(), metrics.NewCoverage()),
	)
	if err != nil {
		return 0, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.active, s.cancel, s.done = run, cancel, done

	s.logger.Info("run started", "run", run, "algorithm", a.Name, "delay", req.Delay, "size", len(data))
	go s.execute(runCtx, run, a, data, target, st, done)

	return run, nil
}

func (s *Session) execute(ctx context.Context, run uint64, a algo.Algorithm, data []int, target int, st *stepper.Stepper, done chan struct{}) {
	defer close(done)

	start := time.Now()
	idx, err := a.Run(data, target, st.Checkpoint(ctx))
	elapsed := time.Since(start)

	var o *stepper.Outcome
	if err != nil {
		s.logger.Debug("run canceled", "run", run, "algorithm", a.Name, "checkpoints", st.Count(), "err", err)
	} else {
		o = &stepper.Outcome{
			Run:         run,
			Algorithm:   a.Name,
			Kind:        a.Kind,
			Target:      target,
			Index:       idx,
			Checkpoints: st.Count(),
			Elapsed:     elapsed,
			Values:      slices.Clone(data),
			Metrics:     st.Metrics(),
		}
		s.logger.Info("run finished", "run", run, "algorithm", a.Name, "checkpoints", o.Checkpoints, "elapsed", elapsed.Round(time.Millisecond))
		s.sink.Finish(ctx, *o)
	}

	s.mu.Lock()
	if s.active == run {
		s.active = 0
		s.last = o
	}
	s.mu.Unlock()
}

// Stop cancels the run in flight, if any, and waits for it to unwind.
func (s *Session) Stop() {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	s.stop()
}

// stop must be called with ctl held and mu released.
func (s *Session) stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	s.mu.Lock()
	s.active = 0
	s.mu.Unlock()
}

// Wait blocks until the current run, if any, has finished or been canceled.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether an engine is still animating.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != 0
}

// Snapshot copies the dataset. It reports false while a run is in flight,
// because the worker owns the slice until it finishes.
func (s *Session) Snapshot() ([]int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != 0 || s.data == nil {
		return nil, false
	}
	return slices.Clone(s.data), true
}

// Last returns the outcome of the most recent completed run.
func (s *Session) Last() (stepper.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return stepper.Outcome{}, false
	}
	return *s.last, true
}

// ParseTarget accepts a plain integer, surrounding whitespace allowed.
func ParseTarget(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: target is empty", ErrInvalidTarget)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidTarget, text)
	}
	return v, nil
}
