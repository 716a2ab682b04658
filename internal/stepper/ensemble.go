package stepper

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/algo"
)

// Ensemble runs several algorithms side by side, each on its own copy of one
// dataset and without any pacing. Metrics are built per run since they are
// not safe to share between goroutines.
type Ensemble struct {
	algos   []algo.Algorithm
	metrics func() []Metric
}

func NewEnsemble(metrics func() []Metric, algos ...algo.Algorithm) *Ensemble {
	if metrics == nil {
		metrics = func() []Metric { return nil }
	}
	return &Ensemble{algos: algos, metrics: metrics}
}

func noSleep(ctx context.Context, d time.Duration) error { return ctx.Err() }

// Run returns one Outcome per algorithm, in the order they were given.
// Searches see a sorted copy of data.
func (e *Ensemble) Run(ctx context.Context, data []int, target int) ([]Outcome, error) {
	results := make([]Outcome, len(e.algos))
	errs := make([]error, len(e.algos))

	var wg sync.WaitGroup
	for i, a := range e.algos {
		wg.Add(1)
		go func(idx int, a algo.Algorithm) {
			defer wg.Done()

			work := slices.Clone(data)
			if a.NeedsTarget() {
				slices.Sort(work)
			}

			st, err := New(uint64(idx+1), Discard{}, time.Nanosecond,
				WithSleep(noSleep), WithMetrics(e.metrics()...))
			if err != nil {
				errs[idx] = err
				return
			}

			start := time.Now()
			found, err := a.Run(work, target, st.Checkpoint(ctx))
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = Outcome{
				Run:         uint64(idx + 1),
				Algorithm:   a.Name,
				Kind:        a.Kind,
				Target:      target,
				Index:       found,
				Checkpoints: st.Count(),
				Elapsed:     time.Since(start),
				Values:      work,
				Metrics:     st.Metrics(),
			}
		}(i, a)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
