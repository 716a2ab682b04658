package metrics

import "github.com/san-kum/algoviz/internal/algo"

// Coverage is the fraction of indices that were emphasised in at least one
// frame of the run.
type Coverage struct {
	name    string
	touched map[int]struct{}
	size    int
}

func NewCoverage() *Coverage {
	return &Coverage{
		name:    "coverage",
		touched: make(map[int]struct{}),
	}
}

func (c *Coverage) Name() string {
	return c.name
}

func (c *Coverage) Observe(values []int, mask algo.Mask) {
	c.size = len(values)
	for _, i := range mask.Emphasised() {
		c.touched[i] = struct{}{}
	}
}

func (c *Coverage) Value() float64 {
	if c.size == 0 {
		return 0
	}
	return float64(len(c.touched)) / float64(c.size)
}

func (c *Coverage) Reset() {
	clear(c.touched)
	c.size = 0
}
