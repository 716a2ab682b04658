package metrics

import "github.com/san-kum/algoviz/internal/algo"

type Checkpoints struct {
	name  string
	count int
}

func NewCheckpoints() *Checkpoints {
	return &Checkpoints{
		name: "checkpoints",
	}
}

func (c *Checkpoints) Name() string {
	return c.name
}

func (c *Checkpoints) Observe(values []int, mask algo.Mask) {
	c.count++
}

func (c *Checkpoints) Value() float64 {
	return float64(c.count)
}

func (c *Checkpoints) Reset() {
	c.count = 0
}
