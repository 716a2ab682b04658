package metrics

import "github.com/san-kum/algoviz/internal/algo"

// Disorder tracks the number of inversions in the most recent frame. It
// reaches zero exactly when the dataset is sorted ascending.
type Disorder struct {
	name    string
	current int
}

func NewDisorder() *Disorder {
	return &Disorder{
		name: "disorder",
	}
}

func (d *Disorder) Name() string {
	return d.name
}

func (d *Disorder) Observe(values []int, mask algo.Mask) {
	d.current = Inversions(values)
}

func (d *Disorder) Value() float64 {
	return float64(d.current)
}

func (d *Disorder) Reset() {
	d.current = 0
}

// Inversions counts pairs i < j with values[i] > values[j]. Datasets are a
// few hundred elements at most, so the quadratic scan is fine per frame.
func Inversions(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}
