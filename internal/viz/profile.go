package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Profile plots series as an ASCII line chart. It returns "" for fewer than
// two points since a single sample has no shape.
func Profile(series []float64, width, height int, caption string) string {
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Ints converts a dataset for plotting.
func Ints(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
