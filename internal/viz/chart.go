package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/algo"
)

var ErrMaskLength = errors.New("viz: mask length does not match values")

const (
	DefaultWidth  = 100
	DefaultHeight = 20
	// DefaultFill matches a 350px tallest bar on a 400px canvas.
	DefaultFill = 0.875
)

// partial glyphs indexed by eighths-1
var partial = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

const full = '█'

// Bounds is the drawing area in terminal cells.
type Bounds struct {
	Width, Height int
	Fill          float64
}

func DefaultBounds() Bounds {
	return Bounds{Width: DefaultWidth, Height: DefaultHeight, Fill: DefaultFill}
}

// Bar spans columns [X0, X1) and is Eighths/8 cells tall.
type Bar struct {
	X0, X1  int
	Eighths int
}

// Layout scales values against their maximum so the tallest bar reaches
// Fill of the area height. Bars share the width evenly; when there are more
// values than columns some bars collapse to zero width.
func Layout(values []int, b Bounds) []Bar {
	bars := make([]Bar, len(values))
	n := len(values)
	if n == 0 {
		return bars
	}

	maxVal := 0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	tallest := b.Fill * float64(b.Height*8)

	for i, v := range values {
		bars[i].X0 = i * b.Width / n
		bars[i].X1 = (i + 1) * b.Width / n
		if maxVal > 0 && v > 0 {
			bars[i].Eighths = int(math.Round(float64(v) / float64(maxVal) * tallest))
		}
	}
	return bars
}

// BarChart renders frames into strings. It keeps no state between calls.
type BarChart struct {
	Bounds Bounds
	Theme  Theme
}

func NewBarChart(b Bounds, theme Theme) BarChart {
	return BarChart{Bounds: b, Theme: theme}
}

// Render draws one complete frame, top row first.
func (c BarChart) Render(values []int, mask algo.Mask) (string, error) {
	if len(values) != len(mask) {
		return "", fmt.Errorf("%w: %d values, %d tags", ErrMaskLength, len(values), len(mask))
	}

	bars := Layout(values, c.Bounds)
	styles := make(map[algo.Tag]lipgloss.Style)
	style := func(t algo.Tag) lipgloss.Style {
		s, ok := styles[t]
		if !ok {
			s = lipgloss.NewStyle().Foreground(c.Theme.Color(t))
			styles[t] = s
		}
		return s
	}

	var b strings.Builder
	for row := 0; row < c.Bounds.Height; row++ {
		floor := (c.Bounds.Height - 1 - row) * 8
		col := 0
		for i, bar := range bars {
			w := bar.X1 - bar.X0
			if w <= 0 {
				continue
			}
			b.WriteString(strings.Repeat(" ", bar.X0-col))
			col = bar.X1

			g := glyph(bar.Eighths - floor)
			if g == ' ' {
				b.WriteString(strings.Repeat(" ", w))
				continue
			}
			b.WriteString(style(mask[i]).Render(strings.Repeat(string(g), w)))
		}
		b.WriteString(strings.Repeat(" ", max(c.Bounds.Width-col, 0)))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func glyph(level int) rune {
	switch {
	case level >= 8:
		return full
	case level <= 0:
		return ' '
	default:
		return partial[level-1]
	}
}

// Neutral returns an all-neutral mask for n elements.
func Neutral(n int) algo.Mask { return make(algo.Mask, n) }
