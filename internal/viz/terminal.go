package viz

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/stepper"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// TerminalSink draws every frame straight to w. Each frame is written with a
// single Write call, so it is on the terminal before the stepper sleeps.
type TerminalSink struct {
	w     io.Writer
	chart BarChart
	title string
	clear bool
}

func NewTerminalSink(w io.Writer, chart BarChart, title string) *TerminalSink {
	return &TerminalSink{w: w, chart: chart, title: title, clear: true}
}

// SetClear controls whether frames start with a clear-screen sequence.
func (t *TerminalSink) SetClear(on bool) { t.clear = on }

func (t *TerminalSink) SetTitle(title string) { t.title = title }

func (t *TerminalSink) Emit(ctx context.Context, f stepper.Frame) error {
	return t.Draw(f)
}

// Draw renders a frame without any pacing; used for the generated dataset.
func (t *TerminalSink) Draw(f stepper.Frame) error {
	frame, err := t.chart.Render(f.Values, f.Mask)
	if err != nil {
		return err
	}

	var b strings.Builder
	if t.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  step=%d\n", Title.Render(t.title), f.Seq))
	b.WriteString("  " + strings.Repeat("-", t.chart.Bounds.Width) + "\n")
	for _, line := range strings.SplitAfter(strings.TrimSuffix(frame, "\n"), "\n") {
		b.WriteString("  " + line)
	}
	b.WriteString("\n  " + strings.Repeat("-", t.chart.Bounds.Width) + "\n")
	b.WriteString("  " + formatStats(f.Stats) + "\n")

	_, err = io.WriteString(t.w, b.String())
	return err
}

func (t *TerminalSink) Finish(ctx context.Context, o stepper.Outcome) {
	var line string
	switch {
	case o.Kind == algo.KindSearch && o.Found():
		line = fmt.Sprintf("%s: found %d at index %d", o.Algorithm, o.Target, o.Index)
	case o.Kind == algo.KindSearch:
		line = fmt.Sprintf("%s: %d not found", o.Algorithm, o.Target)
	default:
		line = fmt.Sprintf("%s: sorted %d values", o.Algorithm, len(o.Values))
	}
	fmt.Fprintf(t.w, "  %s (%d checkpoints, %v)\n", line, o.Checkpoints, o.Elapsed.Round(time.Millisecond))
}

func (t *TerminalSink) Start() { io.WriteString(t.w, hideCursor) }
func (t *TerminalSink) Stop()  { io.WriteString(t.w, showCursor) }

func formatStats(stats map[string]float64) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.4g", k, stats[k]))
	}
	return strings.Join(parts, " ")
}
