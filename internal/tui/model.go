package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/stepper"
	"github.com/san-kum/algoviz/internal/viz"
)

const historyCap = 512

type frameMsg stepper.Frame

type finishedMsg stepper.Outcome

// waitForEvent delivers the next frame or outcome from the worker. It is
// re-armed after every delivery so exactly one read is pending.
func waitForEvent(frames <-chan stepper.Frame, outcomes <-chan stepper.Outcome) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-frames:
			return frameMsg(f)
		case o := <-outcomes:
			return finishedMsg(o)
		}
	}
}

type Model struct {
	ctx     context.Context
	session *session.Session
	logger  *log.Logger

	frames   chan stepper.Frame
	outcomes chan stepper.Outcome

	keys   KeyMap
	help   help.Model
	target textinput.Model

	algos  []algo.Algorithm
	cursor int
	delay  float64
	theme  viz.Theme
	bounds viz.Bounds
	maxW   int

	// run is the id of the animation being drawn, 0 when idle.
	run     uint64
	frame   stepper.Frame
	history []float64
	outcome *stepper.Outcome

	status    string
	statusErr bool

	width  int
	height int
}

func New(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...session.Option) Model {
	frames := make(chan stepper.Frame)
	outcomes := make(chan stepper.Outcome)

	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	s := session.New(session.Options{
		Size: cfg.Dataset.Size,
		Min:  cfg.Dataset.Min,
		Max:  cfg.Dataset.Max,
		Seed: seedOrNow(cfg.Seed),
	}, stepper.ChanSink{Frames: frames, Outcomes: outcomes}, opts...)

	ti := textinput.New()
	ti.Prompt = "target › "
	ti.Placeholder = "integer"
	ti.CharLimit = 12
	ti.Width = 12
	ti.SetValue(cfg.Target)

	algos := s.Registry().List()
	cursor := 0
	if a, err := s.Registry().Get(cfg.Algorithm); err == nil {
		for i := range algos {
			if algos[i].Key == a.Key {
				cursor = i
			}
		}
	}

	return Model{
		ctx:      ctx,
		session:  s,
		logger:   logger,
		frames:   frames,
		outcomes: outcomes,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		target:   ti,
		algos:    algos,
		cursor:   cursor,
		delay:    config.ClampDelay(cfg.Delay),
		theme:    viz.GetTheme(cfg.Display.Theme),
		bounds:   viz.Bounds{Width: cfg.Display.Width, Height: cfg.Display.Height, Fill: cfg.Display.Fill},
		maxW:     cfg.Display.Width,
		status:   "press g to generate a dataset",
		width:    120,
		height:   40,
	}
}

func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	return waitForEvent(m.frames, m.outcomes)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.bounds.Width = max(min(m.maxW, msg.Width-50), 10)
		return m, nil

	case frameMsg:
		if msg.Run == m.run && m.run != 0 {
			m.frame = stepper.Frame(msg)
			if d, ok := msg.Stats["disorder"]; ok {
				m.history = appendCapped(m.history, d)
			}
		}
		return m, m.listen()

	case finishedMsg:
		if msg.Run == m.run && m.run != 0 {
			o := stepper.Outcome(msg)
			m.outcome = &o
			m.run = 0
			m.frame.Values = o.Values
			m.setStatus(describe(o), false)
		}
		return m, m.listen()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.target.Focused() {
		switch {
		case msg.String() == "ctrl+c":
			m.session.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Blur), msg.String() == "tab":
			m.target.Blur()
			return m, nil
		case msg.String() == "enter":
			m.target.Blur()
			m.start()
			return m, nil
		}
		var cmd tea.Cmd
		m.target, cmd = m.target.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.algos)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.delay = config.ClampDelay(m.delay - config.DelayStep)
	case key.Matches(msg, m.keys.Right):
		m.delay = config.ClampDelay(m.delay + config.DelayStep)
	case key.Matches(msg, m.keys.Theme):
		m.theme = viz.NextTheme(m.theme.Name)
	case key.Matches(msg, m.keys.Focus):
		return m, m.target.Focus()
	case key.Matches(msg, m.keys.Generate):
		m.generate()
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Stop):
		if m.run != 0 {
			m.session.Stop()
			m.run = 0
			m.setStatus("stopped", false)
		}
	}
	return m, nil
}

func (m *Model) generate() {
	m.frame = m.session.Generate()
	m.run = 0
	m.outcome = nil
	m.history = nil
	m.setStatus(fmt.Sprintf("generated %d values", len(m.frame.Values)), false)
}

func (m *Model) start() {
	a := m.algos[m.cursor]
	run, err := m.session.Start(m.ctx, session.Request{
		Algorithm: a.Name,
		Delay:     Seconds(m.delay),
		Target:    m.target.Value(),
	})
	if err != nil {
		m.setStatus(rejection(err), true)
		return
	}

	m.run = run
	m.outcome = nil
	m.history = nil
	m.setStatus(fmt.Sprintf("running %s", a.Name), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func rejection(err error) string {
	switch {
	case errors.Is(err, session.ErrNoDataset):
		return "no dataset: press g to generate one first"
	case errors.Is(err, session.ErrInvalidTarget):
		return "enter an integer target before starting a search"
	}
	return err.Error()
}

func describe(o stepper.Outcome) string {
	switch {
	case o.Found():
		return fmt.Sprintf("%s found %d at index %d", o.Algorithm, o.Target, o.Index)
	case o.Kind == algo.KindSearch:
		return fmt.Sprintf("%s: %d not found", o.Algorithm, o.Target)
	}
	return fmt.Sprintf("%s done in %d steps", o.Algorithm, o.Checkpoints)
}

// Seconds converts a delay selection into a duration, rounded to the
// millisecond so 0.01 steps stay exact.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s*1000)) * time.Millisecond
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCap {
		h = h[len(h)-historyCap:]
	}
	return h
}

func (m Model) View() string {
	var b strings.Builder

	status := viz.StatusIdle.Render("○ idle")
	if m.run != 0 {
		status = viz.StatusRunning.Render("● running")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n\n",
		viz.Title.Render("a l g o v i z"), status, viz.Subtle.Render(m.theme.Name)))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		viz.ChartPanel.Render(m.viewChart()),
		viz.StatsPanel.Render(m.viewSide()),
	)
	b.WriteString(body + "\n")

	line := viz.Subtle.Render(m.status)
	if m.statusErr {
		line = viz.StatusError.Render(m.status)
	}
	b.WriteString("  " + line + "\n\n")
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) viewChart() string {
	if m.frame.Values == nil {
		return lipgloss.Place(m.bounds.Width, m.bounds.Height, lipgloss.Center, lipgloss.Center,
			viz.Subtle.Render("no dataset, press g to generate"))
	}
	mask := m.frame.Mask
	if m.run == 0 || len(mask) != len(m.frame.Values) {
		mask = viz.Neutral(len(m.frame.Values))
	}
	if m.outcome != nil && m.outcome.Found() {
		mask = algo.Highlight(len(m.frame.Values), algo.Found, m.outcome.Index)
	}
	out, err := viz.NewBarChart(m.bounds, m.theme).Render(m.frame.Values, mask)
	if err != nil {
		return viz.StatusError.Render(err.Error())
	}
	return strings.TrimSuffix(out, "\n")
}

func (m Model) viewSide() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("algorithm") + "\n")
	for i, a := range m.algos {
		if i == m.cursor {
			b.WriteString(viz.Selected.Render("▸ "+a.Name) + "\n")
		} else {
			b.WriteString(viz.Subtle.Render("  "+a.Name) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(viz.MetricLabel.Render("delay") + viz.MetricValue.Render(fmt.Sprintf("%.2fs", m.delay)) + "\n")
	if m.algos[m.cursor].NeedsTarget() || m.target.Focused() {
		b.WriteString(m.target.View() + "\n")
	}
	b.WriteString("\n")

	n := len(m.frame.Values)
	b.WriteString(viz.MetricLabel.Render("size") + viz.MetricValue.Render(fmt.Sprintf("%d", n)) + "\n")
	if m.frame.Stats != nil {
		b.WriteString(viz.MetricLabel.Render("step") + viz.MetricValue.Render(fmt.Sprintf("%d", m.frame.Seq)) + "\n")
		if c, ok := m.frame.Stats["coverage"]; ok {
			b.WriteString(viz.MetricLabel.Render("coverage") + viz.MetricValue.Render(fmt.Sprintf("%.0f%%", c*100)) + "\n")
		}
		if d, ok := m.frame.Stats["disorder"]; ok {
			b.WriteString(viz.MetricLabel.Render("sorted") + viz.ProgressBar(viz.Sortedness(d, n), 20) + "\n")
		}
	}

	if plot := viz.Profile(m.history, 28, 5, "disorder"); plot != "" {
		b.WriteString("\n" + plot + "\n")
	}
	return b.String()
}

// Run starts the interactive visualizer on the alternate screen.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	m := New(ctx, cfg, logger)
	defer m.session.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
