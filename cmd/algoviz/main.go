package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/stepper"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	verbose bool
	logFile string

	configFile string
	preset     string

	delay   float64
	target  string
	size    int
	minVal  int
	maxVal  int
	seed    int64
	width   int
	height  int
	theme   string
	noClear bool

	outFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "algoviz",
		Short:        "animated sorting and searching in the terminal",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.Float64Var(&delay, "delay", config.DefaultDelay, "seconds between steps (0.01-1.00)")
	pf.StringVar(&target, "target", "", "search target")
	pf.IntVar(&size, "size", config.DefaultSize, "number of values")
	pf.IntVar(&minVal, "min", config.DefaultMin, "smallest generated value")
	pf.IntVar(&maxVal, "max", config.DefaultMax, "largest generated value")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&width, "width", config.DefaultWidth, "chart width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "chart height in rows")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate one algorithm on stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&noClear, "no-clear", false, "append frames instead of redrawing")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVarP(&outFile, "output", "o", "", "also save to this file (.yaml or .toml)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every algorithm without delay and compare step counts",
		RunE:  benchAlgorithms,
	}

	rootCmd.AddCommand(runCmd, listCmd, presetsCmd, configCmd, benchCmd)
	return rootCmd
}

// resolveConfig layers defaults, the preset, the config file and finally any
// flag the user actually set.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("size") {
		cfg.Dataset.Size = size
	}
	if flags.Changed("min") {
		cfg.Dataset.Min = minVal
	}
	if flags.Changed("max") {
		cfg.Dataset.Max = maxVal
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Display.Width = width
	}
	if flags.Changed("height") {
		cfg.Display.Height = height
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer) (*log.Logger, func(), error) {
	if logFile == "" {
		return logging.New(w, logging.Level(verbose)), func() {}, nil
	}
	l, f, err := logging.OpenFile(logFile, logging.Level(verbose))
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return l, func() { f.Close() }, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	// log lines would tear the alternate screen, so only a file gets them
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(logging.WithLogger(ctx, logger), cfg, logger)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := algo.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w (try: algoviz list)", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chart := viz.NewBarChart(viz.Bounds{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Fill:   cfg.Display.Fill,
	}, viz.GetTheme(cfg.Display.Theme))
	screen := viz.NewTerminalSink(cmd.OutOrStdout(), chart, a.Name)
	screen.SetClear(!noClear)
	rec := &stepper.Recorder{}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	s := session.New(session.Options{
		Size: cfg.Dataset.Size,
		Min:  cfg.Dataset.Min,
		Max:  cfg.Dataset.Max,
		Seed: runSeed,
	}, stepper.Tee{screen, rec}, session.WithLogger(logger))
	logger.Debug("dataset seed", "seed", runSeed)

	screen.Start()
	defer screen.Stop()

	initial := s.Generate()
	if err := screen.Draw(initial); err != nil {
		return err
	}

	if _, err := s.Start(ctx, session.Request{
		Algorithm: a.Name,
		Delay:     tui.Seconds(cfg.Delay),
		Target:    cfg.Target,
	}); err != nil {
		return err
	}
	s.Wait()

	if ctx.Err() != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "\n  interrupted")
		return nil
	}

	out, ok := s.Last()
	if !ok {
		return errors.New("run ended without an outcome")
	}
	printSummary(cmd.OutOrStdout(), out, rec.Frames())
	return nil
}

func printSummary(w io.Writer, out stepper.Outcome, frames []stepper.Frame) {
	disorder := make([]float64, 0, len(frames))
	for _, f := range frames {
		disorder = append(disorder, f.Stats["disorder"])
	}

	fmt.Fprintln(w)
	if len(out.Values) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(viz.Ints(out.Values),
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("final dataset"),
		))
		fmt.Fprintln(w)
	}
	if plot := viz.Profile(disorder, 60, 8, "disorder per step"); plot != "" {
		fmt.Fprintln(w, plot)
		fmt.Fprintln(w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm\t%s\n", out.Algorithm)
	fmt.Fprintf(tw, "steps\t%d\n", out.Checkpoints)
	fmt.Fprintf(tw, "elapsed\t%v\n", out.Elapsed)
	if out.Kind == algo.KindSearch {
		if out.Found() {
			fmt.Fprintf(tw, "result\t%d at index %d\n", out.Target, out.Index)
		} else {
			fmt.Fprintf(tw, "result\t%d not found\n", out.Target)
		}
	}
	tw.Flush()
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	s := session.New(session.Options{
		Size: cfg.Dataset.Size,
		Min:  cfg.Dataset.Min,
		Max:  cfg.Dataset.Max,
		Seed: runSeed,
	}, stepper.Discard{})
	data := s.Generate().Values

	// without a target the searches look for the middle value
	goal := 0
	if cfg.Target != "" {
		if goal, err = session.ParseTarget(cfg.Target); err != nil {
			return err
		}
	} else if len(data) > 0 {
		sorted := slices.Clone(data)
		slices.Sort(sorted)
		goal = sorted[len(sorted)/2]
	}

	e := stepper.NewEnsemble(func() []stepper.Metric {
		return []stepper.Metric{metrics.NewDisorder(), metrics.NewCoverage()}
	}, algo.NewRegistry().List()...)

	results, err := e.Run(cmd.Context(), data, goal)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "benchmarking %d values (seed %d, target %d)\n\n", len(data), runSeed, goal)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOVERAGE\tTIME\tRESULT")
	for _, o := range results {
		result := "sorted"
		if o.Kind == algo.KindSearch {
			result = "not found"
			if o.Found() {
				result = fmt.Sprintf("index %d", o.Index)
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f%%\t%v\t%s\n",
			o.Algorithm, o.Checkpoints, o.Metrics["coverage"]*100, o.Elapsed, result)
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKEY\tKIND")
	for _, a := range algo.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.Key, a.Kind)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGORITHM\tSIZE\tDELAY\tTARGET")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%s\n", name, p.Algorithm, p.Dataset.Size, p.Delay, p.Target)
	}
	return w.Flush()
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", outFile)
	}
	return nil
}
