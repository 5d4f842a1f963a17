package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/jumpviz/internal/analysis"
	"github.com/san-kum/jumpviz/internal/automation"
	"github.com/san-kum/jumpviz/internal/config"
	"github.com/san-kum/jumpviz/internal/export"
	"github.com/san-kum/jumpviz/internal/logging"
	"github.com/san-kum/jumpviz/internal/metrics"
	"github.com/san-kum/jumpviz/internal/motion"
	"github.com/san-kum/jumpviz/internal/render"
	"github.com/san-kum/jumpviz/internal/storage"
	"github.com/san-kum/jumpviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	preset     string

	outPath        string
	withVelocities bool
	markerName     string
	axisName       string
	framesDir      string
	every          int
	count          int
	level          float64
	snapshotDir    string
	fromFrame      int
	toFrame        int
)

// env is what every command needs after flags and config are resolved.
type env struct {
	cfg   *config.Config
	log   zerolog.Logger
	store *storage.Store
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "jumpviz",
		Short:         "jump marker trajectories: kinematics and stick-figure rendering",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use render preset")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	infoCmd := &cobra.Command{
		Use:   "info [condition] [jump]",
		Short: "summarize a recording",
		Args:  cobra.ExactArgs(2),
		RunE:  showInfo,
	}

	frameCmd := &cobra.Command{
		Use:   "frame [condition] [jump] [index]",
		Short: "print or render the stick figure at one frame",
		Args:  cobra.ExactArgs(3),
		RunE:  showFrame,
	}
	frameCmd.Flags().StringVarP(&outPath, "out", "o", "", "render to file (.png, .svg, .pdf)")
	frameCmd.Flags().BoolVar(&withVelocities, "velocities", false, "draw velocity arrows")

	plotCmd := &cobra.Command{
		Use:   "plot [condition] [jump]",
		Short: "plot a marker's position and velocity",
		Args:  cobra.ExactArgs(2),
		RunE:  plotMarker,
	}
	plotCmd.Flags().StringVar(&markerName, "marker", "chest", "marker")
	windowFlags(plotCmd)

	phaseCmd := &cobra.Command{
		Use:   "phase [condition] [jump]",
		Short: "phase portrait of a marker",
		Args:  cobra.ExactArgs(2),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&markerName, "marker", "chest", "marker")
	phaseCmd.Flags().StringVar(&axisName, "axis", "y", "axis (x or y)")
	phaseCmd.Flags().Float64Var(&level, "level", metrics.DefaultLiftoff, "report crossings this far past the starting position")

	animateCmd := &cobra.Command{
		Use:   "animate [condition] [jump]",
		Short: "play the recording in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE:  animate,
	}
	animateCmd.Flags().StringVar(&framesDir, "frames", "", "write frames as PNG into this directory instead")
	animateCmd.Flags().IntVar(&every, "every", 1, "render every n-th frame")
	animateCmd.Flags().BoolVar(&withVelocities, "velocities", false, "draw velocity arrows")
	animateCmd.Flags().StringVar(&snapshotDir, "snapshots", ".", "directory for SVG snapshots")
	windowFlags(animateCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [jump]",
		Short: "compare the good and bad recordings of a jump",
		Args:  cobra.ExactArgs(1),
		RunE:  compareConditions,
	}
	compareCmd.Flags().StringVarP(&outPath, "out", "o", "", "comparison sheet (default compare_<jump>.png)")
	compareCmd.Flags().IntVar(&count, "count", 5, "frames per row")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [condition] [jump]",
		Short: "export kinematics to CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportSeries(cmd, args, export.CSV)
		},
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	windowFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [condition] [jump]",
		Short: "export kinematics and metrics to JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportSeries(cmd, args, export.JSON)
		},
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	windowFlags(exportJSONCmd)

	reportCmd := &cobra.Command{
		Use:   "report [jump]",
		Short: "HTML report of marker speeds, good vs bad",
		Args:  cobra.ExactArgs(1),
		RunE:  writeReport,
	}
	reportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default report_<jump>.html)")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a batch of renders and exports",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list render presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTIMER\tVELOCITIES\tXLIM\tYLIM")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\n", name, p.Timer, p.WithVelocities, p.XLim, p.YLim)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(listCmd, infoCmd, frameCmd, plotCmd, phaseCmd, animateCmd, compareCmd, exportCSVCmd, exportJSONCmd, reportCmd, runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func windowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&fromFrame, "from", 0, "first frame")
	cmd.Flags().IntVar(&toFrame, "to", 0, "stop before this frame (0 = end)")
}

// setup resolves config: file first, then preset, then explicit flags.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, cfg.LogLevel)
	store := storage.New(cfg.DataDir).WithLogger(log)
	return &env{cfg: cfg, log: log, store: store}, nil
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Render = *p
	}

	flags := cmd.Flags()
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("velocities") != nil && flags.Changed("velocities") {
		cfg.Render.WithVelocities = withVelocities
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseKey(cond, jump string) (motion.Condition, motion.JumpType, error) {
	c, err := motion.ParseCondition(cond)
	if err != nil {
		return "", "", err
	}
	j, err := motion.ParseJumpType(jump)
	if err != nil {
		return "", "", err
	}
	return c, j, nil
}

func (e *env) load(cond, jump string) (*motion.Series, error) {
	c, j, err := parseKey(cond, jump)
	if err != nil {
		return nil, err
	}
	return e.store.Load(c, j)
}

// loadWindow is load restricted to the --from/--to frames.
func (e *env) loadWindow(cond, jump string) (*motion.Series, error) {
	s, err := e.load(cond, jump)
	if err != nil {
		return nil, err
	}
	if fromFrame == 0 && toFrame <= 0 {
		return s, nil
	}
	to := toFrame
	if to <= 0 {
		to = s.Len()
	}
	w, err := s.Window(fromFrame, to)
	if err != nil {
		return nil, fmt.Errorf("window [%d, %d): %w", fromFrame, to, err)
	}
	e.log.Debug().Str("recording", s.Key().String()).Int("from", fromFrame).Int("to", to).Msg("windowed")
	return w, nil
}

// pair loads the good and bad recordings of jump, good first.
func (e *env) pair(jump string) ([]*motion.Series, error) {
	j, err := motion.ParseJumpType(jump)
	if err != nil {
		return nil, err
	}
	out := make([]*motion.Series, 0, 2)
	for _, c := range motion.Conditions() {
		s, err := e.store.Load(c, j)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	keys, err := e.store.List()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Printf("no recordings found in %s\n", e.cfg.DataDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONDITION\tJUMP\tSAMPLES\tDURATION\tDT")
	for _, key := range keys {
		s, err := e.store.Load(key.Condition, key.JumpType)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t%v\n", key.Condition, key.JumpType, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%.4fs\n", key.Condition, key.JumpType, s.Len(), s.Duration(), s.Interval())
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := e.load(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("recording: %s\n", s.Key())
	fmt.Printf("samples: %d\n", s.Len())
	fmt.Printf("duration: %.3fs\n", s.Duration())
	fmt.Printf("dt: %.4fs\n", s.Interval())
	fmt.Printf("playback interval: %v\n\n", e.cfg.Render.FrameInterval(s.Interval()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MARKER\tPEAK SPEED")
	peaks := metrics.PeakSpeeds(s)
	for _, m := range motion.Markers() {
		fmt.Fprintf(w, "%s\t%.3f m/s\n", m, peaks[m])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	values := metrics.Evaluate(s, metrics.Default()...)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range metrics.Names(values) {
		fmt.Fprintf(w, "%s\t%.4f\n", name, values[name])
	}
	return w.Flush()
}

func showFrame(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := e.load(args[0], args[1])
	if err != nil {
		return err
	}
	index, err := parseFrameIndex(args[2])
	if err != nil {
		return err
	}

	f, err := motion.StickFigurePoints(s, index)
	if err != nil {
		return err
	}

	fmt.Printf("%s frame %d/%d\n", s.Key(), f.Index, s.Len()-1)
	fmt.Println(e.cfg.Render.TimerText(f.Time, s.At(motion.Chest, f.Index).X))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tMARKER\tX\tY\tVX\tVY")
	for i, m := range motion.StickFigure {
		fmt.Fprintf(w, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n", i, m, f.X[i], f.Y[i], f.VX[i], f.VY[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if outPath == "" {
		return nil
	}
	r := render.New(e.cfg.Render).WithLogger(e.log)
	if err := r.SaveFrame(s, index, outPath); err != nil {
		return err
	}
	fmt.Printf("\nwrote %s\n", outPath)
	return nil
}

func parseFrameIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid frame index %q: %w", arg, err)
	}
	return index, nil
}

func plotMarker(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := e.loadWindow(args[0], args[1])
	if err != nil {
		return err
	}
	m, err := motion.ParseMarker(markerName)
	if err != nil {
		return err
	}

	fmt.Printf("recording: %s\n", s.Key())
	fmt.Printf("marker: %s\n", m)
	fmt.Printf("samples: %d\n\n", s.Len())

	series := []struct {
		caption string
		data    []float64
	}{
		{"x position (m)", s.Position(m, motion.X)},
		{"y position (m)", s.Position(m, motion.Y)},
		{"x velocity (m/s)", s.Velocity(m, motion.X)},
		{"y velocity (m/s)", s.Velocity(m, motion.Y)},
	}
	for _, p := range series {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := e.load(args[0], args[1])
	if err != nil {
		return err
	}
	m, err := motion.ParseMarker(markerName)
	if err != nil {
		return err
	}
	axis, err := motion.ParseAxis(axisName)
	if err != nil {
		return err
	}

	portrait := analysis.GeneratePhasePortrait(s, m, axis)
	minX, maxX, minY, maxY := portrait.Bounds()

	fmt.Printf("phase portrait: %s\n", s.Key())
	fmt.Printf("marker: %s, axis: %s\n", m, axis)
	fmt.Printf("position: [%.3f, %.3f] m, velocity: [%.3f, %.3f] m/s\n\n", minX, maxX, minY, maxY)
	fmt.Print(analysis.PhasePortraitToASCII(portrait, 70, 22))

	threshold := s.Position(m, axis)[0] + level
	crossings := analysis.Crossings(s, m, axis, threshold)
	fmt.Printf("\ncrossings of %s = %.3f m: %d\n", axis, threshold, len(crossings))
	for _, c := range crossings {
		dir := "down"
		if c.Rising {
			dir = "up"
		}
		fmt.Printf("  t=%.3fs frame %d %s\n", c.Time, c.Frame, dir)
	}
	return nil
}

func animate(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := e.loadWindow(args[0], args[1])
	if err != nil {
		return err
	}

	if framesDir != "" {
		r := render.New(e.cfg.Render).WithLogger(e.log)
		n, err := r.SaveFrames(s, framesDir, every)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s (interval %v)\n", n, framesDir, r.FrameInterval(s))
		return nil
	}

	player := viz.NewPlayer(s, e.cfg.Render).
		WithGIFPath(fmt.Sprintf("%s_%s.gif", s.Condition(), s.JumpType())).
		WithSnapshot(func(c *viz.Canvas, th viz.Theme, frame int) (string, error) {
			path := filepath.Join(snapshotDir, fmt.Sprintf("%s_%s_%04d.svg", s.Condition(), s.JumpType(), frame))
			svg := export.BrailleToSVG(c, 4, th.SVGFg, th.SVGBg)
			return path, os.WriteFile(path, []byte(svg), 0644)
		})

	e.log.Debug().Str("recording", s.Key().String()).Dur("interval", player.Interval()).Msg("starting player")
	p := tea.NewProgram(player, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareConditions(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	pair, err := e.pair(args[0])
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = fmt.Sprintf("compare_%s.png", args[0])
	}
	r := render.New(e.cfg.Render).WithLogger(e.log)
	if err := r.SaveComparison(pair, count, out); err != nil {
		return err
	}

	good := metrics.Evaluate(pair[0], metrics.Default()...)
	bad := metrics.Evaluate(pair[1], metrics.Default()...)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tGOOD\tBAD\tDIFF")
	for _, name := range metrics.Names(good) {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%+.4f\n", name, good[name], bad[name], bad[name]-good[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nwrote %s\n", out)
	return nil
}

func exportSeries(cmd *cobra.Command, args []string, write func(io.Writer, *motion.Series) error) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := e.loadWindow(args[0], args[1])
	if err != nil {
		return err
	}

	if outPath == "" {
		return write(os.Stdout, s)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f, s); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %s to %s\n", s.Key(), outPath)
	return nil
}

func writeReport(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	pair, err := e.pair(args[0])
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = fmt.Sprintf("report_%s.html", args[0])
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	opt := export.ReportOptions{Title: strings.ToUpper(args[0]) + " jump: good vs bad"}
	if err := export.Report(f, opt, pair...); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	runner := automation.NewRunner(e.store, e.cfg.Render).WithLogger(e.log)
	results, err := runner.RunScenario(context.Background(), sc)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tFILES\tOUT")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.Step, r.Action, r.Files, r.Out)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}
