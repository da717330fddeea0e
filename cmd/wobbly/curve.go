package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/wobbly/internal/analysis"
	"github.com/san-kum/wobbly/internal/animate"
	"github.com/san-kum/wobbly/internal/config"
	"github.com/san-kum/wobbly/internal/export"
	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/integrators"
	"github.com/san-kum/wobbly/internal/sample"
	"github.com/san-kum/wobbly/internal/storage"
	"github.com/san-kum/wobbly/internal/viz"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "derive omega and gamma for a wobble count and overshoot",
		RunE:  solveCurveCmd,
	}
	addCurveFlags(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print as JSON")
	return cmd
}

func solveCurveCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(curve)
	}

	p := curve.Params
	fmt.Printf("omega:       %.15g\n", p.Omega)
	fmt.Printf("gamma:       %.15g\n", p.Gamma)
	fmt.Printf("peak time:   %.6f\n", p.PeakTime())
	fmt.Printf("overshoot:   %.6f\n", p.Overshoot())
	fmt.Printf("reverse:     %t\n", curve.Reverse)
	fmt.Printf("policy:      %s\n", cfg.Solver.Policy)
	return nil
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [progress...]",
		Short: "evaluate the curve at one or more progress values",
		Args:  cobra.MinimumNArgs(1),
		RunE:  evalCurve,
	}
	addCurveFlags(cmd)
	return cmd
}

func evalCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}

	for _, arg := range args {
		p, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid progress %q: %w", arg, err)
		}
		fmt.Printf("%g\t%.6f\n", p, curve.Value(p))
	}
	return nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "sample the curve and print its stats",
		RunE:  sampleCurve,
	}
	addCurveFlags(cmd)
	addPointsFlag(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "store the samples as a run")
	cmd.Flags().StringVar(&label, "label", "curve", "run label when saving")
	return cmd
}

func sampleCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	pts, err := sample.Sample(curve, cfg.Sampling.Points)
	if err != nil {
		return err
	}
	stats := sample.Measure(pts)
	logger.Debug("sampled curve", slog.Int("points", len(pts)), slog.Duration("elapsed", time.Since(start)))

	printStats(os.Stdout, stats)

	if !save {
		return nil
	}

	st := openStore(cfg)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Label:     label,
		Wobbles:   cfg.Curve.Wobbles,
		Overshoot: cfg.Curve.Overshoot,
		Reverse:   curve.Reverse,
		Omega:     curve.Params.Omega,
		Gamma:     curve.Params.Gamma,
		Policy:    cfg.Solver.Policy,
		Points:    len(pts),
		Metrics:   stats.AsMap(),
	}, pts)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func printStats(w io.Writer, stats sample.Stats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "peak\t%.6f\tat %.4f\n", stats.Peak, stats.PeakProgress)
	fmt.Fprintf(tw, "overshoot\t%.6f\t\n", stats.Overshoot)
	fmt.Fprintf(tw, "trough\t%.6f\t\n", stats.Trough)
	fmt.Fprintf(tw, "crossings\t%d\t\n", stats.Crossings)
	fmt.Fprintf(tw, "settle\t%.4f\t\n", stats.SettleProgress)
	tw.Flush()
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "draw the curve in the terminal",
		RunE:  plotCurve,
	}
	addCurveFlags(cmd)
	addPointsFlag(cmd)
	cmd.Flags().Int("width", 60, "plot width")
	cmd.Flags().Int("height", 12, "plot height")
	return cmd
}

func plotCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}
	pts, err := sample.Sample(curve, cfg.Sampling.Points)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("wobbles=%g overshoot=%g", cfg.Curve.Wobbles, cfg.Curve.Overshoot)
	if curve.Reverse {
		caption += " (reverse)"
	}
	width, height := plotSize(cmd)
	fmt.Println(viz.Plot(pts, viz.PlotOptions{Width: width, Height: height, Caption: caption}))
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "export [svg|csv|json]",
		Short:     "export the sampled curve",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"svg", "csv", "json"},
		RunE:      exportCurve,
	}
	addCurveFlags(cmd)
	addPointsFlag(cmd)
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	cmd.Flags().Int("width", 400, "svg width")
	cmd.Flags().Int("height", 200, "svg height")
	return cmd
}

func exportCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}
	pts, err := sample.Sample(curve, cfg.Sampling.Points)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch args[0] {
	case "svg":
		width, height := plotSize(cmd)
		_, err = io.WriteString(w, export.CurveToSVG(pts, width, height, export.DefaultStroke))
	case "csv":
		err = export.WriteCSV(w, pts)
	case "json":
		err = export.WriteJSON(w, export.Document{
			Request: cfg.Request(),
			Curve:   curve,
			Stats:   sample.Measure(pts),
			Points:  pts,
		})
	default:
		return fmt.Errorf("unknown export format: %s (available: svg, csv, json)", args[0])
	}
	if err != nil {
		return err
	}
	if outFile != "" {
		logger.Info("exported curve", slog.String("format", args[0]), slog.String("path", outFile))
	}
	return nil
}

// plotSize reads the per-command size flags, whose defaults differ between plot and export.
func plotSize(cmd *cobra.Command) (int, int) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	return width, height
}

const spectrumPoints = 256

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis and reference comparisons",
		RunE:  analyzeCurve,
	}
	addCurveFlags(cmd)
	cmd.Flags().IntVar(&points, "points", spectrumPoints, "number of samples")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator for the ODE reference")
	cmd.Flags().Float64Var(&dt, "dt", 0.001, "ODE timestep")
	return cmd
}

func analyzeCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}
	// the FFT wants more samples than plotting does
	n := cfg.Sampling.Points
	if !cmd.Flags().Changed("points") {
		n = spectrumPoints
	}
	pts, err := sample.Sample(curve, n)
	if err != nil {
		return err
	}

	fmt.Println("stats:")
	printStats(os.Stdout, sample.Measure(pts))

	freq, err := analysis.DominantFrequency(pts)
	if err != nil {
		return err
	}
	fmt.Printf("\ndominant frequency: %.3f cycles (expected %.3f)\n",
		freq, curve.Params.Omega/(2*math.Pi))

	spring, err := analysis.CompareSpring(curve.Params, n)
	if err != nil {
		return err
	}
	ode, err := analysis.CompareODE(context.Background(), curve.Params, integrator, dt)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, integrators.Names())
	}

	fmt.Println("\nreferences:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSAMPLES\tMAX ERROR")
	for _, r := range []analysis.Report{spring, ode} {
		fmt.Fprintf(w, "%s\t%d\t%.3e\n", r.Method, r.Samples, r.MaxError)
	}
	return w.Flush()
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "check the curve's boundary and overshoot properties",
		RunE:  verifyCurve,
	}
	addCurveFlags(cmd)
	addPointsFlag(cmd)
	return cmd
}

type check struct {
	name string
	ok   bool
	got  string
	// informational checks are printed but never fail the run
	info bool
}

// endTolerance bounds |f(1) - 1|. It is only enforced for whole wobble
// counts, where cos(omega) vanishes at t = 1; fractional counts end off rest.
const endTolerance = 1e-9

func verifyChecks(cfg *config.Config, params harmonic.Params) ([]check, error) {
	forward := harmonic.NewCurve(params)
	backward := forward.Reversed()

	pts, err := sample.Sample(forward, cfg.Sampling.Points)
	if err != nil {
		return nil, err
	}
	stats := sample.Measure(pts)

	symmetric := true
	for _, pt := range pts {
		if backward.Value(pt.Progress) != 1-forward.Value(1-pt.Progress) {
			symmetric = false
			break
		}
	}

	end := forward.Value(1)
	wholeWobbles := cfg.Curve.Wobbles == math.Trunc(cfg.Curve.Wobbles)
	peak := params.Overshoot()
	return []check{
		{name: "starts at rest", ok: forward.Value(0) == 0, got: fmt.Sprintf("%g", forward.Value(0))},
		{name: "reverse ends at 1", ok: backward.Value(1) == 1, got: fmt.Sprintf("%g", backward.Value(1))},
		{name: "ends at rest", ok: math.Abs(end-1) < endTolerance, got: fmt.Sprintf("%.6f", end), info: !wholeWobbles},
		{name: "first peak overshoot", ok: math.Abs(peak-cfg.Curve.Overshoot) < 5e-3, got: fmt.Sprintf("%.6f", peak)},
		{name: "reverse mirrors forward", ok: symmetric, got: fmt.Sprintf("%t", symmetric)},
		{name: "crossings", ok: stats.Crossings >= 1, got: fmt.Sprintf("%d", stats.Crossings)},
	}, nil
}

func verifyCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}
	checks, err := verifyChecks(cfg, curve.Params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	failed := 0
	for _, c := range checks {
		status := "ok"
		switch {
		case c.info && !c.ok:
			status = "info"
		case !c.ok:
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", status, c.name, c.got)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

func newSequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "sequence [wobble|swap]",
		Short:     "print the frames of a two-phase scale animation",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"wobble", "swap"},
		RunE:      sequenceFrames,
	}
	addCurveFlags(cmd)
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().IntVar(&durationMS, "duration", 0, "total duration in milliseconds (default from config)")
	return cmd
}

func sequenceFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	solver, err := cfg.HarmonicSolver()
	if err != nil {
		return err
	}

	total := time.Duration(cfg.Sampling.Duration * float64(time.Second))
	if durationMS > 0 {
		total = time.Duration(durationMS) * time.Millisecond
	}

	var seq animate.Sequence
	switch args[0] {
	case "wobble":
		seq, err = animate.Wobble(solver, total, cfg.Curve.Wobbles, cfg.Curve.Overshoot)
	case "swap":
		seq, err = animate.SwapScale(solver, total, cfg.Curve.Wobbles)
	default:
		return fmt.Errorf("unknown sequence: %s (available: wobble, swap)", args[0])
	}
	if err != nil {
		return err
	}

	frames, err := seq.Frames(cfg.Sampling.FPS)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tPHASE\tSCALE")
	for _, f := range frames {
		fmt.Fprintf(w, "%s\t%s\t%.4f\n", f.Time.Round(time.Millisecond), seq.Phases[f.Phase].Name, f.Value)
	}
	return w.Flush()
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named curve presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWOBBLES\tOVERSHOOT\tREVERSE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%t\n", name, p.Wobbles, p.Overshoot, p.Reverse)
			}
			return w.Flush()
		},
	}
}

func newTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "adjust a curve interactively",
		RunE:  tuneCurve,
	}
	addCurveFlags(cmd)
	addPointsFlag(cmd)
	cmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")
	return cmd
}

func tuneCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	solver, err := cfg.HarmonicSolver()
	if err != nil {
		return err
	}

	params, err := viz.RunTuner(viz.TunerConfig{
		Wobbles:   cfg.Curve.Wobbles,
		Overshoot: cfg.Curve.Overshoot,
		Reverse:   cfg.Curve.Reverse,
		Solver:    solver,
		Points:    cfg.Sampling.Points,
		Theme:     theme,
	})
	if err != nil {
		return err
	}
	fmt.Printf("omega: %.15g\ngamma: %.15g\n", params.Omega, params.Gamma)
	return nil
}
