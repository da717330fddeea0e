package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/wobbly/internal/config"
	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/logging"
)

var (
	configFile string
	dataDir    string
	logLevel   string

	// curve selection, shared by most commands
	wobbles   float64
	overshoot float64
	reverse   bool
	policy    string
	preset    string
	points    int

	outFile    string
	label      string
	save       bool
	jsonOut    bool
	integrator string
	theme      string
	dt         float64
	fps        int
	durationMS int

	logger = slog.Default()
)

// main registers the commands and exits with status 1 when one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "wobbly",
		Short:         "damped cosine easing curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, os.Stderr)
			if err != nil {
				return err
			}
			logger = l
			slog.SetDefault(l)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSolveCmd(),
		newEvalCmd(),
		newSampleCmd(),
		newPlotCmd(),
		newExportCmd(),
		newAnalyzeCmd(),
		newVerifyCmd(),
		newSequenceCmd(),
		newPresetsCmd(),
		newCatalogCmd(),
		newRunsCmd(),
		newTuneCmd(),
		newFitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&wobbles, "wobbles", config.DefaultWobbles, "number of wobbles")
	cmd.Flags().Float64Var(&overshoot, "overshoot", config.DefaultOvershoot, "first peak overshoot, in (0, 1)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "run the curve backwards")
	cmd.Flags().StringVar(&policy, "policy", harmonic.PolicyConsistent.String(), "gamma search policy (consistent, legacy)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

func addPointsFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of samples")
}

// loadConfig layers defaults, the config file, a preset and finally any
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", slog.String("path", configFile))
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Curve = *p
		if preset == "standard" || preset == "reverse" {
			cfg.Solver.Policy = harmonic.PolicyLegacy.String()
		}
	}

	flags := cmd.Flags()
	if flags.Changed("wobbles") {
		cfg.Curve.Wobbles = wobbles
	}
	if flags.Changed("overshoot") {
		cfg.Curve.Overshoot = overshoot
	}
	if flags.Changed("reverse") {
		cfg.Curve.Reverse = reverse
	}
	if flags.Changed("policy") {
		cfg.Solver.Policy = policy
	}
	if flags.Changed("points") {
		cfg.Sampling.Points = points
	}
	if flags.Changed("fps") {
		cfg.Sampling.FPS = fps
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCache is for commands that solve many requests, such as fit.
func newCache(cfg *config.Config) (*harmonic.Cache, error) {
	solver, err := cfg.HarmonicSolver()
	if err != nil {
		return nil, err
	}
	return harmonic.NewCache(cfg.Solver.CacheSize, solver)
}

// solveCurve resolves the configured request into a curve. One-shot commands
// solve once, so they skip the cache.
func solveCurve(cfg *config.Config) (harmonic.Curve, error) {
	solver, err := cfg.HarmonicSolver()
	if err != nil {
		return harmonic.Curve{}, err
	}
	params, err := solver.Solve(cfg.Curve.Wobbles, cfg.Curve.Overshoot)
	if err != nil {
		return harmonic.Curve{}, err
	}
	logger.Debug("solved curve",
		slog.Float64("wobbles", cfg.Curve.Wobbles),
		slog.Float64("overshoot", cfg.Curve.Overshoot),
		slog.String("policy", cfg.Solver.Policy),
		slog.Float64("omega", params.Omega),
		slog.Float64("gamma", params.Gamma),
	)
	return harmonic.Curve{Params: params, Reverse: cfg.Curve.Reverse}, nil
}
