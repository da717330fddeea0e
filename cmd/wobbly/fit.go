package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/san-kum/wobbly/internal/optim"
)

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "search wobbles and overshoot for a curve with the requested shape",
		RunE:  fitCurve,
	}
	cmd.Flags().Float64("settle", 0, "target settle progress")
	cmd.Flags().Int("crossings", 0, "target number of rest crossings")
	cmd.Flags().Float64("trough", 0, "target minimum value")
	cmd.Flags().Float64("max-wobbles", 8, "largest wobble count in the grid")
	cmd.Flags().Int("steps", 17, "grid steps per axis")
	cmd.Flags().StringVar(&policy, "policy", "consistent", "gamma search policy (consistent, legacy)")
	return cmd
}

func fitCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cache, err := newCache(cfg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	settle, _ := flags.GetFloat64("settle")
	crossings, _ := flags.GetInt("crossings")
	trough, _ := flags.GetFloat64("trough")
	maxWobbles, _ := flags.GetFloat64("max-wobbles")
	steps, _ := flags.GetInt("steps")
	if settle == 0 && crossings == 0 && trough == 0 {
		return fmt.Errorf("set at least one of --settle, --crossings, --trough")
	}

	grid := optim.NewGridSearch(optim.Span(0, maxWobbles, steps), optim.Span(0.05, 0.95, steps))
	grid.Points = cfg.Sampling.Points
	target := optim.Target{Settle: settle, Crossings: crossings, Trough: trough}

	best, err := grid.Search(context.Background(), cache, target.Objective())
	if err != nil {
		return err
	}
	logger.Debug("fit complete", slog.Int("candidates", steps*steps), slog.Float64("score", best.Score))

	fmt.Printf("wobbles:   %g\n", best.Request.Wobbles)
	fmt.Printf("overshoot: %g\n", best.Request.Overshoot)
	fmt.Printf("omega:     %.15g\n", best.Params.Omega)
	fmt.Printf("gamma:     %.15g\n", best.Params.Gamma)
	fmt.Printf("score:     %.6f\n\n", best.Score)
	printStats(cmd.OutOrStdout(), best.Stats)
	return nil
}
