package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/wobbly/internal/catalog"
	"github.com/san-kum/wobbly/internal/config"
	"github.com/san-kum/wobbly/internal/sample"
	"github.com/san-kum/wobbly/internal/storage"
	"github.com/san-kum/wobbly/internal/viz"
)

const runsDir = "runs"

func openStore(cfg *config.Config) *storage.Store {
	return storage.New(filepath.Join(cfg.DataDir, runsDir)).WithLogger(logger)
}

func openCatalog(cmd *cobra.Command) (*catalog.Catalog, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return cat, cfg, nil
}

func closeCatalog(cat *catalog.Catalog) {
	if err := cat.Close(); err != nil {
		logger.Warn("failed to close catalog", slog.Any("error", err))
	}
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "manage named curves",
	}

	putCmd := &cobra.Command{
		Use:   "put [name]",
		Short: "solve a curve and store it under a name",
		Args:  cobra.ExactArgs(1),
		RunE:  catalogPut,
	}
	addCurveFlags(putCmd)

	getCmd := &cobra.Command{
		Use:   "get [name]",
		Short: "show a stored curve",
		Args:  cobra.ExactArgs(1),
		RunE:  catalogGet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored curves",
		RunE:  catalogList,
	}

	rmCmd := &cobra.Command{
		Use:   "rm [name]",
		Short: "delete a stored curve",
		Args:  cobra.ExactArgs(1),
		RunE:  catalogRemove,
	}

	cmd.AddCommand(putCmd, getCmd, listCmd, rmCmd)
	return cmd
}

func catalogPut(cmd *cobra.Command, args []string) error {
	cat, cfg, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeCatalog(cat)

	curve, err := solveCurve(cfg)
	if err != nil {
		return err
	}

	entry := catalog.Entry{
		Name:      args[0],
		Wobbles:   cfg.Curve.Wobbles,
		Overshoot: cfg.Curve.Overshoot,
		Reverse:   curve.Reverse,
		Omega:     curve.Params.Omega,
		Gamma:     curve.Params.Gamma,
		Policy:    cfg.Solver.Policy,
	}
	if err := cat.Put(context.Background(), entry); err != nil {
		return err
	}
	logger.Info("stored curve", slog.String("name", entry.Name), slog.Float64("gamma", entry.Gamma))
	return nil
}

func catalogGet(cmd *cobra.Command, args []string) error {
	cat, _, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeCatalog(cat)

	e, err := cat.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("name:      %s\n", e.Name)
	fmt.Printf("wobbles:   %g\n", e.Wobbles)
	fmt.Printf("overshoot: %g\n", e.Overshoot)
	fmt.Printf("reverse:   %t\n", e.Reverse)
	fmt.Printf("omega:     %.15g\n", e.Omega)
	fmt.Printf("gamma:     %.15g\n", e.Gamma)
	fmt.Printf("policy:    %s\n", e.Policy)
	fmt.Printf("created:   %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func catalogList(cmd *cobra.Command, args []string) error {
	cat, _, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeCatalog(cat)

	entries, err := cat.List(context.Background())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no curves stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWOBBLES\tOVERSHOOT\tREVERSE\tOMEGA\tGAMMA\tPOLICY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%g\t%g\t%t\t%.6f\t%.6f\t%s\n",
			e.Name, e.Wobbles, e.Overshoot, e.Reverse, e.Omega, e.Gamma, e.Policy)
	}
	return w.Flush()
}

func catalogRemove(cmd *cobra.Command, args []string) error {
	cat, _, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeCatalog(cat)

	if err := cat.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	logger.Info("deleted curve", slog.String("name", args[0]))
	return nil
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "inspect saved sample runs",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a run's stats and plot",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	rmCmd := &cobra.Command{
		Use:   "rm [run_id]",
		Short: "delete a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return openStore(cfg).Delete(args[0])
		},
	}

	cmd.AddCommand(listCmd, showCmd, rmCmd)
	return cmd
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := openStore(cfg).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tWOBBLES\tOVERSHOOT\tREVERSE\tPOINTS\tPOLICY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%t\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Wobbles,
			run.Overshoot,
			run.Reverse,
			run.Points,
			run.Policy,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := openStore(cfg)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	pts, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run:       %s\n", meta.ID)
	fmt.Printf("label:     %s\n", meta.Label)
	fmt.Printf("wobbles:   %g\n", meta.Wobbles)
	fmt.Printf("overshoot: %g\n", meta.Overshoot)
	fmt.Printf("omega:     %.15g\n", meta.Omega)
	fmt.Printf("gamma:     %.15g\n", meta.Gamma)
	fmt.Println()
	printStats(os.Stdout, sample.Measure(pts))

	if len(pts) > 0 {
		fmt.Println()
		fmt.Println(viz.Plot(pts, viz.DefaultPlotOptions()))
	}
	return nil
}
