package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/porder/config"
	"github.com/katalvlaran/porder/dataset"
	"github.com/katalvlaran/porder/inference"
	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/result"
)

type runFlags struct {
	configPath  string
	dataPath    string
	outputDir   string
	name        string
	iterations  int
	burnIn      int
	seed        uint64
	noiseOption string
	progress    int
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sampler on a dataset and save the results",
		Long: `Run the sampler on a dataset and save the results.

Examples:
  porder run --config config/mcmc_config.yaml --data data/sample.json
  porder run -c config.yaml -d data.json --iterations 20000 --burn-in 5000 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInference(cmd, g, f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to the YAML configuration")
	cmd.Flags().StringVarP(&f.dataPath, "data", "d", "", "Path to the JSON dataset (overrides data.path)")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Output directory (overrides data.output_dir)")
	cmd.Flags().StringVar(&f.name, "name", "", "Run name used for output files (default: dataset file name)")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "Number of iterations (overrides mcmc.num_iterations)")
	cmd.Flags().IntVar(&f.burnIn, "burn-in", -1, "Burn-in samples (overrides visualization.burn_in)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (overrides mcmc.seed)")
	cmd.Flags().StringVar(&f.noiseOption, "noise-option", "", "Noise model: queue_jump or mallows_noise")
	cmd.Flags().IntVar(&f.progress, "progress", 0, "Log progress every n iterations (with --debug)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (f *runFlags) overrides(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{
		NoiseOption: f.noiseOption,
		DataPath:    f.dataPath,
		OutputDir:   f.outputDir,
		DataName:    f.name,
	}
	if cmd.Flags().Changed("iterations") {
		o.NumIterations = &f.iterations
	}
	if cmd.Flags().Changed("burn-in") {
		o.BurnIn = &f.burnIn
	}
	if cmd.Flags().Changed("seed") {
		o.Seed = &f.seed
	}

	return o
}

func runInference(cmd *cobra.Command, g *globalFlags, f *runFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cfg, err = cfg.Override(f.overrides(cmd)); err != nil {
		return err
	}
	if cfg.DataPath == "" {
		return errors.New("run: no dataset: set --data or data.path")
	}
	if f.name == "" && cfg.DataName == config.DefaultDataName {
		base := filepath.Base(cfg.DataPath)
		if cfg, err = cfg.Override(config.Overrides{DataName: base[:len(base)-len(filepath.Ext(base))]}); err != nil {
			return err
		}
	}
	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	out, err := inference.Run(ctx, cfg, ds,
		inference.WithLogger(g.logger),
		inference.WithProgressEvery(f.progress),
	)
	if err != nil {
		return err
	}
	paths, err := result.Save(cfg.OutputDir, cfg.DataName, out.Record)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	rec := out.Record
	printWarnings(cmd.ErrOrStderr(), rec.Warnings)
	fmt.Fprintf(w, "run %s: %d samples, %d items\n", rec.RunID, out.Trace.Len(), ds.NumItems())
	for _, m := range []string{"rho", "noise", "U"} {
		a := rec.Acceptance[m]
		fmt.Fprintf(w, "  accept %-5s %d/%d (%.3f)\n", m, a.Accepted, a.Proposed, float64(a.Rate))
	}
	printOrder(w, "Inferred partial order", result.Relationships(out.Summary.H.Edges(), rec.Items))
	if _, ok, _ := ds.TrueOrder(); ok {
		printComparison(w, rec)
	}
	fmt.Fprintf(w, "\nResults saved to %s\nPartial order matrix saved to %s\n", paths.Results, paths.PartialOrder)

	return nil
}

// reducedEdges lists the cover relations of a saved record.
func reducedEdges(rec *result.Record) ([]order.Edge, error) {
	h, err := rec.Relation()
	if err != nil {
		return nil, err
	}
	red, err := order.Reduction(h)
	if err != nil {
		return nil, err
	}

	return red.Edges(), nil
}
