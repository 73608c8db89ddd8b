package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/porder/dataset"
	"github.com/katalvlaran/porder/inference"
	"github.com/katalvlaran/porder/result"
)

type summarizeFlags struct {
	resultsPath string
	dataPath    string
	burnIn      int
	save        bool
}

func newSummarizeCmd(g *globalFlags) *cobra.Command {
	f := &summarizeFlags{}
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Recompute the posterior summary of saved results",
		Long: `Recompute the posterior summary of saved results with a new burn-in.

Examples:
  porder summarize --results output/sample_results.json --burn-in 2000
  porder summarize -r output/sample_results.json --data data/sample.json --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummarize(cmd, g, f)
		},
	}
	cmd.Flags().StringVarP(&f.resultsPath, "results", "r", "", "Path to a results JSON file")
	cmd.Flags().StringVarP(&f.dataPath, "data", "d", "", "Dataset with a true order to compare against")
	cmd.Flags().IntVar(&f.burnIn, "burn-in", -1, "Burn-in samples (default: the stored burn-in)")
	cmd.Flags().BoolVar(&f.save, "save", false, "Write the new summary back to the results files")
	_ = cmd.MarkFlagRequired("results")

	return cmd
}

func runSummarize(cmd *cobra.Command, g *globalFlags, f *summarizeFlags) error {
	rec, err := result.Load(f.resultsPath)
	if err != nil {
		return err
	}
	burnIn := rec.BurnIn
	if cmd.Flags().Changed("burn-in") {
		burnIn = f.burnIn
	}
	opts := []inference.Option{inference.WithLogger(g.logger)}
	if f.dataPath != "" {
		ds, err := dataset.Load(f.dataPath)
		if err != nil {
			return err
		}
		truth, ok, err := ds.TrueOrder()
		if err != nil {
			return err
		}
		if ok {
			opts = append(opts, inference.WithTruth(truth))
		}
	}
	if _, err = inference.Resummarize(rec, burnIn, opts...); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printWarnings(cmd.ErrOrStderr(), rec.Warnings)
	edges, err := reducedEdges(rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run %s: burn-in %d of %d samples\n", rec.RunID, burnIn, len(rec.Trace.Rho))
	printOrder(w, "Inferred partial order", result.Relationships(edges, rec.Items))
	if f.dataPath != "" {
		printComparison(w, rec)
	}

	fmt.Fprintf(w, "\n%-16s %8s %8s %8s %8s %8s\n", "parameter", "mean", "sd", "q05", "median", "q95")
	names := make([]string, 0, len(rec.Statistics))
	for k := range rec.Statistics {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		s := rec.Statistics[k]
		fmt.Fprintf(w, "%-16s %8.4g %8.4g %8.4g %8.4g %8.4g\n", k,
			float64(s.Mean), float64(s.StdDev), float64(s.Q05), float64(s.Median), float64(s.Q95))
	}

	if f.save {
		paths, err := result.Save(filepath.Dir(f.resultsPath), dataName(f.resultsPath), rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nResults saved to %s\n", paths.Results)
	}

	return nil
}
