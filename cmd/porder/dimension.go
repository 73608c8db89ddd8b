package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/realizer"
	"github.com/katalvlaran/porder/result"
)

type dimensionFlags struct {
	crown       int
	resultsPath string
	maxItems    int
}

func newDimensionCmd(g *globalFlags) *cobra.Command {
	f := &dimensionFlags{}
	cmd := &cobra.Command{
		Use:   "dimension",
		Short: "Compute a minimum realizer and the order dimension",
		Long: `Compute a minimum realizer (and hence the dimension) of a partial order:
either the crown poset on 2k items or the order stored in a results file.

Examples:
  porder dimension --crown 3
  porder dimension --results output/sample_results.json --max-items 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDimension(cmd, g, f)
		},
	}
	cmd.Flags().IntVar(&f.crown, "crown", 0, "Use the crown poset with k a-items and k b-items")
	cmd.Flags().StringVarP(&f.resultsPath, "results", "r", "", "Use the order stored in a results file")
	cmd.Flags().IntVar(&f.maxItems, "max-items", realizer.DefaultMaxItems, "Refuse orders with more items")
	cmd.MarkFlagsOneRequired("crown", "results")
	cmd.MarkFlagsMutuallyExclusive("crown", "results")

	return cmd
}

func runDimension(cmd *cobra.Command, g *globalFlags, f *dimensionFlags) error {
	var (
		names []string
		h     *order.Relation
		err   error
	)
	if f.resultsPath != "" {
		rec, err := result.Load(f.resultsPath)
		if err != nil {
			return err
		}
		if h, err = rec.Relation(); err != nil {
			return err
		}
		names = itemLabels(rec.Items, h.Size())
	} else if names, h, err = realizer.Crown(f.crown); err != nil {
		return err
	}

	items := make([]int, h.Size())
	for i := range items {
		items[i] = i
	}
	g.logger.Info("dimension: searching", slog.Int("items", len(items)), slog.Int("edges", h.EdgeCount()))
	rz, err := realizer.FindMin(h, items, realizer.WithMaxItems(f.maxItems))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "items: %d, relations: %d, dimension: %d\n", h.Size(), order.Closure(h).EdgeCount(), rz.Size())
	for k, ext := range rz.Extensions {
		labels := make([]string, len(ext))
		for i, it := range ext {
			labels[i] = names[it]
		}
		fmt.Fprintf(w, "  L%d: %s\n", k+1, strings.Join(labels, " < "))
	}
	pairs := realizer.CriticalPairs(items, order.Closure(h))
	fmt.Fprintf(w, "critical pairs: %d\n", len(pairs))
	for _, p := range pairs {
		fmt.Fprintf(w, "  (%s, %s)\n", names[p.From], names[p.To])
	}

	return nil
}
