package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/porder/result"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	debug   bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "porder",
		Short: "Bayesian partial-order inference from noisy rankings",
		Long: `porder samples the posterior of a latent strict partial order given
observed total orders and partial rankings, and reports its summary.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			g.logger = newLogger(cmd.ErrOrStderr(), g.verbose, g.debug)
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log progress at info level")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Log at debug level")

	root.AddCommand(newRunCmd(g), newSummarizeCmd(g), newDimensionCmd(g))

	return root
}

// newLogger returns a text logger on w; warnings only unless verbose/debug.
func newLogger(w io.Writer, verbose, debug bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case debug:
		level = slog.LevelDebug
	case verbose:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printOrder writes the cover relations of h, one "a < b" per line.
func printOrder(w io.Writer, title string, rels []result.Relationship) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(rels) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, r := range rels {
		fmt.Fprintf(w, "  %s\n", r)
	}
}

// printComparison reports missing and redundant relationships.
func printComparison(w io.Writer, rec *result.Record) {
	if len(rec.Missing) == 0 {
		fmt.Fprintln(w, "\nNo missing relationships.")
	} else {
		printOrder(w, "Missing relationships (in the true order, absent from the inferred one)", rec.Missing)
	}
	if len(rec.Redundant) == 0 {
		fmt.Fprintln(w, "\nNo redundant relationships.")
	} else {
		printOrder(w, "Redundant relationships (inferred, absent from the true order)", rec.Redundant)
	}
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}

// itemLabels returns names when it labels all n items, "Item i" otherwise.
func itemLabels(names []string, n int) []string {
	if len(names) == n {
		return names
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Item %d", i)
	}

	return out
}

// dataName derives the run name from a results path.
func dataName(resultsPath string) string {
	base := resultsPath[strings.LastIndexAny(resultsPath, `/\`)+1:]

	return strings.TrimSuffix(base, "_results.json")
}
