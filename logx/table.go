package logx

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// NewTableWriter creates a tabwriter for custom output
func NewTableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintRunSummary - aligned summary table for a finished run
func PrintRunSummary(solved bool, expr string, bestErr, medianErr, meanSize float64, generations, popSize int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\nRUN SUMMARY\n")
	fmt.Fprintf(w, "  solved:\t%s\n", Checkmark(solved))
	fmt.Fprintf(w, "  generations:\t%s\n", formatNumber(generations))
	fmt.Fprintf(w, "  population:\t%s\n", formatNumber(popSize))
	fmt.Fprintf(w, "  best error:\t%.6f\n", bestErr)
	fmt.Fprintf(w, "  median error:\t%.6f\n", medianErr)
	fmt.Fprintf(w, "  mean size:\t%.1f\n", meanSize)
	fmt.Fprintf(w, "  best expr:\t%s\n", expr)
	w.Flush()
}

// PrintSolutionRow - one row of a ranked solutions listing
func PrintSolutionRow(w *tabwriter.Writer, rank int, timestamp string, err float64, gens int, expr string) {
	fmt.Fprintf(w, "%d\t%s\t%.6f\t%d\t%s\n", rank, timestamp, err, gens, expr)
}
