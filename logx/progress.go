package logx

import (
	"fmt"
	"strings"
	"time"
)

// LogGeneration - single line generation progress log
// gen: generation index (0-based)
// bestErr: error of the best individual
// medianErr: error of the middle-ranked individual
// meanSize: mean program size across the population
// rate: generations per second
func LogGeneration(gen int, bestErr, medianErr, meanSize, rate float64) {
	fmt.Printf("%s  %s  gen=%s  best=%s  median=%.4f  meanSize=%.1f  rate=%.1f gen/s\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("GEN "),
		formatNumber(gen),
		ErrColor(bestErr),
		medianErr,
		meanSize,
		rate,
	)
}

// LogBestExpr - prints the current best expression (dimmed, may be long)
func LogBestExpr(expr string) {
	const maxLen = 120
	if len(expr) > maxLen {
		expr = expr[:maxLen] + "…"
	}
	fmt.Printf("        %s %s\n", Dim("best:"), Dim(expr))
}

const solutionSep = "═══════════════════════════════════════════════════════════════════"

// LogSolutionBlock - final result block for a finished run
func LogSolutionBlock(solved bool, expr string, err float64, generations int, elapsed time.Duration) {
	verdict := Successf("SOLVED in %d generations", generations)
	if !solved {
		verdict = Warnf("NO SOLUTION within %d generations (best kept)", generations)
	}
	fmt.Printf("%s\n%s  %s  %s\nExpression:  %s\nError:       %s\nRuntime:     %s\n%s\n",
		solutionSep,
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("SOL "),
		verdict,
		Highlight(expr),
		ErrColor(err),
		FormatDuration(elapsed),
		solutionSep,
	)
}

// LogRunHeader - run parameters, printed once at startup
func LogRunHeader(popSize, maxGens, tournamentSize int, threshold float64, seed int64, samples int) {
	fmt.Println(Highlight("-- Symbolic Regression Search --"))
	fmt.Printf("POPULATION=%s\n", formatNumber(popSize))
	if maxGens > 0 {
		fmt.Printf("MAX_GENERATIONS=%s\n", formatNumber(maxGens))
	} else {
		fmt.Println("MAX_GENERATIONS=unbounded")
	}
	fmt.Printf("TOURNAMENT_SIZE=%d\n", tournamentSize)
	fmt.Printf("SUCCESS_THRESHOLD=%g\n", threshold)
	fmt.Printf("SEED=%d\n", seed)
	fmt.Printf("SAMPLES=%d\n", samples)
	fmt.Println("--------------------------------")
}

// formatNumber adds thousands separators to an integer
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{s[start:i]}, result...)
	}
	return strings.Join(result, ",")
}
