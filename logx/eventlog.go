package logx

import (
	"fmt"
	"time"

	"symreg_gp_engine/tui"
)

// Convenience functions that forward to TUI

func LogNewBestError(oldErr, newErr float64) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "BEST",
		Severity:  "info",
		Message:   fmt.Sprintf("Best error improved: %.4f → %.4f", oldErr, newErr),
	}
	tui.PushEvent(event)
}

func LogSolutionFound(expr string, err float64, generation int) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "SOLVED",
		Severity:  "info",
		Message:   fmt.Sprintf("Solution at gen %d (err=%.4f): %s", generation, err, expr),
	}
	tui.PushEvent(event)
}

func LogBudgetExhausted(generations int, bestErr float64) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "BUDGET",
		Severity:  "warning",
		Message:   fmt.Sprintf("Generation budget (%d) exhausted, best error %.4f", generations, bestErr),
	}
	tui.PushEvent(event)
}

func LogStagnation(generations int, bestErr float64) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "STAGNATION",
		Severity:  "warning",
		Message:   fmt.Sprintf("No improvement for %d generations (best=%.4f)", generations, bestErr),
	}
	tui.PushEvent(event)
}
