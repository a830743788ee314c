package main

import (
	"time"

	"symreg_gp_engine/logx"
	"symreg_gp_engine/tui"
)

// SendGenerationUpdate broadcasts one generation's stats to every sink:
// web dashboard, TUI, and terminal.
func SendGenerationUpdate(start time.Time, st GenStats, cfg SearchConfig, dataset string) {
	elapsed := time.Since(start)

	var gensPerSec float64
	if elapsed > 0 {
		gensPerSec = float64(st.Generation+1) / elapsed.Seconds()
	}

	SendGeneration(st, gensPerSec, elapsed)

	tui.PushState(tui.StateSnapshot{
		ProjectName:    "symreg",
		Mode:           "search",
		Dataset:        dataset,
		StartTime:      start,
		Generation:     st.Generation,
		MaxGenerations: cfg.MaxGenerations,
		PopSize:        cfg.PopulationSize,
		RatePerSec:     gensPerSec,
		BestError:      st.BestErr,
		MedianError:    st.MedianErr,
		MeanSize:       st.MeanSize,
		BestExpr:       st.BestExpr,
		Solved:         st.BestErr < cfg.SuccessThreshold,
	})

	// Also print to terminal
	logx.LogGeneration(st.Generation, st.BestErr, st.MedianErr, st.MeanSize, gensPerSec)
}

// SendSolutionUpdate broadcasts the final result to every sink.
func SendSolutionUpdate(start time.Time, res EvolveResult) {
	SendSolution(res)

	expr := treeString(res.Best.Tree)
	if res.Solved {
		logx.LogSolutionFound(expr, res.Best.Err, res.Generations)
	} else {
		logx.LogBudgetExhausted(res.Generations, res.Best.Err)
	}

	logx.LogSolutionBlock(res.Solved, expr, res.Best.Err, res.Generations, time.Since(start))
}
