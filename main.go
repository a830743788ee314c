package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"symreg_gp_engine/logx"
	"symreg_gp_engine/tui"
)

const solutionsPath = "solutions.jsonl"

func main() {
	fmt.Println("Symbolic Regression Search Engine")
	fmt.Println("====================================")

	mode := flag.String("mode", "search", "search, eval, solutions or validate")
	popFlag := flag.Int("pop", 0, "population size (0 = config default)")
	gensFlag := flag.Int("gens", -1, "generation budget (-1 = config default, 0 = unbounded)")
	thresholdFlag := flag.Float64("threshold", 0, "success threshold on total error (0 = config default)")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based, nonzero = reproducible)")
	configPath := flag.String("config", "", "YAML config file (ex: search.yaml)")
	dataPath := flag.String("data", "", "CSV samples file (default: built-in quadratic target)")
	exprFlag := flag.String("expr", "", "expression to evaluate in eval mode, ex: (+ (* x x) 1)")
	topFlag := flag.Int("top", 10, "solution log entries shown by -mode solutions")
	useWeb := flag.Bool("web", false, "serve the live web dashboard")
	webPort := flag.Int("webport", 8080, "web dashboard port")
	useTUI := flag.Bool("tui", false, "render the terminal dashboard")
	flag.Parse()

	if *mode == "validate" {
		RunValidation(*dataPath)
		return
	}

	samples, dataset, err := loadSamples(*dataPath)
	if err != nil {
		fmt.Println(logx.Errorf("failed to load samples: %v", err))
		os.Exit(1)
	}

	if *mode == "eval" {
		runEvalMode(*exprFlag, samples)
		return
	}

	if *mode == "solutions" {
		runSolutionsMode(samples, *topFlag)
		return
	}

	cfg := DefaultSearchConfig()
	if *configPath != "" {
		cfg, err = LoadSearchConfig(*configPath)
		if err != nil {
			fmt.Println(logx.Errorf("failed to load config: %v", err))
			os.Exit(1)
		}
	}
	if *popFlag > 0 {
		cfg.PopulationSize = *popFlag
	}
	if *gensFlag >= 0 {
		cfg.MaxGenerations = *gensFlag
	}
	if *thresholdFlag > 0 {
		cfg.SuccessThreshold = *thresholdFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(logx.Errorf("invalid config: %v", err))
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\n\nReceived stop signal. Shutting down gracefully...")
		cancel()
		tui.Stop()
		os.Exit(130)
	}()

	if *useWeb {
		webDashboardEnabled = true
		port := FindAvailablePort(*webPort)
		go func() {
			if err := StartWebServer(port); err != nil {
				fmt.Println(logx.Warnf("web dashboard stopped: %v", err))
			}
		}()
	}

	if *useTUI {
		if err := tui.Start(ctx, tui.TUIConfig{
			Title:          "symreg search",
			Mode:           "search",
			Dataset:        dataset,
			PopSize:        cfg.PopulationSize,
			MaxGenerations: cfg.MaxGenerations,
		}); err != nil {
			fmt.Println(logx.Warnf("TUI unavailable: %v", err))
		}
		defer tui.Stop()
	}

	logx.LogRunHeader(cfg.PopulationSize, cfg.MaxGenerations, cfg.TournamentSize, cfg.SuccessThreshold, seed, len(samples))
	SendStatus("running", fmt.Sprintf("search started on %s", dataset))

	start := time.Now()
	prevBest := math.Inf(1)

	res := Evolve(rng, samples, cfg, func(st GenStats) {
		if st.BestErr < prevBest {
			if !math.IsInf(prevBest, 1) {
				logx.LogNewBestError(prevBest, st.BestErr)
			}
			prevBest = st.BestErr
			logx.LogBestExpr(st.BestExpr)
		}
		SendGenerationUpdate(start, st, cfg, dataset)
	})

	// Restore the terminal before the final prints land on it.
	tui.Stop()

	SendSolutionUpdate(start, res)
	best := res.Best
	logx.PrintRunSummary(res.Solved, treeString(best.Tree), best.Err,
		computeGenStats(res.Generations, res.Population).MedianErr,
		meanSize(res.Population), res.Generations, cfg.PopulationSize)

	if err := appendSolution(solutionsPath, newSolutionLog(res, seed, cfg.PopulationSize)); err != nil {
		fmt.Println(logx.Warnf("could not append to %s: %v", solutionsPath, err))
	}
}

// loadSamples resolves the training set: a CSV file when given, otherwise
// the built-in quadratic target.
func loadSamples(path string) ([]Sample, string, error) {
	if path == "" {
		return QuadraticSamples(), "quadratic (built-in)", nil
	}
	samples, err := LoadSamplesCSV(path)
	if err != nil {
		return nil, "", err
	}
	return samples, path, nil
}

// runSolutionsMode lists the logged solutions re-scored against the
// current sample set, best first, so past runs stay comparable when the
// target data changes.
func runSolutionsMode(samples []Sample, limit int) {
	sols, err := loadRecentSolutions(solutionsPath, limit)
	if err != nil {
		fmt.Println(logx.Errorf("could not read %s: %v", solutionsPath, err))
		os.Exit(1)
	}

	ranked := rescoreSolutions(sols, samples)
	if len(ranked) == 0 {
		fmt.Println(logx.Warn("no loadable solutions logged yet"))
		return
	}

	w := logx.NewTableWriter(os.Stdout)
	fmt.Fprintln(w, "RANK\tTIMESTAMP\tERROR\tGENS\tEXPRESSION")
	for i, r := range ranked {
		logx.PrintSolutionRow(w, i+1, r.Log.Timestamp, r.Ind.Err, r.Log.Generations, r.Log.Expression)
	}
	w.Flush()
}

// runEvalMode parses an expression, checks it, and reports its error
// point by point against the sample set.
func runEvalMode(expr string, samples []Sample) {
	if expr == "" {
		fmt.Println(logx.Error("eval mode requires -expr"))
		os.Exit(1)
	}

	tree, err := parseTree(expr)
	if err != nil {
		fmt.Println(logx.Errorf("parse error: %v", err))
		os.Exit(1)
	}
	if err := checkTree(tree); err != nil {
		fmt.Println(logx.Errorf("invalid expression: %v", err))
		os.Exit(1)
	}

	st := ComputeTreeStats(tree)
	fmt.Printf("%s %s\n", logx.Channel("SOL "), logx.Highlight(treeString(tree)))
	fmt.Printf("%s nodes=%d depth=%d consts=%d vars=%d ops=%v\n",
		logx.Channel("SOL "), st.NodeCount, st.MaxDepth, st.ConstCount, st.VarCount, st.OperatorCount)

	w := logx.NewTableWriter(os.Stdout)
	fmt.Fprintln(w, "x\ttarget\tpredicted\t|diff|\t")
	for _, s := range samples {
		pred := evalTree(tree, s.X)
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t\n", s.X, s.Y, pred, math.Abs(pred-s.Y))
	}
	w.Flush()

	total := totalError(tree, samples)
	fmt.Printf("%s total error: %s\n", logx.Channel("SOL "), logx.ErrColor(total))
}
