package main

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"
	"time"
)

// SolutionLog is one record of solutions.jsonl: a human-readable result
// of a successful (or budget-exhausted) run. Trees are stored in their
// textual form so records stay greppable and reloadable.
type SolutionLog struct {
	Timestamp   string  `json:"timestamp"`
	Seed        int64   `json:"seed"`
	Expression  string  `json:"expression"`
	Error       float64 `json:"error"`
	Solved      bool    `json:"solved"`
	Generations int     `json:"generations"`
	PopSize     int     `json:"pop_size"`
	TreeSize    int     `json:"tree_size"`
}

func newSolutionLog(res EvolveResult, seed int64, popSize int) SolutionLog {
	return SolutionLog{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Seed:        seed,
		Expression:  treeString(res.Best.Tree),
		Error:       res.Best.Err,
		Solved:      res.Solved,
		Generations: res.Generations,
		PopSize:     popSize,
		TreeSize:    treeSize(res.Best.Tree),
	}
}

// appendSolution appends one JSONL record to path.
func appendSolution(path string, sol SolutionLog) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(sol)
	if err != nil {
		return err
	}
	_, err = f.Write(append(line, '\n'))
	return err
}

// loadRecentSolutions loads the last N lines of a solutions JSONL file
// (simple + safe).
func loadRecentSolutions(path string, limit int) ([]SolutionLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Ring buffer of last N lines
	ring := make([]string, 0, limit)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if len(ring) < limit {
			ring = append(ring, line)
		} else {
			copy(ring, ring[1:])
			ring[len(ring)-1] = line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out := make([]SolutionLog, 0, len(ring))
	for _, line := range ring {
		var sol SolutionLog
		if err := json.Unmarshal([]byte(line), &sol); err != nil {
			// don't crash; just skip bad lines
			continue
		}
		out = append(out, sol)
	}
	return out, nil
}

// RankedSolution pairs a log record with its individual rebuilt and
// re-scored against the current sample set.
type RankedSolution struct {
	Log SolutionLog
	Ind Individual
}

// rescoreSolutions rebuilds every loadable record against samples and
// returns them sorted ascending by the re-scored error. Records whose
// expression no longer parses are skipped, same as corrupt JSONL lines.
func rescoreSolutions(sols []SolutionLog, samples []Sample) []RankedSolution {
	ranked := make([]RankedSolution, 0, len(sols))
	for _, sol := range sols {
		ind, err := rebuildIndividual(sol, samples)
		if err != nil {
			continue
		}
		ranked = append(ranked, RankedSolution{Log: sol, Ind: ind})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Ind.Err < ranked[j].Ind.Err })
	return ranked
}

// rebuildIndividual turns a logged solution back into a runnable
// individual, re-scoring it against the given sample set.
func rebuildIndividual(sol SolutionLog, samples []Sample) (Individual, error) {
	tree, err := parseTree(sol.Expression)
	if err != nil {
		return Individual{}, err
	}
	if err := checkTree(tree); err != nil {
		return Individual{}, err
	}
	return Individual{Tree: tree, Err: totalError(tree, samples)}, nil
}
