package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

type Solution struct {
	Timestamp   string  `json:"timestamp"`
	Seed        int64   `json:"seed"`
	Expression  string  `json:"expression"`
	Error       float64 `json:"error"`
	Solved      bool    `json:"solved"`
	Generations int     `json:"generations"`
	PopSize     int     `json:"pop_size"`
	TreeSize    int     `json:"tree_size"`
}

func main() {
	path := flag.String("file", "solutions.jsonl", "solution log to read")
	topN := flag.Int("top", 10, "number of solutions to show")
	solvedOnly := flag.Bool("solved", false, "only show solved runs")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	lines := strings.Split(string(data), "\n")

	var solutions []Solution
	for i, line := range lines {
		if line == "" {
			continue
		}
		var s Solution
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			fmt.Printf("Error parsing line %d: %v\n", i, err)
			continue
		}
		if *solvedOnly && !s.Solved {
			continue
		}
		solutions = append(solutions, s)
	}

	if len(solutions) == 0 {
		fmt.Println("No solutions found.")
		return
	}

	// Sort by error ascending, lower is better
	sort.Slice(solutions, func(i, j int) bool {
		return solutions[i].Error < solutions[j].Error
	})

	n := *topN
	if n > len(solutions) {
		n = len(solutions)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTIMESTAMP\tERROR\tGENS\tSIZE\tSOLVED\tEXPRESSION\t")
	for i := 0; i < n; i++ {
		s := solutions[i]
		solved := " "
		if s.Solved {
			solved = "yes"
		}
		expr := s.Expression
		if len(expr) > 60 {
			expr = expr[:57] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%.6f\t%d\t%d\t%s\t%s\t\n",
			i+1, s.Timestamp, s.Error, s.Generations, s.TreeSize, solved, expr)
	}
	w.Flush()

	fmt.Printf("\nShowing top %d of %d logged runs\n", n, len(solutions))
}
