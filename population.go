package main

import (
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Individual is one candidate expression tree paired with its error over
// the sample set. Err is filled in by sortByError.
type Individual struct {
	Tree *Node
	Err  float64
}

// GenStats is the per-generation report emitted to the reporting sinks.
type GenStats struct {
	Generation int
	BestErr    float64
	MedianErr  float64
	MeanSize   float64
	BestExpr   string
}

// EvolveResult is what a finished search returns. Solved is false when the
// generation budget ran out before the success threshold was reached —
// an expected outcome of a stochastic search, not an error.
type EvolveResult struct {
	Best        Individual
	Solved      bool
	Generations int
	Population  []Individual
}

// sortByError computes each individual's error exactly once (in parallel,
// bounded by GOMAXPROCS) and returns the population sorted ascending.
func sortByError(pop []Individual, samples []Sample) []Individual {
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range pop {
		i := i
		g.Go(func() error {
			pop[i].Err = totalError(pop[i].Tree, samples)
			return nil
		})
	}
	_ = g.Wait() // evaluation never fails

	sort.Slice(pop, func(i, j int) bool { return pop[i].Err < pop[j].Err })
	return pop
}

// tournamentSelect draws tsize uniform indices into the population (with
// replacement) and returns the individual at the smallest one. The
// population must already be sorted ascending by error, so smallest index
// means lowest error among the sampled subset.
func tournamentSelect(rng *rand.Rand, sorted []Individual, tsize int) Individual {
	best := rng.Intn(len(sorted))
	for i := 1; i < tsize; i++ {
		if c := rng.Intn(len(sorted)); c < best {
			best = c
		}
	}
	return sorted[best]
}

// offspringCounts splits a population size into the mutation, crossover
// and verbatim carry-over group sizes: floor(n/2), floor(n/4), and the
// remainder, so the three groups always sum to n exactly.
func offspringCounts(n int) (nMut, nCross, nCarry int) {
	nMut = n / 2
	nCross = n / 4
	nCarry = n - nMut - nCross
	return
}

// nextGeneration builds a fresh unsorted population from a sorted one:
// half mutated selections, a quarter crossovers of two independent
// selections, the rest verbatim re-selections (duplicates allowed).
func nextGeneration(rng *rand.Rand, sorted []Individual, cfg SearchConfig) []Individual {
	nMut, nCross, nCarry := offspringCounts(len(sorted))
	next := make([]Individual, 0, len(sorted))

	for i := 0; i < nMut; i++ {
		parent := tournamentSelect(rng, sorted, cfg.TournamentSize)
		next = append(next, Individual{Tree: mutateTree(rng, parent.Tree, cfg.MutationDepth)})
	}
	for i := 0; i < nCross; i++ {
		a := tournamentSelect(rng, sorted, cfg.TournamentSize)
		b := tournamentSelect(rng, sorted, cfg.TournamentSize)
		next = append(next, Individual{Tree: crossoverTrees(rng, a.Tree, b.Tree)})
	}
	for i := 0; i < nCarry; i++ {
		next = append(next, Individual{Tree: tournamentSelect(rng, sorted, cfg.TournamentSize).Tree})
	}

	return next
}

// computeGenStats summarizes a sorted population for reporting.
func computeGenStats(gen int, sorted []Individual) GenStats {
	return GenStats{
		Generation: gen,
		BestErr:    sorted[0].Err,
		MedianErr:  sorted[len(sorted)/2].Err,
		MeanSize:   meanSize(sorted),
		BestExpr:   treeString(sorted[0].Tree),
	}
}

// Evolve runs the generational search: random initial population, then
// evaluate-select-reproduce cycles until the best error drops below the
// success threshold or the generation budget (if any) runs out. The
// report callback fires once per generation on the sorted population.
func Evolve(rng *rand.Rand, samples []Sample, cfg SearchConfig, report func(GenStats)) EvolveResult {
	pop := make([]Individual, cfg.PopulationSize)
	for i := range pop {
		pop[i] = Individual{Tree: randomTree(rng, cfg.InitDepth)}
	}
	pop = sortByError(pop, samples)

	for gen := 0; ; gen++ {
		if report != nil {
			report(computeGenStats(gen, pop))
		}

		if pop[0].Err < cfg.SuccessThreshold {
			return EvolveResult{Best: pop[0], Solved: true, Generations: gen + 1, Population: pop}
		}
		if cfg.MaxGenerations > 0 && gen+1 >= cfg.MaxGenerations {
			return EvolveResult{Best: pop[0], Solved: false, Generations: gen + 1, Population: pop}
		}

		pop = sortByError(nextGeneration(rng, pop, cfg), samples)
	}
}
