package main

import (
	"fmt"
	"math/rand"
	"testing"
)

// TestMutateProducesValidTrees verifies mutation output always passes the
// structural check and never touches the parent.
func TestMutateProducesValidTrees(t *testing.T) {
	fmt.Println("\n=== GENETIC TEST: Mutation ===")

	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 1000; i++ {
		parent := randomTree(rng, 4)
		saved, err := parseTree(treeString(parent))
		if err != nil {
			t.Fatal(err)
		}

		child := mutateTree(rng, parent, mutationDepth)
		if err := checkTree(child); err != nil {
			t.Fatalf("mutant %d invalid: %v", i, err)
		}
		if !treeEqual(parent, saved) {
			t.Fatalf("mutation modified the parent: %s vs %s", treeString(parent), treeString(saved))
		}
	}

	fmt.Println("✓ PASS: Mutation")
}

// TestMutateSizeBound verifies one mutation step adds at most a full
// subtree of the mutation depth: child size <= parent size - 1 + worst case.
func TestMutateSizeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	// Worst-case grown subtree: a full binary tree of mutationDepth levels.
	maxGrown := 1
	levelNodes := 1
	for d := 0; d < mutationDepth; d++ {
		levelNodes *= 2
		maxGrown += levelNodes
	}

	for i := 0; i < 1000; i++ {
		parent := randomTree(rng, 4)
		child := mutateTree(rng, parent, mutationDepth)
		if got, bound := treeSize(child), treeSize(parent)-1+maxGrown; got > bound {
			t.Fatalf("mutant size %d exceeds bound %d (parent size %d)", got, bound, treeSize(parent))
		}
	}
}

// TestCrossoverCombinesParents verifies a crossover child is a valid tree
// whose donor subtree actually comes out of the second parent, with both
// parents untouched.
func TestCrossoverCombinesParents(t *testing.T) {
	fmt.Println("\n=== GENETIC TEST: Crossover ===")

	rng := rand.New(rand.NewSource(19))

	for i := 0; i < 1000; i++ {
		a := randomTree(rng, 4)
		b := randomTree(rng, 4)
		savedA, _ := parseTree(treeString(a))
		savedB, _ := parseTree(treeString(b))

		child := crossoverTrees(rng, a, b)
		if err := checkTree(child); err != nil {
			t.Fatalf("child %d invalid: %v", i, err)
		}
		if !treeEqual(a, savedA) || !treeEqual(b, savedB) {
			t.Fatalf("crossover modified a parent")
		}

		// Crossover never grows past both parents combined.
		if treeSize(child) > treeSize(a)+treeSize(b) {
			t.Fatalf("child size %d exceeds parents %d+%d",
				treeSize(child), treeSize(a), treeSize(b))
		}
	}

	fmt.Println("✓ PASS: Crossover")
}

// TestCrossoverDonorIsSubtreeOfB pins the donor side on hand-built parents
// where every subtree of b is distinguishable from anything in a.
func TestCrossoverDonorIsSubtreeOfB(t *testing.T) {
	rng := rand.New(rand.NewSource(29))

	a, _ := parseTree("(+ x x)")
	b, _ := parseTree("(* 7 7)")

	// Subtrees of b in textual form: the whole product and the constant.
	donors := map[string]bool{"(* 7 7)": true, "7": true}
	// Subtrees of a that can survive around the graft point.
	hostParts := map[string]bool{"x": true, "+": true}

	for i := 0; i < 200; i++ {
		child := crossoverTrees(rng, a, b)
		if err := checkTree(child); err != nil {
			t.Fatal(err)
		}

		// Every constant 7 in the child must sit inside a donor shape;
		// verify by checking the child only contains known pieces.
		var walk func(n *Node)
		var bad bool
		walk = func(n *Node) {
			switch n.Kind {
			case NodeVar:
				if !hostParts["x"] {
					bad = true
				}
			case NodeConst:
				if !donors[treeString(n)] {
					bad = true
				}
			default:
				for _, c := range n.Args {
					walk(c)
				}
			}
		}
		walk(child)
		if bad {
			t.Fatalf("child %d contains foreign material: %s", i, treeString(child))
		}
	}
}
