package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

// TestProtectedDiv verifies a zero divisor yields 0 instead of Inf/NaN.
func TestProtectedDiv(t *testing.T) {
	if got := protectedDiv(5, 0); got != 0 {
		t.Errorf("5/0 = %g, want 0", got)
	}
	if got := protectedDiv(0, 0); got != 0 {
		t.Errorf("0/0 = %g, want 0", got)
	}
	if got := protectedDiv(-3, 0); got != 0 {
		t.Errorf("-3/0 = %g, want 0", got)
	}
	if got := protectedDiv(6, 3); got != 2 {
		t.Errorf("6/3 = %g, want 2", got)
	}
}

// TestEvalTreeKnownExpressions pins the interpreter on hand-built trees.
func TestEvalTreeKnownExpressions(t *testing.T) {
	cases := []struct {
		expr string
		x    float64
		want float64
	}{
		{"x", 3, 3},
		{"2.5", 100, 2.5},
		{"(+ x 1)", 2, 3},
		{"(- x 10)", 4, -6},
		{"(* x x)", -3, 9},
		{"(/ x 2)", 5, 2.5},
		{"(/ x 0)", 5, 0},
		{"(/ 1 (- x x))", 7, 0},
		{"(+ (* x x) (+ x 1))", 0.5, 1.75},
	}

	for _, c := range cases {
		tr, err := parseTree(c.expr)
		if err != nil {
			t.Fatalf("parse %q: %v", c.expr, err)
		}
		if got := evalTree(tr, c.x); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("eval %q at x=%g: got %g, want %g", c.expr, c.x, got, c.want)
		}
	}
}

// TestTotalErrorNonNegative verifies the error metric never goes negative
// and stays finite across random trees.
func TestTotalErrorNonNegative(t *testing.T) {
	fmt.Println("\n=== FITNESS TEST: Error Metric ===")

	rng := rand.New(rand.NewSource(31))
	samples := QuadraticSamples()

	for i := 0; i < 1000; i++ {
		tr := randomTree(rng, 4)
		e := totalError(tr, samples)
		if e < 0 {
			t.Fatalf("tree %d: negative error %g", i, e)
		}
		if math.IsNaN(e) || math.IsInf(e, 0) {
			t.Fatalf("tree %d: non-finite error %g for %s", i, e, treeString(tr))
		}
	}

	fmt.Println("✓ PASS: Error metric")
}

// TestTotalErrorPerfectFit verifies the exact target expression scores 0.
func TestTotalErrorPerfectFit(t *testing.T) {
	tr, err := parseTree("(+ (* x x) (+ x 1))")
	if err != nil {
		t.Fatal(err)
	}
	if e := totalError(tr, QuadraticSamples()); e > 1e-9 {
		t.Errorf("perfect expression scored %g, want ~0", e)
	}
}

// TestTotalErrorBareTerminal pins the metric on a minimal case: the
// constant 0 against a single sample (0, 1) must score exactly 1.
func TestTotalErrorBareTerminal(t *testing.T) {
	samples := []Sample{{X: 0, Y: 1}}

	zero := &Node{Kind: NodeConst, Value: 0}
	if e := totalError(zero, samples); e != 1 {
		t.Errorf("constant 0 scored %g, want 1", e)
	}

	v := &Node{Kind: NodeVar}
	if e := totalError(v, samples); e != 1 {
		t.Errorf("bare x scored %g, want 1", e)
	}
}
