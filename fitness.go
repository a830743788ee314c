package main

import (
	"math"
)

// protectedDiv is division that yields 0 on a zero divisor, so malformed
// individuals never abort a generation with Inf/NaN.
func protectedDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// evalTree interprets a tree as a unary function of x: terminals evaluate
// to x or their constant, operator applications evaluate all children
// bottom-up and apply the table function.
func evalTree(n *Node, x float64) float64 {
	switch n.Kind {
	case NodeVar:
		return x
	case NodeConst:
		return n.Value
	}
	args := make([]float64, len(n.Args))
	for i, c := range n.Args {
		args[i] = evalTree(c, x)
	}
	return opTable[n.Op].Eval(args)
}

// totalError sums |evalTree(t, x) - y| over every sample pair. Lower is
// better; 0 means a perfect fit over the sample set.
func totalError(t *Node, samples []Sample) float64 {
	var sum float64
	for _, s := range samples {
		sum += math.Abs(evalTree(t, s.X) - s.Y)
	}
	return sum
}
