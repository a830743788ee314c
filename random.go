package main

import (
	"math/rand"
)

const (
	constMin = -5.0
	constMax = 5.0
)

// randomTerminal returns the input variable or a uniform constant in
// [constMin, constMax), 50/50.
func randomTerminal(rng *rand.Rand) *Node {
	if rng.Intn(2) == 0 {
		return &Node{Kind: NodeVar}
	}
	return &Node{Kind: NodeConst, Value: constMin + rng.Float64()*(constMax-constMin)}
}

// randomTree generates a random expression tree of at most maxDepth
// operator levels. At depth 0 a terminal is forced; above that a fair
// coin flip may stop early, so trees come out with mixed shapes.
func randomTree(rng *rand.Rand, maxDepth int) *Node {
	if maxDepth <= 0 || rng.Intn(2) == 0 {
		return randomTerminal(rng)
	}
	op := opNames[rng.Intn(len(opNames))]
	args := make([]*Node, opTable[op].Arity)
	for i := range args {
		args[i] = randomTree(rng, maxDepth-1)
	}
	return &Node{Kind: NodeApply, Op: op, Args: args}
}
