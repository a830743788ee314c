package main

import (
	"math/rand"
)

// mutationDepth bounds the subtree grown at the mutation point, so a
// single mutation step cannot blow up an individual's size.
const mutationDepth = 2

// mutateTree replaces the subtree at a random pre-order point with a
// freshly generated random subtree of at most depth levels. The parent is
// left untouched.
func mutateTree(rng *rand.Rand, t *Node, depth int) *Node {
	point := rng.Intn(treeSize(t))
	return replaceSubtreeAt(t, point, randomTree(rng, depth))
}

// crossoverTrees grafts a random subtree of b onto a random point of a.
// Neither parent is modified; the donor subtree is shared, which is safe
// because trees are immutable.
func crossoverTrees(rng *rand.Rand, a, b *Node) *Node {
	donor := subtreeAt(b, rng.Intn(treeSize(b)))
	return replaceSubtreeAt(a, rng.Intn(treeSize(a)), donor)
}
