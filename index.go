package main

// Depth-first point indexing over expression trees. A point index denotes
// a stop in the pre-order enumeration of ALL nodes (operator applications
// and terminals alike). Indices are always normalized before the walk, so
// every call resolves to a valid position.

// normIndex maps any integer onto [0, size): absolute value first, then
// modulo the tree's node count.
func normIndex(k, size int) int {
	if k < 0 {
		k = -k
	}
	return k % size
}

// subtreeAt returns the subtree rooted at pre-order stop k (after
// normalization). An operator node is returned as the whole subtree
// rooted there, not descended into for this call.
func subtreeAt(t *Node, k int) *Node {
	k = normIndex(k, treeSize(t))
	found, _ := walkAt(t, k)
	return found
}

// walkAt visits n at the current stop; remaining counts stops still to
// skip. Returns (subtree, 0) once found, or (nil, stops left) so the
// caller continues with the next sibling.
func walkAt(n *Node, remaining int) (*Node, int) {
	if remaining == 0 {
		return n, 0
	}
	remaining--
	if n.Kind == NodeApply {
		for _, c := range n.Args {
			var found *Node
			found, remaining = walkAt(c, remaining)
			if found != nil {
				return found, 0
			}
		}
	}
	return nil, remaining
}

// replaceSubtreeAt returns a new tree identical to t except that the
// subtree at pre-order stop k is replaced by sub. t is never modified:
// only the ancestors on the path to the replaced node are rebuilt, every
// sibling subtree is shared with the original.
func replaceSubtreeAt(t *Node, k int, sub *Node) *Node {
	k = normIndex(k, treeSize(t))
	out, _ := rebuildAt(t, k, sub)
	return out
}

// rebuildAt mirrors walkAt but rebuilds the ancestor chain. A negative
// remaining count signals "replacement happened below, stop searching".
func rebuildAt(n *Node, remaining int, sub *Node) (*Node, int) {
	if remaining == 0 {
		return sub, -1
	}
	remaining--
	if n.Kind != NodeApply {
		return n, remaining
	}
	for i, c := range n.Args {
		replaced, rest := rebuildAt(c, remaining, sub)
		if rest < 0 {
			args := make([]*Node, len(n.Args))
			copy(args, n.Args)
			args[i] = replaced
			return &Node{Kind: NodeApply, Op: n.Op, Args: args}, -1
		}
		remaining = rest
	}
	return n, remaining
}
