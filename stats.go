package main

// TreeStats holds structural metrics for one expression tree.
type TreeStats struct {
	NodeCount     int
	LeafCount     int
	ConstCount    int
	VarCount      int
	MaxDepth      int
	OperatorCount map[string]int
}

// ComputeTreeStats walks a tree and collects its structural metrics.
func ComputeTreeStats(n *Node) TreeStats {
	st := TreeStats{OperatorCount: make(map[string]int)}
	if n == nil {
		return st
	}
	walkStats(n, &st, 0)
	return st
}

func walkStats(n *Node, st *TreeStats, depth int) {
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	st.NodeCount++

	switch n.Kind {
	case NodeVar:
		st.LeafCount++
		st.VarCount++
		return
	case NodeConst:
		st.LeafCount++
		st.ConstCount++
		return
	}

	st.OperatorCount[n.Op]++
	for _, c := range n.Args {
		walkStats(c, st, depth+1)
	}
}

// meanSize returns the mean node count across a population.
func meanSize(pop []Individual) float64 {
	if len(pop) == 0 {
		return 0
	}
	total := 0
	for _, ind := range pop {
		total += treeSize(ind.Tree)
	}
	return float64(total) / float64(len(pop))
}
