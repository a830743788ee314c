package main

import "testing"

func TestComputeTreeStats(t *testing.T) {
	tr, err := parseTree("(+ (* x x) (+ x 1))")
	if err != nil {
		t.Fatal(err)
	}

	st := ComputeTreeStats(tr)
	if st.NodeCount != 7 {
		t.Errorf("nodes = %d, want 7", st.NodeCount)
	}
	if st.LeafCount != 4 {
		t.Errorf("leaves = %d, want 4", st.LeafCount)
	}
	if st.VarCount != 3 || st.ConstCount != 1 {
		t.Errorf("vars/consts = %d/%d, want 3/1", st.VarCount, st.ConstCount)
	}
	if st.MaxDepth != 2 {
		t.Errorf("depth = %d, want 2", st.MaxDepth)
	}
	if st.OperatorCount["+"] != 2 || st.OperatorCount["*"] != 1 {
		t.Errorf("operators = %v", st.OperatorCount)
	}
}

func TestComputeTreeStatsTerminal(t *testing.T) {
	st := ComputeTreeStats(&Node{Kind: NodeVar})
	if st.NodeCount != 1 || st.LeafCount != 1 || st.MaxDepth != 0 {
		t.Errorf("terminal stats = %+v", st)
	}

	if st := ComputeTreeStats(nil); st.NodeCount != 0 {
		t.Errorf("nil stats = %+v", st)
	}
}

func TestMeanSize(t *testing.T) {
	// Sizes 1 and 3.
	pop := []Individual{
		{Tree: &Node{Kind: NodeVar}},
		{Tree: &Node{Kind: NodeApply, Op: "+", Args: []*Node{{Kind: NodeVar}, {Kind: NodeVar}}}},
	}
	if got := meanSize(pop); got != 2 {
		t.Errorf("mean size = %g, want 2", got)
	}
	if got := meanSize(nil); got != 0 {
		t.Errorf("empty mean size = %g, want 0", got)
	}
}
