package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NodeKind tags the three node shapes an expression tree can contain.
type NodeKind uint8

const (
	NodeVar   NodeKind = iota // the input variable x
	NodeConst                 // numeric constant
	NodeApply                 // operator application
)

// Node is one node of an expression tree. Trees are immutable once built:
// mutate/crossover/replace construct new trees and share untouched subtrees.
type Node struct {
	Kind  NodeKind
	Value float64 // NodeConst only
	Op    string  // NodeApply only
	Args  []*Node // NodeApply only, len(Args) == opTable[Op].Arity
}

// OpInfo describes one entry of the fixed operator table.
type OpInfo struct {
	Arity int
	Eval  func(args []float64) float64
}

// opTable is read-only after init. The evaluator applies Eval to the
// evaluated children; everything else only needs Arity.
var opTable = map[string]OpInfo{
	"+": {Arity: 2, Eval: func(a []float64) float64 { return a[0] + a[1] }},
	"-": {Arity: 2, Eval: func(a []float64) float64 { return a[0] - a[1] }},
	"*": {Arity: 2, Eval: func(a []float64) float64 { return a[0] * a[1] }},
	"/": {Arity: 2, Eval: func(a []float64) float64 { return protectedDiv(a[0], a[1]) }},
}

// opNames holds the table keys in sorted order so that seeded runs draw
// operators reproducibly (map iteration order is randomized).
var opNames []string

func init() {
	opNames = make([]string, 0, len(opTable))
	for name := range opTable {
		opNames = append(opNames, name)
	}
	sort.Strings(opNames)
}

// treeSize returns the total node count: every Apply node and every
// terminal counts exactly once. Always >= 1.
func treeSize(n *Node) int {
	if n.Kind != NodeApply {
		return 1
	}
	size := 1
	for _, c := range n.Args {
		size += treeSize(c)
	}
	return size
}

// treeDepth returns the depth of the tree (a bare terminal has depth 0).
func treeDepth(n *Node) int {
	if n.Kind != NodeApply {
		return 0
	}
	deepest := 0
	for _, c := range n.Args {
		if d := treeDepth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// treeEqual checks structural equality of two trees.
func treeEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NodeVar:
		return true
	case NodeConst:
		return a.Value == b.Value
	}
	if a.Op != b.Op || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !treeEqual(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// checkTree verifies the structural invariants: known operators, child
// count matching declared arity, no nil children. The generator and
// genetic operators can never build a tree that fails this; it exists for
// assertions in tests and for trees rebuilt from the solution log.
func checkTree(n *Node) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if n.Kind != NodeApply {
		return nil
	}
	info, ok := opTable[n.Op]
	if !ok {
		return fmt.Errorf("unknown operator %q", n.Op)
	}
	if len(n.Args) != info.Arity {
		return fmt.Errorf("operator %q has %d children, arity is %d", n.Op, len(n.Args), info.Arity)
	}
	for _, c := range n.Args {
		if err := checkTree(c); err != nil {
			return err
		}
	}
	return nil
}

// treeString renders a tree as an s-expression: "x", "2.5", "(+ x (* x x))".
// Constants use %g so parseTree round-trips them exactly.
func treeString(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case NodeVar:
		return "x"
	case NodeConst:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	}
	parts := make([]string, 0, len(n.Args)+1)
	parts = append(parts, n.Op)
	for _, c := range n.Args {
		parts = append(parts, treeString(c))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// parseTree parses the s-expression form produced by treeString.
func parseTree(s string) (*Node, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty expression")
	}

	if !strings.HasPrefix(s, "(") {
		return parseTerminal(s)
	}
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}

	inner := strings.TrimSpace(s[1 : len(s)-1])
	sp := strings.IndexByte(inner, ' ')
	if sp < 0 {
		return nil, fmt.Errorf("operator with no operands in %q", s)
	}
	opStr := inner[:sp]
	info, ok := opTable[opStr]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", opStr)
	}

	args := make([]*Node, 0, info.Arity)
	rest := strings.TrimSpace(inner[sp+1:])
	for rest != "" {
		var tok string
		if rest[0] == '(' {
			end := findMatchingParen(rest, 0)
			if end < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", rest)
			}
			tok, rest = rest[:end+1], strings.TrimSpace(rest[end+1:])
		} else if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			tok, rest = rest[:sp], strings.TrimSpace(rest[sp+1:])
		} else {
			tok, rest = rest, ""
		}
		arg, err := parseTree(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) != info.Arity {
		return nil, fmt.Errorf("operator %q has %d operands, arity is %d", opStr, len(args), info.Arity)
	}

	return &Node{Kind: NodeApply, Op: opStr, Args: args}, nil
}

func parseTerminal(s string) (*Node, error) {
	if s == "x" {
		return &Node{Kind: NodeVar}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad terminal %q: %w", s, err)
	}
	return &Node{Kind: NodeConst, Value: v}, nil
}

// findMatchingParen returns the index of the ')' closing the '(' at start.
func findMatchingParen(s string, start int) int {
	count := 0
	for i := start; i < len(s); i++ {
		if s[i] == '(' {
			count++
		} else if s[i] == ')' {
			count--
			if count == 0 {
				return i
			}
		}
	}
	return -1
}
