package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/Naxaes/Algorithms/arrayutil"
	"github.com/Naxaes/Algorithms/timing"
)

// Report is the outcome of every scenario of one Run.
type Report struct {
	Sorting   []SortResult      `json:"sorting"`
	Heap      HeapResult        `json:"heap"`
	Queue     ScriptResult      `json:"queue"`
	Stack     ScriptResult      `json:"stack"`
	UnionFind []UnionFindResult `json:"union_find"`
	Graph     GraphResult       `json:"graph"`
	Network   NetworkResult     `json:"network"`
	Timings   []timing.Entry    `json:"timings,omitempty"`
}

// SortResult is the output of one sorting algorithm.
type SortResult struct {
	Algorithm string `json:"algorithm"`
	Output    []int  `json:"output"`
	Sorted    bool   `json:"sorted"`
}

// HeapResult shows the heap's level-order storage before and after a removal.
type HeapResult struct {
	Added    []int `json:"added"`
	PopIndex int   `json:"pop_index"`
	Popped   int   `json:"popped"`
	AfterPop []int `json:"after_pop"`
	Drained  []int `json:"drained"`
}

// ScriptResult lists the values removed by a script and what was left behind.
type ScriptResult struct {
	Removed   []int `json:"removed"`
	Remaining []int `json:"remaining"`
}

// Query is one Connected question and its answer.
type Query struct {
	A         int  `json:"a"`
	B         int  `json:"b"`
	Connected bool `json:"connected"`
}

// UnionFindResult is the answer set of one union-find variant.
type UnionFindResult struct {
	Kind       string  `json:"kind"`
	Components int     `json:"components"`
	Queries    []Query `json:"queries"`
}

// GraphResult collects the traversals of the adjacency-list graph.
type GraphResult struct {
	Start        int   `json:"start"`
	Target       int   `json:"target"`
	PreOrder     []int `json:"pre_order"`
	PostOrder    []int `json:"post_order"`
	IterativeDFS []int `json:"iterative_dfs"`
	BFSOrder     []int `json:"bfs_order"`
	DFSPath      []int `json:"dfs_path,omitempty"`
	BFSPath      []int `json:"bfs_path,omitempty"`
}

// Edge is a weighted edge of the spanning tree.
type Edge struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// NetworkResult holds the spanning tree and shortest paths of the weighted network.
// Distances[v] is -1 and Paths[v] is nil when v is unreachable from Source.
// A disconnected network has no spanning tree: Disconnected is set and Tree is empty.
type NetworkResult struct {
	Method       string  `json:"method"`
	Tree         []Edge  `json:"tree"`
	Weight       int64   `json:"weight"`
	Disconnected bool    `json:"disconnected,omitempty"`
	Source       int     `json:"source"`
	Distances    []int64 `json:"distances"`
	Paths        [][]int `json:"paths"`
}

// WriteText renders r as plain text, one section per scenario.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	arr := arrayutil.FormatArray[int]

	b.WriteString("== sorting ==\n")
	for _, s := range r.Sorting {
		fmt.Fprintf(&b, "%s: %s\n", s.Algorithm, arr(s.Output))
	}

	b.WriteString("== heap ==\n")
	fmt.Fprintf(&b, "added: %s\n", arr(r.Heap.Added))
	fmt.Fprintf(&b, "popped[%d]: %d\n", r.Heap.PopIndex, r.Heap.Popped)
	fmt.Fprintf(&b, "after pop: %s\n", arr(r.Heap.AfterPop))
	fmt.Fprintf(&b, "drained: %s\n", arr(r.Heap.Drained))

	for _, sec := range []struct {
		name string
		res  ScriptResult
	}{{"queue", r.Queue}, {"stack", r.Stack}} {
		fmt.Fprintf(&b, "== %s ==\n", sec.name)
		fmt.Fprintf(&b, "removed: %s\n", arr(sec.res.Removed))
		fmt.Fprintf(&b, "remaining: %s\n", arr(sec.res.Remaining))
	}

	b.WriteString("== union-find ==\n")
	for _, u := range r.UnionFind {
		fmt.Fprintf(&b, "%s: %d components\n", u.Kind, u.Components)
		for _, q := range u.Queries {
			state := "disconnected"
			if q.Connected {
				state = "connected"
			}
			fmt.Fprintf(&b, "  %d-%d %s\n", q.A, q.B, state)
		}
	}

	g := r.Graph
	b.WriteString("== graph ==\n")
	fmt.Fprintf(&b, "dfs pre-order: %s\n", arr(g.PreOrder))
	fmt.Fprintf(&b, "dfs post-order: %s\n", arr(g.PostOrder))
	fmt.Fprintf(&b, "iterative dfs: %s\n", arr(g.IterativeDFS))
	fmt.Fprintf(&b, "bfs order: %s\n", arr(g.BFSOrder))
	fmt.Fprintf(&b, "dfs path %d→%d: %s\n", g.Start, g.Target, arr(g.DFSPath))
	fmt.Fprintf(&b, "bfs path %d→%d: %s\n", g.Start, g.Target, arr(g.BFSPath))

	n := r.Network
	b.WriteString("== network ==\n")
	if n.Disconnected {
		fmt.Fprintf(&b, "mst (%s): network is disconnected\n", n.Method)
	} else {
		fmt.Fprintf(&b, "mst (%s):", n.Method)
		for _, e := range n.Tree {
			fmt.Fprintf(&b, " %d-%d(%d)", e.From, e.To, e.Weight)
		}
		fmt.Fprintf(&b, "\nmst weight: %d\n", n.Weight)
	}
	for v, d := range n.Distances {
		if d < 0 {
			fmt.Fprintf(&b, "%d→%d: unreachable\n", n.Source, v)
			continue
		}
		fmt.Fprintf(&b, "%d→%d: %d via %s\n", n.Source, v, d, arr(n.Paths[v]))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("demo: write report: %w", err)
	}

	return nil
}
