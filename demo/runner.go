package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/Naxaes/Algorithms/bfs"
	"github.com/Naxaes/Algorithms/config"
	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/dfs"
	"github.com/Naxaes/Algorithms/dijkstra"
	"github.com/Naxaes/Algorithms/heap"
	"github.com/Naxaes/Algorithms/prim_kruskal"
	"github.com/Naxaes/Algorithms/queue"
	"github.com/Naxaes/Algorithms/sorting"
	"github.com/Naxaes/Algorithms/stack"
	"github.com/Naxaes/Algorithms/timing"
	"github.com/Naxaes/Algorithms/unionfind"
)

// Runner executes the scenarios of a config.Config.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	timer  *timing.Timer
}

// NewRunner binds cfg to a logger and a timer. A nil logger discards
// output; a nil timer is replaced by a private one.
func NewRunner(cfg *config.Config, logger *slog.Logger, timer *timing.Timer) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if timer == nil {
		var err error
		if timer, err = timing.New(); err != nil {
			return nil, err
		}
	}

	return &Runner{cfg: cfg, logger: logger, timer: timer}, nil
}

// Run executes every scenario in order and stops at the first failure.
// ctx is checked between scenarios and inside the graph traversals.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{}
	steps := []struct {
		name string
		fn   func(context.Context, *Report) error
	}{
		{"sorting", r.runSorting},
		{"heap", r.runHeap},
		{"queue", r.runQueue},
		{"stack", r.runStack},
		{"union-find", r.runUnionFind},
		{"graph", r.runGraph},
		{"network", r.runNetwork},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("demo: %s: %w", step.name, err)
		}
		if err := step.fn(ctx, rep); err != nil {
			r.logger.Error("scenario failed", "scenario", step.name, "error", err)
			return nil, fmt.Errorf("demo: %s: %w", step.name, err)
		}
		r.logger.Debug("scenario done", "scenario", step.name)
	}
	if r.cfg.Timings {
		rep.Timings = r.timer.Entries()
	}
	r.logger.Info("demo finished", "scenarios", len(steps))

	return rep, nil
}

func (r *Runner) runSorting(_ context.Context, rep *Report) error {
	for _, name := range r.cfg.Sorting.Algorithms {
		sorter, err := sorting.Lookup(name)
		if err != nil {
			return err
		}
		out := slices.Clone(r.cfg.Sorting.Input)
		if err = r.timer.Measure("sort/"+name, func() error { return sorter(out) }); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		rep.Sorting = append(rep.Sorting, SortResult{
			Algorithm: name,
			Output:    out,
			Sorted:    sorting.IsSorted(out),
		})
	}

	return nil
}

func (r *Runner) runHeap(_ context.Context, rep *Report) error {
	hc := r.cfg.Heap
	return r.timer.Measure("heap", func() error {
		h, err := heap.New[int](hc.Capacity)
		if err != nil {
			return err
		}
		for _, v := range hc.Values {
			if err = h.Add(v); err != nil {
				return err
			}
		}
		res := HeapResult{Added: slices.Clone(h.Raw()), PopIndex: hc.PopIndex}
		if res.Popped, err = h.Pop(hc.PopIndex); err != nil {
			return err
		}
		res.AfterPop = slices.Clone(h.Raw())

		var v int
		for !h.IsEmpty() {
			if v, err = h.PopMax(); err != nil {
				return err
			}
			res.Drained = append(res.Drained, v)
		}
		rep.Heap = res

		return nil
	})
}

func (r *Runner) runQueue(_ context.Context, rep *Report) error {
	sc := r.cfg.Queue
	return r.timer.Measure("queue", func() error {
		q, err := queue.New[int](sc.Capacity)
		if err != nil {
			return err
		}
		res := ScriptResult{}
		var v int
		for i, op := range sc.Script {
			switch op.Op {
			case config.OpEnqueue:
				err = q.Enqueue(op.Value)
			case config.OpDequeue:
				if v, err = q.Dequeue(); err == nil {
					res.Removed = append(res.Removed, v)
				}
			}
			if err != nil {
				return fmt.Errorf("script[%d] %s: %w", i, op.Op, err)
			}
		}
		res.Remaining = q.Values()
		rep.Queue = res

		return nil
	})
}

func (r *Runner) runStack(_ context.Context, rep *Report) error {
	sc := r.cfg.Stack
	return r.timer.Measure("stack", func() error {
		s, err := stack.New[int](sc.Capacity)
		if err != nil {
			return err
		}
		res := ScriptResult{}
		var v int
		for i, op := range sc.Script {
			switch op.Op {
			case config.OpPush:
				err = s.Push(op.Value)
			case config.OpPop:
				if v, err = s.Pop(); err == nil {
					res.Removed = append(res.Removed, v)
				}
			}
			if err != nil {
				return fmt.Errorf("script[%d] %s: %w", i, op.Op, err)
			}
		}
		res.Remaining = s.Values()
		rep.Stack = res

		return nil
	})
}

func (r *Runner) runUnionFind(_ context.Context, rep *Report) error {
	uc := r.cfg.UnionFind
	for _, kind := range uc.Kinds {
		err := r.timer.Measure("union-find/"+kind, func() error {
			uf, err := unionfind.New(unionfind.Kind(kind), uc.Size)
			if err != nil {
				return err
			}
			for _, p := range uc.Unions {
				if err = uf.Union(p[0], p[1]); err != nil {
					return err
				}
			}
			res := UnionFindResult{Kind: kind, Components: uf.Count()}
			var joined bool
			for _, p := range uc.Queries {
				if joined, err = uf.Connected(p[0], p[1]); err != nil {
					return err
				}
				res.Queries = append(res.Queries, Query{A: p[0], B: p[1], Connected: joined})
			}
			rep.UnionFind = append(rep.UnionFind, res)

			return nil
		})
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
	}

	return nil
}

func (r *Runner) runGraph(ctx context.Context, rep *Report) error {
	gc := r.cfg.Graph
	g, err := core.FromAdjacency(gc.Adjacency, core.WithDirected(gc.Directed), core.WithLoops())
	if err != nil {
		return err
	}
	res := GraphResult{Start: gc.Start, Target: gc.Target}

	var dres *dfs.DFSResult
	err = r.timer.Measure("graph/dfs", func() error {
		dres, err = dfs.DFS(g, gc.Start, dfs.WithContext(ctx))
		return err
	})
	if err != nil {
		return err
	}
	res.PreOrder, res.PostOrder = dres.Path, dres.Order

	err = r.timer.Measure("graph/dfs-iterative", func() error {
		res.IterativeDFS, err = dfs.Iterative(g, gc.Start)
		return err
	})
	if err != nil {
		return err
	}

	var bres *bfs.BFSResult
	err = r.timer.Measure("graph/bfs", func() error {
		bres, err = bfs.BFS(g, gc.Start, bfs.WithContext(ctx))
		return err
	})
	if err != nil {
		return err
	}
	res.BFSOrder = bres.Order

	// an unreachable target leaves both paths empty
	if path, perr := dres.PathTo(gc.Target); perr == nil {
		res.DFSPath = path
	} else {
		r.logger.Warn("target not reachable", "traversal", "dfs", "target", gc.Target)
	}
	if path, perr := bres.PathTo(gc.Target); perr == nil {
		res.BFSPath = path
	} else {
		r.logger.Warn("target not reachable", "traversal", "bfs", "target", gc.Target)
	}
	rep.Graph = res

	return nil
}

func (r *Runner) runNetwork(_ context.Context, rep *Report) error {
	nc := r.cfg.Network
	g, err := core.NewGraph(nc.Vertices, core.WithWeighted())
	if err != nil {
		return err
	}
	for _, e := range nc.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	res := NetworkResult{Method: nc.Method, Source: nc.Source}

	var tree []core.Edge
	err = r.timer.Measure("network/mst", func() error {
		opts := prim_kruskal.DefaultOptions()
		prim_kruskal.WithMethod(nc.Method)(&opts)
		prim_kruskal.WithRoot(nc.Source)(&opts)
		tree, res.Weight, err = prim_kruskal.Compute(g, opts)
		return err
	})
	switch {
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		// no spanning tree exists; shortest paths still cover the source's component
		r.logger.Warn("network is disconnected", "method", nc.Method, "vertices", nc.Vertices)
		tree, res.Weight = nil, 0
		res.Disconnected = true
	case err != nil:
		return err
	}
	for _, e := range tree {
		res.Tree = append(res.Tree, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	var (
		dist []int64
		prev []int
	)
	err = r.timer.Measure("network/dijkstra", func() error {
		dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(nc.Source), dijkstra.WithReturnPath())
		return err
	})
	if err != nil {
		return err
	}
	res.Distances = make([]int64, len(dist))
	res.Paths = make([][]int, len(dist))
	for v, d := range dist {
		if d == dijkstra.Unreachable {
			res.Distances[v] = -1
			continue
		}
		res.Distances[v] = d
		if res.Paths[v], err = dijkstra.PathTo(prev, nc.Source, v); err != nil {
			return err
		}
	}
	rep.Network = res

	return nil
}
