// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
// The frontier lives in a queue.Queue whose capacity is the vertex count:
// every vertex is enqueued at most once, so the ring never overflows.
// Arc weights are ignored.
package bfs

import (
	"context"
	"fmt"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/queue"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   *queue.Queue[queueItem]
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.VertexCount()
	q, err := queue.New[queueItem](n)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   q,
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = noParent
	}

	// Seed queue with start vertex (no parent)
	if err = w.enqueue(start, 0, noParent); err != nil {
		return nil, err
	}
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v int, d int, parent int) error {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	if err := w.queue.Enqueue(queueItem{v: v, depth: d}); err != nil {
		return fmt.Errorf("bfs: enqueue %d: %w", v, err)
	}

	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, err := w.dequeue()
		if err != nil {
			return err
		}
		if err = w.visit(item); err != nil {
			return err
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() (queueItem, error) {
	item, err := w.queue.Dequeue()
	if err != nil {
		return item, fmt.Errorf("bfs: dequeue: %w", err)
	}
	w.opts.OnDequeue(item.v, item.depth)

	return item, nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if err = w.enqueue(nbr, nextDepth, item.v); err != nil {
			return err
		}
	}

	return nil
}
