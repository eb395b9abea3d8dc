package unionfind

// QuickFind stores the set identifier of every element directly:
// Connected is a single comparison and Union relabels a whole set.
type QuickFind struct {
	forest
}

// NewQuickFind returns n singleton sets.
func NewQuickFind(n int) (*QuickFind, error) {
	f, err := newForest(n)
	if err != nil {
		return nil, err
	}

	return &QuickFind{forest: f}, nil
}

// Union relabels every member of b's set with a's identifier.
func (q *QuickFind) Union(a, b int) error {
	if err := q.check(a, b); err != nil {
		return err
	}
	idA, idB := q.id[a], q.id[b]
	if idA == idB {
		return nil
	}
	for i := range q.id {
		if q.id[i] == idB {
			q.id[i] = idA
		}
	}
	q.count--

	return nil
}

// Connected reports whether a and b share an identifier.
func (q *QuickFind) Connected(a, b int) (bool, error) {
	if err := q.check(a, b); err != nil {
		return false, err
	}

	return q.id[a] == q.id[b], nil
}

// Find returns the identifier of a's set.
func (q *QuickFind) Find(a int) (int, error) {
	if err := q.check(a); err != nil {
		return 0, err
	}

	return q.id[a], nil
}

// QuickUnion links roots without balancing, so trees may degrade to chains.
type QuickUnion struct {
	forest
}

// NewQuickUnion returns n singleton sets.
func NewQuickUnion(n int) (*QuickUnion, error) {
	f, err := newForest(n)
	if err != nil {
		return nil, err
	}

	return &QuickUnion{forest: f}, nil
}

// Union makes the root of a the parent of the root of b.
func (q *QuickUnion) Union(a, b int) error {
	if err := q.check(a, b); err != nil {
		return err
	}
	rootA, rootB := q.root(a), q.root(b)
	if rootA == rootB {
		return nil
	}
	q.id[rootB] = rootA
	q.count--

	return nil
}

// Connected reports whether a and b share a root.
func (q *QuickUnion) Connected(a, b int) (bool, error) {
	if err := q.check(a, b); err != nil {
		return false, err
	}

	return q.root(a) == q.root(b), nil
}

// Find returns the root of a.
func (q *QuickUnion) Find(a int) (int, error) {
	if err := q.check(a); err != nil {
		return 0, err
	}

	return q.root(a), nil
}

// Weighted links the root of the smaller tree under the root of the larger,
// keeping every tree at depth O(log n).
type Weighted struct {
	forest
	size []int // size[r] is the element count of the tree rooted at r
}

// NewWeighted returns n singleton sets.
func NewWeighted(n int) (*Weighted, error) {
	f, err := newForest(n)
	if err != nil {
		return nil, err
	}
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	return &Weighted{forest: f, size: size}, nil
}

// link attaches the smaller of two distinct roots under the larger.
func (w *Weighted) link(rootA, rootB int) {
	if w.size[rootA] > w.size[rootB] {
		w.id[rootB] = rootA
		w.size[rootA] += w.size[rootB]
	} else {
		w.id[rootA] = rootB
		w.size[rootB] += w.size[rootA]
	}
	w.count--
}

// Union merges the sets of a and b by size.
func (w *Weighted) Union(a, b int) error {
	if err := w.check(a, b); err != nil {
		return err
	}
	rootA, rootB := w.root(a), w.root(b)
	if rootA == rootB {
		return nil
	}
	w.link(rootA, rootB)

	return nil
}

// Connected reports whether a and b share a root.
func (w *Weighted) Connected(a, b int) (bool, error) {
	if err := w.check(a, b); err != nil {
		return false, err
	}

	return w.root(a) == w.root(b), nil
}

// Find returns the root of a.
func (w *Weighted) Find(a int) (int, error) {
	if err := w.check(a); err != nil {
		return 0, err
	}

	return w.root(a), nil
}

// SetSize returns the number of elements in a's set.
func (w *Weighted) SetSize(a int) (int, error) {
	if err := w.check(a); err != nil {
		return 0, err
	}

	return w.size[w.root(a)], nil
}

// PathCompressed is Weighted plus path halving: every lookup points each
// visited node at its grandparent, flattening the trees over time.
type PathCompressed struct {
	Weighted
}

// NewPathCompressed returns n singleton sets.
func NewPathCompressed(n int) (*PathCompressed, error) {
	w, err := NewWeighted(n)
	if err != nil {
		return nil, err
	}

	return &PathCompressed{Weighted: *w}, nil
}

// compress walks to the root of node, halving the path on the way.
func (p *PathCompressed) compress(node int) int {
	for node != p.id[node] {
		p.id[node] = p.id[p.id[node]]
		node = p.id[node]
	}

	return node
}

// Union merges the sets of a and b by size.
func (p *PathCompressed) Union(a, b int) error {
	if err := p.check(a, b); err != nil {
		return err
	}
	rootA, rootB := p.compress(a), p.compress(b)
	if rootA == rootB {
		return nil
	}
	p.link(rootA, rootB)

	return nil
}

// Connected reports whether a and b share a root.
func (p *PathCompressed) Connected(a, b int) (bool, error) {
	if err := p.check(a, b); err != nil {
		return false, err
	}

	return p.compress(a) == p.compress(b), nil
}

// Find returns the root of a.
func (p *PathCompressed) Find(a int) (int, error) {
	if err := p.check(a); err != nil {
		return 0, err
	}

	return p.compress(a), nil
}

// SetSize returns the number of elements in a's set.
func (p *PathCompressed) SetSize(a int) (int, error) {
	if err := p.check(a); err != nil {
		return 0, err
	}

	return p.size[p.compress(a)], nil
}
