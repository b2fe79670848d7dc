package dirichlet

import (
	"fmt"
	"math"

	"github.com/npillmayer/hexdom"
)

// Terminus describes where an edge walk ended.
type Terminus struct {
	Coord     hexdom.Pair  // the vertex reached
	Neighbour float64      // identity that stopped the walk, or NoIdentity
	Next      *hexdom.Pair // centre of the cell that stopped the walk, if any
}

// Walker traces edges between two domains, one hex side at a time. A Walker
// only reads grid and identity field and may be shared between goroutines.
type Walker struct {
	g        Grid
	ids      []float64
	maxSteps int
	tol      float64
}

// NewWalker creates a walker over an identity field. maxSteps bounds the
// number of hex sides a single walk may traverse; values < 1 select the
// default of 6·g.Len()+6, more than any edge in the grid can be long.
func NewWalker(g Grid, ids []float64, maxSteps int) *Walker {
	if maxSteps < 1 {
		maxSteps = 6*g.Len() + 6
	}
	return &Walker{
		g:        g,
		ids:      ids,
		maxSteps: maxSteps,
		tol:      g.LongRadius() * hexdom.Epsilon * 10,
	}
}

// WalkToNext walks the edge between v's own domain and v.Neighb.First, i.e.
// the edge leading to the next vertex around v's domain.
func (w *Walker) WalkToNext(v Vertex, hint *hexdom.Pair) ([]hexdom.Pair, Terminus, error) {
	return w.Walk(v, Neighbours{First: v.ID, Second: v.Neighb.First}, hint)
}

// WalkToNeighbour walks the edge between the two domains neighbouring v.
// This edge exists only for inner vertices.
func (w *Walker) WalkToNeighbour(v Vertex, hint *hexdom.Pair) ([]hexdom.Pair, Terminus, error) {
	if v.OnBoundary {
		return nil, Terminus{}, fmt.Errorf("%v: %w", v, ErrBoundaryVertex)
	}
	return w.Walk(v, v.Neighb, hint)
}

// Walk follows the edge between domains edge.First and edge.Second,
// starting at v.Coord. The walk rotates around an anchor cell of identity
// edge.First, keeping a cell of identity edge.Second on the other side of
// the hex side under way. It ends at the first lattice point where a cell
// of a third identity, or the outside of the grid, joins in.
//
// hint, if non-nil, is the centre of the edge.Second cell to start across
// from. It disambiguates vertices where two edges between the same pair of
// domains meet.
//
// The returned path excludes v.Coord and includes the terminal vertex.
func (w *Walker) Walk(v Vertex, edge Neighbours, hint *hexdom.Pair) ([]hexdom.Pair, Terminus, error) {
	a, k, sense, ok := w.straddle(v, edge, hint)
	if !ok {
		return nil, Terminus{}, fmt.Errorf("no cell pair (%g,%g) at %v: %w",
			edge.First, edge.Second, v.Coord, ErrStructural)
	}
	tracer().Debugf("walk from %v: anchor %d, across %d, sense %+d", v.Coord, a, k, sense)
	b, _ := w.g.Neighbour(a, k)
	var path []hexdom.Pair
	for step := 0; step < w.maxSteps; step++ {
		var t hexdom.Pair
		if sense > 0 {
			t = w.g.VertexCoord(a, k)
		} else {
			t = w.g.VertexCoord(a, wrap(k-1))
		}
		path = append(path, t)
		dk := wrap(k + sense)
		d, ok := w.g.Neighbour(a, dk)
		if !ok {
			tracer().Debugf("walk reached grid boundary at %v", t)
			return path, Terminus{Coord: t, Neighbour: NoIdentity}, nil
		}
		switch w.ids[d] {
		case edge.Second:
			b, k = d, dk
		case edge.First:
			// pivot: d becomes the anchor, b stays across
			kb := direction(w.g, d, b)
			if kb < 0 {
				return path, Terminus{}, fmt.Errorf("cells %d and %d not adjacent: %w", d, b, ErrStructural)
			}
			var arrival hexdom.Pair
			if sense > 0 {
				arrival = w.g.VertexCoord(d, wrap(kb-1))
			} else {
				arrival = w.g.VertexCoord(d, kb)
			}
			if !arrival.Near(t, w.tol) {
				return path, Terminus{}, fmt.Errorf("pivot to cell %d leaves %v: %w", d, t, ErrStructural)
			}
			a, k = d, kb
		default:
			c := w.g.Centre(d)
			tracer().Debugf("walk reached identity %g at %v after %d steps", w.ids[d], t, step+1)
			return path, Terminus{Coord: t, Neighbour: w.ids[d], Next: &c}, nil
		}
	}
	return path, Terminus{}, fmt.Errorf("%d steps from %v: %w", w.maxSteps, v.Coord, ErrStepBudget)
}

// straddle finds the anchor cell a of identity edge.First and direction k
// towards a cell of identity edge.Second, both touching v.Coord. sense is +1
// if the walk proceeds counter-clockwise around a, -1 otherwise.
func (w *Walker) straddle(v Vertex, edge Neighbours, hint *hexdom.Pair) (a, k, sense int, ok bool) {
	at := w.cellsAt(v)
	touches := func(cell int) bool {
		for _, c := range at {
			if c == cell {
				return true
			}
		}
		return false
	}
	for _, a = range at {
		if w.ids[a] != edge.First {
			continue
		}
		for k = 0; k < 6; k++ {
			b, ok := w.g.Neighbour(a, k)
			if !ok || !touches(b) || w.ids[b] != edge.Second {
				continue
			}
			if hint != nil && !w.g.Centre(b).Near(*hint, w.tol) {
				continue
			}
			if w.g.CompareVertexCoord(a, wrap(k-1), v.Coord) {
				return a, k, 1, true
			}
			if w.g.CompareVertexCoord(a, k, v.Coord) {
				return a, k, -1, true
			}
		}
	}
	return 0, 0, 0, false
}

// cellsAt returns the cells, among v's owner and its neighbours, having
// v.Coord as one of their hex vertices.
func (w *Walker) cellsAt(v Vertex) []int {
	if v.Cell < 0 || v.Cell >= w.g.Len() {
		return nil
	}
	lr := w.g.LongRadius()
	onLattice := func(cell int) bool {
		return math.Abs(w.g.Centre(cell).Dist(v.Coord)-lr) <= w.tol
	}
	var at []int
	if onLattice(v.Cell) {
		at = append(at, v.Cell)
	}
	for dir := 0; dir < 6; dir++ {
		if n, ok := w.g.Neighbour(v.Cell, dir); ok && onLattice(n) {
			at = append(at, n)
		}
	}
	return at
}

// direction returns the direction from cell to its neighbour n, or -1.
func direction(g Grid, cell, n int) int {
	for dir := 0; dir < 6; dir++ {
		if m, ok := g.Neighbour(cell, dir); ok && m == n {
			return dir
		}
	}
	return -1
}
