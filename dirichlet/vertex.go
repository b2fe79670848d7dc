package dirichlet

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/hexdom"
)

// NoIdentity stands for the outside of the grid in a vertex's neighbour pair.
const NoIdentity = -1.0

// Grid is the hex grid access the analysis depends on. Directions are
// numbered 0…5 counter-clockwise from east; hex vertex k lies between
// neighbour k and neighbour k+1. hexgrid.Grid implements Grid.
type Grid interface {
	Len() int
	HasNeighbour(cell, dir int) bool
	Neighbour(cell, dir int) (int, bool)
	VertexCoord(cell, dir int) hexdom.Pair
	CompareVertexCoord(cell, dir int, p hexdom.Pair) bool
	Centre(cell int) hexdom.Pair
	LongRadius() float64
	IsBoundary(cell int) bool
}

// wrap maps a direction onto 0…5.
func wrap(dir int) int {
	return ((dir % 6) + 6) % 6
}

// Neighbours is the ordered pair of identities adjoining a vertex, as seen
// from the owning cell: Second is met first when turning counter-clockwise
// around the owning cell, First right after it.
type Neighbours struct {
	First, Second float64
}

// Vertex is a candidate Dirichlet vertex, reported by one of the cells
// meeting at it. Two candidates denote the same geometric vertex if their
// coordinates match; they are told apart by ID and Neighb.
type Vertex struct {
	Coord      hexdom.Pair
	ID         float64    // identity of the owning cell
	Neighb     Neighbours // the two other identities meeting here
	Cell       int        // owning cell
	OnBoundary bool       // one neighbour identity is NoIdentity
}

func (v Vertex) String() string {
	return fmt.Sprintf("vertex %v f=%g neighb=(%g,%g)", v.Coord, v.ID, v.Neighb.First, v.Neighb.Second)
}

// DetectVertices returns the vertices cell takes part in. A cell can host a
// vertex only if it sees at least 3 distinct identities among itself and
// its neighbours, or at least 2 if it is a boundary cell.
//
// Boundary cells report a vertex at every hex corner where a neighbour of
// different identity borders a missing neighbour. All cells report a
// vertex at corner k if neighbours k and k+1 both differ from the cell and
// from each other. No deduplication takes place. Identities must be finite
// numbers; Analyse rejects fields holding NaN or infinity.
func DetectVertices(g Grid, ids []float64, cell int) []Vertex {
	own := ids[cell]
	distinct := treeset.NewWith(utils.Float64Comparator, own)
	for dir := 0; dir < 6; dir++ {
		if n, ok := g.Neighbour(cell, dir); ok {
			distinct.Add(ids[n])
		}
	}
	boundary := g.IsBoundary(cell)
	if boundary && distinct.Size() < 2 || !boundary && distinct.Size() < 3 {
		return nil
	}
	var vertices []Vertex
	if boundary {
		for dir := 0; dir < 6; dir++ {
			n, ok := g.Neighbour(cell, dir)
			if !ok || ids[n] == own {
				continue
			}
			// the missing neighbour tells which corner lies on the grid's edge
			if !g.HasNeighbour(cell, wrap(dir+1)) {
				vertices = append(vertices, Vertex{
					Coord:      g.VertexCoord(cell, dir),
					ID:         own,
					Neighb:     Neighbours{NoIdentity, ids[n]},
					Cell:       cell,
					OnBoundary: true,
				})
			} else if !g.HasNeighbour(cell, wrap(dir-1)) {
				vertices = append(vertices, Vertex{
					Coord:      g.VertexCoord(cell, wrap(dir-1)),
					ID:         own,
					Neighb:     Neighbours{ids[n], NoIdentity},
					Cell:       cell,
					OnBoundary: true,
				})
			}
		}
	}
	for dir := 0; dir < 6; dir++ {
		n, ok := g.Neighbour(cell, dir)
		if !ok || ids[n] == own {
			continue
		}
		m, ok := g.Neighbour(cell, wrap(dir+1))
		if !ok || ids[m] == own || ids[m] == ids[n] {
			continue
		}
		vertices = append(vertices, Vertex{
			Coord:  g.VertexCoord(cell, dir),
			ID:     own,
			Neighb: Neighbours{ids[m], ids[n]},
			Cell:   cell,
		})
	}
	return vertices
}

// Candidates collects the vertices of all cells, in cell order.
func Candidates(g Grid, ids []float64) []Vertex {
	var pool []Vertex
	for cell := 0; cell < g.Len(); cell++ {
		pool = append(pool, DetectVertices(g, ids, cell)...)
	}
	tracer().Debugf("%d candidate vertices in %d cells", len(pool), g.Len())
	return pool
}
