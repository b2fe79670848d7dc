package hexgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hexdom.grid'
func tracer() tracing.Trace {
	return tracing.Select("hexdom.grid")
}

var (
	// ErrNoCells indicates a grid specification which results in zero cells.
	ErrNoCells = errors.New("hexgrid: grid must contain at least one cell")
	// ErrSpacing indicates a non-positive or non-finite hex spacing.
	ErrSpacing = errors.New("hexgrid: hex spacing must be a positive number")
)

// None is the neighbour index of a missing neighbour.
const None = -1

// Axial is the axial (q, r) lattice coordinate of a hex.
type Axial struct {
	Q, R int
}

// Add returns a + b.
func (a Axial) Add(b Axial) Axial {
	return Axial{a.Q + b.Q, a.R + b.R}
}

// Directions holds the axial offsets of the 6 neighbour directions.
var Directions = [6]Axial{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1}}

var directionNames = [6]string{"E", "NE", "NW", "W", "SW", "SE"}
var vertexNames = [6]string{"NE", "N", "NW", "SW", "S", "SE"}

// DirectionName returns a short name for neighbour direction dir.
func DirectionName(dir int) string {
	return directionNames[Wrap(dir)]
}

// VertexName returns a short name for hex vertex dir.
func VertexName(dir int) string {
	return vertexNames[Wrap(dir)]
}

// Wrap maps any integer direction onto 0…5.
func Wrap(dir int) int {
	dir %= 6
	if dir < 0 {
		dir += 6
	}
	return dir
}

// Distance is the hex distance between two axial coordinates.
func Distance(a, b Axial) int {
	dq, dr := a.Q-b.Q, a.R-b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Dist2 is the squared euclidean distance between the centres of two hexes,
// in units of the squared hex spacing. It is exact, so comparisons between
// distances never depend on rounding.
func Dist2(a, b Axial) int {
	dq, dr := a.Q-b.Q, a.R-b.R
	return dq*dq + dq*dr + dr*dr
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cell is a single hex of a grid.
type Cell struct {
	Index      int
	Axial      Axial
	Centre     hexdom.Pair
	Boundary   bool   // at least one neighbour is missing
	Neighbours [6]int // arena index per direction, or None
}

// Grid is an immutable arena of hex cells.
type Grid struct {
	d       float64
	lr      float64
	offsets [6]hexdom.Pair // centre-to-vertex vectors
	cells   []Cell
	index   map[Axial]int
}

func newGrid(d float64, coords []Axial) (*Grid, error) {
	if !(d > 0) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: %g", ErrSpacing, d)
	}
	if len(coords) == 0 {
		return nil, ErrNoCells
	}
	g := &Grid{
		d:     d,
		lr:    d / math.Sqrt(3),
		cells: make([]Cell, len(coords)),
		index: make(map[Axial]int, len(coords)),
	}
	// vertex 0 lies 30° off east, each further vertex 60° on
	at, step := hexdom.Rotation(30*hexdom.Deg2Rad), hexdom.Rotation(60*hexdom.Deg2Rad)
	for k := 0; k < 6; k++ {
		g.offsets[k] = at.Transform(hexdom.P(g.lr, 0)).Zap()
		at = at.Combine(step)
	}
	tracer().Debugf("vertex transform after a full turn: %v", at)
	for i, a := range coords {
		g.index[a] = i
	}
	v := d * math.Sqrt(3) / 2
	for i, a := range coords {
		c := Cell{
			Index:  i,
			Axial:  a,
			Centre: hexdom.P(d*(float64(a.Q)+float64(a.R)/2), v*float64(a.R)),
		}
		for dir, off := range Directions {
			if j, ok := g.index[a.Add(off)]; ok {
				c.Neighbours[dir] = j
			} else {
				c.Neighbours[dir] = None
				c.Boundary = true
			}
		}
		g.cells[i] = c
	}
	tracer().Debugf("grid with %d cells, d = %g", len(g.cells), d)
	return g, nil
}

// NewHexagon creates a hexagon-shaped grid of all hexes within hex distance
// rings of the origin hex, which is centred at (0,0).
func NewHexagon(rings int, d float64) (*Grid, error) {
	if rings < 0 {
		return nil, fmt.Errorf("%w: rings = %d", ErrNoCells, rings)
	}
	coords := make([]Axial, 0, 1+3*rings*(rings+1))
	for q := -rings; q <= rings; q++ {
		for r := max(-rings, -q-rings); r <= min(rings, -q+rings); r++ {
			coords = append(coords, Axial{q, r})
		}
	}
	return newGrid(d, coords)
}

// NewParallelogram creates a grid of width × height hexes, rows running
// east and successive rows shifted north-east.
func NewParallelogram(width, height int, d float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d × %d", ErrNoCells, width, height)
	}
	coords := make([]Axial, 0, width*height)
	for r := 0; r < height; r++ {
		for q := 0; q < width; q++ {
			coords = append(coords, Axial{q, r})
		}
	}
	return newGrid(d, coords)
}

// Prune returns a new grid holding only the cells for which keep is true.
// Cells are re-indexed and neighbour relations recomputed, so cells next to
// a removed cell become boundary cells.
func (g *Grid) Prune(keep func(Cell) bool) (*Grid, error) {
	coords := make([]Axial, 0, len(g.cells))
	for _, c := range g.cells {
		if keep(c) {
			coords = append(coords, c.Axial)
		}
	}
	return newGrid(g.d, coords)
}

// Len is the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// D is the centre-to-centre distance of adjacent hexes.
func (g *Grid) D() float64 {
	return g.d
}

// LongRadius is the distance from a hex centre to any of its vertices.
func (g *Grid) LongRadius() float64 {
	return g.lr
}

// Tolerance is the coordinate tolerance used for vertex comparisons.
func (g *Grid) Tolerance() float64 {
	return g.lr * hexdom.Epsilon * 10
}

// Cell returns a copy of cell i.
func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}

// IndexOf returns the arena index of the hex at axial coordinate a.
func (g *Grid) IndexOf(a Axial) (int, bool) {
	i, ok := g.index[a]
	return i, ok
}

// HasNeighbour is true if cell has a neighbour in direction dir.
func (g *Grid) HasNeighbour(cell, dir int) bool {
	return g.cells[cell].Neighbours[Wrap(dir)] != None
}

// Neighbour returns the neighbour of cell in direction dir, if any.
func (g *Grid) Neighbour(cell, dir int) (int, bool) {
	n := g.cells[cell].Neighbours[Wrap(dir)]
	return n, n != None
}

// Centre is the centre coordinate of cell.
func (g *Grid) Centre(cell int) hexdom.Pair {
	return g.cells[cell].Centre
}

// VertexCoord is the coordinate of hex vertex dir of cell.
func (g *Grid) VertexCoord(cell, dir int) hexdom.Pair {
	return g.cells[cell].Centre + g.offsets[Wrap(dir)]
}

// CompareVertexCoord is true if hex vertex dir of cell lies at p.
func (g *Grid) CompareVertexCoord(cell, dir int, p hexdom.Pair) bool {
	return g.VertexCoord(cell, dir).Near(p, g.Tolerance())
}

// IsBoundary is true if cell lies on the outer edge of the grid.
func (g *Grid) IsBoundary(cell int) bool {
	return g.cells[cell].Boundary
}

// Nearest returns the cell whose centre is closest to p.
func (g *Grid) Nearest(p hexdom.Pair) int {
	best, bestd := 0, math.Inf(1)
	for i := range g.cells {
		if dist := g.cells[i].Centre.Dist(p); dist < bestd {
			best, bestd = i, dist
		}
	}
	return best
}
