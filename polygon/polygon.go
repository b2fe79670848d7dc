// Package polygon handles closed polygons in the plane, such as the outlines
// of Dirichlet domains. Area, centroid and bounding box are computed
// directly; containment and clipping are delegated to polyclip.
package polygon

import (
	"bytes"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'hexdom.polygon'.
func L() tracing.Trace {
	return tracing.Select("hexdom.polygon")
}

// Polygon is a sequence of knots connected by straight lines. Build one with
// NullPolygon() and extend it by Knot(…) calls; Cycle() closes it.
type Polygon struct {
	knots []hexdom.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg *Polygon) Knot(p hexdom.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// FromPoints creates a closed polygon from a ring of points. The first point
// must not be repeated at the end.
func FromPoints(pts []hexdom.Pair) *Polygon {
	pg := NullPolygon()
	pg.knots = append(pg.knots, pts...)
	return pg.Cycle()
}

// Box creates a closed axis-parallel rectangle from two opposite corners.
// Knots run counter-clockwise, starting at the lower left corner.
func Box(a, b hexdom.Pair) *Polygon {
	x0, x1 := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	y0, y1 := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().Knot(hexdom.P(x0, y0)).Knot(hexdom.P(x1, y0)).
		Knot(hexdom.P(x1, y1)).Knot(hexdom.P(x0, y1)).Cycle()
}

// N is the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) hexdom.Pair {
	return pg.knots[i]
}

// IsCycle is true for closed polygons.
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a MetaPost-like notation of a polygon, e.g.
// "(0,0) -- (1,3) -- (3,0) -- cycle".
func AsString(pg *Polygon) string {
	var buf bytes.Buffer
	for i, p := range pg.knots {
		if i > 0 {
			buf.WriteString(" -- ")
		}
		buf.WriteString(p.String())
	}
	if pg.cycle {
		buf.WriteString(" -- cycle")
	}
	return buf.String()
}

// Area is the signed area of the polygon (shoelace formula). It is positive
// for counter-clockwise knot order.
func (pg *Polygon) Area() float64 {
	var a float64
	n := len(pg.knots)
	for i := 0; i < n; i++ {
		p, q := pg.knots[i], pg.knots[(i+1)%n]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// Centroid is the centre of mass of the polygon's area. Degenerate polygons
// yield the mean of their knots.
func (pg *Polygon) Centroid() hexdom.Pair {
	n := len(pg.knots)
	if n == 0 {
		return hexdom.Origin
	}
	a := pg.Area()
	if hexdom.Is0(a) {
		var sum hexdom.Pair
		for _, p := range pg.knots {
			sum += p
		}
		return sum.Scaled(1 / float64(n))
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		p, q := pg.knots[i], pg.knots[(i+1)%n]
		cross := p.X()*q.Y() - q.X()*p.Y()
		cx += (p.X() + q.X()) * cross
		cy += (p.Y() + q.Y()) * cross
	}
	return hexdom.P(cx/(6*a), cy/(6*a))
}

// BoundingBox returns the lower left and upper right corners of the
// smallest axis-parallel rectangle enclosing the polygon.
func (pg *Polygon) BoundingBox() (hexdom.Pair, hexdom.Pair) {
	r := pg.contour().BoundingBox()
	return hexdom.P(r.Min.X, r.Min.Y), hexdom.P(r.Max.X, r.Max.Y)
}

// Contains is true if p lies inside the polygon.
func (pg *Polygon) Contains(p hexdom.Pair) bool {
	if len(pg.knots) < 3 {
		return false
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pg.knots))
	for _, p := range pg.knots {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

func (pg *Polygon) clip() polyclip.Polygon {
	return polyclip.Polygon{pg.contour()}
}

// Intersection clips a against b. The result may consist of several
// polygons, or none if a and b are disjoint.
func Intersection(a, b *Polygon) []*Polygon {
	return fromClip(a.clip().Construct(polyclip.INTERSECTION, b.clip()))
}

// Union merges a and b.
func Union(a, b *Polygon) []*Polygon {
	return fromClip(a.clip().Construct(polyclip.UNION, b.clip()))
}

// OverlapArea is the area shared by a and b.
func OverlapArea(a, b *Polygon) float64 {
	var area float64
	for _, pg := range Intersection(a, b) {
		area += math.Abs(pg.Area())
	}
	L().Debugf("overlap of %d-gon and %d-gon = %g", a.N(), b.N(), area)
	return area
}

func fromClip(clipped polyclip.Polygon) []*Polygon {
	pgs := make([]*Polygon, 0, len(clipped))
	for _, c := range clipped {
		pg := NullPolygon()
		for _, pt := range c {
			pg.Knot(hexdom.P(pt.X, pt.Y))
		}
		pgs = append(pgs, pg.Cycle())
	}
	return pgs
}

// String is a short debug representation.
func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon{n=%d, cycle=%v}", pg.N(), pg.cycle)
}
