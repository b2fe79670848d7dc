package dirichlet

import (
	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/hexdom/polygon"
)

// Outline returns the ring of lattice points along the domain's border,
// starting at its first vertex. The first point is not repeated at the end.
// Domains are traced counter-clockwise.
func (d Domain) Outline() []hexdom.Pair {
	if len(d.Vertices) == 0 {
		return nil
	}
	ring := []hexdom.Pair{d.Vertices[0].Coord}
	for _, e := range d.Edges {
		ring = append(ring, e...)
	}
	return ring[:len(ring)-1]
}

// Polygon returns the outline as a closed polygon.
func (d Domain) Polygon() *polygon.Polygon {
	return polygon.FromPoints(d.Outline())
}

// Area is the area enclosed by the outline.
func (d Domain) Area() float64 {
	return d.Polygon().Area()
}

// Centroid is the centre of mass of the area enclosed by the outline.
func (d Domain) Centroid() hexdom.Pair {
	return d.Polygon().Centroid()
}

// Locate returns the domain whose outline contains p.
func (r *Report) Locate(p hexdom.Pair) (Domain, bool) {
	for _, d := range r.Domains {
		if d.Polygon().Contains(p) {
			return d, true
		}
	}
	return Domain{}, false
}
