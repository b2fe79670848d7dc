package dirichlet

import (
	"math"
	"testing"

	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/hexdom/hexgrid"
	"github.com/npillmayer/hexdom/shape"
	"github.com/stretchr/testify/require"
)

// hexArea is the area of a hex with spacing 1.
var hexArea = math.Sqrt(3) / 2

func hexagon(t *testing.T, rings int) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.NewHexagon(rings, 1)
	require.NoError(t, err)
	return g
}

// core labels the hexes within distance 2 of the origin 0, and splits the
// rest into an eastern (1/3) and a western (2/3) half.
func core(g *hexgrid.Grid) []float64 {
	ids := make([]float64, g.Len())
	for i := range ids {
		switch {
		case hexgrid.Distance(g.Cell(i).Axial, hexgrid.Axial{}) <= 2:
			ids[i] = 0
		case g.Centre(i).X() >= 0:
			ids[i] = 1.0 / 3
		default:
			ids[i] = 2.0 / 3
		}
	}
	return ids
}

// ring is core turned inside out: the hexes within distance 2 of the origin
// form an eastern (1/3) and a western (2/3) half, surrounded by 0.
func ring(g *hexgrid.Grid) []float64 {
	ids := make([]float64, g.Len())
	for i := range ids {
		if hexgrid.Distance(g.Cell(i).Axial, hexgrid.Axial{}) > 2 {
			continue
		}
		if g.Centre(i).X() >= 0 {
			ids[i] = 1.0 / 3
		} else {
			ids[i] = 2.0 / 3
		}
	}
	return ids
}

// split divides the grid into two halves along a vertical line.
func split(g *hexgrid.Grid) []float64 {
	ids := make([]float64, g.Len())
	for i := range ids {
		if g.Centre(i).X() >= 0.3 {
			ids[i] = 0.5
		}
	}
	return ids
}

// sectors divides the grid into three 120° sectors meeting at p.
func sectors(t *testing.T, g *hexgrid.Grid, p hexdom.Pair) []float64 {
	t.Helper()
	fields := make([][]float64, 3)
	for k, phi := range []float64{-30, 90, 210} {
		fields[k] = make([]float64, g.Len())
		for i := range fields[k] {
			v := g.Centre(i) - p
			angle := math.Atan2(v.Y(), v.X())
			fields[k][i] = math.Cos(angle - phi*hexdom.Deg2Rad)
		}
	}
	ids, err := shape.DominantIdentity(fields)
	require.NoError(t, err)
	return ids
}

// voronoi labels each hex with the nearest seed, seeds given in axial
// coordinates. Distances are exact, so equidistant hexes always go to the
// seed listed first.
func voronoi(t *testing.T, g *hexgrid.Grid, seeds []hexgrid.Axial) []float64 {
	t.Helper()
	fields := make([][]float64, len(seeds))
	for k, s := range seeds {
		fields[k] = make([]float64, g.Len())
		for i := range fields[k] {
			fields[k][i] = -float64(hexgrid.Dist2(g.Cell(i).Axial, s))
		}
	}
	ids, err := shape.DominantIdentity(fields)
	require.NoError(t, err)
	return ids
}

// axials builds a list of axial coordinates from q,r pairs.
func axials(qr ...int) []hexgrid.Axial {
	a := make([]hexgrid.Axial, 0, len(qr)/2)
	for i := 0; i+1 < len(qr); i += 2 {
		a = append(a, hexgrid.Axial{Q: qr[i], R: qr[i+1]})
	}
	return a
}

var (
	seeds8  = axials(0, 0, 4, -2, -3, 4, 2, 3, -4, -1, 1, -5, -1, -3, 5, 1)
	seeds10 = axials(0, 0, 3, 0, -3, 3, 0, -3, 6, -6, -6, 2, 2, 4, -2, -4, 5, 3, -5, -2)
)
