package dirichlet

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/hexdom/hexgrid"
	"github.com/npillmayer/hexdom/shape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertClosed checks that the edges of d chain its vertices into a ring.
func assertClosed(t *testing.T, g *hexgrid.Grid, d Domain) {
	t.Helper()
	require.Len(t, d.Edges, len(d.Vertices))
	for i, e := range d.Edges {
		require.NotEmpty(t, e)
		next := d.Vertices[(i+1)%len(d.Vertices)]
		assert.True(t, e[len(e)-1].Near(next.Coord, g.Tolerance()),
			"edge %d ends at %v, expected %v", i, e[len(e)-1], next.Coord)
	}
	for _, v := range d.Vertices {
		assert.Equal(t, d.ID, v.ID)
		assert.False(t, v.OnBoundary)
	}
}

func TestEnclosedCore(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 6)
	r, err := Analyse(g, core(g))
	require.NoError(t, err)
	require.Len(t, r.Domains, 1)
	d := r.Domains[0]
	assert.Equal(t, 0.0, d.ID)
	assert.Len(t, d.Vertices, 2)
	assertClosed(t, g, d)
	assert.InDelta(t, 19*hexArea, d.Area(), 1e-9)
	c := d.Centroid()
	assert.InDelta(t, 0, c.X(), 1e-9)
	assert.InDelta(t, 0, c.Y(), 1e-9)
	kinds := make([]FailureKind, len(r.Failures))
	for i, f := range r.Failures {
		kinds[i] = f.Kind
	}
	want := []FailureKind{UnmatchedVertex, BoundaryTermination, UnmatchedVertex}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("failure kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 6)
	r, err := Analyse(g, core(g))
	require.NoError(t, err)
	d, ok := r.Locate(hexdom.P(0.7, 0.3))
	require.True(t, ok)
	assert.Equal(t, 0.0, d.ID)
	_, ok = r.Locate(hexdom.P(4, 0))
	assert.False(t, ok)
}

func TestNoClosableDomains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 6)
	origin, _ := g.IndexOf(hexgrid.Axial{})
	domains, err := FindDomains(g, sectors(t, g, g.VertexCoord(origin, 0)))
	require.NoError(t, err)
	assert.Empty(t, domains)
	r, err := Analyse(g, split(g))
	require.NoError(t, err)
	assert.Empty(t, r.Domains)
	assert.Empty(t, r.Failures)
	assert.Equal(t, 4, r.Candidates)
	assert.Equal(t, 4, r.Skipped)
}

func TestVoronoiDomains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range []struct {
		rings int
		seeds []hexgrid.Axial
		ids   []float64
		sizes []int
	}{
		{8, seeds8, []float64{0}, []int{19}},
		{10, seeds10, []float64{0.3, 0, 0.1}, []int{22, 17, 25}},
	} {
		g := hexagon(t, tc.rings)
		ids := voronoi(t, g, tc.seeds)
		domains, err := FindDomains(g, ids)
		require.NoError(t, err)
		require.Len(t, domains, len(tc.ids), "rings = %d", tc.rings)
		for i, d := range domains {
			assert.Equal(t, tc.ids[i], d.ID)
			assertClosed(t, g, d)
			assert.InDelta(t, float64(tc.sizes[i])*hexArea, d.Area(), 1e-9)
		}
		// exactly the regions not touching the boundary are found
		var enclosed []float64
		for _, reg := range shape.Enclosed(shape.Regions(g, ids)) {
			enclosed = append(enclosed, reg.ID)
		}
		if diff := cmp.Diff(tc.ids, enclosed); diff != "" {
			t.Errorf("rings = %d: domains differ from enclosed regions (-domains +regions):\n%s", tc.rings, diff)
		}
	}
}

func TestAnalysisIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 10)
	ids := voronoi(t, g, seeds10)
	first, err := Analyse(g, ids)
	require.NoError(t, err)
	second, err := Analyse(g, ids)
	require.NoError(t, err)
	if diff := cmp.Diff(first.Domains, second.Domains); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestSpokes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 10)
	domains, err := FindDomains(g, voronoi(t, g, seeds10), WithSpokes())
	require.NoError(t, err)
	require.Len(t, domains, 3)
	for _, d := range domains {
		require.Len(t, d.Spokes, len(d.Vertices))
		for i, s := range d.Spokes {
			assert.NotEmpty(t, s, "spoke %d of domain %g", i, d.ID)
		}
	}
	plain, err := FindDomains(g, voronoi(t, g, seeds10))
	require.NoError(t, err)
	assert.Nil(t, plain[0].Spokes)
}

func TestStepBudget(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 10)
	r, err := Analyse(g, voronoi(t, g, seeds10), WithMaxSteps(3))
	require.NoError(t, err)
	assert.Empty(t, r.Domains)
	var budget int
	for _, f := range r.Failures {
		if f.Kind == StepBudgetExceeded {
			budget++
			assert.True(t, errors.Is(f, ErrStepBudget))
		}
	}
	assert.Equal(t, 20, budget)
}

func TestMalformedInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 10)
	ids := voronoi(t, g, seeds10)
	_, err := Analyse(g, ids[:5])
	assert.True(t, errors.Is(err, ErrFieldLength))
	_, err = FindDomains(g, nil)
	assert.True(t, errors.Is(err, ErrFieldLength))
	origin, _ := g.IndexOf(hexgrid.Axial{})
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ids[origin] = bad
		_, err = Analyse(g, ids)
		assert.True(t, errors.Is(err, ErrIdentity), "identity %g: err = %v", bad, err)
		_, err = AnalyseFrames(context.Background(), g, [][]float64{ids})
		assert.True(t, errors.Is(err, ErrIdentity), "identity %g: err = %v", bad, err)
	}
}

// deafGrid hides the neighbours of one cell from that cell, while the other
// cells still see it.
type deafGrid struct {
	*hexgrid.Grid
	deaf int
}

func (g deafGrid) Neighbour(cell, dir int) (int, bool) {
	if cell == g.deaf {
		return hexgrid.None, false
	}
	return g.Grid.Neighbour(cell, dir)
}

func (g deafGrid) HasNeighbour(cell, dir int) bool {
	_, ok := g.Neighbour(cell, dir)
	return ok
}

func TestInconsistentAdjacency(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 6)
	ids := core(g)
	deaf, ok := g.IndexOf(hexgrid.Axial{Q: 2, R: 0})
	require.True(t, ok)
	r, err := Analyse(deafGrid{Grid: g, deaf: deaf}, ids)
	require.NoError(t, err)
	assert.Empty(t, r.Domains)
	var structural []Failure
	for _, f := range r.Failures {
		if f.Kind == StructuralInconsistency {
			structural = append(structural, f)
		}
	}
	require.Len(t, structural, 1)
	assert.Equal(t, 0.0, structural[0].Start.ID)
	assert.True(t, errors.Is(structural[0], ErrStructural))
	// the same field on a sound grid closes the core
	domains, err := FindDomains(g, ids)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, 0.0, domains[0].ID)
}

func TestBudgetStopsDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 6)
	r, err := Analyse(g, core(g), WithMaxSteps(2))
	require.NoError(t, err)
	assert.Empty(t, r.Domains)
	require.Len(t, r.Failures, 6)
	var fromCore int
	for _, f := range r.Failures {
		assert.Equal(t, StepBudgetExceeded, f.Kind)
		assert.Equal(t, 1, f.Visited)
		if f.Start.ID == 0 {
			fromCore++
		}
	}
	// both vertices of the core fail on their own
	assert.Equal(t, 2, fromCore)
}

func TestHoleIsNotADomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := hexagon(t, 6)
	ids := ring(g)
	r, err := Analyse(g, ids)
	require.NoError(t, err)
	require.Len(t, r.Domains, 2)
	assert.Equal(t, shape.IdentityOf(2, 3), r.Domains[0].ID)
	assert.InDelta(t, 8*hexArea, r.Domains[0].Area(), 1e-9)
	assert.Equal(t, shape.IdentityOf(1, 3), r.Domains[1].ID)
	assert.InDelta(t, 11*hexArea, r.Domains[1].Area(), 1e-9)
	for _, d := range r.Domains {
		assertClosed(t, g, d)
		assert.Greater(t, d.Area(), 0.0)
	}
	require.Len(t, r.Failures, 1)
	f := r.Failures[0]
	assert.Equal(t, HoleBoundary, f.Kind)
	assert.Equal(t, 0.0, f.Start.ID)
	assert.True(t, errors.Is(f, ErrHoleBoundary))
	// the sea of 0 touches the boundary
	for _, reg := range shape.Regions(g, ids) {
		if reg.ID == 0 {
			assert.True(t, reg.TouchesBoundary)
		}
	}
	d, ok := r.Locate(hexdom.Origin)
	require.True(t, ok)
	assert.Equal(t, shape.IdentityOf(1, 3), d.ID)
}

func TestStateNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "Walking", Walking.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "State(9)", State(9).String())
	assert.Equal(t, "boundary-termination", BoundaryTermination.String())
	assert.Equal(t, "hole-boundary", HoleBoundary.String())
}
