package hexdom

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(1e-3) != 1e-3 {
		t.Errorf("Expected Zap to keep 1e-3")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
}

func TestNear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(0.5, math.Sqrt(3)/6)
	q := P(1.5-1, 0.5/math.Sqrt(3))
	assert.True(t, p.Near(q, 1e-12))
	assert.False(t, p.Near(q.Shifted(P(0, 1e-3)), 1e-6))
	assert.True(t, p.Equal(q))
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// rotate by 90 degrees, then shift by (1,0)
	m := Rotation(90 * Deg2Rad).Combine(Translation(P(1, 0)))
	p := m.Transform(P(1, 0))
	assert.True(t, p.Equal(P(1, 1)), "expected (1,1), got %v", p)
	assert.True(t, Identity().Transform(P(2, 3)).Equal(P(2, 3)))
}

func TestHexVertexOffsets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lr := 1 / math.Sqrt(3)
	v0 := P(lr, 0).Rotated(30 * Deg2Rad)
	assert.InDelta(t, 0.5, v0.X(), 1e-9)
	assert.InDelta(t, lr/2, v0.Y(), 1e-9)
	v1 := P(lr, 0).Rotated(90 * Deg2Rad)
	assert.InDelta(t, 0.0, v1.X(), 1e-9)
	assert.InDelta(t, lr, v1.Y(), 1e-9)
}
