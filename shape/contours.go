// Package shape analyses scalar fields over hexagonal grids: it extracts
// threshold contours, reduces several fields to a single identity field and
// groups cells into connected regions of equal identity.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hexdom.shape'
func tracer() tracing.Trace {
	return tracing.Select("hexdom.shape")
}

var (
	// ErrNoFields indicates an empty list of fields.
	ErrNoFields = errors.New("shape: at least one field required")
	// ErrFieldLength indicates a field whose length differs from the cell count.
	ErrFieldLength = errors.New("shape: field length does not match grid")
	// ErrFlatField indicates fields without a value range to normalise by.
	ErrFlatField = errors.New("shape: fields have no value range over interior cells")
	// ErrFieldValue indicates a field value which is NaN or infinite.
	ErrFieldValue = errors.New("shape: field value is not a finite number")
)

// Topology is the part of a hex grid the classifier depends on.
type Topology interface {
	Len() int
	IsBoundary(cell int) bool
	Neighbour(cell, dir int) (int, bool)
}

// CellSet is an ordered set of cell indices.
type CellSet struct {
	set *treeset.Set
}

func newCellSet() CellSet {
	return CellSet{set: treeset.NewWithIntComparator()}
}

// Contains is true if cell is a member of the set.
func (cs CellSet) Contains(cell int) bool {
	return cs.set.Contains(cell)
}

// Len is the number of cells in the set.
func (cs CellSet) Len() int {
	return cs.set.Size()
}

// Cells returns the members in ascending order.
func (cs CellSet) Cells() []int {
	cells := make([]int, 0, cs.set.Size())
	for _, v := range cs.set.Values() {
		cells = append(cells, v.(int))
	}
	return cells
}

// ExtractContours finds, for every field, the cells where the field crosses
// threshold. Values are first rescaled to [0,1] by the minimum and maximum
// over all fields, taken from non-boundary cells only. A cell is part of
// a field's contour if its rescaled value exceeds threshold and it either
// lies on the grid boundary or has a neighbour below threshold. Cells deep
// inside a region above threshold are not reported.
func ExtractContours(g Topology, fields [][]float64, threshold float64) ([]CellSet, error) {
	if err := checkFields(g.Len(), fields); err != nil {
		return nil, err
	}
	minf, maxf := math.Inf(1), math.Inf(-1)
	for h := 0; h < g.Len(); h++ {
		if g.IsBoundary(h) {
			continue
		}
		for _, f := range fields {
			minf = math.Min(minf, f[h])
			maxf = math.Max(maxf, f[h])
		}
	}
	if !(maxf > minf) {
		return nil, fmt.Errorf("%w: min = %g, max = %g", ErrFlatField, minf, maxf)
	}
	scale := 1 / (maxf - minf)
	contours := make([]CellSet, len(fields))
	for i, f := range fields {
		norm := func(h int) float64 { return (f[h] - minf) * scale }
		contours[i] = newCellSet()
		for h := 0; h < g.Len(); h++ {
			if norm(h) <= threshold {
				continue
			}
			if g.IsBoundary(h) {
				contours[i].set.Add(h)
				continue
			}
			for dir := 0; dir < 6; dir++ {
				if n, ok := g.Neighbour(h, dir); ok && norm(n) < threshold {
					contours[i].set.Add(h)
					break
				}
			}
		}
		tracer().Debugf("contour %d: %d cells above %g", i, contours[i].Len(), threshold)
	}
	return contours, nil
}

func checkFields(n int, fields [][]float64) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	for i, f := range fields {
		if len(f) != n {
			return fmt.Errorf("%w: field %d has %d values, want %d", ErrFieldLength, i, len(f), n)
		}
		for h, v := range f {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: field %d, cell %d = %g", ErrFieldValue, i, h, v)
			}
		}
	}
	return nil
}
