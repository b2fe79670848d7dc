package shape

// Region is a maximal connected set of cells sharing one identity.
type Region struct {
	ID              float64
	Cells           []int // in BFS order
	TouchesBoundary bool  // at least one cell is a grid boundary cell
}

// Regions partitions the grid into connected regions of equal identity.
// Regions are returned in order of their lowest cell index.
//
// Time: O(n), n = number of cells.
func Regions(g Topology, ids []float64) []Region {
	seen := make([]bool, g.Len())
	var regions []Region
	for start := 0; start < g.Len(); start++ {
		if seen[start] {
			continue
		}
		id := ids[start]
		r := Region{ID: id}
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			r.Cells = append(r.Cells, u)
			if g.IsBoundary(u) {
				r.TouchesBoundary = true
			}
			for dir := 0; dir < 6; dir++ {
				v, ok := g.Neighbour(u, dir)
				if !ok || seen[v] || ids[v] != id {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, r)
	}
	tracer().Debugf("%d regions", len(regions))
	return regions
}

// Enclosed returns the regions which do not touch the grid boundary.
func Enclosed(regions []Region) []Region {
	var inner []Region
	for _, r := range regions {
		if !r.TouchesBoundary {
			inner = append(inner, r)
		}
	}
	return inner
}
