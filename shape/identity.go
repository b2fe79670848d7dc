package shape

import "math"

// DominantIdentity reduces a set of fields to one identity field. Each cell
// is labelled with i/len(fields), where field i holds the cell's largest
// value. Ties go to the lowest field index. The labels are compared for
// exact equality downstream; they are produced by the same division for
// every cell, so equal labels are bit-identical.
func DominantIdentity(fields [][]float64) ([]float64, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	n := len(fields[0])
	if err := checkFields(n, fields); err != nil {
		return nil, err
	}
	N := float64(len(fields))
	ids := make([]float64, n)
	for h := 0; h < n; h++ {
		maxf := math.Inf(-1)
		for i, f := range fields {
			if f[h] > maxf {
				maxf = f[h]
				ids[h] = float64(i) / N
			}
		}
	}
	return ids, nil
}

// IdentityOf is the identity label DominantIdentity assigns to field i of n.
func IdentityOf(i, n int) float64 {
	return float64(i) / float64(n)
}
