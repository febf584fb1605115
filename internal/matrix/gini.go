// internal/matrix/gini.go
package matrix

import "math"

// Gini returns the Gini coefficient of the matrix cells, the mean absolute
// difference between every pair of cells divided by twice the mean. A
// perfectly even matrix scores 0. Empty or all-zero matrices score 0.
func Gini(m Matrix) float64 {
	cells := m.Cells()
	n := len(cells)
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range cells {
		sum += float64(v)
	}
	if sum == 0 {
		return 0
	}
	var diff float64
	for _, a := range cells {
		for _, b := range cells {
			diff += math.Abs(float64(a - b))
		}
	}
	mean := sum / float64(n)
	return diff / (2 * float64(n) * float64(n) * mean)
}
