// internal/matrix/matrix.go
// Package matrix holds the numeric core behind every rendered table: cell
// classification, margin sums, and the representation counts shown in the
// stats panel.
package matrix

// Matrix is a rectangular grid of non-negative allocation counts. The outer
// slice holds rows; every inner slice is expected to share one width.
type Matrix [][]int

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the width of the first row, or zero for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the value at (i, j), treating cells outside a short row as zero.
func (m Matrix) At(i, j int) int {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return 0
	}
	return m[i][j]
}

// Cells returns the row-major flattening of m.
func (m Matrix) Cells() []int {
	out := make([]int, 0, len(m)*m.Cols())
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}

// Rectangular reports whether every row has the same width.
func (m Matrix) Rectangular() bool {
	width := m.Cols()
	for _, row := range m {
		if len(row) != width {
			return false
		}
	}
	return true
}

// Summary holds the margins of a matrix.
type Summary struct {
	RowSums []int `json:"rowSums"`
	ColSums []int `json:"colSums"`
	Total   int   `json:"total"`
}

// Summarize computes row sums, column sums and the grand total. Column sums
// cover the first row's width; cells past that width in longer rows are
// ignored and missing cells in shorter rows count as zero, so the three
// totals always agree.
func Summarize(m Matrix) Summary {
	cols := m.Cols()
	s := Summary{
		RowSums: make([]int, m.Rows()),
		ColSums: make([]int, cols),
	}
	for i := range m {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			s.RowSums[i] += v
			s.ColSums[j] += v
		}
		s.Total += s.RowSums[i]
	}
	return s
}

// Stats counts under-represented cells.
type Stats struct {
	Empty int `json:"empty"`
	Low   int `json:"low"`
}

// DispersionStats counts cells equal to zero and cells holding one or two.
func DispersionStats(m Matrix) Stats {
	var st Stats
	for _, v := range m.Cells() {
		switch {
		case v == 0:
			st.Empty++
		case v >= 1 && v <= 2:
			st.Low++
		}
	}
	return st
}
