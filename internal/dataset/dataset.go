// internal/dataset/dataset.go
// Package dataset defines the comparison scenarios rendered by allocview:
// axis labels, one allocation matrix per algorithm variant, supplied
// dispersion scores and the per-axis quota tables.
package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mwiater/allocview/internal/matrix"
)

var (
	// ErrShapeMismatch reports a matrix whose dimensions disagree with its axis labels.
	ErrShapeMismatch = errors.New("matrix shape does not match axis labels")
	// ErrUnknownVariant reports a lookup of an algorithm the dataset does not carry.
	ErrUnknownVariant = errors.New("unknown algorithm variant")
	// ErrNegativeValue reports a matrix cell below zero.
	ErrNegativeValue = errors.New("negative cell value")
	// ErrInvalidQuota reports a quota table with negative or inverted ranges.
	ErrInvalidQuota = errors.New("invalid quota table")
	// ErrSchema reports a datasets document that fails schema validation.
	ErrSchema = errors.New("datasets document failed schema validation")
)

// Axes names the two dimensions of every matrix in a dataset.
type Axes struct {
	Rows     []string `json:"rows"`
	Cols     []string `json:"cols"`
	RowsName string   `json:"rows_name"`
	ColsName string   `json:"cols_name"`
}

// Range is an inclusive [Min, Max] quota.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// String renders the range as "min-max".
func (r Range) String() string {
	return strconv.Itoa(r.Min) + "-" + strconv.Itoa(r.Max)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// QuotaTable pairs category labels with their allowed margin range.
type QuotaTable struct {
	Labels []string `json:"rows"`
	Ranges []Range  `json:"quotas"`
}

// Lookup returns the range of the first label equal to label.
func (q QuotaTable) Lookup(label string) (Range, bool) {
	for i, l := range q.Labels {
		if l != label {
			continue
		}
		if i >= len(q.Ranges) {
			return Range{}, false
		}
		return q.Ranges[i], true
	}
	return Range{}, false
}

// Dataset is one comparison scenario.
type Dataset struct {
	Name       string                   `json:"name"`
	Comment    string                   `json:"comment,omitempty"`
	Axes       Axes                     `json:"axes"`
	Variants   map[string]matrix.Matrix `json:"variants"`
	Dispersion map[string]float64       `json:"dispersion"`
	Quotas     map[string]QuotaTable    `json:"quotas,omitempty"`
}

// HasComment reports whether the dataset carries an annotation.
func (d Dataset) HasComment() bool { return d.Comment != "" }

// Variant returns the matrix computed by the named algorithm.
func (d Dataset) Variant(key string) (matrix.Matrix, error) {
	m, ok := d.Variants[key]
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w: %s", d.Name, ErrUnknownVariant, key)
	}
	return m, nil
}

// DispersionScore returns the supplied dispersion score of the named
// algorithm, if the dataset carries one.
func (d Dataset) DispersionScore(key string) (float64, bool) {
	v, ok := d.Dispersion[key]
	return v, ok
}

// LookupQuota returns the quota of label on the named axis.
func (d Dataset) LookupQuota(axisName, label string) (Range, bool) {
	table, ok := d.Quotas[axisName]
	if !ok {
		return Range{}, false
	}
	return table.Lookup(label)
}

// RowQuota returns the quota of a row label.
func (d Dataset) RowQuota(label string) (Range, bool) {
	return d.LookupQuota(d.Axes.RowsName, label)
}

// ColQuota returns the quota of a column label.
func (d Dataset) ColQuota(label string) (Range, bool) {
	return d.LookupQuota(d.Axes.ColsName, label)
}

// WithQuotas returns a copy of d whose quota mapping is extended by extra.
// Tables in extra replace tables of the same axis.
func (d Dataset) WithQuotas(extra map[string]QuotaTable) Dataset {
	if len(extra) == 0 {
		return d
	}
	merged := make(map[string]QuotaTable, len(d.Quotas)+len(extra))
	for axis, table := range d.Quotas {
		merged[axis] = table
	}
	for axis, table := range extra {
		merged[axis] = table
	}
	d.Quotas = merged
	return d
}
