// internal/dataset/validate.go
package dataset

import (
	"errors"
	"fmt"
	"sort"
)

// Validate checks that every variant matrix matches the axis labels and holds
// no negative values, and that every quota table is well formed. All
// failures are joined into one error.
func Validate(d Dataset) error {
	var errs []error
	rows, cols := len(d.Axes.Rows), len(d.Axes.Cols)

	for _, key := range sortedKeys(d.Variants) {
		m := d.Variants[key]
		if len(m) != rows {
			errs = append(errs, fmt.Errorf("dataset %q variant %q: %w: %d rows, %d labels", d.Name, key, ErrShapeMismatch, len(m), rows))
			continue
		}
		for i, row := range m {
			if len(row) != cols {
				errs = append(errs, fmt.Errorf("dataset %q variant %q row %d: %w: %d cells, %d labels", d.Name, key, i, ErrShapeMismatch, len(row), cols))
				continue
			}
			for j, v := range row {
				if v < 0 {
					errs = append(errs, fmt.Errorf("dataset %q variant %q cell (%d,%d): %w: %d", d.Name, key, i, j, ErrNegativeValue, v))
				}
			}
		}
	}

	for _, axis := range sortedKeys(d.Quotas) {
		table := d.Quotas[axis]
		if len(table.Labels) != len(table.Ranges) {
			errs = append(errs, fmt.Errorf("dataset %q axis %q: %w: %d labels, %d ranges", d.Name, axis, ErrInvalidQuota, len(table.Labels), len(table.Ranges)))
			continue
		}
		for i, r := range table.Ranges {
			if r.Min < 0 || r.Max < 0 {
				errs = append(errs, fmt.Errorf("dataset %q axis %q label %q: %w: negative bound", d.Name, axis, table.Labels[i], ErrInvalidQuota))
			}
			if r.Min > r.Max {
				errs = append(errs, fmt.Errorf("dataset %q axis %q label %q: %w: min %d exceeds max %d", d.Name, axis, table.Labels[i], ErrInvalidQuota, r.Min, r.Max))
			}
		}
	}

	return errors.Join(errs...)
}

// ValidateAll validates a catalog and requires every dataset to carry each of
// the given variants.
func ValidateAll(datasets []Dataset, variants []string) error {
	var errs []error
	for _, d := range datasets {
		if err := Validate(d); err != nil {
			errs = append(errs, err)
		}
		for _, key := range variants {
			if _, err := d.Variant(key); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
