// internal/dataset/quotas_csv.go
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var categoryColumns = []string{"category", "name", "min", "max"}

// LoadQuotaFile reads a categories CSV from path. See LoadQuotaCSV.
func LoadQuotaFile(path string) (map[string]QuotaTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quotas file %q: %w", path, err)
	}
	defer file.Close()

	tables, err := LoadQuotaCSV(file)
	if err != nil {
		return nil, fmt.Errorf("quotas file %q: %w", path, err)
	}
	return tables, nil
}

// LoadQuotaCSV reads a categories file with the header
// "category,name,min,max" (columns may appear in any order) into quota
// tables keyed by category. Rows keep file order within each category and
// names are trimmed. A repeated name replaces the earlier range in place.
func LoadQuotaCSV(r io.Reader) (map[string]QuotaTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty categories file", ErrInvalidQuota)
		}
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range categoryColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidQuota, col)
		}
	}

	tables := map[string]QuotaTable{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, err
		}

		category := strings.TrimSpace(record[index["category"]])
		name := strings.TrimSpace(record[index["name"]])
		minValue, err := strconv.Atoi(strings.TrimSpace(record[index["min"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: min must be an integer", ErrInvalidQuota, line)
		}
		maxValue, err := strconv.Atoi(strings.TrimSpace(record[index["max"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: max must be an integer", ErrInvalidQuota, line)
		}
		if minValue < 0 || maxValue < 0 {
			return nil, fmt.Errorf("%w: line %d: bounds must be non-negative", ErrInvalidQuota, line)
		}
		if minValue > maxValue {
			return nil, fmt.Errorf("%w: line %d: min %d exceeds max %d", ErrInvalidQuota, line, minValue, maxValue)
		}

		table := tables[category]
		rng := Range{Min: minValue, Max: maxValue}
		if pos := indexOf(table.Labels, name); pos >= 0 {
			table.Ranges[pos] = rng
		} else {
			table.Labels = append(table.Labels, name)
			table.Ranges = append(table.Ranges, rng)
		}
		tables[category] = table
	}
	return tables, nil
}

// ApplyQuotas merges tables into every dataset of the catalog.
func ApplyQuotas(datasets []Dataset, tables map[string]QuotaTable) []Dataset {
	out := make([]Dataset, len(datasets))
	for i, d := range datasets {
		out[i] = d.WithQuotas(tables)
	}
	return out
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
