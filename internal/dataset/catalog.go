// internal/dataset/catalog.go
package dataset

import "fmt"

// Sources names where a catalog comes from. Empty paths fall back to the
// builtin catalog and to the quotas the datasets already carry.
type Sources struct {
	DatasetsFile string
	QuotasFile   string
}

// Load assembles the catalog described by src, then validates it against the
// variants every renderer will ask for.
func Load(src Sources, variants []string) ([]Dataset, error) {
	var (
		datasets []Dataset
		err      error
	)
	if src.DatasetsFile == "" {
		datasets = Builtin()
	} else {
		datasets, err = LoadFile(src.DatasetsFile)
		if err != nil {
			return nil, err
		}
	}

	if src.QuotasFile != "" {
		tables, err := LoadQuotaFile(src.QuotasFile)
		if err != nil {
			return nil, err
		}
		datasets = ApplyQuotas(datasets, tables)
	}

	if err := ValidateAll(datasets, variants); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return datasets, nil
}

// Select returns the dataset at index, reporting out-of-range indexes.
func Select(datasets []Dataset, index int) (Dataset, error) {
	if index < 0 || index >= len(datasets) {
		return Dataset{}, fmt.Errorf("dataset index %d out of range [0,%d)", index, len(datasets))
	}
	return datasets[index], nil
}
