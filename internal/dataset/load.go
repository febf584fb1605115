// internal/dataset/load.go
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/allocview/internal/matrix"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed datasets.schema.json
var documentSchema []byte

const quotasSuffix = "_quotas"

// LoadFile reads and validates a datasets document from path.
func LoadFile(path string) ([]Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read datasets file %q: %w", path, err)
	}
	datasets, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("datasets file %q: %w", path, err)
	}
	return datasets, nil
}

// Parse decodes a datasets document after checking it against the embedded
// JSON Schema. Variant matrices may sit directly under "distribution" or
// under "distribution.variants"; quota tables may sit under "quotas" or under
// "<axis>_quotas" keys.
func Parse(raw []byte) ([]Dataset, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc struct {
		Datasets []json.RawMessage `json:"datasets"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode datasets: %w", err)
	}

	out := make([]Dataset, 0, len(doc.Datasets))
	for i, entry := range doc.Datasets {
		d, err := decodeDataset(entry)
		if err != nil {
			return nil, fmt.Errorf("dataset %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func validateDocument(raw []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(documentSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
}

type wireQuotaTable struct {
	Rows   []string `json:"rows"`
	Quotas [][2]int `json:"quotas"`
}

func (w wireQuotaTable) table() QuotaTable {
	ranges := make([]Range, len(w.Quotas))
	for i, q := range w.Quotas {
		ranges[i] = Range{Min: q[0], Max: q[1]}
	}
	return QuotaTable{Labels: w.Rows, Ranges: ranges}
}

func decodeDataset(raw json.RawMessage) (Dataset, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Dataset{}, err
	}

	var head struct {
		Name    string                    `json:"name"`
		Comment string                    `json:"comment"`
		Gini    map[string]float64        `json:"gini"`
		Quotas  map[string]wireQuotaTable `json:"quotas"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return Dataset{}, err
	}

	d := Dataset{
		Name:       head.Name,
		Comment:    head.Comment,
		Dispersion: head.Gini,
		Variants:   map[string]matrix.Matrix{},
		Quotas:     map[string]QuotaTable{},
	}
	if d.Dispersion == nil {
		d.Dispersion = map[string]float64{}
	}
	for axis, w := range head.Quotas {
		d.Quotas[axis] = w.table()
	}
	for key, value := range fields {
		axis, ok := strings.CutSuffix(key, quotasSuffix)
		if !ok || axis == "" {
			continue
		}
		var w wireQuotaTable
		if err := json.Unmarshal(value, &w); err != nil {
			return Dataset{}, fmt.Errorf("%s: %w", key, err)
		}
		d.Quotas[axis] = w.table()
	}

	var dist map[string]json.RawMessage
	if err := json.Unmarshal(fields["distribution"], &dist); err != nil {
		return Dataset{}, fmt.Errorf("distribution: %w", err)
	}
	for key, value := range dist {
		var err error
		switch key {
		case "rows":
			err = json.Unmarshal(value, &d.Axes.Rows)
		case "cols":
			err = json.Unmarshal(value, &d.Axes.Cols)
		case "rows_name":
			err = json.Unmarshal(value, &d.Axes.RowsName)
		case "cols_name":
			err = json.Unmarshal(value, &d.Axes.ColsName)
		case "variants":
			var variants map[string]matrix.Matrix
			err = json.Unmarshal(value, &variants)
			for name, m := range variants {
				d.Variants[name] = m
			}
		default:
			var m matrix.Matrix
			err = json.Unmarshal(value, &m)
			d.Variants[key] = m
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("distribution.%s: %w", key, err)
		}
	}
	return d, nil
}
