// internal/report/table.go
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/matrix"
	"github.com/mwiater/allocview/internal/util"
)

// TableView is the renderable form of one variant matrix with its margins.
type TableView struct {
	RowsLabel string
	ColsLabel string
	Cols      []string
	Rows      []RowView
	Footer    []MarginView
	Total     int
}

// RowView is one body row.
type RowView struct {
	Label  string
	Cells  []CellView
	Margin MarginView
}

// CellView is one colored data cell.
type CellView struct {
	Value  int
	Bucket matrix.Bucket
}

// Background returns the cell's background color.
func (c CellView) Background() template.CSS { return template.CSS(c.Bucket.Color()) }

// Foreground returns the cell's text color.
func (c CellView) Foreground() template.CSS { return template.CSS(c.Bucket.TextColor()) }

// MarginView is a row or column total with its optional quota.
type MarginView struct {
	Sum      int
	Quota    dataset.Range
	HasQuota bool
}

// OutOfRange reports a margin whose quota excludes its sum.
func (m MarginView) OutOfRange() bool {
	return m.HasQuota && !m.Quota.Contains(m.Sum)
}

// QuotaText renders the quota as "min-max", or "" without a quota.
func (m MarginView) QuotaText() string {
	if !m.HasQuota {
		return ""
	}
	return m.Quota.String()
}

// BuildTable resolves the variant matrix of ds and derives every cell class
// and margin of its table.
func BuildTable(ds dataset.Dataset, variant string) (TableView, error) {
	m, err := ds.Variant(variant)
	if err != nil {
		return TableView{}, err
	}
	if err := checkShape(ds, variant, m); err != nil {
		return TableView{}, err
	}

	summary := matrix.Summarize(m)
	view := TableView{
		RowsLabel: util.UpperFirst(ds.Axes.RowsName),
		ColsLabel: util.UpperFirst(ds.Axes.ColsName),
		Cols:      ds.Axes.Cols,
		Rows:      make([]RowView, len(ds.Axes.Rows)),
		Footer:    make([]MarginView, len(ds.Axes.Cols)),
		Total:     summary.Total,
	}
	for i, label := range ds.Axes.Rows {
		row := RowView{Label: label, Cells: make([]CellView, len(ds.Axes.Cols))}
		for j := range ds.Axes.Cols {
			v := m[i][j]
			row.Cells[j] = CellView{Value: v, Bucket: matrix.Classify(v)}
		}
		row.Margin.Sum = summary.RowSums[i]
		row.Margin.Quota, row.Margin.HasQuota = ds.RowQuota(label)
		view.Rows[i] = row
	}
	for j, label := range ds.Axes.Cols {
		footer := MarginView{Sum: summary.ColSums[j]}
		footer.Quota, footer.HasQuota = ds.ColQuota(label)
		view.Footer[j] = footer
	}
	return view, nil
}

func checkShape(ds dataset.Dataset, variant string, m matrix.Matrix) error {
	if m.Rows() != len(ds.Axes.Rows) || !m.Rectangular() || (m.Rows() > 0 && m.Cols() != len(ds.Axes.Cols)) {
		return fmt.Errorf("dataset %q variant %q: %w: %dx%d matrix for %dx%d labels",
			ds.Name, variant, dataset.ErrShapeMismatch, m.Rows(), m.Cols(), len(ds.Axes.Rows), len(ds.Axes.Cols))
	}
	return nil
}

// TableHTML renders the table of one variant as an HTML fragment.
func TableHTML(ds dataset.Dataset, variant string) (template.HTML, error) {
	view, err := BuildTable(ds, variant)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render table %q/%q: %w", ds.Name, variant, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderTable replaces the content of mount with the table of one variant.
func RenderTable(ds dataset.Dataset, variant string, mount Mount) error {
	content, err := TableHTML(ds, variant)
	if err != nil {
		return err
	}
	mount.Replace(content)
	return nil
}

var tableTemplate = template.Must(template.New("table").Parse(tableTemplateHTML))

const tableTemplateHTML = `{{define "margin"}}<td class="margin-cell{{if .OutOfRange}} out-of-range{{end}}">{{.Sum}}<br>{{if .HasQuota}}<span class="quota-info">{{.QuotaText}}</span>{{end}}</td>{{end -}}
<table><thead><tr><th class="corner">{{.RowsLabel}} ↓<br>{{.ColsLabel}} →</th>
{{- range .Cols}}<th class="header-cell">{{.}}</th>{{end -}}
<th class="header-cell">Total<br><span class="quota-info">Quota ranges</span></th></tr></thead><tbody>
{{- range .Rows}}<tr><td class="row-header">{{.Label}}</td>
{{- range .Cells}}<td class="data-cell bucket-{{.Bucket}}" style="background: {{.Background}}; color: {{.Foreground}};">{{.Value}}</td>{{end -}}
{{template "margin" .Margin}}</tr>
{{- end -}}
<tr><td class="row-header">Total<br><span class="quota-info" style="color: rgba(255,255,255,0.7);">Quota ranges</span></td>
{{- range .Footer}}{{template "margin" .}}{{end -}}
<td class="margin-cell"><strong>{{.Total}}</strong></td></tr></tbody></table>`
