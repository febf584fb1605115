// internal/report/report.go
// Package report renders comparison datasets into HTML: table and stats
// fragments written into mount points, and a standalone page that lets the
// reader switch datasets from a dropdown.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/matrix"
	"github.com/mwiater/allocview/internal/util"
)

// ReportOptions configure the standalone page.
type ReportOptions struct {
	Options
	Title    string
	Selected int
}

// PageData is the view model of the standalone page.
type PageData struct {
	Title    string
	Sections []SectionData
	Legend   []LegendEntry
}

// SectionData holds the pre-rendered regions of one dataset.
type SectionData struct {
	Index         int
	Name          string
	Selected      bool
	Comment       template.HTML
	CommentActive bool
	Variants      []VariantData
}

// VariantData holds the regions of one variant inside a section.
type VariantData struct {
	Key     string
	Title   string
	TableID string
	StatsID string
	Table   template.HTML
	Stats   template.HTML
}

// LegendEntry describes one bucket color.
type LegendEntry struct {
	Label string
	Color template.CSS
}

// GenerateReport renders a standalone HTML page holding every dataset. The
// selected dataset is visible on load; the dropdown only toggles which
// pre-rendered section is shown.
func GenerateReport(datasets []dataset.Dataset, opts ReportOptions) (string, error) {
	if len(datasets) == 0 {
		return "", fmt.Errorf("no datasets to render")
	}
	if opts.Selected < 0 || opts.Selected >= len(datasets) {
		return "", fmt.Errorf("selected dataset %d out of range [0,%d)", opts.Selected, len(datasets))
	}

	data := PageData{Title: opts.Title}
	for _, b := range matrix.Buckets {
		data.Legend = append(data.Legend, LegendEntry{Label: b.Label(), Color: template.CSS(b.Color())})
	}

	for i, ds := range datasets {
		page := NewPage()
		if err := Update(ds, page, opts.Options); err != nil {
			return "", err
		}
		section := SectionData{
			Index:         i,
			Name:          ds.Name,
			Selected:      i == opts.Selected,
			Comment:       page.Content(CommentRegion),
			CommentActive: page.Region(CommentRegion).Active(),
		}
		for _, variant := range opts.VariantKeys() {
			section.Variants = append(section.Variants, VariantData{
				Key:     variant,
				Title:   util.UpperFirst(variant),
				TableID: fmt.Sprintf("%s-%d", TableRegion(variant), i),
				StatsID: fmt.Sprintf("%s-%d", StatsRegion(variant), i),
				Table:   page.Content(TableRegion(variant)),
				Stats:   page.Content(StatsRegion(variant)),
			})
		}
		data.Sections = append(data.Sections, section)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("comparison-report").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --border: #E2E8F0;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background-color: var(--light);
      color: var(--text);
      margin: 0;
      padding: 2rem;
    }
    h1 { margin-top: 0; }
    .selector { margin-bottom: 1.5rem; }
    .selector select { font-size: 1rem; padding: 0.4rem 0.6rem; }
    .comment {
      display: none;
      background: #FEF3C7;
      border-left: 4px solid #F59E0B;
      padding: 0.75rem 1rem;
      margin-bottom: 1.5rem;
    }
    .comment.active { display: block; }
    .comparison {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(420px, 1fr));
      gap: 1.5rem;
    }
    .variant {
      background: var(--background);
      border: 1px solid var(--border);
      border-radius: 12px;
      padding: 1.25rem;
    }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid var(--border); padding: 0.4rem 0.6rem; text-align: center; }
    th.corner, td.row-header { background: var(--primary); color: var(--light); text-align: left; }
    th.header-cell { background: var(--light); }
    td.margin-cell { background: var(--light); font-weight: 600; }
    td.margin-cell.out-of-range { outline: 2px solid #dc3545; outline-offset: -2px; }
    .quota-info { font-size: 0.75rem; color: var(--secondary); font-weight: 400; }
    .stats { display: flex; gap: 1rem; margin-top: 1rem; }
    .stat-item { flex: 1; background: var(--light); border-radius: 8px; padding: 0.75rem; }
    .stat-label { font-size: 0.8rem; color: var(--secondary); }
    .stat-value { font-size: 1.5rem; font-weight: 700; }
    .stat-note { font-size: 0.7rem; color: var(--secondary); }
    .legend { display: flex; gap: 1rem; margin-top: 2rem; flex-wrap: wrap; }
    .legend-item { display: flex; align-items: center; gap: 0.4rem; }
    .legend-color { width: 14px; height: 14px; border-radius: 3px; border: 1px solid var(--border); }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="selector">
    <label for="datasetSelect">Dataset</label>
    <select id="datasetSelect">
{{- range .Sections }}
      <option value="{{ .Index }}"{{ if .Selected }} selected{{ end }}>{{ .Name }}</option>
{{- end }}
    </select>
  </div>
{{- range .Sections }}
  <section class="dataset" data-index="{{ .Index }}"{{ if not .Selected }} hidden{{ end }}>
    <div class="comment{{ if .CommentActive }} active{{ end }}" id="commentSection-{{ .Index }}">{{ .Comment }}</div>
    <div class="comparison">
{{- range .Variants }}
      <div class="variant">
        <h2>{{ .Title }}</h2>
        <div class="table-container" id="{{ .TableID }}">{{ .Table }}</div>
        <div class="stats" id="{{ .StatsID }}">{{ .Stats }}</div>
      </div>
{{- end }}
    </div>
  </section>
{{- end }}
  <div class="legend">
{{- range .Legend }}
    <div class="legend-item"><span class="legend-color" style="background: {{ .Color }};"></span>{{ .Label }}</div>
{{- end }}
  </div>
  <script>
    document.getElementById('datasetSelect').addEventListener('change', function (event) {
      document.querySelectorAll('section.dataset').forEach(function (section) {
        section.hidden = section.dataset.index !== event.target.value;
      });
    });
  </script>
</body>
</html>
`
