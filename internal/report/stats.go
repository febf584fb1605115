// internal/report/stats.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/matrix"
)

// Options control how scores are obtained and which variants are rendered.
type Options struct {
	Variants          []string
	ComputeDispersion bool
}

// VariantKeys returns the configured variants or the default pair.
func (o Options) VariantKeys() []string {
	if len(o.Variants) == 0 {
		return dataset.DefaultVariants
	}
	return o.Variants
}

// StatsView is the renderable stats panel of one variant.
type StatsView struct {
	Score    float64
	Computed bool
	Stats    matrix.Stats
}

// ScoreText renders the dispersion score with two decimals.
func (s StatsView) ScoreText() string { return FormatScore(s.Score) }

// FormatScore renders a dispersion score with two decimals.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// BuildStats counts the under-represented cells of one variant and picks its
// dispersion score: the supplied literal, or the Gini coefficient of the
// matrix when computing is requested or no literal exists.
func BuildStats(ds dataset.Dataset, variant string, opts Options) (StatsView, error) {
	m, err := ds.Variant(variant)
	if err != nil {
		return StatsView{}, err
	}
	view := StatsView{Stats: matrix.DispersionStats(m)}
	score, ok := ds.DispersionScore(variant)
	if opts.ComputeDispersion || !ok {
		view.Score = matrix.Gini(m)
		view.Computed = true
	} else {
		view.Score = score
	}
	return view, nil
}

// StatsHTML renders the stats panel of one variant as an HTML fragment.
func StatsHTML(ds dataset.Dataset, variant string, opts Options) (template.HTML, error) {
	view, err := BuildStats(ds, variant, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := statsTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render stats %q/%q: %w", ds.Name, variant, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderStats replaces the content of mount with the stats panel of one variant.
func RenderStats(ds dataset.Dataset, variant string, mount Mount, opts Options) error {
	content, err := StatsHTML(ds, variant, opts)
	if err != nil {
		return err
	}
	mount.Replace(content)
	return nil
}

// RenderComment writes the dataset annotation into mount. Mounts that
// implement Toggle are deactivated when the dataset carries none.
func RenderComment(ds dataset.Dataset, mount Mount) {
	toggle, canToggle := mount.(Toggle)
	if !ds.HasComment() {
		mount.Replace("")
		if canToggle {
			toggle.SetActive(false)
		}
		return
	}
	mount.Replace(template.HTML(template.HTMLEscapeString(ds.Comment)))
	if canToggle {
		toggle.SetActive(true)
	}
}

var statsTemplate = template.Must(template.New("stats").Parse(statsTemplateHTML))

const statsTemplateHTML = `<div class="stat-item gini"><div class="stat-label">Gini Coefficient<br>(lower = more evenly distributed)</div><div class="stat-value">{{.ScoreText}}</div>{{if .Computed}}<div class="stat-note">computed from allocation</div>{{end}}</div>
<div class="stat-item empty"><div class="stat-label">No Representation</div><div class="stat-value">{{.Stats.Empty}}</div></div>
<div class="stat-item sparse"><div class="stat-label">Low Representation (1-2)</div><div class="stat-value">{{.Stats.Low}}</div></div>`
