package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/matrix"
)

func builtin(t *testing.T, name string) dataset.Dataset {
	t.Helper()
	for _, d := range dataset.Builtin() {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("dataset %q not found", name)
	return dataset.Dataset{}
}

func TestRenderTableMarginsAndQuotas(t *testing.T) {
	ds := builtin(t, "Neighborhood × Gender - Raanana")
	region := &Region{}
	if err := RenderTable(ds, dataset.Diversimax, region); err != nil {
		t.Fatalf("RenderTable error: %v", err)
	}
	out := string(region.Content())

	for _, want := range []string{
		`<th class="corner">Neighborhood ↓<br>Gender →</th>`,
		`<th class="header-cell">Female</th><th class="header-cell">Male</th>`,
		`<th class="header-cell">Total<br><span class="quota-info">Quota ranges</span></th>`,
		`<td class="row-header">South</td>`,
		`<td class="data-cell bucket-high" style="background: #81c784; color: inherit;">10</td>`,
		`<td class="margin-cell">20<br><span class="quota-info">19-22</span></td>`,
		`<td class="margin-cell">30<br><span class="quota-info">28-32</span></td>`,
		`<td class="margin-cell"><strong>60</strong></td>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if strings.Contains(out, "out-of-range") {
		t.Fatalf("diversimax margins are all within quota:\n%s", out)
	}
	if strings.Count(out, "<tr>") != 5 {
		t.Fatalf("expected header, three body rows and footer, got:\n%s", out)
	}
}

func TestRenderTableMissingQuotaRendersEmptyAnnotation(t *testing.T) {
	ds := builtin(t, "Education - Kfar Saba")
	out, err := TableHTML(ds, dataset.Diversimax)
	if err != nil {
		t.Fatalf("TableHTML error: %v", err)
	}
	if !strings.Contains(string(out), `<td class="margin-cell">18<br><span class="quota-info">15-25</span></td>`) {
		t.Fatalf("expected row quota for 12-9:\n%s", out)
	}
	if !strings.Contains(string(out), `<td class="margin-cell">60<br></td>`) {
		t.Fatalf("expected bare column margin without quota:\n%s", out)
	}
}

func TestRenderTableFlagsOutOfRangeMargins(t *testing.T) {
	ds := builtin(t, "Age × Gender - Kfar Saba")
	out, err := TableHTML(ds, dataset.Leximin)
	if err != nil {
		t.Fatalf("TableHTML error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<td class="margin-cell out-of-range">34<br><span class="quota-info">28-32</span></td>`) {
		t.Fatalf("expected Female margin flagged:\n%s", html)
	}
	if !strings.Contains(html, `<td class="margin-cell out-of-range">26<br><span class="quota-info">28-32</span></td>`) {
		t.Fatalf("expected Male margin flagged:\n%s", html)
	}
	if got := strings.Count(html, "out-of-range"); got != 2 {
		t.Fatalf("expected 2 flagged margins, got %d", got)
	}
	if !strings.Contains(html, `<td class="data-cell bucket-empty" style="background: #dc3545; color: white;">0</td>`) {
		t.Fatalf("expected empty bucket cell:\n%s", html)
	}
}

func TestRenderTableIdempotent(t *testing.T) {
	ds := builtin(t, "Neighborhood × Education - Kfar Saba (narrow quota ranges)")
	region := &Region{}
	if err := RenderTable(ds, dataset.Leximin, region); err != nil {
		t.Fatal(err)
	}
	first := region.Content()
	if err := RenderTable(ds, dataset.Leximin, region); err != nil {
		t.Fatal(err)
	}
	if region.Content() != first {
		t.Fatal("re-rendering produced different output")
	}
}

func TestRenderTableEscapesLabels(t *testing.T) {
	ds := dataset.Dataset{
		Name:     "escape",
		Axes:     dataset.Axes{Rows: []string{"<b>"}, Cols: []string{"a&b"}, RowsName: "r", ColsName: "c"},
		Variants: map[string]matrix.Matrix{dataset.Leximin: {{1}}},
	}
	out, err := TableHTML(ds, dataset.Leximin)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<b>") || !strings.Contains(string(out), "&lt;b&gt;") || !strings.Contains(string(out), "a&amp;b") {
		t.Fatalf("labels were not escaped:\n%s", out)
	}
}

func TestRenderTableErrors(t *testing.T) {
	ds := builtin(t, "Education - Kfar Saba")
	region := &Region{}
	region.Replace("previous")

	err := RenderTable(ds, "greedy", region)
	if !errors.Is(err, dataset.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if region.Content() != "previous" {
		t.Fatal("failed render must leave the mount untouched")
	}

	ds.Variants = map[string]matrix.Matrix{dataset.Leximin: {{1}, {2}}}
	if err := RenderTable(ds, dataset.Leximin, region); !errors.Is(err, dataset.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}

	ds.Axes.Cols = []string{"A", "B"}
	ds.Variants = map[string]matrix.Matrix{dataset.Leximin: {{1, 2}, {3}, {4, 5}}}
	if err := RenderTable(ds, dataset.Leximin, region); !errors.Is(err, dataset.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch for a ragged matrix, got %v", err)
	}
	if region.Content() != "previous" {
		t.Fatal("failed render must leave the mount untouched")
	}
}

func TestRenderStats(t *testing.T) {
	ds := builtin(t, "Education - Kfar Saba")
	region := &Region{}
	if err := RenderStats(ds, dataset.Diversimax, region, Options{}); err != nil {
		t.Fatal(err)
	}
	out := string(region.Content())
	for _, want := range []string{
		`<div class="stat-value">0.04</div>`,
		`No Representation</div><div class="stat-value">0</div>`,
		`Low Representation (1-2)</div><div class="stat-value">0</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in stats:\n%s", want, out)
		}
	}
	if strings.Contains(out, "stat-note") {
		t.Fatal("supplied score must not be marked computed")
	}

	if err := RenderStats(ds, dataset.Leximin, region, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(region.Content()), `<div class="stat-value">0.10</div>`) {
		t.Fatalf("expected trailing zero preserved:\n%s", region.Content())
	}
}

func TestBuildStatsComputedDispersion(t *testing.T) {
	ds := builtin(t, "Neighborhood × Gender - Raanana")
	view, err := BuildStats(ds, dataset.Diversimax, Options{ComputeDispersion: true})
	if err != nil {
		t.Fatal(err)
	}
	if !view.Computed || view.ScoreText() != "0.00" {
		t.Fatalf("expected computed zero score, got %+v", view)
	}

	delete(ds.Dispersion, dataset.Leximin)
	view, err = BuildStats(ds, dataset.Leximin, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !view.Computed || view.Score <= 0 {
		t.Fatalf("expected computed fallback score, got %+v", view)
	}

	age := builtin(t, "Age × Gender - Kfar Saba")
	view, err = BuildStats(age, dataset.Leximin, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if view.Stats != (matrix.Stats{Empty: 1, Low: 3}) {
		t.Fatalf("unexpected leximin counts: %+v", view.Stats)
	}
}

func TestFormatScore(t *testing.T) {
	cases := map[float64]string{0.04: "0.04", 0.1: "0.10", 0: "0.00", 0.405: "0.41", 1: "1.00"}
	for in, want := range cases {
		if got := FormatScore(in); got != want {
			t.Fatalf("FormatScore(%v)=%q want %q", in, got, want)
		}
	}
}

func TestRenderComment(t *testing.T) {
	region := &Region{}
	ds := builtin(t, "Education - Kfar Saba")
	RenderComment(ds, region)
	if !region.Active() || !strings.Contains(string(region.Content()), "single dimension") {
		t.Fatalf("expected active comment, got %q", region.Content())
	}

	RenderComment(builtin(t, "Education × Gender - Raanana"), region)
	if region.Active() || region.Content() != "" {
		t.Fatalf("expected inactive empty comment, got %q", region.Content())
	}

	RenderComment(dataset.Dataset{Comment: "a < b"}, region)
	if region.Content() != "a &lt; b" {
		t.Fatalf("expected escaped comment, got %q", region.Content())
	}
}

func TestUpdateFillsEveryRegion(t *testing.T) {
	page := NewPage()
	ds := builtin(t, "Age × Gender - Kfar Saba")
	if err := Update(ds, page, Options{}); err != nil {
		t.Fatal(err)
	}
	want := []string{"commentSection", "diversimaxStats", "diversimaxTable", "leximinStats", "leximinTable"}
	for _, id := range want {
		if page.Content(id) == "" {
			t.Fatalf("region %s is empty", id)
		}
	}
	if page.Content("missing") != "" {
		t.Fatal("unknown region should be empty")
	}

	if err := Update(ds, page, Options{Variants: []string{"greedy"}}); !errors.Is(err, dataset.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestGenerateReport(t *testing.T) {
	datasets := dataset.Builtin()
	html, err := GenerateReport(datasets, ReportOptions{Title: "Comparison", Selected: dataset.DefaultIndex})
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	for _, want := range []string{
		"<title>Comparison</title>",
		`<option value="3" selected>Age × Gender - Kfar Saba</option>`,
		`<option value="0">Neighborhood × Gender - Raanana</option>`,
		`<section class="dataset" data-index="3">`,
		`<section class="dataset" data-index="0" hidden>`,
		`id="diversimaxTable-3"`,
		`id="leximinStats-6"`,
		`<h2>Diversimax</h2>`,
		`<div class="comment active" id="commentSection-0">`,
		`<div class="comment" id="commentSection-1"></div>`,
		`10&#43;</div>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in report", want)
		}
	}
	if strings.Count(html, "<section ") != len(datasets) {
		t.Fatalf("expected %d sections", len(datasets))
	}

	again, err := GenerateReport(datasets, ReportOptions{Title: "Comparison", Selected: dataset.DefaultIndex})
	if err != nil || again != html {
		t.Fatal("report generation is not deterministic")
	}
}

func TestGenerateReportErrors(t *testing.T) {
	if _, err := GenerateReport(nil, ReportOptions{}); err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if _, err := GenerateReport(dataset.Builtin(), ReportOptions{Selected: 7}); err == nil {
		t.Fatal("expected error for out of range selection")
	}
}
