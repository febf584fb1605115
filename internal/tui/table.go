// internal/tui/table.go
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/matrix"
	"github.com/mwiater/allocview/internal/report"
	"github.com/mwiater/allocview/internal/util"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	marginStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	outRangeStyle = marginStyle.Foreground(lipgloss.Color("#dc3545"))
	cellStyle     = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// bucketStyle colors a data cell the way the HTML report does.
func bucketStyle(b matrix.Bucket) lipgloss.Style {
	style := cellStyle.Background(lipgloss.Color(b.Color()))
	if b == matrix.Empty {
		return style.Foreground(lipgloss.Color("#ffffff"))
	}
	return style.Foreground(lipgloss.Color("#000000"))
}

func marginText(m report.MarginView) string {
	if !m.HasQuota {
		return strconv.Itoa(m.Sum)
	}
	return fmt.Sprintf("%d (%s)", m.Sum, m.QuotaText())
}

// RenderTable draws one variant matrix with its margins as a terminal table.
func RenderTable(ds dataset.Dataset, variant string) (string, error) {
	view, err := report.BuildTable(ds, variant)
	if err != nil {
		return "", err
	}

	headers := make([]string, 0, len(view.Cols)+2)
	headers = append(headers, fmt.Sprintf("%s ↓ / %s →", view.RowsLabel, view.ColsLabel))
	headers = append(headers, view.Cols...)
	headers = append(headers, "Total (quota)")

	rows := make([][]string, 0, len(view.Rows)+1)
	for _, r := range view.Rows {
		row := make([]string, 0, len(r.Cells)+2)
		row = append(row, r.Label)
		for _, c := range r.Cells {
			row = append(row, strconv.Itoa(c.Value))
		}
		row = append(row, marginText(r.Margin))
		rows = append(rows, row)
	}
	footer := make([]string, 0, len(view.Footer)+2)
	footer = append(footer, "Total (quota)")
	for _, f := range view.Footer {
		footer = append(footer, marginText(f))
	}
	footer = append(footer, strconv.Itoa(view.Total))
	rows = append(rows, footer)

	lastCol := len(view.Cols) + 1
	footerRow := len(view.Rows)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row > footerRow:
				return cellStyle
			case col == 0:
				return labelStyle
			case row == footerRow:
				if col < lastCol && view.Footer[col-1].OutOfRange() {
					return outRangeStyle
				}
				return marginStyle
			case col == lastCol:
				if view.Rows[row].Margin.OutOfRange() {
					return outRangeStyle
				}
				return marginStyle
			default:
				return bucketStyle(view.Rows[row].Cells[col-1].Bucket)
			}
		})
	return t.Render(), nil
}

var (
	scoreBadge = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	emptyBadge = lipgloss.NewStyle().Background(lipgloss.Color("#dc3545")).Foreground(lipgloss.Color("#ffffff")).Padding(0, 1).MarginLeft(1)
	lowBadge   = lipgloss.NewStyle().Background(lipgloss.Color("#ffd7a3")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
)

// RenderStats draws the stats panel of one variant as a row of badges.
func RenderStats(ds dataset.Dataset, variant string, opts report.Options) (string, error) {
	view, err := report.BuildStats(ds, variant, opts)
	if err != nil {
		return "", err
	}
	score := "Gini: " + view.ScoreText()
	if view.Computed {
		score += " (computed)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		scoreBadge.Render(score),
		emptyBadge.Render(fmt.Sprintf("No representation: %d", view.Stats.Empty)),
		lowBadge.Render(fmt.Sprintf("Low (1-2): %d", view.Stats.Low)),
	), nil
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	commentStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
	variantStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// RenderDataset draws the annotation, then the table and stats of every
// configured variant.
func RenderDataset(ds dataset.Dataset, opts report.Options) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(ds.Name))
	b.WriteString("\n")
	if ds.HasComment() {
		b.WriteString(commentStyle.Render(ds.Comment))
		b.WriteString("\n")
	}
	for _, variant := range opts.VariantKeys() {
		tableView, err := RenderTable(ds, variant)
		if err != nil {
			return "", err
		}
		stats, err := RenderStats(ds, variant, opts)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(variantStyle.Render(util.UpperFirst(variant)))
		b.WriteString("\n")
		b.WriteString(tableView)
		b.WriteString("\n")
		b.WriteString(stats)
		b.WriteString("\n")
	}
	return b.String(), nil
}
