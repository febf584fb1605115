// internal/report/update.go
package report

import (
	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/logging"
)

// Update repaints every region of page for the selected dataset: the
// annotation, then the table and stats panel of each configured variant.
func Update(ds dataset.Dataset, page *Page, opts Options) error {
	comment := page.Region(CommentRegion)
	RenderComment(ds, comment)
	logging.LogRender(ds.Name, "", CommentRegion, len(comment.Content()))

	for _, variant := range opts.VariantKeys() {
		table := page.Region(TableRegion(variant))
		if err := RenderTable(ds, variant, table); err != nil {
			return err
		}
		logging.LogRender(ds.Name, variant, TableRegion(variant), len(table.Content()))

		stats := page.Region(StatsRegion(variant))
		if err := RenderStats(ds, variant, stats, opts); err != nil {
			return err
		}
		logging.LogRender(ds.Name, variant, StatsRegion(variant), len(stats.Content()))
	}
	return nil
}
