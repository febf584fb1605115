// internal/commands/render.go
package allocview

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/allocview/internal/logging"
	"github.com/mwiater/allocview/internal/report"
	"github.com/mwiater/allocview/internal/util"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderIndex  int
)

var successfulResult = color.New(color.FgGreen).SprintFunc()

// renderCmd implements 'render', which writes the standalone HTML comparison
// report covering every dataset of the catalog.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the HTML comparison report",
	Long: `Render every dataset of the catalog into one standalone HTML page with a
dataset selector, the annotation, and a table plus stats panel per variant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		datasets, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		html, err := report.GenerateReport(datasets, report.ReportOptions{
			Options:  renderOptions(cfg),
			Title:    cfg.ReportTitle(),
			Selected: resolveIndex(renderIndex, cfg, len(datasets)),
		})
		if err != nil {
			return err
		}

		path := renderOutput
		if path == "" {
			path = cfg.ReportFilePath()
		}
		if err := util.WriteFile(path, []byte(html)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logging.LogEvent("report written to %s (%d datasets, %d bytes)", path, len(datasets), len(html))
		fmt.Fprintln(cmd.OutOrStdout(), successfulResult(fmt.Sprintf("Report written to %s", path)))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "report destination (defaults to the configured reportPath)")
	renderCmd.Flags().IntVarP(&renderIndex, "index", "i", -1, "dataset shown first (defaults to the configured defaultIndex)")
	rootCmd.AddCommand(renderCmd)
}
