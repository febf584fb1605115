// internal/commands/show_dataset.go
package allocview

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/logging"
	"github.com/mwiater/allocview/internal/tui"
	"github.com/spf13/cobra"
)

var (
	showIndex int
	showDump  bool
)

// showDatasetCmd implements 'show dataset', which renders one dataset's
// tables and stats in the terminal.
var showDatasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Render one dataset as terminal tables",
	Long: `Render the selected dataset's annotation, then for each variant its colored
matrix with margins, quota ranges and representation stats. --dump prints the
decoded dataset structure instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		datasets, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		ds, err := dataset.Select(datasets, resolveIndex(showIndex, cfg, len(datasets)))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showDump {
			_, err := pp.Fprintln(out, ds)
			return err
		}

		rendered, err := tui.RenderDataset(ds, renderOptions(cfg))
		if err != nil {
			return err
		}
		logging.LogRender(ds.Name, "", "terminal", len(rendered))
		fmt.Fprintln(out, rendered)
		return nil
	},
}

func init() {
	showDatasetCmd.Flags().IntVarP(&showIndex, "index", "i", -1, "dataset index (defaults to the configured defaultIndex)")
	showDatasetCmd.Flags().BoolVar(&showDump, "dump", false, "print the decoded dataset instead of rendering it")
	showCmd.AddCommand(showDatasetCmd)
}
