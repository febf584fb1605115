// internal/commands/show_datasets.go
package allocview

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/allocview/internal/util"
	"github.com/spf13/cobra"
)

var defaultMarker = color.New(color.FgGreen).SprintFunc()

// showDatasetsCmd implements 'show datasets', which lists the catalog with
// its indexes and marks the dataset shown first.
var showDatasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the datasets in the catalog",
	Long:  `List every dataset of the configured catalog with the index used by --index and the configured default selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		datasets, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		selected := cfg.IndexFor(len(datasets))
		out := cmd.OutOrStdout()
		for i, ds := range datasets {
			line := fmt.Sprintf("  %2d  %s", i, ds.Name)
			if ds.HasComment() {
				line = util.PadRight(line, 70) + util.TruncateRunes(ds.Comment, 50)
			}
			if i == selected {
				line += " " + defaultMarker("(default)")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	showCmd.AddCommand(showDatasetsCmd)
}
