// internal/commands/browse.go
package allocview

import (
	"github.com/mwiater/allocview/internal/tui"
	"github.com/spf13/cobra"
)

var browseIndex int

// browseCmd implements 'browse', the interactive terminal counterpart of the
// HTML report's dataset selector.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse datasets interactively in the terminal",
	Long:  `Open a two-pane terminal browser: the dataset list on the left and the selected dataset's tables and stats on the right. Press q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		datasets, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		return tui.Browse(datasets, resolveIndex(browseIndex, cfg, len(datasets)), renderOptions(cfg))
	},
}

func init() {
	browseCmd.Flags().IntVarP(&browseIndex, "index", "i", -1, "dataset selected first (defaults to the configured defaultIndex)")
	rootCmd.AddCommand(browseCmd)
}
