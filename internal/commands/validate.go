// internal/commands/validate.go
package allocview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/mwiater/allocview/internal/appconfig"
	"github.com/spf13/cobra"
)

var failedResult = color.New(color.FgRed).SprintFunc()

// validateCmd implements 'validate', which checks the config file and the
// catalog it points at without rendering anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and the dataset catalog",
	Long: `Check that the config file parses, that every dataset matches the schema,
that each variant matrix has the shape of its axes and that every quota
table has one well-formed range per label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfgFile != "" {
			if _, err := os.Stat(cfgFile); err == nil {
				if _, err := appconfig.Load(cfgFile); err != nil {
					fmt.Fprintln(out, failedResult(fmt.Sprintf("config: %v", err)))
					return err
				}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		datasets, err := loadCatalog(activeConfig())
		if err != nil {
			fmt.Fprintln(out, failedResult(err.Error()))
			return err
		}
		fmt.Fprintln(out, successfulResult(fmt.Sprintf("OK: %d datasets", len(datasets))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
