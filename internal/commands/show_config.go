// internal/commands/show_config.go
package allocview

import (
	"github.com/mwiater/allocview/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:             viper.GetBool("debug"),
			DatasetsFile:      viper.GetString("datasetsFile"),
			QuotasFile:        viper.GetString("quotasFile"),
			ReportPath:        viper.GetString("reportPath"),
			Variants:          viper.GetStringSlice("variants"),
			ComputeDispersion: viper.GetBool("computeDispersion"),
			Title:             viper.GetString("title"),
			LogFile:           viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
