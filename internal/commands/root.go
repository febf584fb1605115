// internal/commands/root.go
package allocview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/mwiater/allocview/internal/appconfig"
	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/logging"
	"github.com/mwiater/allocview/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "allocview",
	Short: "allocview: compare panel allocation algorithms side by side",
	Long: `Render comparison datasets (leximin vs diversimax panel allocations) as
colored tables with row/column margins, quota ranges and representation stats,
either as a standalone HTML report or directly in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range []string{"debug", "computeDispersion"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		if idx := cfg.DefaultIndex; idx != nil && *idx < 0 {
			return fmt.Errorf("invalid configuration: defaultIndex must be non-negative, got %d", *idx)
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if currentConfig.Debug {
			logging.LogEvent("[DEBUG] configuration: %s", pp.Sprint(*currentConfig))
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.json", "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("computeDispersion", false, "compute the Gini coefficient from each matrix instead of using the supplied score")
	rootCmd.PersistentFlags().String("datasetsFile", "", "path to a datasets JSON file (defaults to the builtin catalog)")
	rootCmd.PersistentFlags().String("quotasFile", "", "path to a categories CSV (category,name,min,max) merged into every dataset")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("computeDispersion", rootCmd.PersistentFlags().Lookup("computeDispersion"))
	_ = viper.BindPFlag("datasetsFile", rootCmd.PersistentFlags().Lookup("datasetsFile"))
	_ = viper.BindPFlag("quotasFile", rootCmd.PersistentFlags().Lookup("quotasFile"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config. A missing file is not an error.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// activeConfig returns the loaded configuration or an empty one.
func activeConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}

// loadCatalog assembles and validates the configured dataset catalog.
func loadCatalog(cfg appconfig.Config) ([]dataset.Dataset, error) {
	datasets, err := dataset.Load(cfg.Sources(), cfg.VariantKeys())
	if err != nil {
		return nil, err
	}
	logging.LogEvent("loaded %d datasets", len(datasets))
	return datasets, nil
}

// renderOptions maps the configuration onto renderer options.
func renderOptions(cfg appconfig.Config) report.Options {
	return report.Options{
		Variants:          cfg.VariantKeys(),
		ComputeDispersion: cfg.ComputeDispersion,
	}
}

// resolveIndex picks the flag index when set, else the configured default
// for a catalog of size datasets.
func resolveIndex(flagIndex int, cfg appconfig.Config, size int) int {
	if flagIndex >= 0 {
		return flagIndex
	}
	return cfg.IndexFor(size)
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
