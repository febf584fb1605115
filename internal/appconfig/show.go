package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	datasets := cfg.DatasetsFile
	if datasets == "" {
		datasets = "(builtin catalog)"
	}
	quotas := cfg.QuotasFile
	if quotas == "" {
		quotas = "(dataset quotas)"
	}

	fmt.Fprintf(out, "  Debug:              %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Datasets File:      %s\n", datasets)
	fmt.Fprintf(out, "  Quotas File:        %s\n", quotas)
	fmt.Fprintf(out, "  Report Path:        %s\n", cfg.ReportFilePath())
	fmt.Fprintf(out, "  Report Title:       %s\n", cfg.ReportTitle())
	fmt.Fprintf(out, "  Default Index:      %d\n", cfg.SelectedIndex())
	fmt.Fprintf(out, "  Variants:           %s\n", strings.Join(cfg.VariantKeys(), ", "))
	fmt.Fprintf(out, "  Compute Dispersion: %v\n", cfg.ComputeDispersion)
	fmt.Fprintf(out, "  Log File:           %s\n", cfg.LogFilePath())
}
