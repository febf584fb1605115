// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/allocview/internal/dataset"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultReportPath is where the HTML report is written when the config omits it.
	defaultReportPath = "reports/comparison.html"
	// defaultTitle is the heading of the HTML report.
	defaultTitle = "Leximin vs Diversimax"
	// defaultLogFile is the log destination when the config omits it.
	defaultLogFile = "allocview.log"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug             bool     `json:"debug"`
	DatasetsFile      string   `json:"datasetsFile,omitempty"`
	QuotasFile        string   `json:"quotasFile,omitempty"`
	ReportPath        string   `json:"reportPath,omitempty"`
	DefaultIndex      *int     `json:"defaultIndex,omitempty"`
	Variants          []string `json:"variants,omitempty"`
	ComputeDispersion bool     `json:"computeDispersion"`
	Title             string   `json:"title,omitempty"`
	LogFile           string   `json:"logFile,omitempty"`
	ConfigPath        string   `json:"-"`
}

// ReportFilePath returns the HTML report destination, applying a default if not set.
func (c Config) ReportFilePath() string {
	if path := strings.TrimSpace(c.ReportPath); path != "" {
		return path
	}
	return defaultReportPath
}

// ReportTitle returns the report heading, applying a default if not set.
func (c Config) ReportTitle() string {
	if title := strings.TrimSpace(c.Title); title != "" {
		return title
	}
	return defaultTitle
}

// SelectedIndex returns the dataset shown first, applying a default if not set.
func (c Config) SelectedIndex() int {
	if c.DefaultIndex == nil {
		return dataset.DefaultIndex
	}
	return *c.DefaultIndex
}

// IndexFor returns the dataset shown first in a catalog of size datasets.
// An unset defaultIndex falls back to the first dataset when the builtin
// default is past the end; an explicit one is returned unchanged.
func (c Config) IndexFor(size int) int {
	idx := c.SelectedIndex()
	if c.DefaultIndex == nil && idx >= size {
		return 0
	}
	return idx
}

// VariantKeys returns the algorithm variants in render order.
func (c Config) VariantKeys() []string {
	var keys []string
	for _, v := range c.Variants {
		if v = strings.TrimSpace(v); v != "" {
			keys = append(keys, v)
		}
	}
	if len(keys) == 0 {
		return append([]string(nil), dataset.DefaultVariants...)
	}
	return keys
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Sources returns where the dataset catalog should be read from.
func (c Config) Sources() dataset.Sources {
	return dataset.Sources{
		DatasetsFile: strings.TrimSpace(c.DatasetsFile),
		QuotasFile:   strings.TrimSpace(c.QuotasFile),
	}
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if idx := config.DefaultIndex; idx != nil && *idx < 0 {
		return Config{}, fmt.Errorf("defaultIndex must be non-negative, got %d", *idx)
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
