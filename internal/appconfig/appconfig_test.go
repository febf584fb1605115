// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad tests the Load function against a valid file, invalid JSON, an
// invalid default index and a missing file.
func TestLoad(t *testing.T) {
	validConfig := `{
        "datasetsFile": "data/datasets.json",
        "reportPath": "out/report.html",
        "defaultIndex": 1,
        "variants": ["leximin", " diversimax "],
        "computeDispersion": true
    }`
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.ConfigPath)
	}
	if cfg.SelectedIndex() != 1 {
		t.Fatalf("expected default index 1, got %d", cfg.SelectedIndex())
	}
	if got := cfg.VariantKeys(); !reflect.DeepEqual(got, []string{"leximin", "diversimax"}) {
		t.Fatalf("unexpected variants: %v", got)
	}
	if cfg.ReportFilePath() != "out/report.html" {
		t.Fatalf("unexpected report path %q", cfg.ReportFilePath())
	}
	if !cfg.ComputeDispersion {
		t.Fatal("expected computeDispersion to be true")
	}
	if src := cfg.Sources(); src.DatasetsFile != "data/datasets.json" || src.QuotasFile != "" {
		t.Fatalf("unexpected sources: %+v", src)
	}

	if _, err := Load(writeConfig(t, `{ "variants": [`)); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	if _, err := Load(writeConfig(t, `{ "defaultIndex": -2 }`)); err == nil {
		t.Fatal("Load() with negative default index should have failed")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nonexistent.json")); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

// TestDefaults verifies the accessor fallbacks of an empty configuration.
func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.ReportFilePath() != defaultReportPath {
		t.Fatalf("unexpected report path %q", cfg.ReportFilePath())
	}
	if cfg.ReportTitle() != defaultTitle {
		t.Fatalf("unexpected title %q", cfg.ReportTitle())
	}
	if cfg.SelectedIndex() != 3 {
		t.Fatalf("expected default index 3, got %d", cfg.SelectedIndex())
	}
	if got := cfg.VariantKeys(); !reflect.DeepEqual(got, []string{"diversimax", "leximin"}) {
		t.Fatalf("unexpected default variants: %v", got)
	}
	if cfg.LogFilePath() != "allocview.log" {
		t.Fatalf("unexpected log file %q", cfg.LogFilePath())
	}

	keys := cfg.VariantKeys()
	keys[0] = "changed"
	if cfg.VariantKeys()[0] != "diversimax" {
		t.Fatal("VariantKeys must not expose the shared default slice")
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Config{Debug: true})
	out := buf.String()
	for _, want := range []string{"No config file loaded", "Debug:              true", "(builtin catalog)", "diversimax, leximin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.json", &Config{QuotasFile: "cats.csv"}, Config{})
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") || !strings.Contains(out, "cats.csv") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestIndexFor(t *testing.T) {
	var cfg Config
	if got := cfg.IndexFor(7); got != 3 {
		t.Fatalf("expected builtin default 3, got %d", got)
	}
	if got := cfg.IndexFor(1); got != 0 {
		t.Fatalf("expected fallback to 0 for a short catalog, got %d", got)
	}

	explicit := 5
	cfg.DefaultIndex = &explicit
	if got := cfg.IndexFor(2); got != 5 {
		t.Fatalf("explicit defaultIndex must not be clamped, got %d", got)
	}
}
