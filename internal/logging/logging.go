package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRender records one region write made by a renderer.
func LogRender(dataset, variant, region string, size int) {
	log.Println(buildRenderMessage(dataset, variant, region, size))
}

func buildRenderMessage(dataset, variant, region string, size int) string {
	datasetValue := strings.TrimSpace(dataset)
	if datasetValue == "" {
		datasetValue = "unknown"
	}
	parts := []string{"[RENDER]", fmt.Sprintf("dataset=%q", datasetValue)}
	if variant = strings.TrimSpace(variant); variant != "" {
		parts = append(parts, fmt.Sprintf("variant=%s", variant))
	}
	regionValue := strings.TrimSpace(region)
	if regionValue == "" {
		regionValue = "unknown"
	}
	parts = append(parts, fmt.Sprintf("region=%s", regionValue))
	parts = append(parts, fmt.Sprintf("bytes=%d", size))
	return strings.Join(parts, " ")
}
