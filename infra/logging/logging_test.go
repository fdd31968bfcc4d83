package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_EmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := Setup("")
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	logger.Info("goes nowhere")
}

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeFn, err := Setup(path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello from the test")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("log line missing: %q", data)
	}
}

func TestSetup_UnwritablePathFails(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Setup(dir); err == nil {
		t.Fatalf("a directory path must fail to open")
	}
}
