// Package logging sets up the optional debug log. The TUI owns stdout, so
// any diagnostics have to go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup opens path for appending and returns a logger writing to it plus a
// close func. An empty path disables logging: the returned logger discards
// everything and the close func is a no-op.
func Setup(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chucklechain",
	})
	return logger, func() { _ = f.Close() }, nil
}
