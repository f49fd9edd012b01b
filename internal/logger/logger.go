// Package logger provides prefixed charmbracelet/log loggers for the binary
// and server.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a prefixed charm log that respects the global log level.
// Output goes to stderr so server mode keeps stdout clean for the IPC
// stream.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a prefixed charm log with custom options.
func NewWithConfig(prefix string, level log.Level, caller, timestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: timestamp,
		Formatter:       fmt,
	})
}
