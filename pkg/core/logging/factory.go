// ============================================================================
// cmdcall - String-driven command dispatcher
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating structured loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, used as log prefix
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "text", "json" or "logfmt" (default: text)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// ReportTimestamp adds a timestamp to every entry
	ReportTimestamp bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
		Output:      os.Stderr,
	}
}

// NewLogger creates a new structured logger
func NewLogger(cfg LoggerConfig) *log.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return log.NewWithOptions(output, log.Options{
		Level:           ParseLevel(cfg.Level).charmLevel(),
		Prefix:          cfg.ServiceName,
		Formatter:       parseFormat(cfg.Format),
		ReportTimestamp: cfg.ReportTimestamp,
		TimeFormat:      time.RFC3339,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *log.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// Discard returns a logger that drops every entry
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// parseFormat converts a format name to a backend formatter
func parseFormat(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
