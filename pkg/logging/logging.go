/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// LevelEnvVar is the environment variable used to configure the default
// log level when no explicit level is provided.
const LevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a level name into a slog.Level.
// Accepts debug, info, warn, warning, and error in any case.
// Unrecognized or empty values default to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a slog.Logger that writes JSON to stderr with
// module and version attributes attached to every record. Source location
// is included when the level is debug.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})

	return slog.New(handler).With(
		"module", module,
		"version", version,
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog
// default, using the LOG_LEVEL environment variable for verbosity.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(LevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the
// slog default with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger returns a standard library *log.Logger that forwards to the
// default slog handler at the given level. Useful for libraries that only
// accept a *log.Logger.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}
