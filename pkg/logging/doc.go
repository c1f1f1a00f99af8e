/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for chkr.
//
// # Overview
//
// This package wraps the standard library slog package with chkr-specific
// defaults and conventions for consistent logging across the CLI and the
// verification packages. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("chkr", version)
//
//	    slog.Info("verifying manifest", "path", manifestPath)
//	    slog.Debug("digest computed", "file", path, "digest", digest)
//	    slog.Error("verification failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("chkr", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug chkr manifest checksums.txt
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so the verification report
// on stdout stays machine-consumable:
//
//	{
//	    "time": "2025-08-25T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "verification completed",
//	    "module": "chkr",
//	    "version": "v1.0.0",
//	    "status": "pass"
//	}
package logging
