/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the chkr tool.
//
// # Overview
//
// The chkr CLI verifies file integrity by comparing computed MD5 digests
// against expected values, either for a single file or for a batch of files
// listed in a checksum manifest. It is intended for build/release pipelines
// and download verification, where the exit code is the machine-readable
// signal.
//
// # Commands
//
// file - Verify a single file:
//
//	chkr file <file-path> <expected-checksum>
//
// manifest - Verify every entry of a checksum manifest:
//
//	chkr manifest <checksum-path> [--concurrency N]
//
// # Global Flags
//
//	--output, -o     Output file path for the result (default: stdout)
//	--format, -t     Output format: text, json, yaml, table (default: text)
//	--log-level      Logging verbosity (debug, info, warn, error)
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Exit Codes
//
//	0   All files matched
//	1   At least one file mismatched
//	16  Read failure, malformed manifest, or invalid invocation
//
// A read failure takes precedence over a mismatch when both occur in one
// manifest run.
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/checksum - MD5 digest computation
//   - pkg/manifest - Manifest parsing
//   - pkg/verifier - Verification and outcome aggregation
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/GovTechSG/chkr/pkg/cli.version=1.0.0'"
package cli
