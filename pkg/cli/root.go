/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/GovTechSG/chkr/pkg/errors"
	"github.com/GovTechSG/chkr/pkg/logging"
)

const (
	name           = "chkr"
	versionDefault = "dev"
)

// Exit codes produced by Execute. ExitError doubles as the usage-error code.
const (
	ExitMatch    = 0
	ExitMismatch = 1
	ExitError    = 16
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd assembles the command tree.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Verify file integrity against expected MD5 checksums",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Verify file integrity by comparing computed MD5 digests against expected values.

A single file can be checked directly, or a whole batch via a checksum
manifest in the md5sum format (one "<checksum>  <path>" entry per line,
'#' comments and blank lines ignored).

# Exit Codes

  0   all files matched
  1   at least one file mismatched
  16  read failure, malformed manifest, or invalid invocation

# Examples

Verify a single download:
  chkr file ubuntu.iso d41d8cd98f00b204e9800998ecf8427e

Verify a release manifest:
  chkr manifest release/checksums.txt

Verify a large manifest with 8 workers and keep a JSON report:
  chkr manifest release/checksums.txt -c 8 --format json --output report.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.LevelEnvVar),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			fileCmd(),
			manifestCmd(),
		},
	}
}

// Run executes the command tree with the given arguments. Exposed for tests;
// Execute is the process entrypoint.
func Run(ctx context.Context, args []string) error {
	return rootCmd().Run(ctx, args)
}

// Execute runs the CLI and exits the process with the verification exit code.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := Run(ctx, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps an error returned by the command tree to the process exit
// code. Mismatch is the only condition with its own code; everything else
// (read failure, parse failure, usage error) shares the error code.
func exitCode(err error) int {
	if err == nil {
		return ExitMatch
	}
	if errors.Code(err) == errors.ErrCodeMismatch {
		return ExitMismatch
	}
	return ExitError
}
