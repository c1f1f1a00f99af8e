/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/GovTechSG/chkr/pkg/errors"
	"github.com/GovTechSG/chkr/pkg/manifest"
	"github.com/GovTechSG/chkr/pkg/verifier"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Verify every file listed in a checksum manifest",
		ArgsUsage:             "<checksum-path>",
		Description: `Verify all files listed in a checksum manifest.

The manifest uses the md5sum format, one entry per line:

  <32-hex-char checksum><whitespace><file-path>

Blank lines and lines starting with '#' are ignored. A malformed line fails
the whole run before any file is read; a corrupted manifest never produces a
false "all clear".

Relative file paths resolve against the manifest's own directory, so the
manifest can be verified from any working directory.

Every entry is checked even when earlier entries mismatch or cannot be read;
the exit code reflects the worst outcome (read errors over mismatches).

# Examples

Verify a release:
  chkr manifest release/checksums.txt

Verify with 8 concurrent workers:
  chkr manifest release/checksums.txt --concurrency 8

Write a JSON report alongside the exit code:
  chkr manifest release/checksums.txt --format json --output report.json`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Value:   1,
				Usage:   "Number of files to verify concurrently (1 = sequential)",
				Sources: cli.EnvVars("CHKR_CONCURRENCY"),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("expected <checksum-path>, got %d argument(s)", args.Len()))
			}

			manifestPath := args.Get(0)

			slog.Info("loading manifest", "path", manifestPath)

			m, err := manifest.Load(manifestPath)
			if err != nil {
				return errors.Wrap(errors.ErrCodeParse,
					fmt.Sprintf("failed to load manifest %q", manifestPath), err)
			}

			slog.Info("verifying manifest",
				"path", manifestPath,
				"entries", len(m.Entries),
				"concurrency", cmd.Int("concurrency"))

			v := verifier.New(
				verifier.WithVersion(version),
				verifier.WithConcurrency(int(cmd.Int("concurrency"))),
			)

			result, err := v.VerifyManifest(ctx, m)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "verification aborted", err)
			}

			if err := emitResult(ctx, cmd, result); err != nil {
				return fmt.Errorf("failed to emit verification result: %w", err)
			}

			slog.Info("verification completed",
				"status", result.Summary.Status,
				"matched", result.Summary.Matched,
				"mismatched", result.Summary.Mismatched,
				"errored", result.Summary.Errored,
				"duration", result.Summary.Duration)

			return resultErr(result)
		},
	}
}

// resultErr converts a completed verification into the error that drives the
// process exit code: nil for pass, a mismatch code for fail, a read code for
// error.
func resultErr(result *verifier.VerificationResult) error {
	switch result.Summary.Status {
	case verifier.StatusPass:
		return nil
	case verifier.StatusFail:
		return errors.New(errors.ErrCodeMismatch,
			fmt.Sprintf("%d file(s) did not match the expected checksum", result.Summary.Mismatched))
	default:
		return errors.New(errors.ErrCodeRead,
			fmt.Sprintf("%d file(s) could not be read", result.Summary.Errored))
	}
}
