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

	"github.com/GovTechSG/chkr/pkg/checksum"
	"github.com/GovTechSG/chkr/pkg/errors"
	"github.com/GovTechSG/chkr/pkg/verifier"
)

func fileCmd() *cli.Command {
	return &cli.Command{
		Name:                  "file",
		EnableShellCompletion: true,
		Usage:                 "Verify a single file against an expected MD5 checksum",
		ArgsUsage:             "<file-path> <expected-checksum>",
		Description: `Compute the MD5 digest of a file and compare it against the expected value.
The comparison is case-insensitive.

# Examples

Verify a download against its published checksum:
  chkr file ubuntu.iso 4d93d51945b88325c213640ef59fc50b

Keep a structured record of the verification:
  chkr file ubuntu.iso 4d93d51945b88325c213640ef59fc50b --format yaml -o result.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("expected <file-path> <expected-checksum>, got %d argument(s)", args.Len()))
			}

			filePath := args.Get(0)
			expected := args.Get(1)

			if !checksum.IsWellFormed(expected) {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("expected checksum %q is not a %d-character hex digest", expected, checksum.DigestLength))
			}

			slog.Info("verifying file", "file", filePath)

			v := verifier.New(
				verifier.WithVersion(version),
			)

			result, err := v.VerifyFile(ctx, filePath, expected)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "verification aborted", err)
			}

			if err := emitResult(ctx, cmd, result); err != nil {
				return fmt.Errorf("failed to emit verification result: %w", err)
			}

			return resultErr(result)
		},
	}
}
