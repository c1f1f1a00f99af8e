/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/GovTechSG/chkr/pkg/serializer"
	"github.com/GovTechSG/chkr/pkg/verifier"
)

// formatText is the default human-readable report format; the structured
// formats are handled by pkg/serializer.
const formatText = "text"

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path for the verification result (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   formatText,
	Usage: fmt.Sprintf("Output format for the verification result (supported values: %s, %s)",
		formatText, strings.Join(serializer.SupportedFormats(), ", ")),
}

// parseOutputFormat validates the --format flag. An empty format means the
// text report.
func parseOutputFormat(cmd *cli.Command) (string, error) {
	format := cmd.String("format")
	if format == "" || format == formatText {
		return formatText, nil
	}
	if serializer.Format(format).IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", format)
	}
	return format, nil
}

// emitResult writes the verification result to the --output destination in
// the --format representation.
func emitResult(ctx context.Context, cmd *cli.Command, result *verifier.VerificationResult) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	output := cmd.String("output")

	if format == formatText {
		w := os.Stdout
		if trimmed := strings.TrimSpace(output); trimmed != "" {
			f, err := os.Create(trimmed)
			if err != nil {
				return fmt.Errorf("failed to create output file %q: %w", trimmed, err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					slog.Warn("failed to close output file", "path", trimmed, "error", err)
				}
			}()
			w = f
		}
		return result.WriteReport(w)
	}

	ser := serializer.NewFileWriterOrStdout(serializer.Format(format), output)
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, result)
}
