/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package checksum

import (
	"context"
	"crypto/md5" //nolint:gosec // MD5 is the digest the manifest format mandates, not a security control
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DigestLength is the length of an MD5 digest in hex characters.
const DigestLength = 32

// ComputeFile computes the MD5 digest of the file at path and returns it as
// a lowercase hex string. The file is streamed through the hash, so memory
// use does not depend on file size.
//
// Returns an error if the context is canceled, the file cannot be opened,
// or a read fails mid-stream. The file handle is closed on every path.
func ComputeFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context cancelled: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close file", "path", path, "error", err)
		}
	}()

	h := md5.New() //nolint:gosec // see import note
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	digest := hex.EncodeToString(h.Sum(nil))

	slog.Debug("digest computed", "path", path, "digest", digest)

	return digest, nil
}

// IsWellFormed reports whether s is a syntactically valid MD5 digest:
// exactly DigestLength hex characters, either case.
func IsWellFormed(s string) bool {
	if len(s) != DigestLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
