/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/GovTechSG/chkr/pkg/checksum"
)

// commentPrefix marks lines that are skipped during parsing.
const commentPrefix = "#"

// Entry is a single (expected checksum, file path) pair from a manifest.
// Entries are immutable once parsed.
type Entry struct {
	// Path is the file path exactly as written in the manifest.
	Path string `json:"path" yaml:"path"`

	// Checksum is the expected MD5 digest for the file.
	Checksum string `json:"checksum" yaml:"checksum"`
}

// Manifest is the parsed content of a checksum manifest file.
// Entries preserve manifest order for deterministic reporting.
type Manifest struct {
	// Path is the manifest file path as supplied by the caller.
	Path string `json:"path" yaml:"path"`

	// Dir is the absolute directory of the manifest file. Relative entry
	// paths resolve against it.
	Dir string `json:"dir" yaml:"dir"`

	// Entries are the parsed checksum entries, in manifest order.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// ParseError describes a malformed manifest line. The whole parse fails on
// the first malformed line; no entries are returned alongside a ParseError.
type ParseError struct {
	// Path is the manifest file path.
	Path string

	// Line is the 1-based line number of the offending line.
	Line int

	// Content is the offending line as read from the file.
	Content string

	// Reason describes why the line is invalid.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Content)
}

// Load reads and parses the manifest file at path.
// Returns a *ParseError if any non-blank, non-comment line does not contain
// exactly a well-formed MD5 digest followed by a file path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close manifest", "path", path, "error", err)
		}
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
	}

	m := &Manifest{
		Path:    path,
		Dir:     filepath.Dir(abs),
		Entries: make([]Entry, 0),
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{
				Path:    path,
				Line:    lineNo,
				Content: raw,
				Reason:  fmt.Sprintf("expected 2 fields, got %d", len(fields)),
			}
		}

		digest, file := fields[0], fields[1]
		if !checksum.IsWellFormed(digest) {
			return nil, &ParseError{
				Path:    path,
				Line:    lineNo,
				Content: raw,
				Reason:  fmt.Sprintf("invalid checksum %q, expected %d hex characters", digest, checksum.DigestLength),
			}
		}

		m.Entries = append(m.Entries, Entry{
			Path:     file,
			Checksum: digest,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	slog.Debug("manifest loaded", "path", path, "entries", len(m.Entries))

	return m, nil
}

// Resolve returns the filesystem path for an entry. Relative entry paths
// are joined to the manifest's directory; absolute paths pass through.
func (m *Manifest) Resolve(e Entry) string {
	if filepath.IsAbs(e.Path) {
		return e.Path
	}
	return filepath.Join(m.Dir, e.Path)
}
