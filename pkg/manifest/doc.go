/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest parses checksum manifest files.
//
// A manifest is a plain text file listing one entry per line in the
// md5sum-compatible format:
//
//	<32-hex-char checksum><whitespace><file-path>
//
// Blank lines and lines starting with '#' are ignored. Any other malformed
// line fails the whole parse: a corrupted manifest must not produce a false
// "all clear", so the parser never silently skips entries.
//
// Relative entry paths are resolved against the manifest file's own
// directory, so a manifest can be verified from any working directory.
//
// Usage:
//
//	m, err := manifest.Load("release/checksums.txt")
//	if err != nil {
//	    return err
//	}
//	for _, e := range m.Entries {
//	    fmt.Println(e.Path, e.Checksum, m.Resolve(e))
//	}
package manifest
