/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package checksum computes MD5 digests of file contents for integrity
// verification.
//
// Digests are streamed through the hash so memory use is independent of
// file size, and are always returned as 32-character lowercase hex strings.
//
// Usage:
//
//	digest, err := checksum.ComputeFile(ctx, "/path/to/file")
//	if err != nil {
//	    return err
//	}
//
// The digest format is compatible with the md5sum utility:
//
//	md5sum -c checksums.txt
package checksum
