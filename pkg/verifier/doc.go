/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package verifier checks file contents against expected MD5 digests and
// aggregates the per-file outcomes into an overall verdict.
//
// A single file or every entry of a parsed manifest can be verified. Each
// file yields exactly one Outcome (match, mismatch, or error); a failing
// file never stops the rest of a manifest run, because the value of a batch
// run is a complete report. The overall status gives errors precedence over
// mismatches:
//
//	any error outcome    -> StatusError
//	else any mismatch    -> StatusFail
//	else                 -> StatusPass
//
// Usage:
//
//	v := verifier.New(verifier.WithVersion("v1.0.0"))
//	result, err := v.VerifyManifest(ctx, m)
//	if err != nil {
//	    return err
//	}
//	result.WriteReport(os.Stdout)
//
// Manifest entries are verified sequentially by default. WithConcurrency
// opts into parallel verification; report order is always restored to
// manifest order.
package verifier
