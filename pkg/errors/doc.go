/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for programmatic error
// handling across the application. The error code carried by a
// StructuredError is what the CLI layer translates into the process
// exit code.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeRead,
//	    "failed to compute digest",
//	    cause,
//	    map[string]interface{}{
//	        "file": path,
//	    },
//	)
package errors
