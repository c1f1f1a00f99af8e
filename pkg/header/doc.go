/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the common resource header for chkr result
// documents.
//
// The Header type follows Kubernetes-style resource conventions with Kind,
// APIVersion, and Metadata fields so serialized verification results are
// self-describing:
//
//	{
//	  "kind": "VerificationResult",
//	  "apiVersion": "chkr.govtech.sg/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2025-08-25T10:30:00Z",
//	    "version": "v1.0.0",
//	    "run_id": "2f8a1f44-..."
//	  }
//	}
//
// Consumers should check APIVersion before parsing a result produced by a
// different chkr release.
package header
