/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/GovTechSG/chkr/pkg/checksum"
	"github.com/GovTechSG/chkr/pkg/header"
	"github.com/GovTechSG/chkr/pkg/manifest"
)

// APIVersion is the API version for verification results.
const APIVersion = "chkr.govtech.sg/v1alpha1"

// Verifier checks file contents against expected MD5 digests.
type Verifier struct {
	// Version is the verifier version (typically the CLI version).
	Version string

	// Concurrency is the number of manifest entries verified in parallel.
	// Values below 2 mean sequential verification.
	Concurrency int
}

// Option is a functional option for configuring Verifier instances.
type Option func(*Verifier)

// WithVersion returns an Option that sets the Verifier version string.
func WithVersion(version string) Option {
	return func(v *Verifier) {
		v.Version = version
	}
}

// WithConcurrency returns an Option that sets how many manifest entries are
// verified in parallel. Report order is restored to manifest order either way.
func WithConcurrency(n int) Option {
	return func(v *Verifier) {
		v.Concurrency = n
	}
}

// New creates a new Verifier with the provided options.
func New(opts ...Option) *Verifier {
	v := &Verifier{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyFile verifies a single file against an expected checksum.
// The comparison is case-insensitive. A file that cannot be read yields an
// error outcome, not an error return; the error return is reserved for a
// canceled context.
func (v *Verifier) VerifyFile(ctx context.Context, path, expected string) (*VerificationResult, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := v.newResult()
	result.Outcomes = append(result.Outcomes, v.verify(ctx, path, path, expected))
	result.Summary = summarize(result.Outcomes, time.Since(start))

	slog.Debug("file verification completed",
		"file", path,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// VerifyManifest verifies every entry of the manifest, in order, without
// early termination: one unreadable or mismatched file does not stop the
// remaining entries. Every entry yields exactly one outcome.
func (v *Verifier) VerifyManifest(ctx context.Context, m *manifest.Manifest) (*VerificationResult, error) {
	start := time.Now()

	if m == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	result := v.newResult()
	result.ManifestSource = m.Path

	var err error
	if v.Concurrency > 1 {
		result.Outcomes, err = v.verifyParallel(ctx, m)
	} else {
		result.Outcomes, err = v.verifySequential(ctx, m)
	}
	if err != nil {
		return nil, err
	}

	result.Summary = summarize(result.Outcomes, time.Since(start))

	slog.Debug("manifest verification completed",
		"manifest", m.Path,
		"matched", result.Summary.Matched,
		"mismatched", result.Summary.Mismatched,
		"errored", result.Summary.Errored,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// verifySequential processes entries one file at a time, fully closing each
// file before the next is opened.
func (v *Verifier) verifySequential(ctx context.Context, m *manifest.Manifest) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(m.Entries))

	total := len(m.Entries)
	for i, e := range m.Entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		o := v.verify(ctx, e.Path, m.Resolve(e), e.Checksum)
		outcomes = append(outcomes, o)

		slog.Debug("entry verified",
			"file", e.Path,
			"status", o.Status,
			"progress", fmt.Sprintf("%d/%d", i+1, total))
	}

	return outcomes, nil
}

// verifyParallel processes entries concurrently with a bounded worker count.
// Outcomes are written by entry index so the report keeps manifest order.
func (v *Verifier) verifyParallel(ctx context.Context, m *manifest.Manifest) ([]Outcome, error) {
	outcomes := make([]Outcome, len(m.Entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.Concurrency)

	for i, e := range m.Entries {
		i, e := i, e
		g.Go(func() error {
			// Per-file failures become outcomes, never errors, so one bad
			// file cannot cancel the rest of the batch.
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = v.verify(gctx, e.Path, m.Resolve(e), e.Checksum)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// verify checks one file. displayPath is what the outcome reports; fullPath
// is what gets opened.
func (v *Verifier) verify(ctx context.Context, displayPath, fullPath, expected string) Outcome {
	o := Outcome{
		File:     displayPath,
		Expected: expected,
	}

	actual, err := checksum.ComputeFile(ctx, fullPath)
	if err != nil {
		o.Status = OutcomeError
		o.Message = err.Error()
		return o
	}
	o.Actual = actual

	if strings.EqualFold(actual, expected) {
		o.Status = OutcomeMatch
		return o
	}

	o.Status = OutcomeMismatch
	o.Message = fmt.Sprintf("expected %s, got %s", expected, actual)
	return o
}

// newResult creates a result with an initialized header and a fresh run id.
func (v *Verifier) newResult() *VerificationResult {
	result := NewVerificationResult()
	result.Init(header.KindVerificationResult, APIVersion, v.Version)
	result.SetMetadata("run_id", uuid.NewString())
	return result
}
