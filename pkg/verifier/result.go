/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/GovTechSG/chkr/pkg/header"
)

// Status represents the overall verification outcome.
type Status string

const (
	// StatusPass indicates every file matched its expected checksum.
	StatusPass Status = "pass"

	// StatusFail indicates at least one file did not match its expected checksum.
	StatusFail Status = "fail"

	// StatusError indicates at least one file could not be read.
	StatusError Status = "error"
)

// OutcomeStatus represents the result of verifying a single file.
type OutcomeStatus string

const (
	// OutcomeMatch indicates the computed digest equals the expected one.
	OutcomeMatch OutcomeStatus = "match"

	// OutcomeMismatch indicates the computed digest differs from the expected one.
	OutcomeMismatch OutcomeStatus = "mismatch"

	// OutcomeError indicates the file could not be opened or read.
	OutcomeError OutcomeStatus = "error"
)

// Outcome represents the verification result for a single file.
type Outcome struct {
	// File is the file path as reported to the user (manifest-relative in
	// manifest mode).
	File string `json:"file" yaml:"file"`

	// Status is the outcome of this file's verification.
	Status OutcomeStatus `json:"status" yaml:"status"`

	// Expected is the checksum the file was verified against.
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the computed digest. Empty when the file could not be read.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Message provides additional context for mismatches and read errors.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Summary contains aggregate statistics about a verification run.
type Summary struct {
	// Matched is the count of files whose digests matched.
	Matched int `json:"matched" yaml:"matched"`

	// Mismatched is the count of files whose digests did not match.
	Mismatched int `json:"mismatched" yaml:"mismatched"`

	// Errored is the count of files that could not be read.
	Errored int `json:"errored" yaml:"errored"`

	// Total is the total number of files verified.
	Total int `json:"total" yaml:"total"`

	// Status is the overall verification status.
	Status Status `json:"status" yaml:"status"`

	// Duration is how long the verification took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// VerificationResult represents the complete outcome of a verification run.
type VerificationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// ManifestSource is the manifest path for manifest runs, empty for
	// single-file runs.
	ManifestSource string `json:"manifestSource,omitempty" yaml:"manifestSource,omitempty"`

	// Summary contains aggregate verification statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Outcomes contains per-file verification details, in input order.
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// NewVerificationResult creates a new VerificationResult with initialized slices.
func NewVerificationResult() *VerificationResult {
	return &VerificationResult{
		Outcomes: make([]Outcome, 0),
	}
}

// summarize derives the Summary for a set of outcomes. Error outcomes take
// precedence over mismatches when deriving the overall status.
func summarize(outcomes []Outcome, duration time.Duration) Summary {
	s := Summary{
		Total:    len(outcomes),
		Duration: duration,
	}

	for _, o := range outcomes {
		switch o.Status {
		case OutcomeMatch:
			s.Matched++
		case OutcomeMismatch:
			s.Mismatched++
		case OutcomeError:
			s.Errored++
		}
	}

	switch {
	case s.Errored > 0:
		s.Status = StatusError
	case s.Mismatched > 0:
		s.Status = StatusFail
	default:
		s.Status = StatusPass
	}

	return s
}

// WriteReport writes a human-readable line per outcome followed by a summary
// line. Mismatches show expected vs actual digests, errors show the cause.
func (r *VerificationResult) WriteReport(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, o := range r.Outcomes {
		switch o.Status {
		case OutcomeMatch:
			fmt.Fprintf(tw, "match\t%s\n", o.File)
		case OutcomeMismatch:
			fmt.Fprintf(tw, "mismatch\t%s\texpected %s, got %s\n", o.File, o.Expected, o.Actual)
		case OutcomeError:
			fmt.Fprintf(tw, "error\t%s\t%s\n", o.File, o.Message)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	_, err := fmt.Fprintf(w, "%s: %d matched, %d mismatched, %d errored (%d total)\n",
		r.Summary.Status, r.Summary.Matched, r.Summary.Mismatched, r.Summary.Errored, r.Summary.Total)
	return err
}
