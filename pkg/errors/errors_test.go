/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParse, "manifest is malformed")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeParse {
		t.Errorf("expected code %s, got %s", ErrCodeParse, err.Code)
	}
	if err.Message != "manifest is malformed" {
		t.Errorf("expected message 'manifest is malformed', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRead, "digest computation failed", cause)

	if err.Code != ErrCodeRead {
		t.Errorf("expected code %s, got %s", ErrCodeRead, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	ctx := map[string]interface{}{
		"file": "release/app.tar.gz",
		"line": 4,
	}

	err := WrapWithContext(ErrCodeRead, "file verification failed", cause, ctx)

	if err.Code != ErrCodeRead {
		t.Errorf("expected code %s, got %s", ErrCodeRead, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["file"] != "release/app.tar.gz" {
		t.Errorf("expected file to be release/app.tar.gz")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeMismatch, "digest mismatch"),
			expected: "[CHECKSUM_MISMATCH] digest mismatch",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "direct structured error",
			err:  New(ErrCodeMismatch, "digest mismatch"),
			want: ErrCodeMismatch,
		},
		{
			name: "structured error wrapped in fmt.Errorf",
			err:  fmt.Errorf("verification: %w", New(ErrCodeParse, "bad line")),
			want: ErrCodeParse,
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeMismatch,
		ErrCodeRead,
		ErrCodeParse,
		ErrCodeInvalidRequest,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
