/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testOutcome struct {
	File   string `json:"file" yaml:"file"`
	Status string `json:"status" yaml:"status"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testOutcome{
		{File: "foo.txt", Status: "match"},
		{File: "bar.txt", Status: "mismatch"},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testOutcome
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].File != "foo.txt" || result[0].Status != "match" {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testOutcome{
		{File: "foo.txt", Status: "match"},
		{File: "bar.txt", Status: "mismatch"},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testOutcome
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[1].File != "bar.txt" || result[1].Status != "mismatch" {
		t.Errorf("Unexpected data: %+v", result[1])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []testOutcome{
		{File: "foo.txt", Status: "match"},
		{File: "bar.txt", Status: "mismatch"},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}
	if !strings.Contains(output, "[0].File") || !strings.Contains(output, "[1].Status") {
		t.Error("Expected flattened keys not found")
	}
}

func TestWriter_SerializeTable_NestedStructs(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type summary struct {
		Matched int
		Status  string
	}
	type result struct {
		Manifest string
		Summary  summary
	}

	data := result{
		Manifest: "checksums.txt",
		Summary:  summary{Matched: 3, Status: "pass"},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Summary.Matched") {
		t.Error("Expected flattened key 'Summary.Matched' not found")
	}
	if !strings.Contains(output, "pass") {
		t.Error("Expected value 'pass' not found")
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	err := writer.Serialize(context.Background(), []testOutcome{})
	if err != nil {
		t.Fatalf("Serialize empty slice failed: %v", err)
	}

	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("Expected '<empty>' in output for empty data, got: %s", buf.String())
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if writer == nil {
		t.Fatal("Expected non-nil writer with unknown format")
	}

	data := testOutcome{File: "foo.txt", Status: "match"}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize should fall back to JSON: %v", err)
	}

	var result testOutcome
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
	if result.File != "foo.txt" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)

	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	tests := []string{"", "  ", "\t", "\n"}

	for _, path := range tests {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		if closer, ok := writer.(Closer); ok {
			if err := closer.Close(); err != nil {
				t.Errorf("Close failed for empty path writer: %v", err)
			}
		}
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "result.json")

	writer := NewFileWriterOrStdout(FormatJSON, tmpFile)
	if writer == nil {
		t.Fatal("Expected non-nil writer")
	}

	data := testOutcome{File: "foo.txt", Status: "match"}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if closer, ok := writer.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var result testOutcome
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.File != "foo.txt" {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	// Falls back to stdout when the directory does not exist
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/result.json")

	if writer == nil {
		t.Fatal("Expected non-nil writer (should fall back to stdout)")
	}

	if closer, ok := writer.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Errorf("Close should not error on fallback writer: %v", err)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
