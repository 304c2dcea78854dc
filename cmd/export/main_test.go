package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/pai-curriculum/internal/export"
)

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := run([]string{"-o", path, "-dir", ""}, nil); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(export.SheetEpochs)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) < 2 {
		t.Errorf("Epochs sheet has %d rows, want header plus data", len(rows))
	}
}

func TestRun_Stdout(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"-o", "-", "-dir", ""}, &buf); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := excelize.OpenReader(&buf); err != nil {
		t.Errorf("stdout is not a workbook: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"missing yaml dir", []string{"-o", "-", "-dir", filepath.Join(t.TempDir(), "absent")}},
		{"unwritable output", []string{"-o", filepath.Join(t.TempDir(), "absent", "out.xlsx"), "-dir", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(tt.args, &buf); err == nil {
				t.Error("run() should return an error")
			}
		})
	}
}
