// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samplesheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// writeSheet writes the normalized rows as CSV to outPath. rows is a pointer
// to a slice of output row structs; the csv struct tags supply the header.
// Parent directories are created if absent.
func writeSheet(outPath string, rows interface{}) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing normalized samplesheet: %w", err)
	}
	return f.Close()
}
