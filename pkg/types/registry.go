// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunRecord is one entry in the validation run registry: a samplesheet that
// passed validation, when it was checked, and what was written.
type RunRecord struct {
	// ID is the registry row identifier, assigned on insert.
	ID int64 `json:"id" yaml:"id"`

	// CheckedAt is when the validation completed.
	CheckedAt time.Time `json:"checked_at" yaml:"checked_at"`

	// Input is the samplesheet path that was validated.
	Input string `json:"input" yaml:"input"`

	// Output is the normalized CSV path that was written.
	Output string `json:"output" yaml:"output"`

	// Format is the samplesheet format ("FASTQ" or "BAM").
	Format Format `json:"format" yaml:"format"`

	// Samples and Rows mirror the CheckResult counts.
	Samples int `json:"samples" yaml:"samples"`
	Rows    int `json:"rows" yaml:"rows"`
}
