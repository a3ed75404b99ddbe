// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for samplecheck: samplesheet
// formats, normalized output rows, and validation results.
package types

import "fmt"

// Format identifies the kind of sequencing input a samplesheet describes.
type Format string

const (
	// FormatFastq is a samplesheet of FASTQ read files (single- or paired-end).
	FormatFastq Format = "FASTQ"
	// FormatBam is a samplesheet of aligned BAM files.
	FormatBam Format = "BAM"
)

// ParseFormat converts a CLI argument into a Format. The match is
// case-sensitive: downstream pipeline stages dispatch on the exact strings
// "FASTQ" and "BAM".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatFastq:
		return FormatFastq, nil
	case FormatBam:
		return FormatBam, nil
	default:
		return "", fmt.Errorf("input format needs to be either 'FASTQ' or 'BAM', got %q", s)
	}
}

// FastqOutputRow is one line of the normalized FASTQ samplesheet. The csv
// tags define the output header: sample,single_end,fastq_1,fastq_2.
type FastqOutputRow struct {
	// Sample is the sanitized sample name with its _T{n} replicate suffix.
	Sample string `csv:"sample"`

	// SingleEnd is "1" for single-end runs and "0" for paired-end runs.
	SingleEnd string `csv:"single_end"`

	Fastq1 string `csv:"fastq_1"`
	Fastq2 string `csv:"fastq_2"`
}

// BamOutputRow is one line of the normalized BAM samplesheet. Unlike the
// FASTQ shape, the sample name is left unsuffixed and replicates are
// disambiguated by the idx column instead. Downstream stages depend on this
// asymmetry.
type BamOutputRow struct {
	Sample string `csv:"sample"`

	// Idx is the 1-based position of this run within its sample group.
	Idx int `csv:"idx"`

	Bam string `csv:"bam"`
}

// SampleSummary describes one sample group in a validated samplesheet.
type SampleSummary struct {
	// Sample is the sanitized sample name, without replicate suffix.
	Sample string `json:"sample" yaml:"sample"`

	// Runs is the number of rows (sequencing runs) for this sample.
	Runs int `json:"runs" yaml:"runs"`

	// Layout is "single-end" or "paired-end" for FASTQ sheets, "bam" for
	// BAM sheets.
	Layout string `json:"layout" yaml:"layout"`
}

// CheckResult reports what a successful validation produced.
type CheckResult struct {
	// Format is the samplesheet format that was validated.
	Format Format `json:"format" yaml:"format"`

	// Samples is the number of distinct sample groups written.
	Samples int `json:"samples" yaml:"samples"`

	// Rows is the number of data rows written to the normalized sheet.
	Rows int `json:"rows" yaml:"rows"`

	// Summaries lists the sample groups in output order (sorted by name).
	Summaries []SampleSummary `json:"summaries" yaml:"summaries"`
}
