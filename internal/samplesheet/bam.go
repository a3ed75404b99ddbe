// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samplesheet

import (
	"fmt"
	"strings"

	"github.com/pdiddy/samplecheck/pkg/types"
)

// bamColumns are the required leading header columns of a BAM sheet.
var bamColumns = []string{"sample", "bam"}

// bamMinCols is the minimum number of populated fields per BAM row.
const bamMinCols = 2

// parseBam validates the header and every data row of a BAM samplesheet.
func parseBam(header string, lines []string) (*sheet, error) {
	if err := checkHeader(header, bamColumns); err != nil {
		return nil, err
	}

	sh := newSheet()
	for _, line := range lines {
		fields := splitFields(line)
		if len(fields) < len(bamColumns) {
			return nil, lineError(fmt.Sprintf("invalid number of columns (minimum = %d)", len(bamColumns)), line)
		}
		if populated(fields) < bamMinCols {
			return nil, lineError(fmt.Sprintf("invalid number of populated columns (minimum = %d)", bamMinCols), line)
		}

		sample := sanitizeSample(fields[0])
		bam := fields[1]
		if sample == "" {
			return nil, lineError("sample entry has not been specified", line)
		}

		if bam != "" {
			if strings.Contains(bam, " ") {
				return nil, lineError("BAM file contains spaces", line)
			}
			if !strings.HasSuffix(bam, ".bam") {
				return nil, lineError("BAM file does not have extension '.bam'", line)
			}
		}

		if err := sh.add(sample, run{file1: bam}, line); err != nil {
			return nil, err
		}
	}
	return sh, nil
}

// bamRows builds the normalized rows: samples sorted by name, runs numbered
// by the idx column. Sample names are not suffixed; the idx column carries
// the replicate rank instead.
func (s *sheet) bamRows() []types.BamOutputRow {
	var rows []types.BamOutputRow
	for _, sample := range s.samples() {
		for i, r := range s.runs[sample] {
			rows = append(rows, types.BamOutputRow{
				Sample: sample,
				Idx:    i + 1,
				Bam:    r.file1,
			})
		}
	}
	return rows
}
