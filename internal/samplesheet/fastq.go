// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samplesheet

import (
	"fmt"
	"strings"

	"github.com/pdiddy/samplecheck/pkg/types"
)

// fastqColumns are the required leading header columns of a FASTQ sheet.
var fastqColumns = []string{"sample", "fastq_1", "fastq_2"}

// fastqMinCols is the minimum number of populated fields per FASTQ row
// (sample plus at least the first read file).
const fastqMinCols = 2

// parseFastq validates the header and every data row of a FASTQ samplesheet,
// classifying each row as single- or paired-end.
func parseFastq(header string, lines []string) (*sheet, error) {
	if err := checkHeader(header, fastqColumns); err != nil {
		return nil, err
	}

	sh := newSheet()
	for _, line := range lines {
		fields := splitFields(line)
		if len(fields) < len(fastqColumns) {
			return nil, lineError(fmt.Sprintf("invalid number of columns (minimum = %d)", len(fastqColumns)), line)
		}
		if populated(fields) < fastqMinCols {
			return nil, lineError(fmt.Sprintf("invalid number of populated columns (minimum = %d)", fastqMinCols), line)
		}

		sample := sanitizeSample(fields[0])
		fastq1, fastq2 := fields[1], fields[2]
		if sample == "" {
			return nil, lineError("sample entry has not been specified", line)
		}

		for _, fq := range []string{fastq1, fastq2} {
			if fq == "" {
				continue
			}
			if strings.Contains(fq, " ") {
				return nil, lineError("FastQ file contains spaces", line)
			}
			if !strings.HasSuffix(fq, ".fastq.gz") && !strings.HasSuffix(fq, ".fq.gz") {
				return nil, lineError("FastQ file does not have extension '.fastq.gz' or '.fq.gz'", line)
			}
		}

		var r run
		switch {
		case fastq1 != "" && fastq2 != "": // paired-end
			r = run{singleEnd: "0", file1: fastq1, file2: fastq2}
		case fastq1 != "": // single-end
			r = run{singleEnd: "1", file1: fastq1}
		default:
			return nil, lineError("invalid combination of columns provided", line)
		}

		if err := sh.add(sample, r, line); err != nil {
			return nil, err
		}
	}
	return sh, nil
}

// fastqRows builds the normalized rows: samples sorted by name, each run
// renamed with its 1-based _T{n} replicate suffix. All runs of a sample must
// share one single/paired-end classification.
func (s *sheet) fastqRows() ([]types.FastqOutputRow, error) {
	var rows []types.FastqOutputRow
	for _, sample := range s.samples() {
		runs := s.runs[sample]
		for _, r := range runs {
			if r.singleEnd != runs[0].singleEnd {
				return nil, &Error{
					Problem: "multiple runs of a sample must be of the same datatype",
					Context: "Sample",
					Value:   sample,
				}
			}
		}
		for i, r := range runs {
			rows = append(rows, types.FastqOutputRow{
				Sample:    fmt.Sprintf("%s_T%d", sample, i+1),
				SingleEnd: r.singleEnd,
				Fastq1:    r.file1,
				Fastq2:    r.file2,
			})
		}
	}
	return rows, nil
}
