// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package samplesheet validates a tabular samplesheet of sequencing inputs
// and writes the normalized CSV downstream pipeline stages consume. The
// first violation aborts the whole check; a malformed sheet never produces
// partial output.
package samplesheet

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/samplecheck/pkg/types"
)

// run is one validated data row. For FASTQ rows singleEnd is "0" (paired)
// or "1" (single) and file2 may be empty; BAM rows use file1 only.
type run struct {
	singleEnd string
	file1     string
	file2     string
}

// sheet holds validated runs grouped by sanitized sample name. Runs keep
// their encounter order within a group; groups are sorted by name at output.
type sheet struct {
	runs map[string][]run
}

func newSheet() *sheet {
	return &sheet{runs: make(map[string][]run)}
}

// add records a run for sample, rejecting an exact repeat of a run already
// seen for that sample.
func (s *sheet) add(sample string, r run, line string) error {
	for _, seen := range s.runs[sample] {
		if seen == r {
			return lineError("samplesheet contains duplicate rows", line)
		}
	}
	s.runs[sample] = append(s.runs[sample], r)
	return nil
}

// samples returns the group names in output order.
func (s *sheet) samples() []string {
	names := make([]string, 0, len(s.runs))
	for name := range s.runs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check validates the samplesheet at inPath and writes the normalized CSV to
// outPath, creating parent directories as needed. It returns what was
// written, or the first violation found. On error no output file is written.
func Check(inPath, outPath string, format types.Format) (*types.CheckResult, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("reading samplesheet: %w", err)
	}

	header, lines := splitSheet(string(data))

	var sh *sheet
	switch format {
	case types.FormatFastq:
		sh, err = parseFastq(header, lines)
	case types.FormatBam:
		sh, err = parseBam(header, lines)
	default:
		return nil, fmt.Errorf("input format needs to be either 'FASTQ' or 'BAM', got %q", format)
	}
	if err != nil {
		return nil, err
	}

	if len(sh.runs) == 0 {
		return nil, &Error{Problem: "no entries to process", Context: "Samplesheet", Value: inPath}
	}

	result := &types.CheckResult{Format: format, Samples: len(sh.runs)}

	switch format {
	case types.FormatFastq:
		rows, err := sh.fastqRows()
		if err != nil {
			return nil, err
		}
		if err := writeSheet(outPath, &rows); err != nil {
			return nil, err
		}
		result.Rows = len(rows)
	case types.FormatBam:
		rows := sh.bamRows()
		if err := writeSheet(outPath, &rows); err != nil {
			return nil, err
		}
		result.Rows = len(rows)
	}

	result.Summaries = sh.summaries(format)
	return result, nil
}

// splitSheet separates the header line from the data lines. A trailing
// newline does not produce an empty final row; interior blank lines are kept
// so the per-row checks can reject them.
func splitSheet(data string) (header string, lines []string) {
	all := strings.Split(data, "\n")
	for i, line := range all {
		all[i] = strings.TrimSuffix(line, "\r")
	}
	if n := len(all); n > 0 && all[n-1] == "" {
		all = all[:n-1]
	}
	if len(all) == 0 {
		return "", nil
	}
	return all[0], all[1:]
}

// checkHeader verifies that the header starts with the required columns.
// Extra trailing columns are ignored.
func checkHeader(header string, required []string) error {
	fields := strings.Split(strings.TrimSpace(header), ",")
	for i, f := range fields {
		fields[i] = strings.Trim(f, `"`)
	}
	ok := len(fields) >= len(required)
	if ok {
		for i, want := range required {
			if fields[i] != want {
				ok = false
				break
			}
		}
	}
	if !ok {
		return &Error{Problem: fmt.Sprintf("invalid header: %s != %s",
			strings.Join(fields, ","), strings.Join(required, ","))}
	}
	return nil
}

// splitFields breaks a data line into fields, trimming whitespace and
// surrounding quotes from each.
func splitFields(line string) []string {
	fields := strings.Split(strings.TrimSpace(line), ",")
	for i, f := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}
	return fields
}

// populated counts the non-empty fields of a row.
func populated(fields []string) int {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n
}

// sanitizeSample rewrites internal spaces to underscores.
func sanitizeSample(sample string) string {
	return strings.ReplaceAll(sample, " ", "_")
}

// summaries describes the sample groups in output order.
func (s *sheet) summaries(format types.Format) []types.SampleSummary {
	out := make([]types.SampleSummary, 0, len(s.runs))
	for _, name := range s.samples() {
		runs := s.runs[name]
		layout := "bam"
		if format == types.FormatFastq {
			layout = "paired-end"
			if runs[0].singleEnd == "1" {
				layout = "single-end"
			}
		}
		out = append(out, types.SampleSummary{Sample: name, Runs: len(runs), Layout: layout})
	}
	return out
}
