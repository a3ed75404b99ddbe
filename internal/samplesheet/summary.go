// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samplesheet

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/samplecheck/pkg/types"
)

// WriteSummary writes the per-sample summary of a validation result as a
// YAML list to w, in output (sorted-sample) order.
func WriteSummary(result *types.CheckResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(result.Summaries)
}
