// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samplesheet

import (
	"fmt"
	"strings"
)

// Error is a samplesheet validation failure. Problem states what is wrong;
// Context/Value point at the offending input (a raw line, a sample name, or
// the samplesheet path). The rendered message is part of the pipeline's
// user-facing contract, so wording stays stable.
type Error struct {
	Problem string
	Context string
	Value   string
}

func (e *Error) Error() string {
	msg := "please check samplesheet -> " + e.Problem
	if e.Context != "" && e.Value != "" {
		msg += fmt.Sprintf("\n%s: '%s'", e.Context, strings.TrimSpace(e.Value))
	}
	return msg
}

// lineError reports a per-row violation, citing the raw line.
func lineError(problem, line string) *Error {
	return &Error{Problem: problem, Context: "Line", Value: line}
}
