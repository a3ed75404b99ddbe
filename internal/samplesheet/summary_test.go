// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samplesheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/samplecheck/pkg/types"
)

func TestWriteSummary(t *testing.T) {
	result := &types.CheckResult{
		Format:  types.FormatFastq,
		Samples: 2,
		Rows:    3,
		Summaries: []types.SampleSummary{
			{Sample: "A", Runs: 2, Layout: "paired-end"},
			{Sample: "B", Runs: 1, Layout: "single-end"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(result, &buf))

	var got []types.SampleSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, result.Summaries, got)
}

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with context",
			err:  &Error{Problem: "FastQ file contains spaces", Context: "Line", Value: "S1,my file.fastq.gz,\n"},
			want: "please check samplesheet -> FastQ file contains spaces\nLine: 'S1,my file.fastq.gz,'",
		},
		{
			name: "without context",
			err:  &Error{Problem: "invalid header: a,b != sample,bam"},
			want: "please check samplesheet -> invalid header: a,b != sample,bam",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
