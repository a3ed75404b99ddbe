// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		want   Format
		errMsg string
	}{
		{name: "FASTQ", arg: "FASTQ", want: FormatFastq},
		{name: "BAM", arg: "BAM", want: FormatBam},
		{name: "unknown format", arg: "XML", errMsg: "'FASTQ' or 'BAM'"},
		{name: "lowercase rejected", arg: "fastq", errMsg: "'FASTQ' or 'BAM'"},
		{name: "empty", arg: "", errMsg: "'FASTQ' or 'BAM'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.arg)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
