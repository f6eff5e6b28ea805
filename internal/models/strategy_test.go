package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategyFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Strategy
		wantErr  bool
	}{
		{name: "exact", input: "exact", expected: StrategyExact},
		{name: "digest", input: "digest", expected: StrategyDigest},
		{name: "mixed case and spaces", input: "  Digest ", expected: StrategyDigest},
		{name: "unknown", input: "median", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewStrategyFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid strategy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewSketchKindFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected SketchKind
		wantErr  bool
	}{
		{input: "tdigest", expected: SketchTDigest},
		{input: "DDSketch", expected: SketchDDSketch},
		{input: "hdr", expected: SketchHDR},
		{input: "kll", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := NewSketchKindFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
