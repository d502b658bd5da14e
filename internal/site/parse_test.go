package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseNumberLoose(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *float64
	}{
		{name: "nil", in: nil, want: nil},
		{name: "empty", in: strPtr(""), want: nil},
		{name: "whitespace only", in: strPtr("   "), want: nil},
		{name: "plain number", in: strPtr("12.5"), want: floatPtr(12.5)},
		{name: "unit suffix", in: strPtr("12.5psi"), want: floatPtr(12.5)},
		{name: "thousands separator", in: strPtr("1,234 mbar"), want: floatPtr(1234)},
		{name: "dashes only", in: strPtr("--"), want: nil},
		{name: "negative", in: strPtr("-7.25"), want: floatPtr(-7.25)},
		{name: "leading plus", in: strPtr("+42"), want: floatPtr(42)},
		{name: "letters only", in: strPtr("n/a"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumberLoose(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

// Multi-decimal garbage is stripped of nothing (all runes are allowed) and
// handed to the parser; this pins the pass-through behavior rather than
// assuming early rejection.
func TestParseNumberLoosePassThrough(t *testing.T) {
	assert.Nil(t, ParseNumberLoose(strPtr("1.2.3")))
	assert.Nil(t, ParseNumberLoose(strPtr("+-5")))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *float64
	}{
		{name: "nil", in: nil, want: nil},
		{name: "empty", in: strPtr(""), want: nil},
		{name: "plain", in: strPtr("12.5"), want: floatPtr(12.5)},
		{name: "padded", in: strPtr(" 12.5 "), want: floatPtr(12.5)},
		{name: "unit suffix rejected", in: strPtr("12.5psi"), want: nil},
		{name: "negative", in: strPtr("-3"), want: floatPtr(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumber(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func floatPtr(f float64) *float64 { return &f }
