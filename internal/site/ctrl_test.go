package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		value     *float64
		low, high *float64
		want      bool
	}{
		{name: "above high, no low", value: floatPtr(10), low: nil, high: floatPtr(8), want: true},
		{name: "below low, no high", value: floatPtr(10), low: floatPtr(12), high: nil, want: true},
		{name: "nil value never flags", value: nil, low: floatPtr(0), high: floatPtr(5), want: false},
		{name: "unbounded never flags", value: floatPtr(1e9), low: nil, high: nil, want: false},
		{name: "inside range", value: floatPtr(15), low: floatPtr(10), high: floatPtr(20), want: false},
		{name: "on low bound", value: floatPtr(10), low: floatPtr(10), high: floatPtr(20), want: false},
		{name: "on high bound", value: floatPtr(20), low: floatPtr(10), high: floatPtr(20), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CtrlRange{Mrplel: tt.low, Mrpleh: tt.high}
			assert.Equal(t, tt.want, r.PressureOut(tt.value))

			r = CtrlRange{Mrlevl: tt.low, Mrlevh: tt.high}
			assert.Equal(t, tt.want, r.LevelOut(tt.value))
		})
	}
}

func TestResolveCtrl(t *testing.T) {
	own := CtrlRange{Mrplel: floatPtr(5)}
	def := CtrlRange{Mrplel: floatPtr(10), Mrpleh: floatPtr(20)}
	ctrl := map[string]CtrlRange{"002": own}

	got := ResolveCtrl(ctrl, &def, "002")
	require.NotNil(t, got)
	assert.Equal(t, own, *got)

	got = ResolveCtrl(ctrl, &def, "001")
	require.NotNil(t, got)
	assert.Equal(t, def, *got)

	assert.Nil(t, ResolveCtrl(ctrl, nil, "001"))
}
