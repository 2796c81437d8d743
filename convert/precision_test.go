package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionModel_MakePrecise(t *testing.T) {
	cases := []struct {
		name string
		pm   PrecisionModel
		in   float64
		want float64
	}{
		{"零值即 Floating", PrecisionModel{}, 1.23456789, 1.23456789},
		{"Floating", NewFloating(), -0.1, -0.1},
		{"FloatingSingle", NewFloatingSingle(), 0.1, float64(float32(0.1))},
		{"两位小数", NewFixedDecimals(2), 1.23456, 1.23},
		{"两位小数进位", NewFixedDecimals(2), 2.34567, 2.35},
		{".5 向正方向进位", NewFixed(1), -2.5, -2},
		{"整数", NewFixed(1), 2.5, 3},
		{"网格 10", NewFixed(0.1), 1234, 1230},
		{"网格 10 进位", NewFixed(0.1), 1235, 1240},
		{"非法比例尺退化为 Floating", NewFixed(0), 1.5, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.pm.MakePrecise(tc.in), 1e-9)
		})
	}
}

func TestPrecisionModel_NaN(t *testing.T) {
	for _, pm := range []PrecisionModel{NewFloating(), NewFloatingSingle(), NewFixedDecimals(3)} {
		assert.True(t, math.IsNaN(pm.MakePrecise(math.NaN())), pm.String())
	}
}

func TestPrecisionModel_String(t *testing.T) {
	assert.Equal(t, "Floating", NewFloating().String())
	assert.Equal(t, "Fixed(scale=1000)", NewFixedDecimals(3).String())
	assert.True(t, NewFloatingSingle().IsFloating())
	assert.False(t, NewFixed(10).IsFloating())
	assert.Equal(t, 10.0, NewFixed(-10).Scale())
}
