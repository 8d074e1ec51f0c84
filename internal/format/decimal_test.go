package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		digits int
		want   string
	}{
		{"binary value below tie", 1.005, 2, "1.00"},
		{"binary value below tie 2", 2.675, 2, "2.67"},
		{"binary value below tie 3", 1.45, 1, "1.4"},
		{"exact tie rounds away from zero", 0.125, 2, "0.13"},
		{"half to integer", 2.5, 0, "3"},
		{"negative half to integer", -1.5, 0, "-2"},
		{"carry into integer part", 99.95, 1, "100.0"},
		{"carry adds a digit", 9.996, 2, "10.00"},
		{"zero", 0, 2, "0.00"},
		{"pads with zeros", 8.2, 3, "8.200"},
		{"integer", 180, 1, "180.0"},
		{"no decimals", 39.285714285714285, 0, "39"},
		{"negative digits treated as zero", 7.7, -1, "8"},
		{"large value", 1234567.891, 2, "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFixed(tt.v, tt.digits))
		})
	}
}

func TestToFixed_ClampsDigits(t *testing.T) {
	got := ToFixed(1, exactDigits)
	assert.Equal(t, "1."+strings.Repeat("0", MaxFixedDigits), got)

	assert.Equal(t, ToFixed(0.1, MaxFixedDigits), ToFixed(0.1, MaxFixedDigits+1))
	assert.NotPanics(t, func() { ToFixed(-2.5, 1<<20) })
}

func TestToFixed_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN", ToFixed(math.NaN(), 2))
	assert.Equal(t, "Infinity", ToFixed(math.Inf(1), 2))
	assert.Equal(t, "-Infinity", ToFixed(math.Inf(-1), 2))
}

func TestRound(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{2.5, 3},
		{2.4999, 2},
		{-2.5, -2},
		{-2.6, -3},
		{0.49999999999999994, 0},
		{59.523809523809526, 60},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.v), "Round(%v)", tt.v)
	}
}

func TestRoundString(t *testing.T) {
	assert.Equal(t, "60", RoundString(59.523809523809526))
	assert.Equal(t, "0", RoundString(-0.4))
	assert.Equal(t, "-2", RoundString(-2.5))
}

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   string
	}{
		{12345.678, 1, "12,345.7"},
		{999.95, 1, "1,000.0"},
		{-1234567.5, 0, "-1,234,568"},
		{42, 2, "42.00"},
		{1e20, 0, "100,000,000,000,000,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatGrouped(tt.v, tt.digits), "FormatGrouped(%v, %d)", tt.v, tt.digits)
	}
}
