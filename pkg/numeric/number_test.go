package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"  12  ", 12},
		{"", 0},
		{"-3.5", -3.5},
		{"1e3", 1000},
		{".5", 0.5},
		{"0x10", 16},
		{"0b101", 5},
		{"0o17", 15},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParse_NaN(t *testing.T) {
	for _, in := range []string{"a", "12abc", "inf", "NaN", "nan", "1_000", "0x", "-0x10", "0x1p-2", "--1"} {
		t.Run(in, func(t *testing.T) {
			assert.True(t, math.IsNaN(Parse(in)), "Parse(%q) should be NaN", in)
		})
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"89", true},
		{"  -12", true},
		{"3.7", true},
		{"0x10", true},
		{"", true},
		{"89cool", false},
		{"cool89", false},
		{"12 apples", false},
		{"-", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNumber(tt.in), "IsNumber(%q)", tt.in)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{120, "120"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-4, "-4"},
		{0.1 + 0.2, "0.30000000000000004"},
		{2.5, "2.5"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{2432902008176640000, "2432902008176640000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}
