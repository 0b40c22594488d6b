package numeric

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1.0, Factorial(0))
	assert.Equal(t, 1.0, Factorial(1))
	assert.Equal(t, 120.0, Factorial(5))
	assert.Equal(t, "2432902008176640000", Format(Factorial(20)))

	assert.True(t, math.IsNaN(Factorial(-3)))
	assert.True(t, math.IsNaN(Factorial(Parse("a"))))
	assert.True(t, math.IsNaN(Factorial(2.5)))

	assert.True(t, math.IsInf(Factorial(171), 1))
	assert.False(t, math.IsInf(Factorial(170), 1))
}

func TestFactorialExact(t *testing.T) {
	got, err := FactorialExact(25)
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000", got.String())

	got, err = FactorialExact(0)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	_, err = FactorialExact(-1)
	assert.Error(t, err)
}

func TestSecondBiggest(t *testing.T) {
	assert.Equal(t, 0.0, SecondBiggest(nil))
	assert.Equal(t, 0.0, SecondBiggest([]float64{5}))
	assert.Equal(t, 4.0, SecondBiggest([]float64{3, 1, 4, 1, 5}))
	assert.Equal(t, 5.0, SecondBiggest([]float64{5, 1, 5}), "duplicates are kept")
	assert.Equal(t, -2.0, SecondBiggest([]float64{-2, math.NaN(), -1}))
}

func TestSecondBiggestIndex(t *testing.T) {
	assert.Equal(t, -1, SecondBiggestIndex(nil))
	assert.Equal(t, -1, SecondBiggestIndex([]float64{5}))
	assert.Equal(t, 0, SecondBiggestIndex([]float64{7, 3, 10}))
	assert.Equal(t, 2, SecondBiggestIndex([]float64{5, 1, 5}), "ties keep input order")
	assert.Equal(t, 0, SecondBiggestIndex([]float64{-2, math.NaN(), -1}))
}

func TestSecondBiggest_DoesNotMutateInput(t *testing.T) {
	in := []float64{1, 2, 3}
	SecondBiggest(in)
	assert.Equal(t, []float64{1, 2, 3}, in)
}

func TestAdd(t *testing.T) {
	assert.Equal(t, 5.0, Add("2", "3"))
	assert.Equal(t, "0.30000000000000004", Format(Add("0.1", "0.2")))
	assert.True(t, math.IsNaN(Add("2", "x")))
}

func TestSquareSize(t *testing.T) {
	tests := []struct {
		in         float64
		rows, cols int
		ok         bool
	}{
		{3, 3, 3, true},
		{2.5, 3, 2, true},
		{2.9, 3, 2, true},
		{0.5, 1, 0, true},
		{0, 0, 0, false},
		{-1, 0, 0, false},
		{math.NaN(), 0, 0, false},
		{math.Inf(1), 0, 0, false},
	}
	for _, tt := range tests {
		rows, cols, ok := SquareSize(tt.in)
		assert.Equal(t, tt.ok, ok, "SquareSize(%v)", tt.in)
		assert.Equal(t, tt.rows, rows, "SquareSize(%v) rows", tt.in)
		assert.Equal(t, tt.cols, cols, "SquareSize(%v) cols", tt.in)
	}
}

func TestWriteSquare(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSquare(&buf, 3, 3, "X"))
	assert.Equal(t, "XXX\nXXX\nXXX\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSquare(&buf, 3, 2, "X"))
	assert.Equal(t, "XX\nXX\nXX\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSquare(&buf, 0, 0, "X"))
	assert.Empty(t, buf.String())
}

func TestFindPeak(t *testing.T) {
	tests := []struct {
		name  string
		in    []int
		peaks []int
	}{
		{"ascending", []int{1, 2, 4, 6, 3}, []int{6}},
		{"plateau", []int{4, 2, 1, 2, 3, 1}, []int{4, 3}},
		{"single", []int{2}, []int{2}},
		{"pair", []int{-2, -4}, []int{-2}},
		{"middle", []int{1, 3, 2}, []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindPeak(tt.in)
			assert.True(t, ok)
			assert.Contains(t, tt.peaks, got)
		})
	}

	_, ok := FindPeak(nil)
	assert.False(t, ok)
}
