package numeric

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// maxFiniteFactorial is the largest n whose factorial fits in a float64.
const maxFiniteFactorial = 170

// Factorial returns n! computed recursively on float64.
// NaN, negative and non-integral inputs yield NaN; 0 and 1 yield 1.
func Factorial(n float64) float64 {
	if math.IsNaN(n) || n < 0 || n != math.Trunc(n) {
		return math.NaN()
	}
	if n > maxFiniteFactorial {
		return math.Inf(1)
	}
	return factorial(n)
}

func factorial(n float64) float64 {
	if n == 0 || n == 1 {
		return 1
	}
	return n * factorial(n-1)
}

// FactorialExact returns n! with arbitrary precision.
func FactorialExact(n int64) (decimal.Decimal, error) {
	if n < 0 {
		return decimal.Zero, fmt.Errorf("factorial of negative number %d", n)
	}
	result := decimal.NewFromInt(1)
	for i := int64(2); i <= n; i++ {
		result = result.Mul(decimal.NewFromInt(i))
	}
	return result, nil
}

// SecondBiggest sorts nums in descending order and returns the second
// element. Duplicates are kept, so [5, 5, 1] yields 5. Fewer than two
// numbers yield 0. NaN values sort after every number.
func SecondBiggest(nums []float64) float64 {
	i := SecondBiggestIndex(nums)
	if i < 0 {
		return 0
	}
	return nums[i]
}

// SecondBiggestIndex is SecondBiggest reporting the position in nums
// instead of the value, so callers can echo the operand as it was given.
// Ties keep their input order. It returns -1 for fewer than two numbers.
func SecondBiggestIndex(nums []float64) int {
	if len(nums) < 2 {
		return -1
	}
	order := make([]int, len(nums))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		a, b := nums[i], nums[j]
		switch {
		case math.IsNaN(a) && math.IsNaN(b):
			return 0
		case math.IsNaN(a):
			return 1
		case math.IsNaN(b):
			return -1
		}
		return cmp.Compare(b, a)
	})
	return order[1]
}

// Add returns the numeric sum of two textual operands.
func Add(a, b string) float64 {
	return Parse(a) + Parse(b)
}

// SquareSize converts a requested side length to the number of lines
// and the characters per line. A fractional size rounds the line count up
// and the width down, so 2.5 draws three lines of two.
// It reports false for NaN, infinite and non-positive sizes.
func SquareSize(size float64) (rows, cols int, ok bool) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return 0, 0, false
	}
	return int(math.Ceil(size)), int(size), true
}

// WriteSquare writes rows lines of cols fill characters.
func WriteSquare(w io.Writer, rows, cols int, fill string) error {
	if rows <= 0 {
		return nil
	}
	line := strings.Repeat(fill, max(cols, 0)) + "\n"
	for i := 0; i < rows; i++ {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FindPeak returns an element that is not smaller than its neighbours,
// found by binary search. It reports false for an empty list.
func FindPeak(list []int) (int, bool) {
	if len(list) == 0 {
		return 0, false
	}
	lo, hi := 0, len(list)-1
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case list[mid] < list[mid+1]:
			lo = mid + 1
		case mid > 0 && list[mid] < list[mid-1]:
			hi = mid - 1
		default:
			return list[mid], true
		}
	}
	return list[lo], true
}
