package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Parse converts s to a number using loose numeric-string rules.
// Surrounding whitespace is ignored and the empty string is 0. Decimal,
// exponent, 0x/0o/0b and Infinity forms are accepted; anything else is NaN.
func Parse(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}

	switch t {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(t) > 2 && t[0] == '0' {
		base := 0
		switch t[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(t[2:], base)
		}
	}

	// strconv accepts spellings (inf, nan, hex floats, underscores) that are
	// not numbers here.
	for _, r := range t {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func parseRadix(digits string, base int) float64 {
	if strings.ContainsAny(digits, "_+-") {
		return math.NaN()
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return math.NaN()
	}
	return float64(u)
}

// IsNumber reports whether the whole of s parses to a number.
func IsNumber(s string) bool {
	return !math.IsNaN(Parse(s))
}

// Format renders f in its canonical printed form: NaN, Infinity, integral
// values without a fraction, and the shortest round-trip digits otherwise.
// Exponent notation is used for magnitudes below 1e-6 and from 1e21 on.
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	exp := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, power, _ := strings.Cut(exp, "e")
	n, _ := strconv.Atoi(power)
	if n >= -6 && n < 21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	sign := "+"
	if n < 0 {
		sign = "-"
		n = -n
	}
	return mantissa + "e" + sign + strconv.Itoa(n)
}
