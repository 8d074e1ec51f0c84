// Package format renders calculation results as display strings.
//
// Numbers are rounded the way the calculator screens always have: ToFixed
// follows the exact decimal expansion of the float with ties rounded away
// from zero, and Round rounds half up towards positive infinity.
package format

import (
	"math"
	"strconv"
	"strings"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1100

// MaxFixedDigits is the largest precision ToFixed honours.
const MaxFixedDigits = 100

// ToFixed formats v with exactly digits fractional digits.
//
// Rounding is decided on the exact binary value of v, so ToFixed(1.005, 2)
// returns "1.00" (1.005 is stored as 1.00499999...) and ToFixed(2.5, 0)
// returns "3". digits is clamped to [0, MaxFixedDigits].
func ToFixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	digits = min(max(digits, 0), MaxFixedDigits)

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	exact := strconv.FormatFloat(v, 'f', exactDigits, 64)
	intPart, frac, _ := strings.Cut(exact, ".")

	kept := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		kept = carry(kept)
	}

	intLen := len(kept) - digits
	if digits == 0 {
		return sign + string(kept)
	}
	return sign + string(kept[:intLen]) + "." + string(kept[intLen:])
}

// carry adds one unit in the last place of a decimal digit string.
func carry(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}

// Round returns the integer nearest to v, rounding halves up towards
// positive infinity: Round(2.5) is 3 and Round(-2.5) is -2.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}
	return f
}

// RoundString formats Round(v) without a fractional part.
func RoundString(v float64) string {
	r := Round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
