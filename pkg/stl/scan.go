package stl

import (
	"errors"
	"regexp"
	"strconv"
)

// numberPattern matches signed decimal literals with an optional exponent.
var numberPattern = regexp.MustCompile(`-?[0-9]+\.?[0-9]*(?:[eE][-+]?[0-9]+)?`)

// solidNamePattern matches the solid/endsolid lines that carry a free-form name.
var solidNamePattern = regexp.MustCompile(`(?m)^[ \t]*(?:end)?solid\b.*$`)

// ScanNumbers returns every numeric literal in text, in order.
// Text that does not look like a number is skipped.
func ScanNumbers(text []byte) []float64 {
	matches := numberPattern.FindAll(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(string(m), 64)
		// Out-of-range literals still come back as ±Inf.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		nums = append(nums, f)
	}
	return nums
}

// StripSolidNames blanks the "solid <name>" and "endsolid <name>" lines so
// digits inside a name cannot enter the number stream.
func StripSolidNames(text []byte) []byte {
	return solidNamePattern.ReplaceAll(text, nil)
}
