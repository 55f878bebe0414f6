// Package helpers holds small stateless utilities that do not belong to a
// specific project: string capitalization, random numbers in a range, range
// overlap and unique map keys.
package helpers

import (
	"math/rand/v2"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize returns s with its first rune upper-cased using the default
// locale rules. The rest of s is left untouched.
func Capitalize(s string) string {
	return CapitalizeIn(language.Und, s)
}

// CapitalizeIn is Capitalize with locale-specific casing (e.g. Turkish dotted i).
func CapitalizeIn(tag language.Tag, s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(tag).String(s[:size]) + s[size:]
}

// RandomInRange returns a float in [min, max+1), matching the legacy
// inclusive-upper-bound behavior for fractional results.
func RandomInRange(min, max float64) float64 {
	return rand.Float64()*(max-min+1) + min
}

// RandomIntInRange returns an integer in [min, max]. Bounds may be given in
// either order.
func RandomIntInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + rand.IntN(max-min+1)
}

// RangesOverlap reports whether the inclusive ranges [x1, x2] and [u1, u2]
// share at least one value.
func RangesOverlap(x1, x2, u1, u2 float64) bool {
	return x1 <= u2 && u1 <= x2
}

// UniqueKey draws "<prefix><n>" keys with n in [0, precision) until it finds
// one absent from m. A precision <= 0 defaults to 100000000. The caller must
// leave room in the key space or UniqueKey will not return.
func UniqueKey[V any](m map[string]V, prefix string, precision int) string {
	if precision <= 0 {
		precision = 100000000
	}
	for {
		k := prefix + strconv.Itoa(rand.IntN(precision))
		if _, taken := m[k]; !taken {
			return k
		}
	}
}

// CallIfFunc calls fn when it is non-nil.
func CallIfFunc(fn func()) {
	if fn != nil {
		fn()
	}
}
