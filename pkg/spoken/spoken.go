// Package spoken formats numbers for text that is read out over the radio.
//
// All functions are pure and safe for concurrent use.
package spoken

import (
	"math"
	"strconv"
	"strings"
)

// Number is the set of numeric types accepted by [Pronounce].
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// phoneticDigits maps 0-9 to their spoken token. Only 0 and 9 are spelled out.
var phoneticDigits = [10]string{"ZERO", "1", "2", "3", "4", "5", "6", "7", "8", "NINER"}

// decimalToken replaces the decimal point.
const decimalToken = "DECIMAL"

// Round rounds v to places decimal digits, halves away from zero. It scales by
// 10^places, rounds and scales back, so the usual binary floating point
// representation error applies: Round(1.005, 2) is 1, not 1.01.
func Round(v float64, places int) float64 {
	if places == 0 {
		return math.Round(v)
	}
	m := math.Pow(10, float64(places))
	return math.Round(v*m) / m
}

// RoundHundreds truncates n to a multiple of 100, toward zero:
// 250 becomes 200 and -250 becomes -200.
func RoundHundreds(n int) int {
	return (n / 100) * 100
}

// Pronounce renders n for speech. With pronounce false it returns the plain
// decimal text of n. Otherwise every character becomes its own token: digits
// via the phonetic table, '.' as DECIMAL and anything else (such as a minus
// sign) unchanged, separated by single spaces.
//
//	Pronounce(109, true)  == "1 ZERO NINER"
//	Pronounce(3.5, true)  == "3 DECIMAL 5"
//	Pronounce(109, false) == "109"
func Pronounce[T Number](n T, pronounce bool) string {
	return PronounceString(format(n), pronounce)
}

// PronounceString is [Pronounce] for text that is already formatted, such as
// a frequency read from a config file.
func PronounceString(s string, pronounce bool) string {
	if !pronounce {
		return s
	}

	tokens := make([]string, 0, len(s))
	for _, c := range s {
		switch {
		case c == '.':
			tokens = append(tokens, decimalToken)
		case c >= '0' && c <= '9':
			tokens = append(tokens, phoneticDigits[c-'0'])
		default:
			tokens = append(tokens, string(c))
		}
	}
	return strings.Join(tokens, " ")
}

// format returns the shortest decimal text of n. Floats never use exponent
// notation so every digit is spoken.
func format[T Number](n T) string {
	switch v := any(n).(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(uint64(n), 10)
	}
	return strconv.FormatInt(int64(n), 10)
}
