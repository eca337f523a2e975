package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/number/fraction"
	"github.com/govalues/number/standardform"
)

// ParsePrefix scans a number at the start of s and returns it together
// with the unconsumed remainder of s.
// Unlike [Parse], ParsePrefix is meant for tokenizers, and the syntaxes are
// tried in the following order:
//
//  1. fraction: [-] digits '/' digits, both terms fit into uint32.
//  2. standard form with a required exponent, see [standardform.ParsePrefix].
//  3. float literal: [sign] (digits ['.' [digits]] | '.' digits) [exponent],
//     or one of the words nan, inf, infinity in any case.
//
// If none of them matches, ParsePrefix returns s unchanged and an error
// wrapping [ErrNoNumber].
func ParsePrefix(s string) (n Number, rest string, err error) {
	if fr, rest, ok := scanFraction(s); ok {
		return NewFraction(fr), rest, nil
	}
	if sf, rest, err := standardform.ParsePrefix(s); err == nil {
		return NewStandardForm(sf), rest, nil
	}
	if d, rest, ok := scanFloat(s); ok {
		return NewDecimal(d), rest, nil
	}
	return Number{}, s, fmt.Errorf("%q: %w", prefix(s), ErrNoNumber)
}

func scanFraction(s string) (fraction.Fraction, string, bool) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Numerator
	start := pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	if pos == start {
		return fraction.Fraction{}, s, false
	}
	num, err := strconv.ParseUint(s[start:pos], 10, 32)
	if err != nil {
		return fraction.Fraction{}, s, false
	}

	// Slash
	if pos == width || s[pos] != '/' {
		return fraction.Fraction{}, s, false
	}
	pos++

	// Denominator
	start = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	if pos == start {
		return fraction.Fraction{}, s, false
	}
	den, err := strconv.ParseUint(s[start:pos], 10, 32)
	if err != nil {
		return fraction.Fraction{}, s, false
	}

	if neg {
		return fraction.NewNeg(uint32(num), uint32(den)), s[pos:], true
	}
	return fraction.New(uint32(num), uint32(den)), s[pos:], true
}

func scanFloat(s string) (float64, string, bool) {
	var (
		pos     int
		width   int
		neg     bool
		hascoef bool
	)

	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Special values
	if n := specialLen(s[pos:]); n > 0 {
		word := strings.ToLower(s[pos : pos+n])
		switch {
		case word == "nan":
			return math.NaN(), s[pos+n:], true
		case neg:
			return math.Inf(-1), s[pos+n:], true
		default:
			return math.Inf(1), s[pos+n:], true
		}
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		hascoef = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		if !hascoef && (pos+1 == width || !isDigit(s[pos+1])) {
			return 0, s, false
		}
		pos++
		for pos < width && isDigit(s[pos]) {
			hascoef = true
			pos++
		}
	}

	if !hascoef {
		return 0, s, false
	}

	// Exponent, consumed only if it has digits
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		end := pos + 1
		if end < width && (s[end] == '-' || s[end] == '+') {
			end++
		}
		start := end
		for end < width && isDigit(s[end]) {
			end++
		}
		if end > start {
			pos = end
		}
	}

	// Syntax is already checked, out-of-range values become ±Inf or 0.
	d, _ := strconv.ParseFloat(s[:pos], 64)
	return d, s[pos:], true
}

// specialLen returns the length of the longest special word s starts with.
func specialLen(s string) int {
	for _, w := range [...]string{"infinity", "inf", "nan"} {
		if len(s) >= len(w) && strings.EqualFold(s[:len(w)], w) {
			return len(w)
		}
	}
	return 0
}

// prefix returns a short prefix of s for error messages.
func prefix(s string) string {
	const maxLen = 16
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
