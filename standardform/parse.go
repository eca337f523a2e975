package standardform

import (
	"fmt"
	"strconv"
	"strings"
)

// markers are the accepted spellings of "× 10^".
var markers = [...]string{"e", "E", "*10^", "x10^", "×10^"}

// Parse converts a string to a standard form.
// The input string must be in one of the following formats:
//
//	1.5
//	-3.5e2
//	1E-9
//	1*10^-9
//	2.5x10^3
//	2.5×10^3
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign          ::= '+' | '-'
//	digits        ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	mantissa      ::= digits '.' digits | '.' digits | digits '.' | digits
//	marker        ::= 'e' | 'E' | '*10^' | 'x10^' | '×10^'
//	exponent      ::= marker [sign] digits
//	standard-form ::= [sign] mantissa [exponent]
//
// Parse returns an error if the exponent does not fit into int8.
func Parse(s string) (StandardForm, error) {
	sf, rest, err := scan(s, false)
	if err != nil {
		return StandardForm{}, err
	}
	if rest != "" {
		return StandardForm{}, fmt.Errorf("invalid character %q: %w", rest[0], errInvalidStandardForm)
	}
	return sf, nil
}

// ParsePrefix is like [Parse], but the exponent is required and the input
// may continue after the number.
// ParsePrefix returns the unconsumed remainder of s.
func ParsePrefix(s string) (sf StandardForm, rest string, err error) {
	return scan(s, true)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) StandardForm {
	sf, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return sf
}

func scan(s string, needexp bool) (StandardForm, string, error) {
	var (
		pos     int
		width   int
		hasmant bool
		hasexp  bool
		mant    float64
		exp     int64
		err     error
	)

	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		hasmant = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			hasmant = true
			pos++
		}
	}

	if !hasmant {
		return StandardForm{}, s, fmt.Errorf("no mantissa: %w", errInvalidStandardForm)
	}
	// Syntax is already checked, out-of-range mantissas become ±Inf.
	mant, _ = strconv.ParseFloat(s[:pos], 64)

	// Marker
	n := markerLen(s[pos:])
	if n == 0 {
		if needexp {
			return StandardForm{}, s, fmt.Errorf("no exponent marker: %w", errInvalidStandardForm)
		}
		return newStandardForm(mant, 0), s[pos:], nil
	}
	pos += n

	// Exponent
	start := pos
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}
	for pos < width && isDigit(s[pos]) {
		hasexp = true
		pos++
	}
	if !hasexp {
		return StandardForm{}, s, fmt.Errorf("no exponent: %w", errInvalidStandardForm)
	}
	exp, err = strconv.ParseInt(s[start:pos], 10, 8)
	if err != nil {
		return StandardForm{}, s, fmt.Errorf("%q: %w", s[start:pos], errExponentRange)
	}

	return newStandardForm(mant, int(exp)), s[pos:], nil
}

func markerLen(s string) int {
	for _, m := range markers {
		if strings.HasPrefix(s, m) {
			return len(m)
		}
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
