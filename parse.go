package number

import (
	"errors"
	"strconv"

	"github.com/govalues/number/fraction"
	"github.com/govalues/number/standardform"
)

// Parse converts a string to a number.
// The syntaxes are tried in the following order, and the first one that
// accepts the whole string wins:
//
//  1. float64, as accepted by [strconv.ParseFloat]: 3.14, -1e-9, NaN, +Inf.
//     Values out of range become ±Inf or 0 and are not an error.
//     Hexadecimal floats such as 0x1p-2 are rejected.
//  2. fraction, see [fraction.Parse]: 2/3, -4/5, inf.
//  3. standard form, see [standardform.Parse]: 1*10^-9, 2.5×10^3.
//
// In practice every decimal literal is taken by the first syntax, so the
// fraction syntax only sees N/D forms and the standard form syntax only
// sees the alternative exponent markers.
//
// If no syntax applies, Parse returns a [*ParseError] with all three
// failures.
func Parse(s string) (Number, error) {
	d, derr := parseFloat(s)
	if derr == nil || errors.Is(derr, strconv.ErrRange) {
		return NewDecimal(d), nil
	}
	fr, frerr := fraction.Parse(s)
	if frerr == nil {
		return NewFraction(fr), nil
	}
	sf, sferr := standardform.Parse(s)
	if sferr == nil {
		return NewStandardForm(sf), nil
	}
	return Number{}, &ParseError{
		Decimal:      derr,
		Fraction:     frerr,
		StandardForm: sferr,
	}
}

// parseFloat is like [strconv.ParseFloat] but rejects base prefixes,
// which also rules out underscores.
func parseFloat(s string) (float64, error) {
	t := s
	if t != "" && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

// ParseRadix is like [Parse].
// The radix is accepted for compatibility with generic numeric code and is
// ignored: numbers are always decimal.
func ParseRadix(s string, _ uint32) (Number, error) {
	return Parse(s)
}
