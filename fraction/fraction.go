/*
Package fraction implements signed rational numbers with uint32 terms.

# Representation

[Fraction] is a struct holding a sign, a numerator and a denominator,
both in the range from 0 to [MaxTerm].
Fractions are always stored in lowest terms, and zero is never negative.

Besides plain rationals, a fraction can be in one of the special states:

  - NaN, the result of 0/0, ∞ - ∞, 0 × ∞ and similar operations.
  - +∞ and -∞, the result of dividing a non-zero rational by zero.

# Precision

Arithmetic is exact as long as the reduced result fits into uint32 terms.
Otherwise the result is replaced by the closest continued-fraction
approximant whose terms fit, and magnitudes above [MaxTerm] become infinite.
*/
package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Fraction type is a representation of a rational number with uint32 terms.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
type Fraction struct {
	state state  // rational, NaN or infinity
	neg   bool   // indicates whether the fraction is negative
	num   uint32 // the numerator
	den   uint32 // the denominator, 0 only in the zero value
}

type state uint8

const (
	rational state = iota
	nan
	inf
)

// MaxTerm is the maximum value of a numerator or a denominator.
const MaxTerm = math.MaxUint32

var (
	errInvalidFraction = errors.New("invalid fraction")
	errTermRange       = errors.New("term out of range")
)

// New returns a non-negative fraction equal to num / den, reduced to lowest terms.
// If den is 0, New returns +∞, or NaN if num is also 0.
func New(num, den uint32) Fraction {
	return newFraction(false, fint(num), fint(den))
}

// NewNeg returns a non-positive fraction equal to -num / den, reduced to lowest terms.
// If den is 0, NewNeg returns -∞, or NaN if num is also 0.
func NewNeg(num, den uint32) Fraction {
	return newFraction(true, fint(num), fint(den))
}

// NaN returns a fraction in the not-a-number state.
func NaN() Fraction {
	return Fraction{state: nan}
}

// Inf returns +∞ if sign >= 0 and -∞ if sign < 0.
func Inf(sign int) Fraction {
	return Fraction{state: inf, neg: sign < 0}
}

func newFraction(neg bool, num, den fint) Fraction {
	switch {
	case den == 0 && num == 0:
		return NaN()
	case den == 0:
		return Fraction{state: inf, neg: neg}
	case num == 0:
		return Fraction{den: 1}
	}
	g := num.gcd(den)
	num, den = num/g, den/g
	if num > MaxTerm || den > MaxTerm {
		return approximate(neg, num.bint(), den.bint())
	}
	return Fraction{neg: neg, num: uint32(num), den: uint32(den)}
}

// IsRational returns true if f is neither NaN nor infinite.
func (f Fraction) IsRational() bool {
	return f.state == rational
}

// IsNaN returns true if f is in the not-a-number state.
func (f Fraction) IsNaN() bool {
	return f.state == nan
}

// IsInf returns true if f is +∞ or -∞.
func (f Fraction) IsInf() bool {
	return f.state == inf
}

// Rational returns the sign and the terms of f.
// If f is not a plain rational, ok is false.
func (f Fraction) Rational() (neg bool, num, den uint32, ok bool) {
	if !f.IsRational() {
		return false, 0, 0, false
	}
	return f.neg, f.num, f.Denom(), true
}

// Numer returns the numerator of f, or 0 if f is not a plain rational.
func (f Fraction) Numer() uint32 {
	return f.num
}

// Denom returns the denominator of f, or 0 if f is not a plain rational.
func (f Fraction) Denom() uint32 {
	switch {
	case !f.IsRational():
		return 0
	case f.den == 0:
		return 1
	}
	return f.den
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0 or f is NaN
//	+1 if f > 0
func (f Fraction) Sign() int {
	switch {
	case f.IsNaN():
		return 0
	case f.IsRational() && f.num == 0:
		return 0
	case f.neg:
		return -1
	}
	return 1
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return f.Sign() > 0
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.Sign() < 0
}

// IsZero returns true if f = 0.
func (f Fraction) IsZero() bool {
	return f.IsRational() && f.num == 0
}

// Neg returns a fraction with the opposite sign.
func (f Fraction) Neg() Fraction {
	if f.Sign() == 0 {
		return f
	}
	f.neg = !f.neg
	return f
}

// Abs returns the absolute value of f.
func (f Fraction) Abs() Fraction {
	f.neg = false
	return f
}

// Float64 returns the nearest binary floating-point number.
// Infinite fractions become ±Inf and NaN becomes NaN.
func (f Fraction) Float64() float64 {
	switch f.state {
	case nan:
		return math.NaN()
	case inf:
		if f.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	x := float64(f.num) / float64(f.Denom())
	if f.neg {
		x = -x
	}
	return x
}

// String implements the [fmt.Stringer] interface.
// Rationals with a denominator of 1 are rendered as integers,
// others as "num/den" with an optional leading minus.
// Special states are rendered as "NaN", "inf" and "-inf".
func (f Fraction) String() string {
	switch f.state {
	case nan:
		return "NaN"
	case inf:
		if f.neg {
			return "-inf"
		}
		return "inf"
	}
	s := strconv.FormatUint(uint64(f.num), 10)
	if d := f.Denom(); d != 1 {
		s += "/" + strconv.FormatUint(uint64(d), 10)
	}
	if f.neg {
		s = "-" + s
	}
	return s
}

// Cmp compares f and g and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
//
// NaN equals NaN and is unordered with respect to everything else,
// in which case ok is false.
func (f Fraction) Cmp(g Fraction) (cmp int, ok bool) {
	switch {
	case f.IsNaN() && g.IsNaN():
		return 0, true
	case f.IsNaN() || g.IsNaN():
		return 0, false
	}
	fs, gs := f.Sign(), g.Sign()
	switch {
	case fs < gs:
		return -1, true
	case fs > gs:
		return 1, true
	case fs == 0:
		return 0, true
	}
	// Same sign, non-zero
	switch {
	case f.IsInf() && g.IsInf():
		return 0, true
	case f.IsInf():
		return fs, true
	case g.IsInf():
		return -fs, true
	}
	x := fint(f.num) * fint(g.Denom())
	y := fint(g.num) * fint(f.Denom())
	switch {
	case x < y:
		return -fs, true
	case x > y:
		return fs, true
	}
	return 0, true
}

// Equal returns true if f and g compare as equal.
func (f Fraction) Equal(g Fraction) bool {
	c, ok := f.Cmp(g)
	return ok && c == 0
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}
