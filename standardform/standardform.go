/*
Package standardform implements numbers in scientific "standard form",
that is mantissa × 10^exponent.

# Representation

[StandardForm] is a struct with two fields:

  - Mantissa: a float64 with an absolute value in the range [1, 10).
  - Exponent: an int8 power of ten.

The mantissa is normalized from the shortest decimal representation of the
value it was computed from, so 0.3 is stored as 3 × 10^-1 rather than
2.9999999999999996 × 10^-1.
Zero, infinities and NaN are stored with an exponent of 0.

# Constraints

Exponents outside the int8 range are not representable.
Results that overflow become ±Inf and results that underflow become 0.
*/
package standardform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// StandardForm type is a representation of a number as mantissa × 10^exponent.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
type StandardForm struct {
	mantissa float64 // normalized to 1 <= |mantissa| < 10
	exponent int8    // the power of ten
}

const (
	MaxExponent = math.MaxInt8 // maximum power of ten
	MinExponent = math.MinInt8 // minimum power of ten
)

var (
	errInvalidStandardForm = errors.New("invalid standard form")
	errExponentRange       = errors.New("exponent out of range")
)

// New returns a normalized standard form equal to mantissa × 10^exponent.
func New(mantissa float64, exponent int8) StandardForm {
	return newStandardForm(mantissa, int(exponent))
}

func newStandardForm(m float64, e int) StandardForm {
	switch {
	case m == 0:
		return StandardForm{}
	case math.IsNaN(m) || math.IsInf(m, 0):
		return StandardForm{mantissa: m}
	}

	// Shortest decimal representation, for example "-1.2345e+02"
	text := strconv.FormatFloat(m, 'e', -1, 64)
	pos := strings.LastIndexByte(text, 'e')
	shift, err := strconv.Atoi(text[pos+1:])
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", m, e, err))
	}
	mant, err := strconv.ParseFloat(text[:pos], 64)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", m, e, err))
	}

	e += shift
	switch {
	case e > MaxExponent:
		return StandardForm{mantissa: math.Copysign(math.Inf(1), m)}
	case e < MinExponent:
		return StandardForm{}
	}
	return StandardForm{mantissa: mant, exponent: int8(e)}
}

// FromFloat64 converts a binary floating-point number to standard form.
func FromFloat64(f float64) StandardForm {
	return newStandardForm(f, 0)
}

// FromFloat32 converts a float32 to standard form
// using its shortest decimal representation, so 0.1 stays 1 × 10^-1.
func FromFloat32(f float32) StandardForm {
	m, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		// NaN and ±Inf are parsed back unchanged
		m = float64(f)
	}
	return newStandardForm(m, 0)
}

// FromInt64 converts an integer to standard form.
// Integers with more than 15 significant digits may be rounded.
func FromInt64(i int64) StandardForm {
	return newStandardForm(float64(i), 0)
}

// FromUint64 is like [FromInt64] but for unsigned integers.
func FromUint64(u uint64) StandardForm {
	return newStandardForm(float64(u), 0)
}

// From converts any integer or floating-point value to standard form.
func From[T constraints.Integer | constraints.Float](v T) StandardForm {
	switch x := any(v).(type) {
	case float32:
		return FromFloat32(x)
	case float64:
		return FromFloat64(x)
	}
	// named float types
	var half T = 1
	half /= 2
	switch {
	case half != 0:
		return FromFloat64(float64(v))
	case v < 0:
		return FromInt64(int64(v))
	}
	return FromUint64(uint64(v))
}

// Mantissa returns the normalized mantissa of s.
func (s StandardForm) Mantissa() float64 {
	return s.mantissa
}

// Exponent returns the power of ten of s.
func (s StandardForm) Exponent() int8 {
	return s.exponent
}

// Float64 returns the nearest binary floating-point number.
func (s StandardForm) Float64() float64 {
	if !s.isFinite() || s.exponent == 0 {
		return s.mantissa
	}
	f, err := strconv.ParseFloat(s.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("Float64(%v) failed: %v", s, err))
	}
	return f
}

func (s StandardForm) isFinite() bool {
	return !math.IsNaN(s.mantissa) && !math.IsInf(s.mantissa, 0)
}

// String implements the [fmt.Stringer] interface and renders s
// as "<mantissa>e<exponent>", for example "1e-9" or "-3.5e2".
// Infinities and NaN are rendered as "+Inf", "-Inf" and "NaN".
func (s StandardForm) String() string {
	if !s.isFinite() {
		return strconv.FormatFloat(s.mantissa, 'g', -1, 64)
	}
	return strconv.FormatFloat(s.mantissa, 'f', -1, 64) + "e" + strconv.Itoa(int(s.exponent))
}

// Sign returns:
//
//	-1 if s < 0
//	 0 if s = 0 or s is NaN
//	+1 if s > 0
func (s StandardForm) Sign() int {
	switch {
	case s.mantissa > 0:
		return 1
	case s.mantissa < 0:
		return -1
	}
	return 0
}

// IsPos returns true if s > 0.
func (s StandardForm) IsPos() bool {
	return s.mantissa > 0
}

// IsNeg returns true if s < 0.
func (s StandardForm) IsNeg() bool {
	return s.mantissa < 0
}

// IsZero returns true if s = 0.
func (s StandardForm) IsZero() bool {
	return s.mantissa == 0
}

// IsNaN returns true if s is not a number.
func (s StandardForm) IsNaN() bool {
	return math.IsNaN(s.mantissa)
}

// Cmp compares s and t and returns:
//
//	-1 if s < t
//	 0 if s = t
//	+1 if s > t
//
// If either operand is NaN, the comparison is undefined and ok is false.
func (s StandardForm) Cmp(t StandardForm) (cmp int, ok bool) {
	switch {
	case s.IsNaN() || t.IsNaN():
		return 0, false
	case !s.isFinite() || !t.isFinite():
		return cmpFloat(s.Float64(), t.Float64()), true
	}
	ss, ts := s.Sign(), t.Sign()
	switch {
	case ss < ts:
		return -1, true
	case ss > ts:
		return 1, true
	case ss == 0:
		return 0, true
	}
	// Same sign, non-zero, so the exponent decides first
	switch {
	case s.exponent < t.exponent:
		return -ss, true
	case s.exponent > t.exponent:
		return ss, true
	}
	return cmpFloat(s.mantissa, t.mantissa), true
}

func cmpFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Equal returns true if s and t compare as equal.
func (s StandardForm) Equal(t StandardForm) bool {
	c, ok := s.Cmp(t)
	return ok && c == 0
}
