package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/exp/constraints"
)

// FromInt64 converts an integer to a fraction.
// Integers with a magnitude greater than [MaxTerm] become infinite.
func FromInt64(v int64) Fraction {
	if v < 0 {
		// -(v + 1) + 1 avoids overflow on math.MinInt64
		return fromUint64(true, uint64(-(v+1))+1)
	}
	return fromUint64(false, uint64(v))
}

// FromUint64 converts an unsigned integer to a fraction.
// Integers greater than [MaxTerm] become +∞.
func FromUint64(v uint64) Fraction {
	return fromUint64(false, v)
}

func fromUint64(neg bool, v uint64) Fraction {
	if v > MaxTerm {
		return Fraction{state: inf, neg: neg}
	}
	return newFraction(neg, fint(v), 1)
}

// FromFloat64 converts a binary floating-point number to a fraction.
// The conversion uses the shortest decimal representation of v,
// so 0.1 becomes 1/10 rather than the exact binary value.
// If that decimal does not fit into uint32 terms, the closest
// approximant that does is returned.
// NaN and ±Inf are converted to the corresponding special states.
func FromFloat64(v float64) Fraction {
	return fromFloat(v, 64)
}

// FromFloat32 is like [FromFloat64] but uses the shortest decimal
// representation of a float32.
func FromFloat32(v float32) Fraction {
	return fromFloat(float64(v), 32)
}

func fromFloat(v float64, bitSize int) Fraction {
	switch {
	case math.IsNaN(v):
		return NaN()
	case math.IsInf(v, 0):
		return Fraction{state: inf, neg: v < 0}
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(v, 'g', -1, bitSize))
	if err != nil {
		// strconv always produces a valid decimal
		panic(fmt.Sprintf("FromFloat64(%v) failed: %v", v, err))
	}
	return fromDecimal(d)
}

// From converts any integer or floating-point value to a fraction.
// Integers are converted exactly as long as they fit into uint32,
// floats are converted as described in [FromFloat64].
func From[T constraints.Integer | constraints.Float](v T) Fraction {
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

// fromDecimal converts an arbitrary-precision decimal to a fraction.
func fromDecimal(d *apd.Decimal) Fraction {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return NaN()
	case apd.Infinite:
		return Fraction{state: inf, neg: d.Negative}
	}
	num := new(big.Int).Set(d.Coeff.MathBigInt())
	den := big.NewInt(1)
	ten := big.NewInt(10)
	switch e := int64(d.Exponent); {
	case e > 0:
		num.Mul(num, new(big.Int).Exp(ten, big.NewInt(e), nil))
	case e < 0:
		den.Exp(ten, big.NewInt(-e), nil)
	}
	return newFractionFromBig(d.Negative, num, den)
}

// Parse converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	2/3
//	-4/5
//	+7/1
//	42
//	-1.25
//	NaN
//	inf
//	-inf
//
// Numerators and denominators must fit into uint32.
// A zero denominator is accepted and produces an infinity, or NaN for 0/0.
// Decimal fractions are converted exactly when possible and approximated otherwise.
func Parse(s string) (Fraction, error) {
	switch strings.ToLower(s) {
	case "nan":
		return NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(1), nil
	case "-inf", "-infinity":
		return Inf(-1), nil
	}

	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		return Fraction{}, fmt.Errorf("empty string: %w", errInvalidFraction)
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Ratio
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		num, err := parseTerm(s[pos:slash])
		if err != nil {
			return Fraction{}, fmt.Errorf("numerator: %w", err)
		}
		den, err := parseTerm(s[slash+1:])
		if err != nil {
			return Fraction{}, fmt.Errorf("denominator: %w", err)
		}
		return newFraction(neg, num, den), nil
	}

	// Decimal
	if pos == width {
		return Fraction{}, fmt.Errorf("no digits: %w", errInvalidFraction)
	}
	for i := pos; i < width; i++ {
		if c := s[i]; (c < '0' || c > '9') && c != '.' {
			return Fraction{}, fmt.Errorf("invalid character %q: %w", c, errInvalidFraction)
		}
	}
	d, _, err := apd.NewFromString(s[pos:])
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %w", errInvalidFraction, err)
	}
	f := fromDecimal(d)
	if neg {
		f = f.Neg()
	}
	return f, nil
}

// parseTerm parses an unsigned decimal integer that fits into uint32.
func parseTerm(s string) (fint, error) {
	if s == "" {
		return 0, fmt.Errorf("no digits: %w", errInvalidFraction)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid character %q: %w", s[i], errInvalidFraction)
		}
	}
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errTermRange)
	}
	return fint(u), nil
}
