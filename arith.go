package number

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/govalues/number/fraction"
	"github.com/govalues/number/standardform"
)

// op is a binary arithmetic operation.
type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opQuo
	opRem
)

func (o op) String() string {
	switch o {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opQuo:
		return "/"
	case opRem:
		return "%"
	}
	return "?"
}

func (o op) decimal(x, y float64) float64 {
	switch o {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opQuo:
		return x / y
	case opRem:
		return math.Mod(x, y)
	}
	panic(fmt.Sprintf("%v: unknown operation", o))
}

func (o op) standardForm(x, y standardform.StandardForm) standardform.StandardForm {
	switch o {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	case opQuo:
		return x.Quo(y)
	case opRem:
		return x.Rem(y)
	}
	panic(fmt.Sprintf("%v: unknown operation", o))
}

func (o op) fraction(x, y fraction.Fraction) fraction.Fraction {
	switch o {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	case opQuo:
		return x.Quo(y)
	case opRem:
		return x.Rem(y)
	}
	panic(fmt.Sprintf("%v: unknown operation", o))
}

// sfFromRational bridges a plain rational into a standard form with
// mantissa ±num and exponent -ntz(den), where ntz counts trailing zero bits.
// The result equals num/den only for den = 1; every other denominator
// yields a different value, for example 1/2 becomes 1 × 10^-1.
func sfFromRational(neg bool, num, den uint32) standardform.StandardForm {
	m := float64(num)
	if neg {
		m = -m
	}
	return standardform.New(m, -int8(bits.TrailingZeros32(den)))
}

// bridge converts a fraction for standard form arithmetic.
// If fr is NaN or infinite, ok is false.
func bridge(fr fraction.Fraction) (sf standardform.StandardForm, ok bool) {
	neg, num, den, ok := fr.Rational()
	if !ok {
		return standardform.StandardForm{}, false
	}
	return sfFromRational(neg, num, den), true
}

// apply calculates n o m with the representation rules described in the
// package documentation.
func apply(o op, n, m Number) Number {
	switch n.kind {
	case KindDecimal:
		switch m.kind {
		case KindDecimal:
			return NewDecimal(o.decimal(n.dec, m.dec))
		case KindStandardForm:
			return NewStandardForm(o.standardForm(standardform.FromFloat64(n.dec), m.sf))
		case KindFraction:
			return NewFraction(o.fraction(fraction.FromFloat64(n.dec), m.fr))
		}
	case KindStandardForm:
		switch m.kind {
		case KindDecimal:
			return NewStandardForm(o.standardForm(n.sf, standardform.FromFloat64(m.dec)))
		case KindStandardForm:
			return NewStandardForm(o.standardForm(n.sf, m.sf))
		case KindFraction:
			sf, ok := bridge(m.fr)
			if !ok {
				return m
			}
			return NewStandardForm(o.standardForm(n.sf, sf))
		}
	case KindFraction:
		switch m.kind {
		case KindDecimal:
			return NewFraction(o.fraction(n.fr, fraction.FromFloat64(m.dec)))
		case KindStandardForm:
			sf, ok := bridge(n.fr)
			if !ok {
				return n
			}
			return NewStandardForm(o.standardForm(sf, m.sf))
		case KindFraction:
			return NewFraction(o.fraction(n.fr, m.fr))
		}
	}
	panic(fmt.Sprintf("%v %v %v failed: unknown kind", n.kind, o, m.kind))
}

// Add returns the sum n + m.
func (n Number) Add(m Number) Number {
	return apply(opAdd, n, m)
}

// Sub returns the difference n - m.
func (n Number) Sub(m Number) Number {
	return apply(opSub, n, m)
}

// Mul returns the product n * m.
func (n Number) Mul(m Number) Number {
	return apply(opMul, n, m)
}

// Quo returns the quotient n / m.
// Division by zero follows the rules of the representation performing it:
// decimals and standard forms produce ±Inf or NaN, fractions produce
// their infinite or NaN states.
func (n Number) Quo(m Number) Number {
	return apply(opQuo, n, m)
}

// Rem returns the remainder of the truncated division n / m.
// The result has the sign of n.
func (n Number) Rem(m Number) Number {
	return apply(opRem, n, m)
}

// Neg returns a number with the opposite sign in the same representation.
func (n Number) Neg() Number {
	switch n.kind {
	case KindDecimal:
		return NewDecimal(-n.dec)
	case KindStandardForm:
		return NewStandardForm(n.sf.Neg())
	case KindFraction:
		return NewFraction(n.fr.Neg())
	}
	panic(fmt.Sprintf("Neg() failed: %v", n.kind))
}

// AddAssign sets n to n + m.
func (n *Number) AddAssign(m Number) {
	*n = n.Add(m)
}

// SubAssign sets n to n - m.
func (n *Number) SubAssign(m Number) {
	*n = n.Sub(m)
}

// MulAssign sets n to n * m.
func (n *Number) MulAssign(m Number) {
	*n = n.Mul(m)
}

// QuoAssign sets n to n / m.
func (n *Number) QuoAssign(m Number) {
	*n = n.Quo(m)
}

// RemAssign sets n to n % m.
func (n *Number) RemAssign(m Number) {
	*n = n.Rem(m)
}
