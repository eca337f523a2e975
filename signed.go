package number

import (
	"fmt"
	"math"

	"github.com/govalues/number/standardform"
)

// Zero returns the decimal 0.
func Zero() Number {
	return NewDecimal(0)
}

// One returns the decimal 1.
func One() Number {
	return NewDecimal(1)
}

// Zero returns the decimal 0.
// It lets generic code obtain a zero from any value of the type.
func (Number) Zero() Number {
	return Zero()
}

// One returns the decimal 1.
func (Number) One() Number {
	return One()
}

// IsZero returns true if n equals 0 in its own representation.
func (n Number) IsZero() bool {
	return EqualScalar(n, 0)
}

// IsOne returns true if n equals 1 in its own representation.
func (n Number) IsOne() bool {
	return EqualScalar(n, 1)
}

// Abs returns the absolute value of n in the same representation.
func (n Number) Abs() Number {
	switch n.kind {
	case KindDecimal:
		return NewDecimal(math.Abs(n.dec))
	case KindStandardForm:
		return NewStandardForm(n.sf.Abs())
	case KindFraction:
		return NewFraction(n.fr.Abs())
	}
	panic(fmt.Sprintf("Abs() failed: %v", n.kind))
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n = 0 or n is NaN
//	+1 if n > 0
func (n Number) Sign() int {
	switch n.kind {
	case KindDecimal:
		switch {
		case n.dec < 0:
			return -1
		case n.dec > 0:
			return 1
		}
		return 0
	case KindStandardForm:
		return n.sf.Sign()
	case KindFraction:
		return n.fr.Sign()
	}
	panic(fmt.Sprintf("Sign() failed: %v", n.kind))
}

// IsPos returns true if n > 0.
// Zero, including negative zero, is neither positive nor negative.
func (n Number) IsPos() bool {
	switch n.kind {
	case KindDecimal:
		return n.dec > 0
	case KindStandardForm:
		return n.sf.IsPos()
	case KindFraction:
		return n.fr.IsPos()
	}
	panic(fmt.Sprintf("IsPos() failed: %v", n.kind))
}

// IsNeg returns true if n < 0.
// Zero, including negative zero, is neither positive nor negative.
func (n Number) IsNeg() bool {
	switch n.kind {
	case KindDecimal:
		return n.dec < 0
	case KindStandardForm:
		return n.sf.IsNeg()
	case KindFraction:
		return n.fr.IsNeg()
	}
	panic(fmt.Sprintf("IsNeg() failed: %v", n.kind))
}

// Signum returns the decimal -1, 0 or 1 according to the sign of n.
// If n is NaN, Signum returns n.
func (n Number) Signum() Number {
	switch {
	case n.IsNaN():
		return n
	case n.IsZero():
		return Zero()
	case n.IsPos():
		return One()
	}
	return One().Neg()
}

// Dim returns the positive difference n - m if n > m, and the decimal 0
// otherwise.
// If n and m cannot be compared, Dim returns n - m, which is NaN.
func (n Number) Dim(m Number) Number {
	if c, ok := n.PartialCmp(m); ok && c <= 0 {
		return Zero()
	}
	return n.Sub(m)
}

// Pow returns n raised to the power of m.
// The representation of the result is:
//
//	Decimal      if both operands are decimals
//	Decimal      if either operand is a fraction, computed from its
//	             numerator / denominator ratio
//	StandardForm otherwise
func (n Number) Pow(m Number) Number {
	switch {
	case n.kind == KindFraction || m.kind == KindFraction:
		return NewDecimal(math.Pow(n.Float64(), m.Float64()))
	case n.kind == KindDecimal && m.kind == KindDecimal:
		return NewDecimal(math.Pow(n.dec, m.dec))
	}
	return NewStandardForm(n.standardForm().Pow(m.standardForm()))
}

// standardForm returns n as a standard form.
// Only decimals and standard forms are expected.
func (n Number) standardForm() standardform.StandardForm {
	if n.kind == KindStandardForm {
		return n.sf
	}
	return standardform.FromFloat64(n.Float64())
}
