package standardform

import "math"

// Add returns the sum s + t.
// Both mantissas are scaled to the larger exponent before adding.
func (s StandardForm) Add(t StandardForm) StandardForm {
	switch {
	case !s.isFinite() || !t.isFinite():
		return FromFloat64(s.mantissa + t.mantissa)
	case s.IsZero():
		return t
	case t.IsZero():
		return s
	}
	e := max(s.exponent, t.exponent)
	m := s.scaled(e) + t.scaled(e)
	return newStandardForm(m, int(e))
}

// scaled returns the mantissa of s expressed in units of 10^e, where e >= s.exponent.
func (s StandardForm) scaled(e int8) float64 {
	shift := int(e) - int(s.exponent)
	if shift == 0 {
		return s.mantissa
	}
	return s.mantissa / math.Pow10(shift)
}

// Sub returns the difference s - t.
func (s StandardForm) Sub(t StandardForm) StandardForm {
	return s.Add(t.Neg())
}

// Mul returns the product s * t.
func (s StandardForm) Mul(t StandardForm) StandardForm {
	return newStandardForm(s.mantissa*t.mantissa, int(s.exponent)+int(t.exponent))
}

// Quo returns the quotient s / t.
// Division by zero returns ±Inf, or NaN if s is also zero.
func (s StandardForm) Quo(t StandardForm) StandardForm {
	return newStandardForm(s.mantissa/t.mantissa, int(s.exponent)-int(t.exponent))
}

// Rem returns the remainder of the truncated division s / t.
// The result has the sign of s.
func (s StandardForm) Rem(t StandardForm) StandardForm {
	return FromFloat64(math.Mod(s.Float64(), t.Float64()))
}

// Pow returns s raised to the power t.
func (s StandardForm) Pow(t StandardForm) StandardForm {
	return FromFloat64(math.Pow(s.Float64(), t.Float64()))
}

// Neg returns a standard form with the opposite sign.
func (s StandardForm) Neg() StandardForm {
	if s.IsZero() {
		return s
	}
	s.mantissa = -s.mantissa
	return s
}

// Abs returns the absolute value of s.
func (s StandardForm) Abs() StandardForm {
	s.mantissa = math.Abs(s.mantissa)
	return s
}
