package number

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/number/fraction"
	"github.com/govalues/number/standardform"
)

// Kind identifies the active representation of a [Number].
type Kind uint8

const (
	KindDecimal      Kind = iota // IEEE 754 double
	KindStandardForm             // mantissa × 10^exponent
	KindFraction                 // signed rational with uint32 terms
)

func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "Decimal"
	case KindStandardForm:
		return "StandardForm"
	case KindFraction:
		return "Fraction"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Number type is a tagged union of a float64, a standard form and a fraction.
// The zero value is the decimal 0.
// It is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	kind Kind                      // the active representation
	dec  float64                   // valid if kind is KindDecimal
	sf   standardform.StandardForm // valid if kind is KindStandardForm
	fr   fraction.Fraction         // valid if kind is KindFraction
}

// NewDecimal returns a decimal number.
func NewDecimal(d float64) Number {
	return Number{kind: KindDecimal, dec: d}
}

// NewStandardForm returns a standard form number.
func NewStandardForm(sf standardform.StandardForm) Number {
	return Number{kind: KindStandardForm, sf: sf}
}

// NewFraction returns a fraction number.
func NewFraction(fr fraction.Fraction) Number {
	return Number{kind: KindFraction, fr: fr}
}

// FromPrimitive converts any integer or floating-point value to a decimal number.
func FromPrimitive[T Primitive](v T) Number {
	return NewDecimal(float64(v))
}

// Kind returns the active representation of n.
func (n Number) Kind() Kind {
	return n.kind
}

// Decimal returns the float64 held by n.
// If n is not a decimal, ok is false.
func (n Number) Decimal() (d float64, ok bool) {
	return n.dec, n.kind == KindDecimal
}

// StandardForm returns the standard form held by n.
// If n is not a standard form, ok is false.
func (n Number) StandardForm() (sf standardform.StandardForm, ok bool) {
	return n.sf, n.kind == KindStandardForm
}

// Fraction returns the fraction held by n.
// If n is not a fraction, ok is false.
func (n Number) Fraction() (fr fraction.Fraction, ok bool) {
	return n.fr, n.kind == KindFraction
}

// Float64 returns the nearest binary floating-point number.
// Standard forms and fractions are converted with their own rules,
// see [standardform.StandardForm.Float64] and [fraction.Fraction.Float64].
func (n Number) Float64() float64 {
	switch n.kind {
	case KindDecimal:
		return n.dec
	case KindStandardForm:
		return n.sf.Float64()
	case KindFraction:
		return n.fr.Float64()
	}
	panic(fmt.Sprintf("Float64() failed: %v", n.kind))
}

// IsNaN returns true if n is not a number in its own representation.
func (n Number) IsNaN() bool {
	switch n.kind {
	case KindStandardForm:
		return n.sf.IsNaN()
	case KindFraction:
		return n.fr.IsNaN()
	}
	return math.IsNaN(n.dec)
}

// String implements the [fmt.Stringer] interface.
// Each representation is rendered in its own natural form:
//
//	Decimal:      3.14, -0.5, NaN, +Inf
//	StandardForm: 1e-9, -3.5e2
//	Fraction:     2/3, -4/5, 7, inf
func (n Number) String() string {
	switch n.kind {
	case KindDecimal:
		return strconv.FormatFloat(n.dec, 'f', -1, 64)
	case KindStandardForm:
		return n.sf.String()
	case KindFraction:
		return n.fr.String()
	}
	return n.kind.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: String representation
//	%q:     quoted String representation
//	%e, %E, %f, %F, %g, %G: float formatting of decimals
//
// Float verbs applied to standard forms and fractions fall back to %s.
// Width and the '-' flag are supported with all verbs.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
func (n Number) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if n.kind == KindDecimal {
			prec := -1
			if p, ok := state.Precision(); ok {
				prec = p
			}
			f := byte(verb)
			if f == 'F' {
				f = 'f'
			}
			s = strconv.FormatFloat(n.dec, f, prec, 64)
			if state.Flag('+') && n.dec >= 0 {
				s = "+" + s
			}
			break
		}
		s = n.String()
	case 's', 'v':
		s = n.String()
	case 'q':
		s = strconv.Quote(n.String())
	default:
		fmt.Fprintf(state, "%%!%c(number.Number=%s)", verb, n.String())
		return
	}

	// Padding
	width, ok := state.Width()
	if !ok || width <= len(s) {
		_, _ = state.Write([]byte(s))
		return
	}
	pad := make([]byte, width-len(s))
	for i := range pad {
		pad[i] = ' '
	}
	if state.Flag('-') {
		_, _ = state.Write([]byte(s))
		_, _ = state.Write(pad)
		return
	}
	_, _ = state.Write(pad)
	_, _ = state.Write([]byte(s))
}
