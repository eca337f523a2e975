package number

import (
	"fmt"

	"github.com/govalues/number/fraction"
	"github.com/govalues/number/standardform"
	"golang.org/x/exp/constraints"
)

// Primitive is a constraint that permits any built-in integer or
// floating-point type.
type Primitive interface {
	constraints.Integer | constraints.Float
}

// like converts v into the representation of n.
func like[T Primitive](n Number, v T) Number {
	switch n.kind {
	case KindDecimal:
		return NewDecimal(float64(v))
	case KindStandardForm:
		return NewStandardForm(standardform.From(v))
	case KindFraction:
		return NewFraction(fraction.From(v))
	}
	panic(fmt.Sprintf("like(%v) failed: unknown kind", n.kind))
}

// AddScalar returns the sum n + v, where v is interpreted in the
// representation of n.
func AddScalar[T Primitive](n Number, v T) Number {
	return n.Add(like(n, v))
}

// SubScalar returns the difference n - v, where v is interpreted in the
// representation of n.
func SubScalar[T Primitive](n Number, v T) Number {
	return n.Sub(like(n, v))
}

// MulScalar returns the product n * v, where v is interpreted in the
// representation of n.
func MulScalar[T Primitive](n Number, v T) Number {
	return n.Mul(like(n, v))
}

// QuoScalar returns the quotient n / v, where v is interpreted in the
// representation of n.
func QuoScalar[T Primitive](n Number, v T) Number {
	return n.Quo(like(n, v))
}

// RemScalar returns the remainder n % v, where v is interpreted in the
// representation of n.
func RemScalar[T Primitive](n Number, v T) Number {
	return n.Rem(like(n, v))
}

// AddAssignScalar sets n to n + v.
// Unlike [AddScalar], v is always wrapped into a decimal.
func AddAssignScalar[T Primitive](n *Number, v T) {
	n.AddAssign(FromPrimitive(v))
}

// SubAssignScalar sets n to n - v.
// Unlike [SubScalar], v is always wrapped into a decimal.
func SubAssignScalar[T Primitive](n *Number, v T) {
	n.SubAssign(FromPrimitive(v))
}

// MulAssignScalar sets n to n * v.
// Unlike [MulScalar], v is always wrapped into a decimal.
func MulAssignScalar[T Primitive](n *Number, v T) {
	n.MulAssign(FromPrimitive(v))
}

// QuoAssignScalar sets n to n / v.
// Unlike [QuoScalar], v is always wrapped into a decimal.
func QuoAssignScalar[T Primitive](n *Number, v T) {
	n.QuoAssign(FromPrimitive(v))
}

// RemAssignScalar sets n to n % v.
// Unlike [RemScalar], v is always wrapped into a decimal.
func RemAssignScalar[T Primitive](n *Number, v T) {
	n.RemAssign(FromPrimitive(v))
}

// PartialCmpScalar compares n and v, where v is interpreted in the
// representation of n.
// See [Number.PartialCmp] for details.
func PartialCmpScalar[T Primitive](n Number, v T) (cmp int, ok bool) {
	return n.PartialCmp(like(n, v))
}

// EqualScalar returns true if n and v compare as equal, where v is
// interpreted in the representation of n.
func EqualScalar[T Primitive](n Number, v T) bool {
	return n.Equal(like(n, v))
}

// CmpScalar is like [PartialCmpScalar] but panics if the comparison is
// undefined.
func CmpScalar[T Primitive](n Number, v T) int {
	return n.Cmp(like(n, v))
}
