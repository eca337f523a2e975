/*
Package num defines numeric capabilities as generic interfaces and provides
algorithms that work with any type implementing them.

The interfaces use the self-referential style, so a type T satisfies
[Num] if its methods accept and return T:

	func (n Number) Add(m Number) Number

Values are never modified in place, and every algorithm obtains zeros and
ones from the zero value of T.
*/
package num

// Zeroer is implemented by types with an additive identity.
type Zeroer[T any] interface {
	Zero() T
	IsZero() bool
}

// Oner is implemented by types with a multiplicative identity.
type Oner[T any] interface {
	One() T
	IsOne() bool
}

// Arith is implemented by types closed under the basic arithmetic operations.
type Arith[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Rem(T) T
}

// Num is implemented by numeric types.
type Num[T any] interface {
	Zeroer[T]
	Oner[T]
	Arith[T]
	Neg() T
}

// Signed is implemented by numeric types that can be negative.
type Signed[T any] interface {
	Num[T]
	Abs() T
	Signum() T
	IsPos() bool
	IsNeg() bool
	Dim(T) T
}

// Ordered is implemented by types with a total order.
// Cmp returns -1, 0 or +1 and may panic on unordered values.
type Ordered[T any] interface {
	Cmp(T) int
}

// PartialOrdered is implemented by types with a partial order.
// PartialCmp reports false as its second result for unordered values.
type PartialOrdered[T any] interface {
	PartialCmp(T) (int, bool)
}

// Sum returns the sum of xs, or zero if xs is empty.
func Sum[T Num[T]](xs ...T) T {
	var z T
	s := z.Zero()
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Product returns the product of xs, or one if xs is empty.
func Product[T Num[T]](xs ...T) T {
	var z T
	p := z.One()
	for _, x := range xs {
		p = p.Mul(x)
	}
	return p
}

// Dim returns x - y if x > y, and zero if x <= y.
// If x and y are unordered, Dim returns x - y.
func Dim[T interface {
	Num[T]
	PartialOrdered[T]
}](x, y T) T {
	if c, ok := x.PartialCmp(y); ok && c <= 0 {
		return x.Zero()
	}
	return x.Sub(y)
}

// PowInt returns x raised to the power of n using repeated squaring.
// PowInt(x, 0) is one, even if x is zero.
func PowInt[T Num[T]](x T, n uint) T {
	p := x.One()
	for n > 0 {
		if n&1 == 1 {
			p = p.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return p
}

// Clamp returns x limited to the range [lo, hi].
// If lo > hi, the result is lo.
func Clamp[T Ordered[T]](x, lo, hi T) T {
	switch {
	case x.Cmp(lo) < 0:
		return lo
	case x.Cmp(hi) > 0:
		if hi.Cmp(lo) < 0 {
			return lo
		}
		return hi
	}
	return x
}
