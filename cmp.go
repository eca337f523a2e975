package number

import (
	"fmt"
)

// PartialCmp compares n and m and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
//
// Numbers of the same representation are compared by that representation,
// otherwise their float64 values are compared.
// If the comparison is undefined, ok is false.
// This happens when NaN is involved, except for two NaN fractions,
// which compare as equal.
func (n Number) PartialCmp(m Number) (cmp int, ok bool) {
	switch {
	case n.kind == KindStandardForm && m.kind == KindStandardForm:
		return n.sf.Cmp(m.sf)
	case n.kind == KindFraction && m.kind == KindFraction:
		return n.fr.Cmp(m.fr)
	}
	return cmpFloat(n.Float64(), m.Float64())
}

func cmpFloat(x, y float64) (int, bool) {
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	}
	return 0, false
}

// Equal returns true if n and m compare as equal.
// Equal returns false if the comparison is undefined.
func (n Number) Equal(m Number) bool {
	c, ok := n.PartialCmp(m)
	return ok && c == 0
}

// Cmp is like [Number.PartialCmp] but panics if the comparison is undefined.
func (n Number) Cmp(m Number) int {
	c, ok := n.PartialCmp(m)
	if !ok {
		panic(fmt.Sprintf("Cmp(%v, %v) failed: %v", n, m, errUndefinedOrder))
	}
	return c
}

// Compare returns the same as a.Cmp(b).
// It is suitable for [slices.SortFunc] and similar functions, and panics
// if NaN is involved.
func Compare(a, b Number) int {
	return a.Cmp(b)
}

// Max returns the larger of n and m.
// If n and m compare as equal, Max returns n.
func (n Number) Max(m Number) Number {
	if n.Cmp(m) >= 0 {
		return n
	}
	return m
}

// Min returns the smaller of n and m.
// If n and m compare as equal, Min returns n.
func (n Number) Min(m Number) Number {
	if n.Cmp(m) <= 0 {
		return n
	}
	return m
}
