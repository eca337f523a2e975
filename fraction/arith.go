package fraction

import (
	"math"
	"math/big"
	"math/bits"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
// A product of two uint32 terms always fits into fint.
type fint uint64

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 {
		return 0, false
	}
	return fint(s), true
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

// gcd calculates the greatest common divisor of x and y.
// gcd assumes that at least one of x and y is not 0.
func (x fint) gcd(y fint) fint {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// bint converts x to *big.Int.
func (x fint) bint() *big.Int {
	return new(big.Int).SetUint64(uint64(x))
}

// op is an arithmetic operation on fractions.
type op uint8

const (
	opAdd op = iota
	opMul
	opQuo
	opRem
)

// Add returns the (possibly approximated) sum f + g.
func (f Fraction) Add(g Fraction) Fraction {
	if !f.IsRational() || !g.IsRational() {
		return special(opAdd, f, g)
	}
	x := fint(f.num) * fint(g.Denom())
	y := fint(g.num) * fint(f.Denom())
	den := fint(f.Denom()) * fint(g.Denom())
	if f.neg != g.neg {
		// Opposite signs, the result takes the sign of the larger magnitude.
		neg := f.neg
		if x < y {
			neg = g.neg
		}
		return newFraction(neg, x.dist(y), den)
	}
	num, ok := x.add(y)
	if !ok {
		return addSlow(f.neg, x, y, den)
	}
	return newFraction(f.neg, num, den)
}

// addSlow calculates (x + y) / den with big.Int arithmetic.
func addSlow(neg bool, x, y, den fint) Fraction {
	num := getBint()
	defer putBint(num)
	num.SetUint64(uint64(x))
	num.Add(num, y.bint())
	return newFractionFromBig(neg, num, den.bint())
}

// Sub returns the (possibly approximated) difference f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns the (possibly approximated) product f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	if !f.IsRational() || !g.IsRational() {
		return special(opMul, f, g)
	}
	num := fint(f.num) * fint(g.num)
	den := fint(f.Denom()) * fint(g.Denom())
	return newFraction(f.neg != g.neg, num, den)
}

// Quo returns the (possibly approximated) quotient f / g.
// Dividing a non-zero rational by zero returns an infinity with the sign of f,
// and dividing zero by zero returns NaN.
func (f Fraction) Quo(g Fraction) Fraction {
	if !f.IsRational() || !g.IsRational() {
		return special(opQuo, f, g)
	}
	num := fint(f.num) * fint(g.Denom())
	den := fint(f.Denom()) * fint(g.num)
	return newFraction(f.neg != g.neg, num, den)
}

// Rem returns the remainder of the truncated division f / g.
// The result has the sign of f.
// If g is zero, the result is NaN.
func (f Fraction) Rem(g Fraction) Fraction {
	if !f.IsRational() || !g.IsRational() {
		return special(opRem, f, g)
	}
	if g.num == 0 {
		return NaN()
	}
	x := fint(f.num) * fint(g.Denom())
	y := fint(g.num) * fint(f.Denom())
	den := fint(f.Denom()) * fint(g.Denom())
	return newFraction(f.neg, x%y, den)
}

// special handles operations where at least one operand is NaN or infinite.
func special(o op, f, g Fraction) Fraction {
	if f.IsNaN() || g.IsNaN() {
		return NaN()
	}
	if f.IsRational() && g.IsInf() {
		switch o {
		case opQuo:
			return Fraction{den: 1}
		case opRem:
			return f
		}
	}
	x, y := f.Float64(), g.Float64()
	var z float64
	switch o {
	case opAdd:
		z = x + y
	case opMul:
		z = x * y
	case opQuo:
		z = x / y
	case opRem:
		z = math.Mod(x, y)
	}
	switch {
	case math.IsNaN(z):
		return NaN()
	case math.IsInf(z, 0):
		return Fraction{state: inf, neg: z < 0}
	}
	return FromFloat64(z)
}

// newFractionFromBig reduces num / den and converts it to a fraction.
// Neither num nor den is modified.
func newFractionFromBig(neg bool, num, den *big.Int) Fraction {
	switch {
	case den.Sign() == 0 && num.Sign() == 0:
		return NaN()
	case den.Sign() == 0:
		return Fraction{state: inf, neg: neg}
	case num.Sign() == 0:
		return Fraction{den: 1}
	}
	g := getBint()
	defer putBint(g)
	g.GCD(nil, nil, num, den)
	p := new(big.Int).Quo(num, g)
	q := new(big.Int).Quo(den, g)
	if p.IsUint64() && q.IsUint64() && p.Uint64() <= MaxTerm && q.Uint64() <= MaxTerm {
		return Fraction{neg: neg, num: uint32(p.Uint64()), den: uint32(q.Uint64())}
	}
	return approximate(neg, p, q)
}

// approximate returns the last continued-fraction convergent of p / q
// whose terms do not exceed MaxTerm.
// If the integer part of p / q already exceeds MaxTerm, the result is infinite.
func approximate(neg bool, p, q *big.Int) Fraction {
	p, q = new(big.Int).Set(p), new(big.Int).Set(q)
	limit := new(big.Int).SetUint64(MaxTerm)
	h1, h2 := big.NewInt(1), big.NewInt(0)
	k1, k2 := big.NewInt(0), big.NewInt(1)
	a, r := new(big.Int), new(big.Int)
	h, k := new(big.Int), new(big.Int)
	for q.Sign() != 0 {
		a.QuoRem(p, q, r)
		h.Mul(a, h1).Add(h, h2)
		k.Mul(a, k1).Add(k, k2)
		if h.Cmp(limit) > 0 || k.Cmp(limit) > 0 {
			break
		}
		h2.Set(h1)
		h1.Set(h)
		k2.Set(k1)
		k1.Set(k)
		p.Set(q)
		q.Set(r)
	}
	if k1.Sign() == 0 {
		return Fraction{state: inf, neg: neg}
	}
	return newFraction(neg, fint(h1.Uint64()), fint(k1.Uint64()))
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *big.Int {
	return pool.Get().(*big.Int)
}

// putBint returns the *big.Int into the pool.
func putBint(b *big.Int) {
	pool.Put(b)
}
