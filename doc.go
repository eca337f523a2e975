/*
Package number implements a numeric value type that unifies three
representations behind one set of arithmetic, comparison, parsing and
hashing operations:

  - Decimal: an IEEE 754 double-precision float.
  - StandardForm: mantissa × 10^exponent, see package [standardform].
  - Fraction: a signed rational with uint32 terms, see package [fraction].

# Representation

[Number] is a tagged union.
Exactly one variant is active, and no conversion happens at construction
time: a number built from a fraction stays a fraction until an operation
mixes it with another representation.

# Conversions

The package provides methods for converting numbers:

  - from/to float64:
    [NewDecimal], [FromPrimitive], [Number.Float64].
  - from standard forms and fractions:
    [NewStandardForm], [NewFraction].
  - from/to string:
    [Parse], [ParsePrefix], [Number.String].

# Operations

Binary operations choose the representation of the result as follows:

	| Left \ Right | Decimal      | StandardForm  | Fraction     |
	| ------------ | ------------ | ------------- | ------------ |
	| Decimal      | Decimal      | StandardForm  | Fraction     |
	| StandardForm | StandardForm | StandardForm  | StandardForm |
	| Fraction     | Fraction     | StandardForm  | Fraction     |

A decimal operand is converted into the representation of the other operand.
Operand order is always kept: a decimal d minus a standard form s computes
d - s, and the same holds for [Number.Quo] and [Number.Rem].
A fraction mixed with a standard form is bridged into a standard form with
mantissa ±numerator and exponent equal to minus the number of trailing zero
bits of the denominator.
This bridge is only a rough approximation: 1/2 becomes 1 × 10^-1 and 1/3
becomes 1 × 10^0.
If the fraction is NaN or infinite, the operation returns the fraction
unchanged and the standard form operand is discarded.

Operations with primitive operands, such as [AddScalar], interpret the
primitive in the representation of the number.
Compound assignments with primitive operands, such as [AddAssignScalar],
wrap the primitive into a decimal first, which then adopts the
representation of the number.
The representation of the result is the same as for the binary form, but
the value may differ, because the primitive is widened to float64 before the
conversion: float32(0.1) added to the standard form 1e0 gives slightly more
than 1.1e0.

No operation returns an error.
Division by zero, overflow and NaN follow the rules of the representation
that performs the operation.

# Ordering

Numbers of the same representation are compared with that representation's
own rules.
Numbers of different representations are compared by their float64 values.
[Number.PartialCmp] reports undefined comparisons, which happen when NaN is
involved.
[Number.Cmp] and [Compare] build a total order on top of it and panic on
undefined comparisons.

# Parsing

[Parse] tries float64, fraction and standard form syntaxes in that order
and returns a [ParseError] carrying all three failures if none applies.
[ParsePrefix] scans a number at the start of a larger text and tries the
fraction, standard form (exponent required) and float syntaxes in that
order.
*/
package number
