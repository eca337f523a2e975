package fraction

import (
	"math"
	"testing"
)

func TestFraction_ZeroValue(t *testing.T) {
	var f Fraction
	if !f.IsZero() || !f.IsRational() {
		t.Errorf("Fraction{} is not a rational zero")
	}
	if got := f.Denom(); got != 1 {
		t.Errorf("Fraction{}.Denom() = %v, want 1", got)
	}
	if got := f.String(); got != "0" {
		t.Errorf("Fraction{}.String() = %q, want \"0\"", got)
	}
	if !f.Equal(New(0, 7)) {
		t.Errorf("Fraction{} does not equal 0/7")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		got  Fraction
		want string
	}{
		{New(2, 3), "2/3"},
		{New(4, 6), "2/3"},
		{NewNeg(4, 5), "-4/5"},
		{New(10, 5), "2"},
		{New(0, 5), "0"},
		{NewNeg(0, 5), "0"},
		{New(1, 0), "inf"},
		{NewNeg(1, 0), "-inf"},
		{New(0, 0), "NaN"},
		{New(MaxTerm, MaxTerm), "1"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	neg, num, den, ok := NewNeg(6, 8).Rational()
	if !ok || !neg || num != 3 || den != 4 {
		t.Errorf("NewNeg(6, 8).Rational() = (%v, %v, %v, %v), want (true, 3, 4, true)", neg, num, den, ok)
	}
	if _, _, _, ok = NaN().Rational(); ok {
		t.Errorf("NaN().Rational() is ok")
	}
	if got := Inf(1).Denom(); got != 0 {
		t.Errorf("Inf(1).Denom() = %v, want 0", got)
	}
}

func TestFraction_Sign(t *testing.T) {
	tests := []struct {
		f                 Fraction
		sign              int
		isPos, isNeg, isZ bool
	}{
		{New(1, 2), 1, true, false, false},
		{NewNeg(1, 2), -1, false, true, false},
		{New(0, 1), 0, false, false, true},
		{Inf(1), 1, true, false, false},
		{Inf(-1), -1, false, true, false},
		{NaN(), 0, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.f.Sign(); got != tt.sign {
			t.Errorf("%v.Sign() = %v, want %v", tt.f, got, tt.sign)
		}
		if got := tt.f.IsPos(); got != tt.isPos {
			t.Errorf("%v.IsPos() = %v, want %v", tt.f, got, tt.isPos)
		}
		if got := tt.f.IsNeg(); got != tt.isNeg {
			t.Errorf("%v.IsNeg() = %v, want %v", tt.f, got, tt.isNeg)
		}
		if got := tt.f.IsZero(); got != tt.isZ {
			t.Errorf("%v.IsZero() = %v, want %v", tt.f, got, tt.isZ)
		}
	}

	unary := []struct {
		name string
		got  Fraction
		want string
	}{
		{"abs", NewNeg(1, 2).Abs(), "1/2"},
		{"neg", New(1, 2).Neg(), "-1/2"},
		{"neg zero", New(0, 1).Neg(), "0"},
		{"neg nan", NaN().Neg(), "NaN"},
		{"neg inf", Inf(1).Neg(), "-inf"},
	}
	for _, tt := range unary {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFraction_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Fraction
		want string
	}{
		{"add", New(1, 2).Add(New(1, 3)), "5/6"},
		{"add mixed signs", New(1, 2).Add(NewNeg(3, 4)), "-1/4"},
		{"add to zero", New(1, 2).Add(NewNeg(1, 2)), "0"},
		{"add negatives", NewNeg(1, 2).Add(NewNeg(1, 2)), "-1"},
		{"sub", New(1, 2).Sub(New(3, 4)), "-1/4"},
		{"sub negative", New(1, 2).Sub(NewNeg(1, 4)), "3/4"},
		{"mul", New(2, 3).Mul(New(3, 4)), "1/2"},
		{"mul signs", NewNeg(2, 3).Mul(NewNeg(3, 4)), "1/2"},
		{"quo", New(1, 2).Quo(New(1, 4)), "2"},
		{"quo sign", New(1, 2).Quo(NewNeg(1, 4)), "-2"},
		{"rem", New(7, 2).Rem(New(1, 1)), "1/2"},
		{"rem negative dividend", NewNeg(7, 2).Rem(New(1, 1)), "-1/2"},
		{"rem negative divisor", New(7, 2).Rem(NewNeg(1, 1)), "1/2"},
		{"rem exact", New(3, 1).Rem(New(3, 2)), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFraction_Special(t *testing.T) {
	tests := []struct {
		name string
		got  Fraction
		want string
	}{
		{"nan propagates", NaN().Add(New(1, 1)), "NaN"},
		{"inf plus rational", Inf(1).Add(New(1, 1)), "inf"},
		{"inf minus inf", Inf(1).Sub(Inf(1)), "NaN"},
		{"inf plus inf", Inf(-1).Add(Inf(-1)), "-inf"},
		{"inf times zero", Inf(1).Mul(New(0, 1)), "NaN"},
		{"inf times negative", Inf(1).Mul(NewNeg(1, 2)), "-inf"},
		{"rational over inf", New(1, 2).Quo(Inf(1)), "0"},
		{"rational rem inf", New(1, 2).Rem(Inf(-1)), "1/2"},
		{"inf rem rational", Inf(1).Rem(New(1, 2)), "NaN"},
		{"inf over inf", Inf(1).Quo(Inf(1)), "NaN"},
		{"divide by zero", New(1, 2).Quo(New(0, 1)), "inf"},
		{"divide negative by zero", NewNeg(1, 2).Quo(New(0, 1)), "-inf"},
		{"zero over zero", New(0, 1).Quo(New(0, 1)), "NaN"},
		{"rem by zero", New(1, 2).Rem(New(0, 1)), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFraction_Overflow(t *testing.T) {
	t.Run("integer part", func(t *testing.T) {
		got := New(MaxTerm, 1).Add(New(MaxTerm, 1))
		if !got.IsInf() || !got.IsPos() {
			t.Errorf("got %v, want inf", got)
		}
	})

	t.Run("approximated", func(t *testing.T) {
		got := New(1, MaxTerm).Add(New(1, MaxTerm-1))
		if !got.IsRational() {
			t.Fatalf("got %v, want a rational", got)
		}
		want := 1.0/MaxTerm + 1.0/(MaxTerm-1)
		if e := math.Abs(got.Float64()-want) / want; e > 1e-9 {
			t.Errorf("got %v, want %v within 1e-9", got.Float64(), want)
		}
	})

	t.Run("slow path", func(t *testing.T) {
		// Both cross products are close to 2^64, so their sum needs big.Int.
		a := New(MaxTerm, MaxTerm-2)
		b := New(MaxTerm-1, MaxTerm-4)
		got := a.Add(b)
		if !got.IsRational() {
			t.Fatalf("got %v, want a rational", got)
		}
		want := a.Float64() + b.Float64()
		if e := math.Abs(got.Float64()-want) / want; e > 1e-12 {
			t.Errorf("got %v, want %v within 1e-12", got.Float64(), want)
		}
	})

	t.Run("underflow", func(t *testing.T) {
		if got := New(1, MaxTerm).Mul(New(1, MaxTerm)); !got.IsZero() {
			t.Errorf("got %v, want 0", got)
		}
	})
}

func TestFraction_Cmp(t *testing.T) {
	ordered := []Fraction{
		Inf(-1),
		NewNeg(3, 2),
		NewNeg(1, 2),
		New(0, 1),
		New(1, 3),
		New(1, 2),
		New(MaxTerm, 1),
		Inf(1),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			got, ok := ordered[i].Cmp(ordered[j])
			if !ok || got != want {
				t.Errorf("Cmp(%v, %v) = (%v, %v), want (%v, true)", ordered[i], ordered[j], got, ok, want)
			}
		}
	}

	if _, ok := NaN().Cmp(New(1, 1)); ok {
		t.Errorf("Cmp(NaN, 1) is ok")
	}
	if _, ok := New(1, 1).Cmp(NaN()); ok {
		t.Errorf("Cmp(1, NaN) is ok")
	}
	if c, ok := NaN().Cmp(NaN()); !ok || c != 0 {
		t.Errorf("Cmp(NaN, NaN) = (%v, %v), want (0, true)", c, ok)
	}
	if !NaN().Equal(NaN()) {
		t.Errorf("NaN does not equal NaN")
	}
	if !New(2, 4).Equal(New(1, 2)) {
		t.Errorf("2/4 does not equal 1/2")
	}
	if New(1, 2).Equal(NewNeg(1, 2)) {
		t.Errorf("1/2 equals -1/2")
	}
}

func TestFraction_Float64(t *testing.T) {
	tests := []struct {
		f    Fraction
		want float64
	}{
		{New(2, 3), 2.0 / 3.0},
		{NewNeg(4, 5), -0.8},
		{Fraction{}, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Float64(); got != tt.want {
			t.Errorf("%v.Float64() = %v, want %v", tt.f, got, tt.want)
		}
	}
	if got := Inf(-1).Float64(); !math.IsInf(got, -1) {
		t.Errorf("Inf(-1).Float64() = %v, want -Inf", got)
	}
	if got := NaN().Float64(); !math.IsNaN(got) {
		t.Errorf("NaN().Float64() = %v, want NaN", got)
	}
}

type celsius float32

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		got  Fraction
		want string
	}{
		{"int64", FromInt64(-3), "-3"},
		{"min int64", FromInt64(math.MinInt64), "-inf"},
		{"uint64", FromUint64(42), "42"},
		{"large uint64", FromUint64(1 << 40), "inf"},
		{"float64", FromFloat64(0.1), "1/10"},
		{"float64 pi", FromFloat64(3.14), "157/50"},
		{"float64 third", FromFloat64(1.0 / 3.0), "1/3"},
		{"float64 negative", FromFloat64(-2.5), "-5/2"},
		{"float64 large", FromFloat64(1e20), "inf"},
		{"float64 tiny", FromFloat64(1e-20), "0"},
		{"float64 nan", FromFloat64(math.NaN()), "NaN"},
		{"float64 inf", FromFloat64(math.Inf(-1)), "-inf"},
		{"float32", FromFloat32(0.1), "1/10"},
		{"generic int8", From(int8(-2)), "-2"},
		{"generic uint16", From(uint16(7)), "7"},
		{"generic float32", From(float32(0.1)), "1/10"},
		{"generic float64", From(0.75), "3/4"},
		{"generic named float", From(celsius(-1.5)), "-3/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Fraction
		}{
			{"2/3", New(2, 3)},
			{"-4/5", NewNeg(4, 5)},
			{"+7/1", New(7, 1)},
			{"6/4", New(3, 2)},
			{"42", New(42, 1)},
			{"-1.25", NewNeg(5, 4)},
			{"0.5", New(1, 2)},
			{"1/0", Inf(1)},
			{"NaN", NaN()},
			{"inf", Inf(1)},
			{"-inf", Inf(-1)},
			{"4294967295/1", New(MaxTerm, 1)},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"",
			"-",
			"abc",
			"1/",
			"/2",
			"1/2/3",
			"1/-2",
			"4294967296/1",
			"1e5",
			"1.2.3",
		}
		for _, s := range tests {
			if _, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) did not fail", s)
			}
		}
	})
}

func TestMustParse(t *testing.T) {
	if got := MustParse("2/4").String(); got != "1/2" {
		t.Errorf("MustParse(\"2/4\") = %q, want \"1/2\"", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse(\"x\") did not panic")
		}
	}()
	MustParse("x")
}

func FuzzFraction_String(f *testing.F) {
	f.Add(uint32(2), uint32(3), false)
	f.Add(uint32(4), uint32(5), true)
	f.Add(uint32(0), uint32(1), true)

	f.Fuzz(
		func(t *testing.T, num, den uint32, neg bool) {
			want := New(num, den)
			if neg {
				want = NewNeg(num, den)
			}
			got, err := Parse(want.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", want.String(), err)
			}
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %v, want %v", want.String(), got, want)
			}
		},
	)
}
