package decimalfloat

import (
	"math/big"
	"strconv"
	"testing"
)

// FuzzParseString cross-checks ParseString against the standard library's
// strconv.ParseFloat as an independent oracle, grounded on the teacher's
// FuzzMul (math_test.go), which cross-checks Float16 arithmetic against
// float64 arithmetic the same way. Whenever our restricted grammar (a
// subset of Go's float literal syntax: no hex floats, no Inf/NaN, no
// digit-separator underscores) accepts a string, strconv.ParseFloat must
// accept the same string and the two must agree bit for bit, since both
// are specified to return the correctly-rounded nearest binary64.
func FuzzParseString(f *testing.F) {
	f.Add("1.2345")
	f.Add("1.0e7")
	f.Add("5e-324")
	f.Add("1e309")
	f.Add("-0")
	f.Add("9007199254740993")
	f.Add("")
	f.Add("abc")

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ParseString(Binary64, s)
		if err != nil {
			return
		}
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Errorf("ParseString(%q) = %v, nil but strconv.ParseFloat disagrees: %v", s, got, err)
			return
		}
		if got != want {
			t.Errorf("ParseString(%q) = %v, want %v (strconv.ParseFloat)", s, got, want)
		}
	})
}

// FuzzParseFloat64 cross-checks the core iterator entry point against
// math/big.Rat, which performs exact rational arithmetic and then rounds
// to the nearest float64 (ties to even) on demand — an oracle independent
// of this module's fast/moderate/slow tiers, in the spirit of db47h/decimal's
// use of math/big.Float as a reference implementation for its own decimal
// conversions. Inputs are kept small enough that the big.Int power-of-ten
// computation stays cheap; the fast/moderate/slow boundary is already
// covered by the table-driven tests elsewhere.
func FuzzParseFloat64(f *testing.F) {
	f.Add("1", "2345", int32(0))
	f.Add("", "5", int32(-323))
	f.Add("9007199254740993", "", int32(0))
	f.Add("2", "22507385850720138", int32(-308))
	f.Add("1", "", int32(309))

	f.Fuzz(func(t *testing.T, integer, fraction string, exponent int32) {
		if !allDigits(integer) || !allDigits(fraction) {
			t.Skip()
		}
		if len(integer) > 25 || len(fraction) > 25 {
			t.Skip()
		}
		effExp := int64(exponent) - int64(len(fraction))
		if effExp > 400 || effExp < -400 {
			t.Skip()
		}

		got := ParseFloat64(DigitString(integer), DigitString(fraction), exponent)
		want, ok := oracleFloat64(integer, fraction, exponent)
		if !ok {
			t.Skip()
		}
		if got != want {
			t.Errorf("ParseFloat64(%q,%q,%d) = %v, want %v (big.Rat oracle)", integer, fraction, exponent, got, want)
		}
	})
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// oracleFloat64 computes the exact decimal value integer.fraction * 10^exp
// (exp applies with the decimal point in place, the same convention as
// BuildParsedNumber; the concatenated digit string is therefore scaled by
// 10^(exp-len(fraction))), as a big.Rat and rounds it
// to the nearest float64 independently of this module's own rounding code.
func oracleFloat64(integer, fraction string, exponent int32) (float64, bool) {
	digits := integer + fraction
	if digits == "" {
		digits = "0"
	}
	n := new(big.Int)
	if _, ok := n.SetString(digits, 10); !ok {
		return 0, false
	}

	r := new(big.Rat).SetInt(n)
	exp := int64(exponent) - int64(len(fraction))
	switch {
	case exp > 0:
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
		r.Mul(r, new(big.Rat).SetInt(pow))
	case exp < 0:
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(-exp), nil)
		r.Quo(r, new(big.Rat).SetInt(pow))
	}

	v, _ := r.Float64()
	return v, true
}
