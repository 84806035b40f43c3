package decimalfloat

// exactPow10 holds 10^n for the range of n that is exactly representable
// in a float64 mantissa (n in [0, 22]), used by the fast path (spec.md
// §4.2: "Both operands are exactly representable, and a single IEEE
// operation is correctly rounded").
//
// Grounded on the standard library's own exact-power-of-ten table
// (CongLeSolutionX-go_community__pow10.go, pow10tab), trimmed to the
// subset that is exact rather than the full Pow10 range (which includes
// inexact entries beyond 10^22 useful only for formatting).
var exactPow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// exactPow10f32 is the float32-exact subset (10^n exact for n in [0,10]).
var exactPow10f32 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}
