package decimalfloat

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// extFloat is the extended-precision mantissa of spec.md §3: value =
// mant * 2^exp, normalized when mant's top bit is set.
type extFloat struct {
	mant uint64
	exp  int32
}

// normalize left-shifts mant until its top bit is set, returning the
// shift applied (0 for an already-normalized or zero mantissa).
func (fp *extFloat) normalize() uint {
	if fp.mant == 0 {
		return 0
	}
	shift := uint(bits.LeadingZeros64(fp.mant))
	fp.mant <<= shift
	fp.exp -= int32(shift)
	return shift
}

// errorScale/errorHalfscale express accumulated rounding error in
// eighths of a unit-in-last-place, matching the fixed-point error
// accounting of original_source/src/extended_float.rs
// (error_scale/error_halfscale), so "half an approximation error" is
// representable as an integer (4) rather than requiring fractional
// arithmetic.
const (
	errorScale     = 8
	errorHalfscale = errorScale / 2
)

// multiplyByPow10 multiplies fp by the table approximation of 10^exp10,
// tracking the accumulated error bound. It implements spec.md §4.3
// steps 2-4, grounded on
// original_source/src/extended_float.rs::multiply_exponent_extended,
// using github.com/shogo82148/int128.Uint128 to hold the 64x64->128-bit
// widened product (the teacher's own dependency, used in ftoa.go for
// exactly this kind of widening arithmetic).
//
// Returns the accumulated error (in eighths of a ULP of the final
// normalized mantissa) and whether exp10 was in the table's range at
// all; out-of-range is handled by the caller per spec.md §4.3's
// "certainly overflow or underflow" rule.
func multiplyByPow10(fp *extFloat, exp10 int32, truncated bool) (errors uint64, inRange bool) {
	entry, ok := pow10WideLookup(exp10)
	if !ok {
		return 0, false
	}

	if truncated {
		errors += errorHalfscale
	}

	fp.normalize()

	product := int128.Uint128{L: fp.mant}.Mul(int128.Uint128{L: entry.mant})

	fp.mant = product.H
	fp.exp = fp.exp + entry.exp2 + 64

	if errors > 0 {
		errors++
	}
	errors += errorHalfscale

	shift := fp.normalize()
	errors <<= shift

	return errors, true
}

// errorIsAccurate reports whether the accumulated error (in eighths of
// a ULP) is small enough that rounding fp to kind's precision is
// provably correct, i.e. the true value cannot be close enough to a
// rounding boundary for the error to matter. Ported from
// original_source/src/extended_float.rs::error_is_accurate /
// nearest_error_is_accurate.
func errorIsAccurate(ki *kindInfo, errors uint64, fp extFloat) bool {
	explicitBits := int(ki.mantissaBits) - 1
	denormalExp := int32(ki.minExp) - 64

	var extrabits int64
	if fp.exp <= denormalExp {
		extrabits = int64(64-explicitBits) + int64(denormalExp-fp.exp)
	} else {
		extrabits = int64(63 - explicitBits)
	}

	if extrabits > 65 {
		// Underflow: the value is a literal zero at this precision.
		return true
	}
	if extrabits == 65 {
		sum := fp.mant + errors
		overflowed := sum < fp.mant
		return !overflowed
	}

	mask := uint64(1)<<uint(extrabits) - 1
	extra := fp.mant & mask
	halfway := uint64(1) << uint(extrabits-1)

	cmp1 := (halfway - errors) < extra
	cmp2 := extra < (halfway + errors)
	return !(cmp1 && cmp2)
}

// moderate implements spec.md §4.3 end to end: it returns a rounded
// kind-precision value together with whether the rounding is provably
// correct (valid). When valid is false, the caller must escalate to
// Algorithm M (spec.md §4.6 step 3).
func moderate(ki *kindInfo, mantissa uint64, exponent int32, truncated bool) (result roundedValue, valid bool) {
	if exponent < pow10WideMinExp {
		return roundedValue{}, true // guaranteed underflow to zero
	}
	if exponent > pow10WideMaxExp {
		return roundedValue{overflow: true}, true // guaranteed overflow
	}

	fp := extFloat{mant: mantissa, exp: 0}
	errors, inRange := multiplyByPow10(&fp, exponent, truncated)
	if !inRange {
		return roundedValue{}, true
	}

	accurate := errorIsAccurate(ki, errors, fp)
	return roundExtFloat(ki, fp), accurate
}

// roundExtFloat rounds the normalized extFloat fp (64-bit mantissa,
// top bit set, or the zero value) down to kind's precision using
// round-half-to-even, shifting further right with sticky accumulation
// first when the true exponent falls below kind's minimum (spec.md
// §4.3's subnormal edge policy), and reports overflow when the true
// exponent (including any rounding carry) exceeds kind's maximum.
func roundExtFloat(ki *kindInfo, fp extFloat) roundedValue {
	if fp.mant == 0 {
		return roundedValue{}
	}

	// fp represents mant*2^exp with mant in [2^63,2^64), so the
	// unbiased IEEE exponent of the represented value is fp.exp+63.
	trueExp := int(fp.exp) + 63

	shift := int(64 - ki.mantissaBits)
	if trueExp < ki.minExp {
		shift += ki.minExp - trueExp
		trueExp = ki.minExp
	}
	if shift > 64 {
		return roundedValue{}
	}

	var rounded uint64
	if shift == 0 {
		rounded = fp.mant
	} else {
		halfway := uint64(1) << (shift - 1)
		rem := fp.mant & (1<<shift - 1)
		rounded = fp.mant >> shift
		if rem > halfway || (rem == halfway && rounded&1 == 1) {
			rounded++
		}
	}

	if rounded == 2<<(ki.mantissaBits-1) {
		rounded >>= 1
		trueExp++
	}
	if trueExp > ki.maxExp {
		return roundedValue{overflow: true}
	}

	return roundedValue{mant: rounded, exp: trueExp}
}
