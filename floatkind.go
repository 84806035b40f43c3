package decimalfloat

import "math"

// Kind selects the target IEEE-754 binary floating-point format.
//
// The core conversion routines are written once against kindInfo and
// monomorphized per call site by the Kind passed in: ParseFloat64 and
// ParseFloat32 each pass their own constant kindInfo, so there is no
// runtime dispatch inside the hot paths themselves, only at the two
// public entry points (spec's "capability abstraction... monomorphized
// per target kind").
type Kind uint8

const (
	Binary32 Kind = iota
	Binary64
)

// kindInfo is the per-kind capability table described in spec.md §3
// ("Float kind"): mantissa width and exponent range, plus the
// exact-power cutoff used by the fast path. Grounded on the floatInfo
// struct used throughout the Go standard library's own strconv/atof
// implementation (see remyoudompheng-go/src/strconv, floatInfo
// {mantbits,expbits,bias}), trimmed to what this module needs: unlike
// the teacher's Float16 (a raw uint16 bit layout), results here are
// native float32/float64 values, so no exponent-bias or bit-layout
// fields are needed — math.Ldexp does the bit assembly.
type kindInfo struct {
	mantissaBits    uint // precision, including the implicit leading bit
	minExp          int  // minimum unbiased exponent for normal finite values
	maxExp          int  // maximum unbiased exponent for normal finite values
	exactPow10Bound int  // |exponent| bound for the fast path (§4.2)
}

var kind64 = kindInfo{
	mantissaBits:    53,
	minExp:          -1022,
	maxExp:          1023,
	exactPow10Bound: 22,
}

var kind32 = kindInfo{
	mantissaBits:    24,
	minExp:          -126,
	maxExp:          127,
	exactPow10Bound: 10,
}

func infoFor(k Kind) *kindInfo {
	if k == Binary64 {
		return &kind64
	}
	return &kind32
}

// roundedValue is the shared result of all three strategies before
// sign is applied: mant is exactly kindInfo.mantissaBits wide
// (including the implicit leading bit, if any), and exp is the
// unbiased binary exponent of mant's leading bit slot — i.e. the
// represented magnitude is mant * 2^(exp - (mantissaBits-1)). This is
// the same convention IEEE-754 itself uses for subnormals (mant's
// leading slot is simply unoccupied), so normal/subnormal continuity
// (spec.md §8 property 4) falls out of the formula with no special
// case.
type roundedValue struct {
	mant     uint64
	exp      int
	overflow bool
}

// toFloat64 assembles a roundedValue into a signed float64.
// math.Ldexp(x, e) is exact whenever x is exactly representable and
// x*2^e does not itself overflow/underflow float64 range, which holds
// here because the three strategies already perform their own
// overflow/underflow and rounding decisions at kind's (not float64's)
// precision before calling this.
func toFloat64(ki *kindInfo, neg bool, r roundedValue) float64 {
	if r.overflow {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if r.mant == 0 {
		if neg {
			return math.Copysign(0, -1)
		}
		return 0
	}
	v := math.Ldexp(float64(r.mant), r.exp-int(ki.mantissaBits-1))
	if neg {
		v = -v
	}
	return v
}
