package decimalfloat

// powersOfTenUint64 holds 10^n for n in [0,19], the full range that
// still fits in a uint64 (10^19 < 2^64). Used by the disguised fast
// path below to shift digits from the decimal exponent into the
// mantissa exactly.
var powersOfTenUint64 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// fastPath64 implements spec.md §4.2 for binary64: exact when the
// mantissa fits in 53 bits and the decimal exponent is within the
// exact-power-of-ten range, resolved with a single IEEE multiply or
// divide (both operands exactly representable, so the hardware
// operation is itself correctly rounded).
func fastPath64(mantissa uint64, exponent int32) (float64, bool) {
	if mantissa >= 1<<53 {
		return 0, false
	}
	if exponent >= 0 {
		if exponent <= int32(kind64.exactPow10Bound) {
			return float64(mantissa) * exactPow10[exponent], true
		}
		return fastPathDisguised64(mantissa, exponent)
	}
	if -exponent <= int32(kind64.exactPow10Bound) {
		return float64(mantissa) / exactPow10[-exponent], true
	}
	return 0, false
}

// fastPathDisguised64 handles spec.md's "Supplemented feature": a
// decimal exponent slightly beyond the exact-power-of-ten bound can
// still be resolved exactly when the mantissa has spare bits, by
// shifting digits from the exponent into the mantissa first. Grounded
// on original_source/src/algorithm.rs fast_path's disguised branch
// (`exponent <= max_exp + shift_exp`).
func fastPathDisguised64(mantissa uint64, exponent int32) (float64, bool) {
	bound := int32(kind64.exactPow10Bound)
	shift := exponent - bound
	if shift <= 0 || int(shift) >= len(powersOfTenUint64) {
		return 0, false
	}
	small := powersOfTenUint64[shift]
	value := mantissa * small
	if small != 0 && value/small != mantissa {
		return 0, false // overflowed uint64
	}
	if value >= 1<<53 {
		return 0, false
	}
	return float64(value) * exactPow10[bound], true
}

// fastPath32 is fastPath64's binary32 counterpart.
func fastPath32(mantissa uint64, exponent int32) (float32, bool) {
	if mantissa >= 1<<24 {
		return 0, false
	}
	bound := int32(kind32.exactPow10Bound)
	if exponent >= 0 {
		if exponent <= bound {
			return float32(mantissa) * exactPow10f32[exponent], true
		}
		return fastPathDisguised32(mantissa, exponent)
	}
	if -exponent <= bound {
		return float32(mantissa) / exactPow10f32[-exponent], true
	}
	return 0, false
}

func fastPathDisguised32(mantissa uint64, exponent int32) (float32, bool) {
	bound := int32(kind32.exactPow10Bound)
	shift := exponent - bound
	if shift <= 0 || int(shift) >= len(powersOfTenUint64) {
		return 0, false
	}
	small := powersOfTenUint64[shift]
	value := mantissa * small
	if small != 0 && value/small != mantissa {
		return 0, false
	}
	if value >= 1<<24 {
		return 0, false
	}
	return float32(value) * exactPow10f32[bound], true
}
