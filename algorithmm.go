package decimalfloat

// divide computes quotient = floor(num/den) and remainder = num - quotient*den
// via schoolbook binary long division. It is used only by algorithmM,
// where the caller has already scaled num and den so the quotient is
// known to fit within kindInfo.mantissaBits+1 bits, safely within a
// uint64. den must be non-zero.
//
// Grounded on the shift-and-subtract division taught alongside
// Clinger/Steele-and-White style exact decimal-to-binary conversion in
// original_source/src/bignum.rs (Bignum::hi64 and friends operate on
// the same restoring-division idea, applied there to extraction rather
// than exact quotient/remainder).
func divide(num, den *bigInt) (quotient uint64, remainder bigInt) {
	rem := *num
	if rem.cmp(den) < 0 {
		return 0, rem
	}

	shift := rem.bitLen() - den.bitLen()
	shifted := *den
	shifted.mulPow2(shift)
	if shifted.cmp(&rem) > 0 {
		shift--
		shifted = *den
		shifted.mulPow2(shift)
	}

	var q uint64
	for {
		if rem.cmp(&shifted) >= 0 {
			rem.sub(&shifted)
			q |= uint64(1) << uint(shift)
		}
		if shift == 0 {
			break
		}
		shifted.shr1()
		shift--
	}
	return q, rem
}

// algorithmM implements spec.md §4.5, the slow but always-correct
// path: it evaluates the decimal value digits * 10^fullExponent as an
// exact rational num/den and performs the division to
// kindInfo.mantissaBits of precision with round-half-to-even, using
// the fixed-capacity bigInt arena of bignum.go throughout so no
// allocation occurs even on this path. digits holds only the
// significant digits (no sign, no decimal point, leading/trailing
// zeros already stripped) as produced by the digit adapter's
// FullDigits buffer.
//
// Grounded on original_source/src/bignum.rs's algorithm_m plus the
// classic Clinger/Steele-and-White "generate correctly rounded digits"
// construction: represent the value as num/den, repeatedly rescale by
// powers of two until the integer quotient has exactly the target
// precision, then round the remainder against the denominator.
func algorithmM(ki *kindInfo, digits []byte, fullExponent int32) roundedValue {
	if len(digits) == 0 {
		return roundedValue{}
	}

	var digitVal bigInt
	if !digitVal.setDigits(digits) {
		// More significant digits than the arena can hold at all: per
		// spec.md §7's big-integer-capacity policy, resolve by the sign
		// of the exponent rather than escalate further.
		if fullExponent < 0 {
			return roundedValue{}
		}
		return roundedValue{overflow: true}
	}

	var baseNum, baseDen bigInt
	baseNum = digitVal
	baseDen.setUint64(1)
	if fullExponent >= 0 {
		if !baseNum.mulPow10(int(fullExponent)) {
			return roundedValue{overflow: true}
		}
	} else {
		if !baseDen.mulPow10(int(-fullExponent)) {
			return roundedValue{}
		}
	}
	if baseNum.isZero() {
		return roundedValue{}
	}

	p := int(ki.mantissaBits)
	targetExp := baseNum.bitLen() - baseDen.bitLen()
	if targetExp < ki.minExp {
		targetExp = ki.minExp
	}

	var num, den, rem bigInt
	var q uint64

	for {
		num = baseNum
		den = baseDen
		shift := targetExp - (p - 1)

		var ok bool
		switch {
		case shift > 0:
			ok = den.mulPow2(shift)
		case shift < 0:
			ok = num.mulPow2(-shift)
		default:
			ok = true
		}
		if !ok {
			if shift > 0 {
				return roundedValue{}
			}
			return roundedValue{overflow: true}
		}

		q, rem = divide(&num, &den)

		if q >= uint64(1)<<uint(p) {
			if targetExp >= ki.maxExp {
				return roundedValue{overflow: true}
			}
			targetExp++
			continue
		}
		if q < uint64(1)<<uint(p-1) && targetExp > ki.minExp {
			targetExp--
			continue
		}
		break
	}

	// Round half to even: compare the exact remainder, doubled, against
	// the (scaled) denominator.
	doubled := rem
	doubled.mulPow2(1)
	switch cmp := doubled.cmp(&den); {
	case cmp > 0, cmp == 0 && q&1 == 1:
		q++
		if q == uint64(1)<<uint(p) {
			q >>= 1
			targetExp++
		}
	}

	if targetExp > ki.maxExp {
		return roundedValue{overflow: true}
	}
	if q == 0 {
		return roundedValue{}
	}
	return roundedValue{mant: q, exp: targetExp}
}
