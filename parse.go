package decimalfloat

import "strconv"

// resolve64 runs the three-tier strategy of spec.md §4.6 on an already
// digit-adapted number, returning the unsigned magnitude. No sign is
// applied here or by ParseFloat64/ParseFloat32/CreateFloat64/CreateFloat32;
// ParseString is the only entry point that applies one.
func resolve64(pn ParsedNumber) float64 {
	if v, ok := fastPath64(pn.Mantissa, pn.Exponent); ok {
		return v
	}
	if r, valid := moderate(&kind64, pn.Mantissa, pn.Exponent, pn.Truncated); valid {
		return toFloat64(&kind64, false, r)
	}
	return toFloat64(&kind64, false, slowPath(&kind64, pn))
}

func resolve32(pn ParsedNumber) float32 {
	if v, ok := fastPath32(pn.Mantissa, pn.Exponent); ok {
		return v
	}
	if r, valid := moderate(&kind32, pn.Mantissa, pn.Exponent, pn.Truncated); valid {
		return float32(toFloat64(&kind32, false, r))
	}
	return float32(toFloat64(&kind32, false, slowPath(&kind32, pn)))
}

// slowPath escalates to Algorithm M (spec.md §4.5) using the digit
// adapter's retained full digit sequence. When that sequence overflowed
// its own fixed capacity (an input with more significant digits than
// any double-precision rounding decision could ever depend on), the
// outcome is resolved by the sign of the exponent rather than by
// reading digits that were never kept, per spec.md §7.
func slowPath(ki *kindInfo, pn ParsedNumber) roundedValue {
	if pn.FullDigitsOverflow {
		if pn.FullExponent+int32(pn.FullDigitsLen) > 0 {
			return roundedValue{overflow: true}
		}
		return roundedValue{}
	}
	return algorithmM(ki, pn.FullDigits[:pn.FullDigitsLen], pn.FullExponent)
}

// ParseFloat64 converts a decimal significand, given as separate
// integer-part and fraction-part digit iterators plus a decimal
// exponent, into the nearest binary64 value (spec.md §4.6, §6). integer
// and fraction may be NoDigits when that part is absent. Per spec.md
// §1/§7, the library never reads or emits a sign: callers negate the
// returned magnitude themselves when the original literal was negative.
func ParseFloat64(integer, fraction DigitReader, exponent int32) float64 {
	pn := BuildParsedNumber(integer, fraction, exponent)
	return resolve64(pn)
}

// ParseFloat32 is ParseFloat64's binary32 counterpart.
func ParseFloat32(integer, fraction DigitReader, exponent int32) float32 {
	pn := BuildParsedNumber(integer, fraction, exponent)
	return resolve32(pn)
}

// CreateFloat64 converts an already-materialized significand (an exact
// uint64 mantissa paired with a decimal exponent, e.g. as produced by a
// caller's own lexer that has already accumulated the digits) into the
// nearest binary64 value, without requiring the caller to hand back
// DigitReader iterators. truncated reports whether the caller's own
// accumulation dropped nonzero digits (spec.md §4.1's truncated flag),
// since mantissa alone cannot distinguish an exact value from one that
// was rounded before it ever reached this call.
func CreateFloat64(mantissa uint64, exponent int32, truncated bool) float64 {
	pn := parsedFromExact(mantissa, exponent, truncated)
	return resolve64(pn)
}

// CreateFloat32 is CreateFloat64's binary32 counterpart.
func CreateFloat32(mantissa uint64, exponent int32, truncated bool) float32 {
	pn := parsedFromExact(mantissa, exponent, truncated)
	return resolve32(pn)
}

func parsedFromExact(mantissa uint64, exponent int32, truncated bool) ParsedNumber {
	var pn ParsedNumber
	pn.Mantissa = mantissa
	pn.Exponent = exponent
	pn.Truncated = truncated
	pn.FullExponent = exponent
	digits := strconv.AppendUint(pn.FullDigits[:0], mantissa, 10)
	pn.FullDigitsLen = len(digits)
	return pn
}

// ParseString is a string-convenience wrapper around ParseFloat64/32
// for callers holding a plain decimal literal rather than pre-split
// digit iterators, surfacing malformed input as a *strconv.NumError
// the way the standard library's own strconv.ParseFloat does (spec.md's
// ambient error-handling convention, per SPEC_FULL.md's error design).
// Unlike strconv.ParseFloat, it does not report the count of bytes
// consumed (spec.md §1's Non-goal): s must be the entire literal.
func ParseString(kind Kind, s string) (float64, error) {
	const fn = "ParseString"
	neg, intPart, fracPart, exp, ok := splitDecimalLiteral(s)
	if !ok {
		return 0, &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}
	}

	integer := Digits(stripLeadingZeros(intPart))
	fraction := Digits(stripTrailingZeros(fracPart))

	var v float64
	if kind == Binary32 {
		v = float64(ParseFloat32(integer, fraction, exp))
	} else {
		v = ParseFloat64(integer, fraction, exp)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// splitDecimalLiteral lexes a plain (non-hex, non-Inf/NaN) decimal
// float literal of the form [+-]?digits?(.digits?)?([eE][+-]?digits)?,
// requiring at least one digit somewhere in the mantissa. It returns
// the sign, the integer-part digits, the fraction-part digits, and the
// decimal exponent of the e-suffix (0 when absent).
func splitDecimalLiteral(s string) (neg bool, intPart, fracPart string, exp int32, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart = s[start:i]

	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[start:i]
	}

	if intPart == "" && fracPart == "" {
		return false, "", "", 0, false
	}

	var explicitExp int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false, "", "", 0, false
		}
		v, err := strconv.ParseInt(s[expStart:i], 10, 32)
		if err != nil {
			// Absurdly large exponents still parse as a saturating value:
			// clamp rather than fail, since e.g. 1e999999999 is valid
			// syntax that simply overflows to +Inf.
			v = 1 << 30
		}
		explicitExp = v
		if expNeg {
			explicitExp = -explicitExp
		}
	}

	if i != len(s) {
		return false, "", "", 0, false
	}

	// exp is the raw e-suffix value (0 when absent): BuildParsedNumber
	// itself subtracts the fraction part's digit count, per spec.md §6's
	// exponent convention, so the fraction length must not be folded in
	// here as well.
	e := explicitExp
	if e > 1<<30 {
		e = 1 << 30
	} else if e < -(1 << 30) {
		e = -(1 << 30)
	}
	return neg, intPart, fracPart, int32(e), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func stripLeadingZeros(s string) []byte {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return []byte(s[i:])
}

func stripTrailingZeros(s string) []byte {
	j := len(s)
	for j > 0 && s[j-1] == '0' {
		j--
	}
	return []byte(s[:j])
}
