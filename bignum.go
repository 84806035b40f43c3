package decimalfloat

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// limbBits and maxLimbs size the fixed-capacity big-integer arena of
// spec.md §4.4. Per SPEC_FULL.md §12(b): Algorithm M's largest operands
// come from an input that fills the 800-digit buffer (about 2,660 bits)
// at the lowest decimal exponent the moderate path escalates (-380): the
// denominator is then at most 10^1161 (under 3,860 bits) and the
// numerator is shifted left by at most 1,074 bits (under 3,740 bits);
// maxLimbs*limbBits (5,120 bits) leaves headroom without dynamic
// allocation.
const (
	limbBits = 64
	maxLimbs = 80
)

// bigInt is the stack-resident, fixed-capacity non-negative multi-limb
// integer of spec.md §4.4. limbs are little-endian (limbs[0] is least
// significant); n is the number of limbs in use, always trimmed so
// limbs[n-1] != 0 (n == 0 represents the value zero).
//
// Grounded on db47h-decimal's Word/limb-array layout (db47h-decimal__decimal.go),
// scaled down to spec.md's fixed-capacity, no-alloc requirement, and on
// the teacher's own decimal.Shift family (shogo82148-float16/atof.go)
// for the shift/multiply-by-power operations. Carry propagation in
// mulSmall uses github.com/shogo82148/int128.Uint128 (the teacher's
// dependency) to hold the 64x64->128-bit product plus running carry.
type bigInt struct {
	limbs [maxLimbs]uint64
	n     int
}

func (b *bigInt) trim() {
	for b.n > 0 && b.limbs[b.n-1] == 0 {
		b.n--
	}
}

func (b *bigInt) isZero() bool { return b.n == 0 }

func (b *bigInt) setUint64(x uint64) {
	b.n = 0
	if x != 0 {
		b.limbs[0] = x
		b.n = 1
	}
}

// setDigits sets b to the non-negative integer formed by digits (most
// significant first), as produced by the digit adapter's FullDigits
// buffer. It reports false if the arena's capacity is exceeded.
func (b *bigInt) setDigits(digits []byte) bool {
	b.n = 0
	for _, ch := range digits {
		if !b.mulSmall(10) {
			return false
		}
		if d := uint64(ch - '0'); d != 0 {
			if !b.addSmall(d) {
				return false
			}
		}
	}
	return true
}

// mulSmall multiplies b in place by the uint64 y, propagating carries
// limb by limb with a 128-bit accumulator.
func (b *bigInt) mulSmall(y uint64) bool {
	if y == 0 {
		b.n = 0
		return true
	}
	var carry uint64
	for i := 0; i < b.n; i++ {
		var product int128.Uint128
		product.H, product.L = bits.Mul64(b.limbs[i], y)
		sum := product.Add(int128.Uint128{L: carry})
		b.limbs[i] = sum.L
		carry = sum.H
	}
	for carry != 0 {
		if b.n >= maxLimbs {
			return false
		}
		b.limbs[b.n] = carry
		carry = 0
		b.n++
	}
	b.trim()
	return true
}

// addSmall adds the uint64 y to b in place.
func (b *bigInt) addSmall(y uint64) bool {
	var other bigInt
	other.setUint64(y)
	return b.add(&other)
}

// pow5Chunks holds 5^1..5^27, the largest run of powers of five that
// individually fit in a uint64 (5^27 < 2^64 < 5^28), used to batch
// mulPow5 into few mulSmall calls instead of one per digit of
// exponent, mirroring the teacher's own small-table-plus-repeated-multiply
// approach (shogo82148-float16/atof.go powtab usage).
var pow5Chunks = [...]uint64{
	1,
	5, 25, 125, 625, 3125, 15625, 78125, 390625, 1953125,
	9765625, 48828125, 244140625, 1220703125, 6103515625,
	30517578125, 152587890625, 762939453125, 3814697265625,
	19073486328125, 95367431640625, 476837158203125,
	2384185791015625, 11920928955078125, 59604644775390625,
	298023223876953125, 1490116119384765625, 7450580596923828125,
}

const maxPow5Chunk = 27

// mulPow5 multiplies b in place by 5^k.
func (b *bigInt) mulPow5(k int) bool {
	for k > 0 {
		chunk := k
		if chunk > maxPow5Chunk {
			chunk = maxPow5Chunk
		}
		if !b.mulSmall(pow5Chunks[chunk]) {
			return false
		}
		k -= chunk
	}
	return true
}

// mulPow2 (aka shl) left-shifts b in place by k bits.
func (b *bigInt) mulPow2(k int) bool {
	if k == 0 || b.isZero() {
		return true
	}
	limbShift := k / limbBits
	bitShift := uint(k % limbBits)
	newN := b.n + limbShift
	if bitShift > 0 {
		newN++
	}
	if newN > maxLimbs {
		return false
	}

	var out [maxLimbs]uint64
	var carry uint64
	for i := 0; i < b.n; i++ {
		v := b.limbs[i]
		if bitShift == 0 {
			out[i+limbShift] = v
			continue
		}
		out[i+limbShift] = v<<bitShift | carry
		carry = v >> (limbBits - bitShift)
	}
	if bitShift > 0 && carry != 0 {
		out[b.n+limbShift] = carry
	}
	b.limbs = out
	b.n = newN
	b.trim()
	return true
}

func (b *bigInt) shl(k int) bool { return b.mulPow2(k) }

// shr1 right-shifts b in place by exactly one bit (integer division by
// two, discarding the low bit). Used by Algorithm M's long division.
func (b *bigInt) shr1() {
	var carry uint64
	for i := b.n - 1; i >= 0; i-- {
		v := b.limbs[i]
		b.limbs[i] = v>>1 | carry
		carry = (v & 1) << (limbBits - 1)
	}
	b.trim()
}

// mulPow10 multiplies b in place by 10^k = 2^k * 5^k, factored per
// spec.md §4.4.
func (b *bigInt) mulPow10(k int) bool {
	if !b.mulPow5(k) {
		return false
	}
	return b.mulPow2(k)
}

// bitLen returns the number of bits needed to represent b (0 for zero).
func (b *bigInt) bitLen() int {
	if b.n == 0 {
		return 0
	}
	return (b.n-1)*limbBits + bits.Len64(b.limbs[b.n-1])
}

// hi64 returns the top 64 significant bits of b, left-justified (top
// bit of the result is b's most significant bit), plus whether any
// bit below those 64 is set (the "sticky" bit used for rounding
// decisions that only need the leading bits of a huge integer).
func (b *bigInt) hi64() (hi uint64, nonzeroBelow bool) {
	if b.n == 0 {
		return 0, false
	}
	top := b.limbs[b.n-1]
	lz := bits.LeadingZeros64(top)
	hi = top << uint(lz)
	if b.n >= 2 {
		next := b.limbs[b.n-2]
		if lz > 0 {
			hi |= next >> uint(limbBits-lz)
			lowMask := uint64(1)<<uint(limbBits-lz) - 1
			if next&lowMask != 0 {
				nonzeroBelow = true
			}
		} else if next != 0 {
			nonzeroBelow = true
		}
		for i := 0; i < b.n-2; i++ {
			if b.limbs[i] != 0 {
				nonzeroBelow = true
			}
		}
	}
	return hi, nonzeroBelow
}

// cmp performs a three-way comparison of b and o.
func (b *bigInt) cmp(o *bigInt) int {
	if b.n != o.n {
		if b.n < o.n {
			return -1
		}
		return 1
	}
	for i := b.n - 1; i >= 0; i-- {
		if b.limbs[i] != o.limbs[i] {
			if b.limbs[i] < o.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// add sets b to b+o.
func (b *bigInt) add(o *bigInt) bool {
	n := b.n
	if o.n > n {
		n = o.n
	}
	var out [maxLimbs]uint64
	var carry uint64
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < b.n {
			x = b.limbs[i]
		}
		if i < o.n {
			y = o.limbs[i]
		}
		out[i], carry = bits.Add64(x, y, carry)
	}
	if carry != 0 {
		if n >= maxLimbs {
			return false
		}
		out[n] = carry
		n++
	}
	b.limbs = out
	b.n = n
	b.trim()
	return true
}

// sub sets b to b-o. Callers must ensure b >= o (the only use Algorithm
// M makes of subtraction, per spec.md §4.4's "sub is only used on a
// known-≥ operand").
func (b *bigInt) sub(o *bigInt) {
	var borrow uint64
	for i := 0; i < b.n; i++ {
		var y uint64
		if i < o.n {
			y = o.limbs[i]
		}
		b.limbs[i], borrow = bits.Sub64(b.limbs[i], y, borrow)
	}
	b.trim()
}
