package decimalfloat

import "testing"

func TestBigIntSetDigits(t *testing.T) {
	var b bigInt
	if !b.setDigits([]byte("12345")) {
		t.Fatal("setDigits reported capacity exceeded")
	}
	hi, below := b.hi64()
	// 12345 fits entirely in the top limb, left-justified.
	want := uint64(12345) << (64 - 14) // bit length of 12345 is 14
	if hi != want || below {
		t.Errorf("hi64() = (%#x, %v), want (%#x, false)", hi, below, want)
	}
	if b.bitLen() != 14 {
		t.Errorf("bitLen() = %d, want 14", b.bitLen())
	}
}

func TestBigIntMulPow10(t *testing.T) {
	var b bigInt
	b.setUint64(1)
	if !b.mulPow10(20) {
		t.Fatal("mulPow10(20) reported overflow")
	}
	// 10^20 needs 67 bits; verify against a second bigInt built by
	// repeated multiplication by 10.
	var ref bigInt
	ref.setUint64(1)
	for i := 0; i < 20; i++ {
		ref.mulSmall(10)
	}
	if b.cmp(&ref) != 0 {
		t.Errorf("mulPow10(20) disagrees with repeated mulSmall(10)")
	}
	if got := b.bitLen(); got != 67 {
		t.Errorf("bitLen() of 10^20 = %d, want 67", got)
	}
}

func TestBigIntCmp(t *testing.T) {
	var a, b bigInt
	a.setUint64(100)
	b.setUint64(200)
	if a.cmp(&b) >= 0 {
		t.Errorf("100.cmp(200) >= 0, want < 0")
	}
	if b.cmp(&a) <= 0 {
		t.Errorf("200.cmp(100) <= 0, want > 0")
	}
	if a.cmp(&a) != 0 {
		t.Errorf("100.cmp(100) != 0")
	}
}

func TestBigIntAddSub(t *testing.T) {
	var a, b bigInt
	a.setUint64(1<<63 | 5)
	b.setUint64(1 << 63)
	sum := a
	if !sum.add(&b) {
		t.Fatal("add reported overflow")
	}
	if sum.bitLen() != 65 {
		t.Errorf("bitLen after add = %d, want 65", sum.bitLen())
	}
	sum.sub(&b)
	if sum.cmp(&a) != 0 {
		t.Errorf("(a+b)-b != a")
	}
}

func TestBigIntShl(t *testing.T) {
	var a bigInt
	a.setUint64(1)
	if !a.shl(130) {
		t.Fatal("shl(130) reported overflow")
	}
	if a.bitLen() != 131 {
		t.Errorf("bitLen after shl(130) = %d, want 131", a.bitLen())
	}
	a.shr1()
	if a.bitLen() != 130 {
		t.Errorf("bitLen after shr1 = %d, want 130", a.bitLen())
	}
}

func TestDivide(t *testing.T) {
	var num, den bigInt
	num.setUint64(1000)
	den.setUint64(7)
	q, r := divide(&num, &den)
	if q != 142 {
		t.Errorf("1000/7 quotient = %d, want 142", q)
	}
	var want bigInt
	want.setUint64(6)
	if r.cmp(&want) != 0 {
		t.Errorf("1000%%7 remainder mismatch, got bitLen %d", r.bitLen())
	}
}
