package decimalfloat

import "testing"

func TestModerate64(t *testing.T) {
	tests := []struct {
		mantissa uint64
		exponent int32
		want     float64
	}{
		{12345, -4, 1.2345},
		{1, 7, 1e7},
		{5, -324, 5e-324},
		{1, -324, 0},
	}

	for _, tt := range tests {
		r, valid := moderate(&kind64, tt.mantissa, tt.exponent, false)
		if !valid {
			// Not every case is guaranteed to resolve in the moderate
			// tier alone; skip when escalation would be required, the
			// façade-level tests in parse_test.go cover the full chain.
			continue
		}
		got := toFloat64(&kind64, false, r)
		if got != tt.want {
			t.Errorf("moderate(%d,%d) = %v, want %v", tt.mantissa, tt.exponent, got, tt.want)
		}
	}
}

func TestModerateOverflow(t *testing.T) {
	r, valid := moderate(&kind64, 1, 309, false)
	if !valid {
		t.Fatal("expected a provably-accurate result for a clearly overflowing exponent")
	}
	if !r.overflow {
		t.Errorf("moderate(1,309) overflow = false, want true")
	}
}

func TestModerateUnderflow(t *testing.T) {
	r, valid := moderate(&kind64, 1, -400, false)
	if !valid {
		t.Fatal("expected a provably-accurate result for a clearly underflowing exponent")
	}
	if r.mant != 0 || r.overflow {
		t.Errorf("moderate(1,-400) = %+v, want the zero roundedValue", r)
	}
}

func TestExtFloatNormalize(t *testing.T) {
	fp := extFloat{mant: 1, exp: 0}
	shift := fp.normalize()
	if shift != 63 {
		t.Errorf("normalize() shift = %d, want 63", shift)
	}
	if fp.mant != 1<<63 {
		t.Errorf("normalize() mant = %#x, want %#x", fp.mant, uint64(1)<<63)
	}
	if fp.exp != -63 {
		t.Errorf("normalize() exp = %d, want -63", fp.exp)
	}
}
