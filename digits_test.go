package decimalfloat

import "testing"

func TestBuildParsedNumber(t *testing.T) {
	tests := []struct {
		integer, fraction string
		exponent          int32
		wantMantissa      uint64
		wantExponent      int32
		wantTruncated     bool
	}{
		{"1", "2345", 0, 12345, -4, false},
		{"1", "", 7, 1, 7, false},
		{"", "5", -324, 5, -325, false},
		{"0", "", 0, 0, 0, false},
		// 20 nines overflows the saturating accumulator: the low digit is
		// dropped and the exponent absorbs it, with truncation recorded
		// only if a dropped digit was non-zero.
		{"99999999999999999999", "", 0, 9999999999999999999, 1, true},
		{"10000000000000000000", "", 0, 10000000000000000000, 0, false},
	}

	for _, tt := range tests {
		pn := BuildParsedNumber(DigitString(tt.integer), DigitString(tt.fraction), tt.exponent)
		if pn.Mantissa != tt.wantMantissa {
			t.Errorf("BuildParsedNumber(%q,%q,%d).Mantissa = %d, want %d", tt.integer, tt.fraction, tt.exponent, pn.Mantissa, tt.wantMantissa)
		}
		if pn.Exponent != tt.wantExponent {
			t.Errorf("BuildParsedNumber(%q,%q,%d).Exponent = %d, want %d", tt.integer, tt.fraction, tt.exponent, pn.Exponent, tt.wantExponent)
		}
		if pn.Truncated != tt.wantTruncated {
			t.Errorf("BuildParsedNumber(%q,%q,%d).Truncated = %v, want %v", tt.integer, tt.fraction, tt.exponent, pn.Truncated, tt.wantTruncated)
		}
	}
}

func TestBuildParsedNumber_fullDigits(t *testing.T) {
	pn := BuildParsedNumber(DigitString("123"), DigitString("456"), 2)
	got := string(pn.FullDigits[:pn.FullDigitsLen])
	if got != "123456" {
		t.Errorf("FullDigits = %q, want %q", got, "123456")
	}
	if pn.FullExponent != -1 {
		t.Errorf("FullExponent = %d, want -1", pn.FullExponent)
	}
	if pn.FullDigitsOverflow {
		t.Errorf("FullDigitsOverflow = true, want false")
	}
}

func TestNoDigits(t *testing.T) {
	if _, ok := NoDigits.Next(); ok {
		t.Errorf("NoDigits.Next() returned ok=true, want false")
	}
}
