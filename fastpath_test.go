package decimalfloat

import "testing"

func TestFastPath64(t *testing.T) {
	tests := []struct {
		mantissa uint64
		exponent int32
		want     float64
		ok       bool
	}{
		{12345, -4, 1.2345, true},
		{1, 7, 1e7, true},
		{1, 22, 1e22, true},
		{1 << 53, 0, 0, false},          // mantissa doesn't fit in 53 bits
		{1, 23, 1e23, true},             // disguised: shift one digit into the mantissa
		{1, -23, 0, false},              // beyond the exact-division bound, no disguise for division
	}

	for _, tt := range tests {
		got, ok := fastPath64(tt.mantissa, tt.exponent)
		if ok != tt.ok {
			t.Errorf("fastPath64(%d,%d) ok = %v, want %v", tt.mantissa, tt.exponent, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("fastPath64(%d,%d) = %v, want %v", tt.mantissa, tt.exponent, got, tt.want)
		}
	}
}

func TestFastPath32(t *testing.T) {
	tests := []struct {
		mantissa uint64
		exponent int32
		want     float32
		ok       bool
	}{
		{123, -2, 1.23, true},
		{1, 10, 1e10, true},
		{1 << 24, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := fastPath32(tt.mantissa, tt.exponent)
		if ok != tt.ok {
			t.Errorf("fastPath32(%d,%d) ok = %v, want %v", tt.mantissa, tt.exponent, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("fastPath32(%d,%d) = %v, want %v", tt.mantissa, tt.exponent, got, tt.want)
		}
	}
}
