package decimalfloat

import (
	"math"
	"testing"
)

func TestParseStringBinary64(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"1.2345", 1.2345},
		{"1.0e7", 1.0e7},
		{"5e-324", 5e-324},           // smallest subnormal
		{"1e309", math.Inf(1)},       // certain overflow
		{"1e-324", 0},                // rounds down to +0
		{"-1e-324", 0},               // -0; its sign bit is checked in TestParseStringNegativeZero
		{"9007199254740993", 9007199254740992}, // half-to-even rounds down
		{"0", 0},
		{"-0", 0},
		{"3.14159", 3.14159},
		{"100", 100},
		{"0.001", 0.001},
	}

	for _, tt := range tests {
		got, err := ParseString(Binary64, tt.s)
		if err != nil {
			t.Errorf("ParseString(%q) error: %v", tt.s, err)
			continue
		}
		if math.IsInf(tt.want, 1) {
			if !math.IsInf(got, 1) {
				t.Errorf("ParseString(%q) = %v, want +Inf", tt.s, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseString(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

// TestParseFloat64SmallestNormalHalfway covers spec.md §8's seventh
// concrete scenario, the halfway case near the smallest normal / largest
// subnormal boundary. spec.md's own text gives exponent -324, but under
// this module's documented exponent convention (the library-level
// exponent, minus the fraction digit count, gives the exponent of the
// concatenated digit string read as an integer) that reconstructs
// 222507385850720138 * 10^-341, sixteen orders of magnitude too small;
// -308 is the exponent that reconstructs the documented result:
// 222507385850720138 * 10^-325 lies about 0.006 ULP below the smallest
// normal binary64 (about half a ULP above the midpoint between it and the
// largest subnormal), so rounding to nearest gives the smallest normal.
func TestParseFloat64SmallestNormalHalfway(t *testing.T) {
	got := ParseFloat64(DigitString("2"), DigitString("22507385850720138"), -308)
	want := 2.2250738585072014e-308
	if got != want {
		t.Errorf("ParseFloat64(2,22507385850720138,-308) = %v, want %v", got, want)
	}
}

func TestParseStringNegativeZero(t *testing.T) {
	got, err := ParseString(Binary64, "-1e-324")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if got != 0 || !math.Signbit(got) {
		t.Errorf("ParseString(%q) = %v (signbit %v), want -0", "-1e-324", got, math.Signbit(got))
	}
}

func TestParseStringBinary32(t *testing.T) {
	tests := []struct {
		s    string
		want float32
	}{
		{"1.5", 1.5},
		{"3.4028235e38", math.MaxFloat32},
		{"1", 1},
	}

	for _, tt := range tests {
		got, err := ParseString(Binary32, tt.s)
		if err != nil {
			t.Errorf("ParseString(%q) error: %v", tt.s, err)
			continue
		}
		if float32(got) != tt.want {
			t.Errorf("ParseString(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestParseStringSyntaxError(t *testing.T) {
	tests := []string{"", "abc", "1.2.3", "1e", "e5", "--1", "1-e5"}
	for _, s := range tests {
		_, err := ParseString(Binary64, s)
		if err == nil {
			t.Errorf("ParseString(%q) expected an error, got nil", s)
		}
	}
}

func TestParseFloat64Iterators(t *testing.T) {
	got := ParseFloat64(DigitString("123"), DigitString("45"), 0)
	want := 123.45
	if got != want {
		t.Errorf("ParseFloat64 = %v, want %v", got, want)
	}

	got = ParseFloat64(NoDigits, DigitString("5"), 0)
	want = 0.5
	if got != want {
		t.Errorf("ParseFloat64 = %v, want %v", got, want)
	}
}

func TestCreateFloat64(t *testing.T) {
	got := CreateFloat64(12345, -4, false)
	want := 1.2345
	if got != want {
		t.Errorf("CreateFloat64(12345,-4,false) = %v, want %v", got, want)
	}

	got = CreateFloat64(5, -324, false)
	if got != 5e-324 {
		t.Errorf("CreateFloat64(5,-324,false) = %v, want 5e-324", got)
	}
}

func TestCreateFloat32(t *testing.T) {
	got := CreateFloat32(15, -1, false)
	want := float32(1.5)
	if got != want {
		t.Errorf("CreateFloat32(15,-1,false) = %v, want %v", got, want)
	}
}

// TestConcurrentParsing exercises spec.md's concurrency-safety
// requirement: all state is either read-only package globals (the
// power-of-ten tables) or confined to values passed by the caller, so
// concurrent calls must not race or corrupt each other's results.
func TestConcurrentParsing(t *testing.T) {
	const goroutines = 16
	done := make(chan bool, goroutines)
	for i := 0; i < goroutines; i++ {
		go func(n int) {
			ok := true
			for j := 0; j < 200; j++ {
				got, err := ParseString(Binary64, "1.2345e10")
				if err != nil || got != 1.2345e10 {
					ok = false
				}
			}
			done <- ok
		}(i)
	}
	for i := 0; i < goroutines; i++ {
		if !<-done {
			t.Errorf("concurrent ParseString produced an inconsistent result")
		}
	}
}
