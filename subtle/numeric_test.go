package subtle

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumRadix(t *testing.T) {
	testCases := []struct {
		name   string
		digits []uint16
		radix  int
		want   string
	}{
		{"Empty", nil, 62, "0"},
		{"SingleZero", []uint16{0}, 10, "0"},
		{"LeadingZeros", []uint16{0, 0, 0, 1}, 62, "1"},
		{"Decimal", []uint16{9, 9, 9, 9}, 10, "9999"},
		{"Base62", []uint16{2, 37, 17}, 62, "9999"},
		{"Binary", []uint16{1, 0, 0, 0, 0}, 2, "16"},
		{"MaxRadix", []uint16{65535, 65535}, MaxRadix, "4294967295"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NumRadix(tc.digits, tc.radix)
			if got.String() != tc.want {
				t.Errorf("NumRadix(%v, %d) = %s, want %s", tc.digits, tc.radix, got, tc.want)
			}
		})
	}
}

func TestStrRadix(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		radix int
		want  []uint16
	}{
		{"Zero", "0", 62, []uint16{0}},
		{"One", "1", 2, []uint16{1}},
		{"Base62", "9999", 62, []uint16{2, 37, 17}},
		{"Binary", "16", 2, []uint16{1, 0, 0, 0, 0}},
		{"MaxRadix", "4294967295", MaxRadix, []uint16{65535, 65535}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, ok := new(big.Int).SetString(tc.value, 10)
			if !ok {
				t.Fatalf("bad test value %q", tc.value)
			}
			got := StrRadix(val, tc.radix)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("StrRadix(%s, %d) mismatch (-want +got):\n%s", tc.value, tc.radix, diff)
			}
			if val.String() != tc.value {
				t.Errorf("StrRadix modified its input: %s", val)
			}
		})
	}
}

func TestRadixRoundTrip(t *testing.T) {
	// 2^200 + 12345 spans many digits in every radix.
	val := new(big.Int).Lsh(big.NewInt(1), 200)
	val.Add(val, big.NewInt(12345))

	for _, radix := range []int{2, 3, 10, 16, 58, 62, 67, 256, 1000, MaxRadix} {
		digits := StrRadix(val, radix)
		if digits[0] == 0 {
			t.Errorf("radix %d: leading zero digit", radix)
		}
		if got := NumRadix(digits, radix); got.Cmp(val) != 0 {
			t.Errorf("radix %d: round trip got %s, want %s", radix, got, val)
		}
	}
}

func TestSplitBytes(t *testing.T) {
	if got := SplitBytes(new(big.Int)); got == nil || len(got) != 0 {
		t.Errorf("SplitBytes(0) = %#v, want empty non-nil slice", got)
	}

	val := new(big.Int).SetBytes([]byte{0x00, 0x01, 0x02, 0xff})
	if diff := cmp.Diff([]byte{0x01, 0x02, 0xff}, SplitBytes(val)); diff != "" {
		t.Errorf("SplitBytes mismatch (-want +got):\n%s", diff)
	}
}

func TestBitLength(t *testing.T) {
	testCases := map[int]int{0: 1, 1: 1, 2: 2, 3: 2, 62: 6, 64: 7, MaxRadix: 17}
	for radix, want := range testCases {
		if got := bitLength(radix); got != want {
			t.Errorf("bitLength(%d) = %d, want %d", radix, got, want)
		}
	}
}
