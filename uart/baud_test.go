package uart

import (
	"testing"

	"f103periph-go/errcode"
)

func TestDivisorPacking(t *testing.T) {
	// 48 MHz at 9600: usartdiv 312.5, mantissa 312, fraction 8.
	div, err := divisor(48_000_000, Baud9600)
	if err != nil {
		t.Fatalf("divisor: %v", err)
	}
	if div != 0x1388 {
		t.Fatalf("div = %#x, want 0x1388", div)
	}
	if m, f := div>>4, div&0xF; m != 312 || f != 8 {
		t.Fatalf("mantissa %d fraction %d, want 312 and 8", m, f)
	}
}

func TestDivisorRoundsHalfUp(t *testing.T) {
	// 36 MHz at 115200 is 312.5 sixteenths; half rounds up to 313.
	div, err := divisor(36_000_000, Baud115200)
	if err != nil {
		t.Fatalf("divisor: %v", err)
	}
	if div != 313 {
		t.Fatalf("div = %d, want 313", div)
	}
}

func TestDivisorFractionCarry(t *testing.T) {
	// 8 MHz at 512k: usartdiv 0.9766. The fraction rounds to a full
	// sixteen and carries, which is what makes the rate achievable.
	div, err := divisor(8_000_000, 512_000)
	if err != nil {
		t.Fatalf("divisor: %v", err)
	}
	if div != 16 {
		t.Fatalf("div = %d, want 16", div)
	}
}

func TestDivisorRejects(t *testing.T) {
	cases := []struct {
		name string
		pclk uint32
		baud uint32
		want errcode.Code
	}{
		{"zero rate", 48_000_000, 0, errcode.InvalidBaud},
		{"too fast", 8_000_000, 1_000_000, errcode.BaudUnachievable},
		{"too slow", 8_000_000, 110, errcode.BaudUnachievable},
	}
	for _, tc := range cases {
		_, err := divisor(tc.pclk, tc.baud)
		if errcode.Of(err) != tc.want {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}
