package uart

import (
	"f103periph-go/errcode"
	"f103periph-go/x/mathx"
)

// Common rates. Any positive rate is accepted by Configure; these just
// name the ones the block is normally run at.
const (
	Baud1200    = 1200
	Baud2400    = 2400
	Baud4800    = 4800
	Baud9600    = 9600
	Baud19200   = 19200
	Baud38400   = 38400
	Baud57600   = 57600
	Baud115200  = 115200
	Baud230400  = 230400
	Baud460800  = 460800
	Baud921600  = 921600
	Baud2250000 = 2250000
	Baud4500000 = 4500000
)

// divisor packs the BRR value for a target rate: a 12-bit mantissa and
// a 4-bit fraction in 1/16ths, so the register is round(pclk/baud) in
// fixed point. Rounding is half up, and a fraction that rounds to 16
// carries into the mantissa. 48 MHz at 9600 gives mantissa 312
// fraction 8 (0x1388).
func divisor(pclkHz, baud uint32) (uint32, error) {
	if baud == 0 {
		return 0, &errcode.E{C: errcode.InvalidBaud, Op: "uart.Configure"}
	}
	div := mathx.RoundDiv(pclkHz, baud)
	if mant := div >> 4; mant == 0 || mant > 0xFFF {
		return 0, &errcode.E{C: errcode.BaudUnachievable, Op: "uart.Configure"}
	}
	return div, nil
}
