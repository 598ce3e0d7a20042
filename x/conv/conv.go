// Package conv renders numbers into caller-owned buffers, so the MCU
// demos can print counters and registers without pulling fmt into
// flash.
package conv

// Utoa writes n in decimal into the tail of buf and returns the used
// slice. Twenty bytes cover the full uint64 range; a smaller buffer
// keeps only the low-order digits that fit.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	for i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return buf[i:]
}

// U32Hex writes n as eight uppercase hex digits, zero padded, no 0x.
// A buffer under eight bytes comes back empty.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for shift := 0; shift < 32; shift += 4 {
		i--
		buf[i] = hexDigit(byte(n >> shift & 0xF))
	}
	return buf[i:]
}

func hexDigit(d byte) byte {
	if d < 10 {
		return '0' + d
	}
	return 'A' + d - 10
}
