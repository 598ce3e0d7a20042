//go:build !stm32f103

package gpio

import "f103periph-go/periph"

// Host builds keep pin levels in the bookkeeping so tests can drive
// and observe them without hardware.

func (p *Pins) applyInput(periph.PinID, Pull) {}

func (p *Pins) applyOutput(periph.PinID, Drive, Speed) {}

func (p *Pins) applyRead(pin periph.PinID) bool {
	return p.levels[pin.Port]&(1<<pin.Pin) != 0
}

func (p *Pins) applyWrite(periph.PinID, bool) {}

func (p *Pins) applyDeInit(periph.PinID) {}

// SimSetInput drives a simulated input level, for tests.
func (p *Pins) SimSetInput(pin periph.PinID, high bool) {
	if !pin.Valid() {
		return
	}
	if high {
		p.levels[pin.Port] |= 1 << pin.Pin
	} else {
		p.levels[pin.Port] &^= 1 << pin.Pin
	}
}
