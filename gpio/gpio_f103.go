//go:build stm32f103

package gpio

import (
	"device/stm32"

	"f103periph-go/periph"
)

func gpioPort(p periph.Port) *stm32.GPIO_Type {
	switch p {
	case periph.PortA:
		return stm32.GPIOA
	case periph.PortB:
		return stm32.GPIOB
	case periph.PortC:
		return stm32.GPIOC
	default:
		return stm32.GPIOD
	}
}

func setPinConfig(pin periph.PinID, cfg uint32) {
	port := gpioPort(pin.Port)
	shift := uint32(pin.Pin%8) * 4
	if pin.Pin < 8 {
		v := port.CRL.Get()
		v &^= 0xF << shift
		port.CRL.Set(v | cfg<<shift)
	} else {
		v := port.CRH.Get()
		v &^= 0xF << shift
		port.CRH.Set(v | cfg<<shift)
	}
}

func (p *Pins) applyInput(pin periph.PinID, pull Pull) {
	if pull == PullNone {
		setPinConfig(pin, 0x4) // CNF 01, MODE 00: floating input
		return
	}
	setPinConfig(pin, 0x8) // CNF 10, MODE 00: biased input
	port := gpioPort(pin.Port)
	if pull == PullUp {
		port.ODR.SetBits(1 << pin.Pin)
	} else {
		port.ODR.ClearBits(1 << pin.Pin)
	}
}

func (p *Pins) applyOutput(pin periph.PinID, drive Drive, speed Speed) {
	cfg := uint32(speed)
	if drive == OpenDrain {
		cfg |= 0x4 // CNF 01
	}
	setPinConfig(pin, cfg)
}

func (p *Pins) applyRead(pin periph.PinID) bool {
	return gpioPort(pin.Port).IDR.HasBits(1 << pin.Pin)
}

func (p *Pins) applyWrite(pin periph.PinID, high bool) {
	// BSRR sets through the low half and resets through the high half,
	// both atomically.
	if high {
		gpioPort(pin.Port).BSRR.Set(1 << pin.Pin)
	} else {
		gpioPort(pin.Port).BSRR.Set(1 << (uint32(pin.Pin) + 16))
	}
}

func (p *Pins) applyDeInit(pin periph.PinID) {
	setPinConfig(pin, 0x4) // floating input
}
