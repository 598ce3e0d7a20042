//go:build stm32f103

package afio

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

// Per-pin config nibbles, CNF in the high two bits, MODE in the low two.
const (
	cfgInputFloating = 0x4 // CNF 01, MODE 00
	cfgInputPulled   = 0x8 // CNF 10, MODE 00, pull direction from ODR
	cfgAltPushPull   = 0xB // CNF 10, MODE 11 (50 MHz)
	cfgAltOpenDrain  = 0xF // CNF 11, MODE 11
)

func (ro *Router) applyPin(pin periph.PinID, role periph.PinRole) {
	port := gpioPort(pin.Port)

	cfg := uint32(cfgInputFloating)
	switch role {
	case periph.RoleInputPullUp, periph.RoleInputPullDown:
		cfg = cfgInputPulled
	case periph.RoleAltPushPull:
		cfg = cfgAltPushPull
	case periph.RoleAltOpenDrain:
		cfg = cfgAltOpenDrain
	}

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

	switch role {
	case periph.RoleInputPullUp:
		port.ODR.SetBits(1 << pin.Pin)
	case periph.RoleInputPullDown:
		port.ODR.ClearBits(1 << pin.Pin)
	}
}

func (ro *Router) applyRemap(r periph.Remap, on bool) {
	mapr := stm32.AFIO.MAPR.Get()
	switch r {
	case periph.RemapUSART1:
		if on {
			mapr |= stm32.AFIO_MAPR_USART1_REMAP
		} else {
			mapr &^= stm32.AFIO_MAPR_USART1_REMAP
		}
	case periph.RemapUSART2:
		if on {
			mapr |= stm32.AFIO_MAPR_USART2_REMAP
		} else {
			mapr &^= stm32.AFIO_MAPR_USART2_REMAP
		}
	case periph.RemapUSART3Partial:
		mapr &^= stm32.AFIO_MAPR_USART3_REMAP_Msk
		if on {
			mapr |= 0x1 << stm32.AFIO_MAPR_USART3_REMAP_Pos
		}
	case periph.RemapUSART3Full:
		mapr &^= stm32.AFIO_MAPR_USART3_REMAP_Msk
		if on {
			mapr |= 0x3 << stm32.AFIO_MAPR_USART3_REMAP_Pos
		}
	}
	stm32.AFIO.MAPR.Set(mapr)
}
