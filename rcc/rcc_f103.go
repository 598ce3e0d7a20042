//go:build stm32f103

package rcc

import (
	"device/stm32"

	"f103periph-go/periph"
)

// SW and SWS field encodings.
const (
	swHSI uint32 = 0x0
	swPLL uint32 = 0x2
)

func (r *RCC) applyClockTree(clock SysClock) {
	// External oscillator in bypass mode feeds the PLL.
	stm32.RCC.CR.SetBits(stm32.RCC_CR_HSEON)
	stm32.RCC.CR.SetBits(stm32.RCC_CR_HSEBYP)
	for !stm32.RCC.CR.HasBits(stm32.RCC_CR_HSERDY) {
	}

	// Flash wait states per frequency band, prefetch on.
	hz := clock.Hz()
	ws := uint32(0)
	switch {
	case hz > 48_000_000:
		ws = 2
	case hz > 24_000_000:
		ws = 1
	}
	stm32.FLASH.ACR.Set(stm32.FLASH_ACR_PRFTBE | ws<<stm32.FLASH_ACR_LATENCY_Pos)

	stm32.RCC.CR.ClearBits(stm32.RCC_CR_PLLON)

	cfgr := stm32.RCC.CFGR.Get()
	cfgr &^= stm32.RCC_CFGR_HPRE_Msk | stm32.RCC_CFGR_PPRE1_Msk | stm32.RCC_CFGR_PPRE2_Msk
	cfgr &^= stm32.RCC_CFGR_PLLSRC | stm32.RCC_CFGR_PLLXTPRE | stm32.RCC_CFGR_PLLMUL_Msk

	// AHB undivided, APB2 undivided. APB1 tops out at 36 MHz, so it
	// divides by two from 32 MHz up.
	if clock >= Clock32MHz {
		cfgr |= 0x4 << stm32.RCC_CFGR_PPRE1_Pos
	}

	// The PLL multiplies the 8 MHz feed. The 8 MHz setting halves the
	// feed first and doubles it back; 16 MHz and up share the x2 slot,
	// so the field value drops by one from there.
	mul := uint32(clock)
	if clock == Clock8MHz {
		cfgr |= stm32.RCC_CFGR_PLLXTPRE
	} else {
		mul--
	}
	cfgr |= mul << stm32.RCC_CFGR_PLLMUL_Pos
	cfgr |= stm32.RCC_CFGR_PLLSRC
	stm32.RCC.CFGR.Set(cfgr)

	stm32.RCC.CR.SetBits(stm32.RCC_CR_PLLON)
	for !stm32.RCC.CR.HasBits(stm32.RCC_CR_PLLRDY) {
	}

	cfgr = stm32.RCC.CFGR.Get()
	cfgr &^= stm32.RCC_CFGR_SW_Msk
	stm32.RCC.CFGR.Set(cfgr | swPLL<<stm32.RCC_CFGR_SW_Pos)
	for stm32.RCC.CFGR.Get()&stm32.RCC_CFGR_SWS_Msk != swPLL<<stm32.RCC_CFGR_SWS_Pos {
	}
}

func (r *RCC) applyGate(g periph.Gate, on bool) {
	var reg = &stm32.RCC.APB2ENR
	var bit uint32
	switch g {
	case periph.GateIOPA:
		bit = stm32.RCC_APB2ENR_IOPAEN
	case periph.GateIOPB:
		bit = stm32.RCC_APB2ENR_IOPBEN
	case periph.GateIOPC:
		bit = stm32.RCC_APB2ENR_IOPCEN
	case periph.GateIOPD:
		bit = stm32.RCC_APB2ENR_IOPDEN
	case periph.GateAFIO:
		bit = stm32.RCC_APB2ENR_AFIOEN
	case periph.GateUSART1:
		bit = stm32.RCC_APB2ENR_USART1EN
	case periph.GateUSART2:
		reg, bit = &stm32.RCC.APB1ENR, stm32.RCC_APB1ENR_USART2EN
	case periph.GateUSART3:
		reg, bit = &stm32.RCC.APB1ENR, stm32.RCC_APB1ENR_USART3EN
	case periph.GatePWR:
		reg, bit = &stm32.RCC.APB1ENR, stm32.RCC_APB1ENR_PWREN
	case periph.GateBKP:
		reg, bit = &stm32.RCC.APB1ENR, stm32.RCC_APB1ENR_BKPEN
	default:
		return
	}
	if on {
		reg.SetBits(bit)
	} else {
		reg.ClearBits(bit)
	}
}

func (r *RCC) applyMCO(src MCOSource) {
	if src != MCONone {
		// PA8 as alternate push-pull, 50 MHz.
		crh := stm32.GPIOA.CRH.Get()
		crh &^= stm32.GPIO_CRH_MODE8_Msk | stm32.GPIO_CRH_CNF8_Msk
		crh |= 0x3 << stm32.GPIO_CRH_MODE8_Pos
		crh |= 0x2 << stm32.GPIO_CRH_CNF8_Pos
		stm32.GPIOA.CRH.Set(crh)
	} else {
		// Back to floating input, the reset state.
		crh := stm32.GPIOA.CRH.Get()
		crh &^= stm32.GPIO_CRH_MODE8_Msk | stm32.GPIO_CRH_CNF8_Msk
		crh |= 0x1 << stm32.GPIO_CRH_CNF8_Pos
		stm32.GPIOA.CRH.Set(crh)
	}

	cfgr := stm32.RCC.CFGR.Get()
	cfgr &^= stm32.RCC_CFGR_MCO_Msk
	stm32.RCC.CFGR.Set(cfgr | uint32(src)<<stm32.RCC_CFGR_MCO_Pos)
}
