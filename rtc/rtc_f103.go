//go:build stm32f103

package rtc

import "device/stm32"

// RTCSEL field encodings.
const (
	rtcSelLSE uint32 = 0x1
	rtcSelLSI uint32 = 0x2
)

func (r *RTC) applyStart(src ClockSource) {
	// Unlock the backup domain before touching BDCR or the RTC.
	stm32.PWR.CR.SetBits(stm32.PWR_CR_DBP)

	var sel, prescale uint32
	if src == SourceLSE {
		stm32.RCC.BDCR.SetBits(stm32.RCC_BDCR_LSEON)
		for !stm32.RCC.BDCR.HasBits(stm32.RCC_BDCR_LSERDY) {
		}
		sel, prescale = rtcSelLSE, 32768-1
	} else {
		stm32.RCC.CSR.SetBits(stm32.RCC_CSR_LSION)
		for !stm32.RCC.CSR.HasBits(stm32.RCC_CSR_LSIRDY) {
		}
		sel, prescale = rtcSelLSI, 40_000-1
	}

	bdcr := stm32.RCC.BDCR.Get()
	bdcr &^= stm32.RCC_BDCR_RTCSEL_Msk
	bdcr |= sel << stm32.RCC_BDCR_RTCSEL_Pos
	bdcr |= stm32.RCC_BDCR_RTCEN
	stm32.RCC.BDCR.Set(bdcr)

	// Wait for register sync, then program the prescaler in
	// configuration mode.
	stm32.RTC.CRL.ClearBits(stm32.RTC_CRL_RSF)
	for !stm32.RTC.CRL.HasBits(stm32.RTC_CRL_RSF) {
	}
	enterConfig()
	stm32.RTC.PRLH.Set(prescale >> 16)
	stm32.RTC.PRLL.Set(prescale & 0xFFFF)
	leaveConfig()
}

func (r *RTC) applySeconds() uint32 {
	// Two reads of the split counter can straddle a carry; retry until
	// a stable pair comes back.
	for {
		hi := stm32.RTC.CNTH.Get()
		lo := stm32.RTC.CNTL.Get()
		if hi == stm32.RTC.CNTH.Get() {
			return hi<<16 | lo&0xFFFF
		}
	}
}

func (r *RTC) applySet(v uint32) {
	enterConfig()
	stm32.RTC.CNTH.Set(v >> 16)
	stm32.RTC.CNTL.Set(v & 0xFFFF)
	leaveConfig()
}

func enterConfig() {
	for !stm32.RTC.CRL.HasBits(stm32.RTC_CRL_RTOFF) {
	}
	stm32.RTC.CRL.SetBits(stm32.RTC_CRL_CNF)
}

func leaveConfig() {
	stm32.RTC.CRL.ClearBits(stm32.RTC_CRL_CNF)
	for !stm32.RTC.CRL.HasBits(stm32.RTC_CRL_RTOFF) {
	}
}
