//go:build stm32f103

package uart

import (
	"device/arm"
	"device/stm32"
	"runtime/interrupt"
)

// active routes each block's interrupt to its channel. Written from
// New before any interrupt line is unmasked.
var active [numInstances]*Channel

func bindChannel(c *Channel) { active[c.inst] = c }

// Handler registration is static; the NVIC lines themselves are gated
// per channel through EnableIRQ and DisableIRQ.
var (
	usart1Int = interrupt.New(stm32.IRQ_USART1, handleUSART1)
	usart2Int = interrupt.New(stm32.IRQ_USART2, handleUSART2)
	usart3Int = interrupt.New(stm32.IRQ_USART3, handleUSART3)
)

func handleUSART1(interrupt.Interrupt) {
	if c := active[UART1]; c != nil {
		c.service()
	}
}

func handleUSART2(interrupt.Interrupt) {
	if c := active[UART2]; c != nil {
		c.service()
	}
}

func handleUSART3(interrupt.Interrupt) {
	if c := active[UART3]; c != nil {
		c.service()
	}
}

type hwRegs struct {
	u    *stm32.USART_Type
	irq  uint32
	line interrupt.Interrupt
}

func newRegs(i Instance) regs {
	switch i {
	case UART1:
		return &hwRegs{u: stm32.USART1, irq: stm32.IRQ_USART1, line: usart1Int}
	case UART2:
		return &hwRegs{u: stm32.USART2, irq: stm32.IRQ_USART2, line: usart2Int}
	default:
		return &hwRegs{u: stm32.USART3, irq: stm32.IRQ_USART3, line: usart3Int}
	}
}

func (h *hwRegs) Enable() { h.u.CR1.SetBits(stm32.USART_CR1_UE) }

// Disable clears the whole control register: UE, transmitter, receiver
// and every interrupt source enable in one write.
func (h *hwRegs) Disable() { h.u.CR1.Set(0) }

func (h *hwRegs) SetBaudDivisor(div uint32) { h.u.BRR.Set(div) }

func (h *hwRegs) SetFrame8N1() {
	h.u.CR1.ClearBits(stm32.USART_CR1_M | stm32.USART_CR1_PCE)
	h.u.CR2.ClearBits(stm32.USART_CR2_STOP_Msk)
}

func (h *hwRegs) EnableTransceiver() {
	h.u.CR1.SetBits(stm32.USART_CR1_TE | stm32.USART_CR1_RE |
		stm32.USART_CR1_RXNEIE | stm32.USART_CR1_TCIE)
}

func (h *hwRegs) ClearStatus() { h.u.SR.Set(0) }

func (h *hwRegs) TxEmpty() bool    { return h.u.SR.HasBits(stm32.USART_SR_TXE) }
func (h *hwRegs) WriteData(b byte) { h.u.DR.Set(uint32(b)) }
func (h *hwRegs) TxComplete() bool { return h.u.SR.HasBits(stm32.USART_SR_TC) }

// ClearTxComplete writes ones everywhere but TC. The status bits are
// rc_w0, so a one leaves them alone and only TC is cleared; no
// read-modify-write that could race a receive flag.
func (h *hwRegs) ClearTxComplete() { h.u.SR.Set(^uint32(stm32.USART_SR_TC)) }

func (h *hwRegs) RxPending() bool { return h.u.SR.HasBits(stm32.USART_SR_RXNE) }
func (h *hwRegs) Overrun() bool   { return h.u.SR.HasBits(stm32.USART_SR_ORE) }
func (h *hwRegs) ReadData() byte  { return byte(h.u.DR.Get()) }

func (h *hwRegs) EnableIRQ() { h.line.Enable() }

// interrupt.Interrupt has no per-line disable, so the mask side goes
// through the NVIC directly.
func (h *hwRegs) DisableIRQ() { arm.DisableIRQ(h.irq) }
