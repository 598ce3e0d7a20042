//go:build !stm32f103

package rcc

import "f103periph-go/periph"

// Host builds keep the bookkeeping and skip the registers, so the
// whole clock contract is unit-testable off target.

func (r *RCC) applyClockTree(SysClock) {}

func (r *RCC) applyGate(periph.Gate, bool) {}

func (r *RCC) applyMCO(MCOSource) {}
