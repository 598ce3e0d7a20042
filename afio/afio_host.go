//go:build !stm32f103

package afio

import "f103periph-go/periph"

// Host builds track claims and remaps without touching registers.

func (ro *Router) applyPin(periph.PinID, periph.PinRole) {}

func (ro *Router) applyRemap(periph.Remap, bool) {}
