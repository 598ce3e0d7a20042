//go:build !stm32f103

package systick

// Host builds have no timer hardware; tests pump the count by hand.

func (t *Timer) bind() {}

func (t *Timer) applyStart(uint32) {}

func (t *Timer) applyStop() {}

// Advance adds n ticks, standing in for the interrupt.
func (t *Timer) Advance(n uint64) { t.count.Add(n) }
