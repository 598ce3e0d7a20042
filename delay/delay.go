// Package delay provides tick-counted busy waits. The wait spins on
// the tick source, so it holds the core just like the peripheral
// drivers' own blocking paths do.
package delay

// TickSource is anything that counts monotonic ticks.
type TickSource interface {
	Ticks() uint64
}

// Wait blocks until more than units ticks have passed. The first tick
// may already be partly elapsed, so the wait rounds up by one tick.
func Wait(src TickSource, units uint64) {
	deadline := src.Ticks() + units
	for src.Ticks() <= deadline {
	}
}
