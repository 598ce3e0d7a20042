// Package systick runs the Cortex-M system timer as the kit's tick
// source. One tick is a configurable number of milliseconds or
// microseconds; the running count is a monotonic 64-bit value that
// drivers use for deadlines and delays.
package systick

import (
	"sync/atomic"

	"f103periph-go/errcode"
	"f103periph-go/x/mathx"
)

// StepUnit is the unit one configuration step stands for.
type StepUnit uint8

const (
	Millis StepUnit = iota
	Micros
)

// MaxStep bounds the units-per-tick setting.
const MaxStep = 1000

// Clock is the slice of the clock controller the timer needs.
type Clock interface {
	Ready() bool
	SystemClock() uint32
}

// Timer is the system tick timer. Create one with New; Configure
// starts it.
type Timer struct {
	clock Clock
	ready bool
	unit  StepUnit
	step  uint16
	count atomic.Uint64
}

func New(clock Clock) *Timer {
	t := &Timer{clock: clock}
	t.bind()
	return t
}

// Configure starts the timer with one tick every step units. A step of
// zero counts as one; steps above MaxStep are clamped. The reload is
// derived from the system clock, so the clock tree must be configured
// first.
func (t *Timer) Configure(unit StepUnit, step uint16) error {
	if t.ready {
		return errcode.AlreadyInitialized
	}
	if unit > Micros {
		return errcode.InvalidParams
	}
	if !t.clock.Ready() {
		return errcode.ClockNotReady
	}
	step = mathx.Clamp(step, 1, MaxStep)

	divider := uint64(1_000_000)
	if unit == Millis {
		divider = 1000
	}
	cycles := mathx.RoundDiv(uint64(t.clock.SystemClock())*uint64(step), divider)
	if cycles == 0 || cycles-1 > 0xFFFFFF {
		return errcode.InvalidParams
	}

	t.applyStart(uint32(cycles - 1))
	t.unit = unit
	t.step = step
	t.ready = true
	return nil
}

// Ready reports whether the timer is running.
func (t *Timer) Ready() bool { return t.ready }

// Ticks returns the number of ticks since Configure or the last
// ResetTicks.
func (t *Timer) Ticks() uint64 { return t.count.Load() }

// ResetTicks restarts the count at zero. The timer keeps running.
func (t *Timer) ResetTicks() { t.count.Store(0) }

// Reset stops the timer and forgets all configuration.
func (t *Timer) Reset() {
	t.applyStop()
	t.ready = false
	t.unit = Millis
	t.step = 0
	t.count.Store(0)
}

// tick is the interrupt path.
func (t *Timer) tick() { t.count.Add(1) }
