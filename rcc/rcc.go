// Package rcc owns the reset and clock control block: the system clock
// tree fed from the 8 MHz external oscillator through the PLL, the APB
// prescalers and the per-peripheral clock gates. Every other driver asks
// this package for bus frequencies and gate switching instead of touching
// RCC registers itself.
package rcc

import (
	"f103periph-go/errcode"
	"f103periph-go/periph"
)

// XtalHz is the external oscillator frequency the PLL multiplies from.
const XtalHz = 8_000_000

// SysClock selects a system clock frequency from the PLL table.
type SysClock uint8

const (
	Clock8MHz SysClock = iota
	Clock16MHz
	Clock24MHz
	Clock32MHz
	Clock40MHz
	Clock48MHz
	Clock56MHz
	Clock64MHz
	Clock72MHz
	numClocks
)

// Hz returns the frequency the selector stands for, 0 for an out of
// range selector.
func (c SysClock) Hz() uint32 {
	if c >= numClocks {
		return 0
	}
	return uint32(c+1) * 8_000_000
}

// ClockFor maps a whole number of MHz onto a selector. Only multiples
// of 8 up to 72 exist in the PLL table.
func ClockFor(mhz uint32) (SysClock, bool) {
	if mhz == 0 || mhz > 72 || mhz%8 != 0 {
		return 0, false
	}
	return SysClock(mhz/8 - 1), true
}

// MCOSource selects what the PA8 master clock output mirrors. The
// values are the raw MCO field encodings.
type MCOSource uint8

const (
	MCONone     MCOSource = 0x00
	MCOSysClock MCOSource = 0x04
	MCOHSI      MCOSource = 0x05
	MCOHSE      MCOSource = 0x06
	MCOPLLDiv2  MCOSource = 0x07
)

// RCC is the clock controller. The zero value is unconfigured; create
// one with New and hand it to the drivers that need clocks or gates.
type RCC struct {
	ready bool
	sysHz uint32
	gates [periph.NumGates]bool
	mco   MCOSource
}

func New() *RCC { return &RCC{} }

// Configure programs the clock tree for the selected system clock and
// records the resulting frequencies. It can be called once; use Reset
// to start over.
func (r *RCC) Configure(clock SysClock) error {
	if r.ready {
		return errcode.AlreadyInitialized
	}
	hz := clock.Hz()
	if hz == 0 {
		return errcode.InvalidParams
	}
	r.applyClockTree(clock)
	r.sysHz = hz
	r.ready = true
	return nil
}

// Ready reports whether the clock tree has been configured.
func (r *RCC) Ready() bool { return r.ready }

// SystemClock returns the configured system clock in Hz, 0 before
// Configure.
func (r *RCC) SystemClock() uint32 { return r.sysHz }

// BusFrequency returns the feed frequency of an APB bus before its
// prescaler. Both APB feeds run from the AHB at the system clock on
// this family.
func (r *RCC) BusFrequency(periph.Bus) uint32 { return r.sysHz }

// BusPrescaler returns the divider applied to the bus feed. APB1 is
// limited to 36 MHz and divides by two from 32 MHz up; APB2 always
// runs undivided.
func (r *RCC) BusPrescaler(b periph.Bus) uint32 {
	if b == periph.BusAPB1 && r.sysHz >= 32_000_000 {
		return 2
	}
	return 1
}

// EnableGate switches the clock to one peripheral on. Enabling an
// already enabled gate is a no-op.
func (r *RCC) EnableGate(g periph.Gate) {
	if g >= periph.NumGates || r.gates[g] {
		return
	}
	r.applyGate(g, true)
	r.gates[g] = true
}

// DisableGate switches the clock to one peripheral off again. Only the
// named gate is touched.
func (r *RCC) DisableGate(g periph.Gate) {
	if g >= periph.NumGates || !r.gates[g] {
		return
	}
	r.applyGate(g, false)
	r.gates[g] = false
}

// GateEnabled reports the recorded state of a gate.
func (r *RCC) GateEnabled(g periph.Gate) bool {
	return g < periph.NumGates && r.gates[g]
}

// ConfigureMCO routes a clock onto the PA8 master clock output and
// switches the pin to alternate push-pull. PA8 is taken over at the
// register level; keep it free in the pin router while MCO is active.
func (r *RCC) ConfigureMCO(src MCOSource) error {
	if !r.ready {
		return errcode.NotInitialized
	}
	if src < MCOSysClock || src > MCOPLLDiv2 {
		return errcode.InvalidParams
	}
	if r.mco != MCONone {
		return errcode.AlreadyInitialized
	}
	r.EnableGate(periph.GateIOPA)
	r.applyMCO(src)
	r.mco = src
	return nil
}

// ReleaseMCO disconnects the master clock output and returns PA8 to
// its floating input reset state.
func (r *RCC) ReleaseMCO() error {
	if r.mco == MCONone {
		return errcode.NotInitialized
	}
	r.applyMCO(MCONone)
	r.mco = MCONone
	return nil
}

// MCO returns the active master clock output source, MCONone when off.
func (r *RCC) MCO() MCOSource { return r.mco }

// Reset forgets all recorded state. Hardware registers are left as
// they are; this exists for reconfiguration and tests.
func (r *RCC) Reset() { *r = RCC{} }
