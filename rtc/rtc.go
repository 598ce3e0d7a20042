// Package rtc runs the backup-domain real time counter as a plain
// seconds counter. Calendar math stays out; callers that want dates
// layer them on top of Seconds.
package rtc

import (
	"f103periph-go/errcode"
	"f103periph-go/periph"
)

// ClockSource selects what feeds the counter.
type ClockSource uint8

const (
	// SourceLSE is the 32.768 kHz crystal.
	SourceLSE ClockSource = iota
	// SourceLSI is the internal 40 kHz oscillator, less accurate but
	// always present.
	SourceLSI
)

// Clock is the slice of the clock controller the counter needs. The
// backup domain sits behind the PWR and BKP gates.
type Clock interface {
	EnableGate(periph.Gate)
}

// RTC is the seconds counter. Create one with New; Configure starts
// it at zero.
type RTC struct {
	clock   Clock
	ready   bool
	src     ClockSource
	seconds uint32
}

func New(clock Clock) *RTC {
	return &RTC{clock: clock}
}

// Configure enables the backup domain, selects the source and scales
// it down to one count per second.
func (r *RTC) Configure(src ClockSource) error {
	if r.ready {
		return errcode.AlreadyInitialized
	}
	if src > SourceLSI {
		return errcode.InvalidParams
	}
	r.clock.EnableGate(periph.GatePWR)
	r.clock.EnableGate(periph.GateBKP)
	r.applyStart(src)
	r.src = src
	r.ready = true
	return nil
}

// Ready reports whether the counter is running.
func (r *RTC) Ready() bool { return r.ready }

// Seconds returns the current count, 0 before Configure.
func (r *RTC) Seconds() uint32 {
	if !r.ready {
		return 0
	}
	return r.applySeconds()
}

// SetSeconds loads the counter, for setting wall time from outside.
func (r *RTC) SetSeconds(v uint32) error {
	if !r.ready {
		return errcode.NotInitialized
	}
	r.applySet(v)
	return nil
}

// Reset forgets the configuration. The hardware counter keeps running
// on its backup supply; this only drops the driver state.
func (r *RTC) Reset() {
	r.ready = false
	r.src = SourceLSE
	r.seconds = 0
}
