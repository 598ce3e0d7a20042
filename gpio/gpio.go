// Package gpio drives plain input and output pins. Alternate function
// pins for peripherals go through the afio router instead; this package
// is for the pins an application owns directly.
package gpio

import (
	"f103periph-go/errcode"
	"f103periph-go/periph"
)

// Pull selects the input bias.
type Pull uint8

const (
	PullDown Pull = iota
	PullUp
	PullNone
)

// Drive selects the output stage.
type Drive uint8

const (
	PushPull Drive = iota
	OpenDrain
)

// Speed selects the output slew band. The values are the MODE field
// encodings of the port configuration registers.
type Speed uint8

const (
	Speed10MHz Speed = 0x1
	Speed2MHz  Speed = 0x2
	Speed50MHz Speed = 0x3
)

// Clock is the slice of the clock controller this driver needs.
type Clock interface {
	EnableGate(periph.Gate)
}

type pinMode uint8

const (
	modeOff pinMode = iota
	modeInput
	modeOutput
)

// Pins is the GPIO driver. Create one per board with New and share it;
// it remembers which pins are inputs and which are outputs so misuse
// is caught before the registers are.
type Pins struct {
	clock  Clock
	modes  [4][16]pinMode
	levels [4]uint16
}

func New(clock Clock) *Pins {
	return &Pins{clock: clock}
}

// InitInput configures a pin as an input with the given bias and
// enables the port clock.
func (p *Pins) InitInput(pin periph.PinID, pull Pull) error {
	if !pin.Valid() {
		return &errcode.E{C: errcode.UnknownPin, Op: "gpio.InitInput", Msg: pin.String()}
	}
	if pull > PullNone {
		return &errcode.E{C: errcode.InvalidParams, Op: "gpio.InitInput"}
	}
	p.clock.EnableGate(periph.PortGate(pin.Port))
	p.applyInput(pin, pull)
	p.modes[pin.Port][pin.Pin] = modeInput
	return nil
}

// InitOutput configures a pin as an output, enables the port clock and
// drives the initial level.
func (p *Pins) InitOutput(pin periph.PinID, drive Drive, speed Speed, high bool) error {
	if !pin.Valid() {
		return &errcode.E{C: errcode.UnknownPin, Op: "gpio.InitOutput", Msg: pin.String()}
	}
	if drive > OpenDrain || speed < Speed10MHz || speed > Speed50MHz {
		return &errcode.E{C: errcode.InvalidParams, Op: "gpio.InitOutput"}
	}
	p.clock.EnableGate(periph.PortGate(pin.Port))
	p.applyOutput(pin, drive, speed)
	p.modes[pin.Port][pin.Pin] = modeOutput
	p.write(pin, high)
	return nil
}

// Read returns the current level of an input pin. Pins that are not
// configured as inputs read low.
func (p *Pins) Read(pin periph.PinID) bool {
	if !pin.Valid() || p.modes[pin.Port][pin.Pin] != modeInput {
		return false
	}
	return p.applyRead(pin)
}

// Write drives an output pin high or low.
func (p *Pins) Write(pin periph.PinID, high bool) error {
	if !pin.Valid() {
		return &errcode.E{C: errcode.UnknownPin, Op: "gpio.Write", Msg: pin.String()}
	}
	if p.modes[pin.Port][pin.Pin] != modeOutput {
		return &errcode.E{C: errcode.NotInitialized, Op: "gpio.Write", Msg: pin.String()}
	}
	p.write(pin, high)
	return nil
}

// Toggle inverts an output pin.
func (p *Pins) Toggle(pin periph.PinID) error {
	if !pin.Valid() {
		return &errcode.E{C: errcode.UnknownPin, Op: "gpio.Toggle", Msg: pin.String()}
	}
	if p.modes[pin.Port][pin.Pin] != modeOutput {
		return &errcode.E{C: errcode.NotInitialized, Op: "gpio.Toggle", Msg: pin.String()}
	}
	p.write(pin, p.levels[pin.Port]&(1<<pin.Pin) == 0)
	return nil
}

// DeInit returns a pin to its floating input reset state and forgets
// its mode. The port clock stays on for the other pins.
func (p *Pins) DeInit(pin periph.PinID) {
	if !pin.Valid() {
		return
	}
	p.applyDeInit(pin)
	p.modes[pin.Port][pin.Pin] = modeOff
	p.levels[pin.Port] &^= 1 << pin.Pin
}

func (p *Pins) write(pin periph.PinID, high bool) {
	if high {
		p.levels[pin.Port] |= 1 << pin.Pin
	} else {
		p.levels[pin.Port] &^= 1 << pin.Pin
	}
	p.applyWrite(pin, high)
}
