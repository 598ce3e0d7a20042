// Package afio is the pin configuration service for peripherals and
// alternate functions. It owns a claim table over the GPIO ports, so
// two drivers cannot take the same pin, and it is the only place an
// AFIO remap selection is applied. Plain input/output pin work lives
// in the gpio package instead.
package afio

import (
	"f103periph-go/errcode"
	"f103periph-go/periph"
)

// Clock is the slice of the clock controller the router needs.
type Clock interface {
	EnableGate(periph.Gate)
}

type claim struct {
	used bool
	role periph.PinRole
}

// Router hands out pins and remap selections. Create one per board
// with NewRouter.
type Router struct {
	clock  Clock
	claims [4][16]claim
	remaps [4]bool
}

func NewRouter(clock Clock) *Router {
	return &Router{clock: clock}
}

// Claim configures a pin for the given role and records the owner.
// The port clock gate is enabled first. A pin can be claimed once;
// claiming it again fails with pin_in_use until it is released.
func (ro *Router) Claim(pin periph.PinID, role periph.PinRole) error {
	if !pin.Valid() {
		return &errcode.E{C: errcode.UnknownPin, Op: "afio.Claim", Msg: pin.String()}
	}
	if !role.Valid() {
		return &errcode.E{C: errcode.InvalidParams, Op: "afio.Claim", Msg: role.String()}
	}
	c := &ro.claims[pin.Port][pin.Pin]
	if c.used {
		return &errcode.E{C: errcode.PinInUse, Op: "afio.Claim", Msg: pin.String()}
	}
	ro.clock.EnableGate(periph.PortGate(pin.Port))
	ro.applyPin(pin, role)
	c.used = true
	c.role = role
	return nil
}

// Release returns a pin to its floating input reset state and clears
// the claim. Releasing an unclaimed pin is a no-op. The port clock
// gate stays on, other pins on the port may still be in use.
func (ro *Router) Release(pin periph.PinID) {
	if !pin.Valid() {
		return
	}
	c := &ro.claims[pin.Port][pin.Pin]
	if !c.used {
		return
	}
	ro.applyPin(pin, periph.RoleInputFloating)
	*c = claim{}
}

// Claimed reports whether a pin is taken and for which role.
func (ro *Router) Claimed(pin periph.PinID) (periph.PinRole, bool) {
	if !pin.Valid() {
		return 0, false
	}
	c := ro.claims[pin.Port][pin.Pin]
	return c.role, c.used
}

// SetRemap applies or clears one AFIO remap selection. The USART3
// selectors share a two-bit field: partial writes 01, full writes 11,
// clearing either writes 00.
func (ro *Router) SetRemap(r periph.Remap, on bool) error {
	if !r.Valid() {
		return &errcode.E{C: errcode.InvalidParams, Op: "afio.SetRemap", Msg: r.String()}
	}
	ro.clock.EnableGate(periph.GateAFIO)
	ro.applyRemap(r, on)
	if r == periph.RemapUSART3Partial || r == periph.RemapUSART3Full {
		// One two-bit field, so the selectors displace each other.
		ro.remaps[periph.RemapUSART3Partial] = false
		ro.remaps[periph.RemapUSART3Full] = false
	}
	ro.remaps[r] = on
	return nil
}

// Remapped reports the recorded state of a remap selector.
func (ro *Router) Remapped(r periph.Remap) bool {
	return r.Valid() && ro.remaps[r]
}

// Reset drops every claim and remap record. Hardware pins are left as
// they are; this exists for tests and full reconfiguration.
func (ro *Router) Reset() {
	ro.claims = [4][16]claim{}
	ro.remaps = [4]bool{}
}
