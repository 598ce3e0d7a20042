// Package periph holds the shared vocabulary of the F103 peripheral kit:
// ports, pins, APB buses, peripheral clock gates, pin roles and AFIO
// remap selectors. Drivers speak to each other in these types only.
package periph

// Port is a GPIO port on the F103 (A through D on the xB parts).
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	numPorts
)

func (p Port) Valid() bool { return p < numPorts }

func (p Port) String() string {
	if !p.Valid() {
		return "P?"
	}
	return portNames[p]
}

var portNames = [numPorts]string{"PA", "PB", "PC", "PD"}

// PinNo is a pin index within a port, 0..15.
type PinNo uint8

const maxPinNo PinNo = 15

// PinID names one pin on one port.
type PinID struct {
	Port Port
	Pin  PinNo
}

func (id PinID) Valid() bool { return id.Port.Valid() && id.Pin <= maxPinNo }

func (id PinID) String() string {
	if !id.Valid() {
		return "P?"
	}
	return portNames[id.Port] + pinNames[id.Pin]
}

var pinNames = [maxPinNo + 1]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "15",
}

// Shorthand constructors, PA(9) reads like the datasheet.
func PA(n PinNo) PinID { return PinID{PortA, n} }
func PB(n PinNo) PinID { return PinID{PortB, n} }
func PC(n PinNo) PinID { return PinID{PortC, n} }
func PD(n PinNo) PinID { return PinID{PortD, n} }

// Bus is an APB peripheral bus.
type Bus uint8

const (
	BusAPB1 Bus = iota
	BusAPB2
)

func (b Bus) String() string {
	if b == BusAPB1 {
		return "APB1"
	}
	return "APB2"
}

// Gate selects one peripheral clock-enable bit in the RCC.
type Gate uint8

const (
	GateIOPA Gate = iota
	GateIOPB
	GateIOPC
	GateIOPD
	GateAFIO
	GateUSART1
	GateUSART2
	GateUSART3
	GatePWR
	GateBKP
	NumGates
)

// Bus reports which APB bus feeds the gated peripheral.
func (g Gate) Bus() Bus {
	switch g {
	case GateUSART2, GateUSART3, GatePWR, GateBKP:
		return BusAPB1
	}
	return BusAPB2
}

func (g Gate) String() string {
	if g >= NumGates {
		return "gate?"
	}
	return gateNames[g]
}

var gateNames = [NumGates]string{
	"IOPA", "IOPB", "IOPC", "IOPD", "AFIO",
	"USART1", "USART2", "USART3", "PWR", "BKP",
}

// PortGate maps a GPIO port to its clock gate.
func PortGate(p Port) Gate {
	switch p {
	case PortA:
		return GateIOPA
	case PortB:
		return GateIOPB
	case PortC:
		return GateIOPC
	default:
		return GateIOPD
	}
}

// PinRole is the function a claimed pin is configured for. Alternate
// function roles drive the pin from a peripheral, input roles hand it
// to the peripheral's receiver.
type PinRole uint8

const (
	RoleInputFloating PinRole = iota
	RoleInputPullUp
	RoleInputPullDown
	RoleAltPushPull
	RoleAltOpenDrain
	numRoles
)

func (r PinRole) Valid() bool { return r < numRoles }

func (r PinRole) String() string {
	if !r.Valid() {
		return "role?"
	}
	return roleNames[r]
}

var roleNames = [numRoles]string{
	"input-floating", "input-pullup", "input-pulldown",
	"alt-pushpull", "alt-opendrain",
}

// Remap selects an AFIO MAPR remap field. USART3 has a two-bit field,
// so partial and full are distinct selectors over the same field.
type Remap uint8

const (
	RemapUSART1 Remap = iota
	RemapUSART2
	RemapUSART3Partial
	RemapUSART3Full
	numRemaps
)

func (r Remap) Valid() bool { return r < numRemaps }

func (r Remap) String() string {
	if !r.Valid() {
		return "remap?"
	}
	return remapNames[r]
}

var remapNames = [numRemaps]string{
	"USART1", "USART2", "USART3-partial", "USART3-full",
}
