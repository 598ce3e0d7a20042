package uart

import "f103periph-go/periph"

// Instance names one of the three USART blocks. USART1 hangs off APB2,
// the other two off APB1.
type Instance uint8

const (
	UART1 Instance = iota
	UART2
	UART3
	numInstances
)

func (i Instance) Valid() bool { return i < numInstances }

func (i Instance) String() string {
	if !i.Valid() {
		return "UART?"
	}
	return instanceNames[i]
}

var instanceNames = [numInstances]string{"UART1", "UART2", "UART3"}

func (i Instance) bus() periph.Bus {
	if i == UART1 {
		return periph.BusAPB2
	}
	return periph.BusAPB1
}

func (i Instance) gate() periph.Gate {
	switch i {
	case UART1:
		return periph.GateUSART1
	case UART2:
		return periph.GateUSART2
	default:
		return periph.GateUSART3
	}
}

// Mapping is one legal TX/RX pin pair for one instance. The set is
// closed; each value belongs to exactly one instance and anything else
// is rejected at Configure.
type Mapping uint8

const (
	// UART1 pairs.
	UART1TxPA9RxPA10 Mapping = iota
	UART1TxPB6RxPB7
	// UART2 pairs.
	UART2TxPA2RxPA3
	UART2TxPD5RxPD6
	// UART3 pairs.
	UART3TxPB10RxPB11
	UART3TxPC10RxPC11
	UART3TxPD8RxPD9
	numMappings
)

type mapInfo struct {
	inst    Instance
	tx, rx  periph.PinID
	remap   periph.Remap
	remapOn bool
	name    string
}

var mappings = [numMappings]mapInfo{
	{UART1, periph.PA(9), periph.PA(10), periph.RemapUSART1, false, "UART1 TX=PA9 RX=PA10"},
	{UART1, periph.PB(6), periph.PB(7), periph.RemapUSART1, true, "UART1 TX=PB6 RX=PB7"},
	{UART2, periph.PA(2), periph.PA(3), periph.RemapUSART2, false, "UART2 TX=PA2 RX=PA3"},
	{UART2, periph.PD(5), periph.PD(6), periph.RemapUSART2, true, "UART2 TX=PD5 RX=PD6"},
	{UART3, periph.PB(10), periph.PB(11), periph.RemapUSART3Full, false, "UART3 TX=PB10 RX=PB11"},
	{UART3, periph.PC(10), periph.PC(11), periph.RemapUSART3Partial, true, "UART3 TX=PC10 RX=PC11"},
	{UART3, periph.PD(8), periph.PD(9), periph.RemapUSART3Full, true, "UART3 TX=PD8 RX=PD9"},
}

func (m Mapping) Valid() bool { return m < numMappings }

// Instance returns the block the pin pair belongs to.
func (m Mapping) Instance() Instance {
	if !m.Valid() {
		return numInstances
	}
	return mappings[m].inst
}

// TxPin returns the transmit pin of the pair, the zero PinID for an
// out-of-range selector.
func (m Mapping) TxPin() periph.PinID {
	if !m.Valid() {
		return periph.PinID{}
	}
	return mappings[m].tx
}

// RxPin returns the receive pin of the pair, the zero PinID for an
// out-of-range selector.
func (m Mapping) RxPin() periph.PinID {
	if !m.Valid() {
		return periph.PinID{}
	}
	return mappings[m].rx
}

func (m Mapping) String() string {
	if !m.Valid() {
		return "mapping?"
	}
	return mappings[m].name
}

func (m Mapping) info() mapInfo { return mappings[m] }

// DefaultMapping returns the primary, unremapped pin pair of an
// instance.
func DefaultMapping(i Instance) Mapping {
	switch i {
	case UART1:
		return UART1TxPA9RxPA10
	case UART2:
		return UART2TxPA2RxPA3
	default:
		return UART3TxPB10RxPB11
	}
}
