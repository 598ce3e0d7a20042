package uart

import (
	"testing"

	"f103periph-go/periph"
)

func TestMappingTables(t *testing.T) {
	cases := []struct {
		m    Mapping
		inst Instance
		tx   periph.PinID
		rx   periph.PinID
	}{
		{UART1TxPA9RxPA10, UART1, periph.PA(9), periph.PA(10)},
		{UART1TxPB6RxPB7, UART1, periph.PB(6), periph.PB(7)},
		{UART2TxPA2RxPA3, UART2, periph.PA(2), periph.PA(3)},
		{UART2TxPD5RxPD6, UART2, periph.PD(5), periph.PD(6)},
		{UART3TxPB10RxPB11, UART3, periph.PB(10), periph.PB(11)},
		{UART3TxPC10RxPC11, UART3, periph.PC(10), periph.PC(11)},
		{UART3TxPD8RxPD9, UART3, periph.PD(8), periph.PD(9)},
	}
	if len(cases) != int(numMappings) {
		t.Fatalf("covering %d mappings, table has %d", len(cases), numMappings)
	}
	for _, tc := range cases {
		if !tc.m.Valid() {
			t.Fatalf("%v: not valid", tc.m)
		}
		if got := tc.m.Instance(); got != tc.inst {
			t.Fatalf("%v: instance %v, want %v", tc.m, got, tc.inst)
		}
		if got := tc.m.TxPin(); got != tc.tx {
			t.Fatalf("%v: tx %v, want %v", tc.m, got, tc.tx)
		}
		if got := tc.m.RxPin(); got != tc.rx {
			t.Fatalf("%v: rx %v, want %v", tc.m, got, tc.rx)
		}
	}
	if Mapping(250).Valid() {
		t.Fatal("out-of-range mapping reported valid")
	}
	if got := Mapping(250).Instance(); got.Valid() {
		t.Fatalf("out-of-range mapping has instance %v", got)
	}
	// Pin accessors follow the same rule instead of indexing past the
	// table.
	if got := Mapping(250).TxPin(); got != (periph.PinID{}) {
		t.Fatalf("out-of-range mapping has tx pin %v", got)
	}
	if got := Mapping(250).RxPin(); got != (periph.PinID{}) {
		t.Fatalf("out-of-range mapping has rx pin %v", got)
	}
}

func TestMappingRemapSelectors(t *testing.T) {
	cases := []struct {
		m     Mapping
		remap periph.Remap
		on    bool
	}{
		{UART1TxPA9RxPA10, periph.RemapUSART1, false},
		{UART1TxPB6RxPB7, periph.RemapUSART1, true},
		{UART2TxPA2RxPA3, periph.RemapUSART2, false},
		{UART2TxPD5RxPD6, periph.RemapUSART2, true},
		{UART3TxPB10RxPB11, periph.RemapUSART3Full, false},
		{UART3TxPC10RxPC11, periph.RemapUSART3Partial, true},
		{UART3TxPD8RxPD9, periph.RemapUSART3Full, true},
	}
	for _, tc := range cases {
		info := tc.m.info()
		if info.remap != tc.remap || info.remapOn != tc.on {
			t.Fatalf("%v: remap %v on=%v, want %v on=%v",
				tc.m, info.remap, info.remapOn, tc.remap, tc.on)
		}
	}
}

func TestDefaultMapping(t *testing.T) {
	defaults := map[Instance]Mapping{
		UART1: UART1TxPA9RxPA10,
		UART2: UART2TxPA2RxPA3,
		UART3: UART3TxPB10RxPB11,
	}
	for inst, want := range defaults {
		got := DefaultMapping(inst)
		if got != want {
			t.Fatalf("%v: default %v, want %v", inst, got, want)
		}
		if got.info().remapOn {
			t.Fatalf("%v: default mapping uses a remap", inst)
		}
	}
}

func TestInstanceBusSplit(t *testing.T) {
	if got := UART1.bus(); got != periph.BusAPB2 {
		t.Fatalf("UART1 bus = %v, want APB2", got)
	}
	for _, inst := range []Instance{UART2, UART3} {
		if got := inst.bus(); got != periph.BusAPB1 {
			t.Fatalf("%v bus = %v, want APB1", inst, got)
		}
	}
	gates := map[Instance]periph.Gate{
		UART1: periph.GateUSART1,
		UART2: periph.GateUSART2,
		UART3: periph.GateUSART3,
	}
	for inst, want := range gates {
		if got := inst.gate(); got != want {
			t.Fatalf("%v gate = %v, want %v", inst, got, want)
		}
	}
}
