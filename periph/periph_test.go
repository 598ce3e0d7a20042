package periph

import "testing"

func TestPinIDString(t *testing.T) {
	cases := []struct {
		pin  PinID
		want string
	}{
		{PA(9), "PA9"},
		{PA(10), "PA10"},
		{PB(6), "PB6"},
		{PC(11), "PC11"},
		{PD(8), "PD8"},
		{PinID{Port(7), 3}, "P?"},
		{PinID{PortA, 16}, "P?"},
	}
	for _, c := range cases {
		if got := c.pin.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.pin, got, c.want)
		}
	}
}

func TestGateBus(t *testing.T) {
	apb2 := []Gate{GateIOPA, GateIOPB, GateIOPC, GateIOPD, GateAFIO, GateUSART1}
	for _, g := range apb2 {
		if g.Bus() != BusAPB2 {
			t.Errorf("%v.Bus() = %v, want APB2", g, g.Bus())
		}
	}
	apb1 := []Gate{GateUSART2, GateUSART3, GatePWR, GateBKP}
	for _, g := range apb1 {
		if g.Bus() != BusAPB1 {
			t.Errorf("%v.Bus() = %v, want APB1", g, g.Bus())
		}
	}
}

func TestPortGate(t *testing.T) {
	if PortGate(PortA) != GateIOPA || PortGate(PortD) != GateIOPD {
		t.Fatal("PortGate mapping wrong")
	}
}

func TestValidity(t *testing.T) {
	if !PA(0).Valid() || !PD(15).Valid() {
		t.Fatal("legal pins reported invalid")
	}
	if (PinID{Port(4), 0}).Valid() {
		t.Fatal("port E should be invalid on this family")
	}
	if !RoleAltPushPull.Valid() || PinRole(200).Valid() {
		t.Fatal("role validity wrong")
	}
	if !RemapUSART3Full.Valid() || Remap(9).Valid() {
		t.Fatal("remap validity wrong")
	}
}
