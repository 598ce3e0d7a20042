package gpio

import (
	"testing"

	"f103periph-go/errcode"
	"f103periph-go/periph"
)

type fakeClock struct {
	gates map[periph.Gate]bool
}

func (f *fakeClock) EnableGate(g periph.Gate) { f.gates[g] = true }

func newPins() (*Pins, *fakeClock) {
	clk := &fakeClock{gates: map[periph.Gate]bool{}}
	return New(clk), clk
}

func TestOutputLifecycle(t *testing.T) {
	p, clk := newPins()
	led := periph.PC(13)

	if err := p.InitOutput(led, PushPull, Speed2MHz, true); err != nil {
		t.Fatalf("InitOutput: %v", err)
	}
	if !clk.gates[periph.GateIOPC] {
		t.Fatal("port clock not enabled")
	}

	if err := p.Write(led, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := p.Toggle(led); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if p.levels[periph.PortC]&(1<<13) == 0 {
		t.Fatal("toggle should have driven the pin high")
	}

	p.DeInit(led)
	if err := p.Write(led, true); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("write after DeInit = %v, want not_initialized", err)
	}
}

func TestInputRead(t *testing.T) {
	p, _ := newPins()
	btn := periph.PA(0)

	if err := p.InitInput(btn, PullUp); err != nil {
		t.Fatalf("InitInput: %v", err)
	}
	if p.Read(btn) {
		t.Fatal("simulated input should start low")
	}
	p.SimSetInput(btn, true)
	if !p.Read(btn) {
		t.Fatal("input did not follow simulated level")
	}

	// Reads on pins that are not inputs come back low.
	if p.Read(periph.PB(5)) {
		t.Fatal("unconfigured pin should read low")
	}
}

func TestValidation(t *testing.T) {
	p, _ := newPins()
	bad := periph.PinID{Port: periph.Port(6), Pin: 2}

	if err := p.InitInput(bad, PullNone); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("InitInput bad pin = %v", err)
	}
	if err := p.InitOutput(periph.PA(1), Drive(9), Speed10MHz, false); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad drive = %v", err)
	}
	if err := p.InitOutput(periph.PA(1), PushPull, Speed(0), false); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad speed = %v", err)
	}
	if err := p.Write(periph.PA(2), true); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("write to unconfigured pin = %v", err)
	}
	if err := p.InitInput(periph.PA(3), PullDown); err != nil {
		t.Fatal(err)
	}
	if err := p.Toggle(periph.PA(3)); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("toggle on input = %v", err)
	}
}
