package rtc

import (
	"testing"

	"f103periph-go/errcode"
	"f103periph-go/periph"
)

type fakeClock struct {
	gates map[periph.Gate]bool
}

func (f *fakeClock) EnableGate(g periph.Gate) { f.gates[g] = true }

func TestConfigure(t *testing.T) {
	clk := &fakeClock{gates: map[periph.Gate]bool{}}
	r := New(clk)

	if r.Ready() || r.Seconds() != 0 {
		t.Fatal("fresh counter should be stopped at zero")
	}
	if err := r.Configure(SourceLSE); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if !clk.gates[periph.GatePWR] || !clk.gates[periph.GateBKP] {
		t.Fatal("backup domain gates not enabled")
	}
	if err := r.Configure(SourceLSI); errcode.Of(err) != errcode.AlreadyInitialized {
		t.Fatalf("second Configure = %v", err)
	}

	r.Reset()
	if r.Ready() {
		t.Fatal("Reset did not stop the counter")
	}
	if err := r.Configure(ClockSource(9)); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad source = %v", err)
	}
}

func TestSecondsFlow(t *testing.T) {
	r := New(&fakeClock{gates: map[periph.Gate]bool{}})

	if err := r.SetSeconds(5); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("SetSeconds before Configure = %v", err)
	}
	if err := r.Configure(SourceLSI); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSeconds(1_000_000); err != nil {
		t.Fatalf("SetSeconds: %v", err)
	}
	r.AdvanceSeconds(5)
	if got := r.Seconds(); got != 1_000_005 {
		t.Fatalf("Seconds() = %d, want 1000005", got)
	}
}
