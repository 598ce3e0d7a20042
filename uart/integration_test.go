package uart

import (
	"bytes"
	"testing"

	"f103periph-go/afio"
	"f103periph-go/errcode"
	"f103periph-go/periph"
	"f103periph-go/rcc"
	"f103periph-go/systick"
)

// These tests wire a bank to the real clock, pin and tick services
// instead of the fakes, covering the seams between the packages.

func newServices(t *testing.T, clk rcc.SysClock) (*rcc.RCC, *afio.Router, *systick.Timer) {
	t.Helper()
	rc := rcc.New()
	if err := rc.Configure(clk); err != nil {
		t.Fatalf("rcc: %v", err)
	}
	router := afio.NewRouter(rc)
	tick := systick.New(rc)
	if err := tick.Configure(systick.Millis, 1); err != nil {
		t.Fatalf("systick: %v", err)
	}
	return rc, router, tick
}

func TestBankWithRealServices(t *testing.T) {
	rc, router, tick := newServices(t, rcc.Clock48MHz)
	bank := New(rc, router, tick)

	tx := bank.Channel(UART2)
	rx := bank.Channel(UART3)
	if err := tx.Configure(Config{Mapping: UART2TxPA2RxPA3, Baud: Baud9600}); err != nil {
		t.Fatalf("configure UART2: %v", err)
	}
	if err := rx.Configure(Config{Mapping: UART3TxPB10RxPB11, Baud: Baud9600}); err != nil {
		t.Fatalf("configure UART3: %v", err)
	}

	// APB1 runs at half the 48 MHz system clock, so the divisor is
	// 24 MHz over 9600.
	if sim := tx.regs.(*simRegs); sim.div != 2500 {
		t.Fatalf("UART2 divisor = %d, want 2500", sim.div)
	}

	if role, ok := router.Claimed(periph.PA(2)); !ok || role != periph.RoleAltPushPull {
		t.Fatalf("PA2 claim = %v %v", role, ok)
	}
	if role, ok := router.Claimed(periph.PB(11)); !ok || role != periph.RoleInputFloating {
		t.Fatalf("PB11 claim = %v %v", role, ok)
	}

	// Cross-wire the two blocks and push a message through.
	msg := []byte("status 42\r\n")
	if err := tx.Send(msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	rx.regs.(*simRegs).Feed(tx.regs.(*simRegs).TxBytes()...)
	got := make([]byte, len(msg))
	n, err := rx.Read(got)
	if err != nil || n != len(msg) || !bytes.Equal(got, msg) {
		t.Fatalf("Read = %d %q %v, want %q", n, got[:n], err, msg)
	}

	if err := tx.Deinit(); err != nil {
		t.Fatalf("deinit UART2: %v", err)
	}
	if err := rx.Deinit(); err != nil {
		t.Fatalf("deinit UART3: %v", err)
	}
	for _, pin := range []periph.PinID{periph.PA(2), periph.PA(3), periph.PB(10), periph.PB(11)} {
		if _, ok := router.Claimed(pin); ok {
			t.Fatalf("%v still claimed after deinit", pin)
		}
	}
}

func TestPinConflictWithRealRouter(t *testing.T) {
	rc, router, tick := newServices(t, rcc.Clock24MHz)
	bank := New(rc, router, tick)

	// Something else on the board owns PA3 already.
	if err := router.Claim(periph.PA(3), periph.RoleInputPullUp); err != nil {
		t.Fatalf("pre-claim PA3: %v", err)
	}

	err := bank.Channel(UART2).Configure(Config{Mapping: UART2TxPA2RxPA3, Baud: Baud9600})
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	if _, ok := router.Claimed(periph.PA(2)); ok {
		t.Fatal("PA2 left claimed by the failed configure")
	}

	// The channel still comes up on its alternate pins.
	if err := bank.Channel(UART2).Configure(Config{Mapping: UART2TxPD5RxPD6, Baud: Baud9600}); err != nil {
		t.Fatalf("configure on PD5/PD6: %v", err)
	}
	if !router.Remapped(periph.RemapUSART2) {
		t.Fatal("USART2 remap not recorded")
	}
}

func TestRemapLifecycleWithRealRouter(t *testing.T) {
	rc, router, tick := newServices(t, rcc.Clock72MHz)
	bank := New(rc, router, tick)

	ch := bank.Channel(UART3)
	if err := ch.Configure(Config{Mapping: UART3TxPC10RxPC11, Baud: Baud115200}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if !router.Remapped(periph.RemapUSART3Partial) {
		t.Fatal("partial remap not recorded")
	}
	if err := ch.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	if router.Remapped(periph.RemapUSART3Partial) {
		t.Fatal("partial remap still recorded after deinit")
	}
}
