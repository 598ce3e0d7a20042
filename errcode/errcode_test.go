package errcode

import "testing"

func TestCodeIsError(t *testing.T) {
	var err error = Timeout
	if err.Error() != "timeout" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "timeout")
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %v, want OK", got)
	}
	if got := Of(PinInUse); got != PinInUse {
		t.Fatalf("Of(bare code) = %v", got)
	}
	wrapped := &E{C: InvalidMapping, Op: "uart.Configure", Msg: "UART3 pins on UART2"}
	if got := Of(wrapped); got != InvalidMapping {
		t.Fatalf("Of(wrapped) = %v, want InvalidMapping", got)
	}
	if got := Of(errPlain{}); got != Error {
		t.Fatalf("Of(plain) = %v, want Error", got)
	}
}

func TestEUnwrap(t *testing.T) {
	cause := ClockNotReady
	e := &E{C: NotReady, Op: "uart.Configure", Err: cause}
	if e.Unwrap() != cause {
		t.Fatalf("Unwrap() = %v, want %v", e.Unwrap(), cause)
	}
	if e.Error() != "not_ready" {
		t.Fatalf("Error() = %q", e.Error())
	}
	e.Msg = "system clock off"
	if e.Error() != "not_ready: system clock off" {
		t.Fatalf("Error() with msg = %q", e.Error())
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain" }
