package errcode

// Code is a stable, driver-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                 Code = "ok"
	AlreadyInitialized Code = "already_initialized"
	NotInitialized     Code = "not_initialized"
	NotReady           Code = "not_ready"
	Busy               Code = "busy"
	Timeout            Code = "timeout"
	InvalidParams      Code = "invalid_params"

	InvalidMapping   Code = "invalid_mapping"
	InvalidBaud      Code = "invalid_baud"
	BaudUnachievable Code = "baud_unachievable"
	BufferEmpty      Code = "buffer_empty"

	ClockNotReady Code = "clock_not_ready"
	UnknownPin    Code = "unknown_pin"
	PinInUse      Code = "pin_in_use"
	UnknownBoard  Code = "unknown_board"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
