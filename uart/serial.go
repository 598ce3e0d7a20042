package uart

import (
	"tinygo.org/x/drivers"
)

// UARTConfig is the rate-only configuration the Serial adapter takes,
// mirroring the machine-port config shape. The pin pair is the
// instance's default mapping; use Channel.Configure for anything else.
type UARTConfig struct {
	BaudRate uint32
}

// Serial adapts a Channel to the tinygo.org/x/drivers UART surface so
// the channel can stand in wherever a TinyGo driver expects a serial
// port. Its Configure takes the rate-only config and routes it to the
// instance's default pins; use Channel.Configure directly for
// remapped pins or a custom ring size.
type Serial struct {
	ch *Channel
}

// Ensure compile-time conformance with drivers.UART
var _ drivers.UART = (*Serial)(nil)

// Serial returns the drivers-facing adapter for this channel. The
// adapter shares the channel's state, so calls may be mixed freely
// between the two.
func (c *Channel) Serial() *Serial { return &Serial{ch: c} }

// Configure brings the channel up at config.BaudRate on the default
// mapping for its instance. A zero rate means 115200.
func (s *Serial) Configure(config UARTConfig) error {
	if config.BaudRate == 0 {
		config.BaudRate = 115200
	}
	return s.ch.Configure(Config{
		Mapping: DefaultMapping(s.ch.inst),
		Baud:    config.BaudRate,
	})
}

func (s *Serial) Buffered() int { return s.ch.Buffered() }

func (s *Serial) ReadByte() (byte, error) { return s.ch.ReadByte() }

func (s *Serial) Read(p []byte) (int, error) { return s.ch.Read(p) }

func (s *Serial) Write(p []byte) (int, error) { return s.ch.Write(p) }

func (s *Serial) WriteByte(b byte) error { return s.ch.WriteByte(b) }
