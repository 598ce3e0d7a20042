// Package uart drives the three USART blocks through interrupt-fed
// receive rings and blocking, deadline-bounded sends.
//
// The concurrency model is single core with interrupt preemption. The
// receive interrupt is the one producer of each ring and application
// code is the one consumer; the two sides meet only through the ring's
// atomic cursors. A per-channel advisory lock serialises application
// calls against each other and nothing else. Send is the only
// operation that blocks, and its worst case is about len(p) times
// DefaultSendTimeout ticks.
package uart

import (
	"sync/atomic"

	"f103periph-go/errcode"
	"f103periph-go/periph"
	"f103periph-go/x/mathx"
)

const (
	// DefaultSendTimeout is how many ticks a single byte may wait for
	// the transmit register before Send gives up.
	DefaultSendTimeout = 1000

	// DefaultRxBufferSize is the receive ring capacity used when the
	// config leaves RxBufferSize zero.
	DefaultRxBufferSize = 256

	minRxBufferSize = 64
	maxRxBufferSize = 4096
)

// Clock is the slice of the clock service a bank needs: gate control
// and the frequencies that feed the baud divisor.
type Clock interface {
	Ready() bool
	BusFrequency(periph.Bus) uint32
	BusPrescaler(periph.Bus) uint32
	EnableGate(periph.Gate)
	DisableGate(periph.Gate)
}

// PinRouter hands the bank its pins and applies remap selections.
type PinRouter interface {
	Claim(periph.PinID, periph.PinRole) error
	Release(periph.PinID)
	SetRemap(periph.Remap, bool) error
}

// TickSource is the time base Send deadlines count against.
type TickSource interface {
	Ticks() uint64
}

// Config selects the pin pair, the rate and the receive ring size for
// one channel.
type Config struct {
	Mapping Mapping
	Baud    uint32

	// RxBufferSize is the receive ring capacity in bytes. Zero means
	// DefaultRxBufferSize; anything else is rounded up to a power of
	// two between 64 and 4096.
	RxBufferSize int
}

func rxSize(req int) int {
	if req <= 0 {
		return DefaultRxBufferSize
	}
	req = mathx.Clamp(req, minRxBufferSize, maxRxBufferSize)
	return int(mathx.CeilPow2(uint32(req)))
}

// Stats is a snapshot of one channel's traffic counters.
type Stats struct {
	Received     uint32 // bytes accepted into the receive ring
	Dropped      uint32 // bytes discarded because the ring was full
	Overruns     uint32 // hardware overrun flags observed
	SendTimeouts uint32 // Send calls that gave up waiting on TXE
}

type counters struct {
	received     atomic.Uint32
	dropped      atomic.Uint32
	overruns     atomic.Uint32
	sendTimeouts atomic.Uint32
}

func (s *counters) reset() {
	s.received.Store(0)
	s.dropped.Store(0)
	s.overruns.Store(0)
	s.sendTimeouts.Store(0)
}

// Bank owns the three channels and the collaborator services they
// share. Construct one per board with New; channels are reachable
// from it for the lifetime of the program.
type Bank struct {
	clock Clock
	pins  PinRouter
	ticks TickSource
	chans [numInstances]Channel
}

// New wires a bank to its collaborators. Nothing touches hardware
// until a channel is configured.
func New(clock Clock, pins PinRouter, ticks TickSource) *Bank {
	b := &Bank{clock: clock, pins: pins, ticks: ticks}
	for i := range b.chans {
		c := &b.chans[i]
		c.bank = b
		c.inst = Instance(i)
		c.regs = newRegs(Instance(i))
		bindChannel(c)
	}
	return b
}

// Channel returns the handle for one instance, nil for anything else.
func (b *Bank) Channel(i Instance) *Channel {
	if !i.Valid() {
		return nil
	}
	return &b.chans[i]
}

// Reset deinitialises every configured channel. Meant for tests and
// full reconfiguration.
func (b *Bank) Reset() {
	for i := range b.chans {
		if b.chans[i].ready.Load() {
			_ = b.chans[i].Deinit()
		}
	}
}

// Channel is one USART block. The zero value is unusable; get channels
// from a Bank.
type Channel struct {
	bank *Bank
	inst Instance
	regs regs

	ready atomic.Bool
	busy  atomic.Uint32

	cfg Config
	div uint32
	rx  *rxRing

	stats counters
}

// Instance reports which block this channel drives.
func (c *Channel) Instance() Instance { return c.inst }

// Ready reports whether Configure has completed on this channel.
func (c *Channel) Ready() bool { return c.ready.Load() }

// lock takes the app-side advisory lock. It serialises re-entrant
// application calls against each other only; the receive interrupt is
// not excluded by it and keeps feeding the ring. The ring's SPSC
// cursor discipline is what makes that safe.
func (c *Channel) lock() bool { return c.busy.CompareAndSwap(0, 1) }

func (c *Channel) unlock() { c.busy.Store(0) }

// Configure claims the mapping's pins, programs the block for 8N1 at
// the requested rate and arms the receive interrupt. The channel must
// not already be configured, the mapping must belong to this instance
// and the system clock must be running first.
func (c *Channel) Configure(cfg Config) error {
	const op = "uart.Configure"
	if c.ready.Load() {
		return &errcode.E{C: errcode.AlreadyInitialized, Op: op, Msg: c.inst.String()}
	}
	if !cfg.Mapping.Valid() || cfg.Mapping.Instance() != c.inst {
		return &errcode.E{C: errcode.InvalidMapping, Op: op, Msg: cfg.Mapping.String() + " on " + c.inst.String()}
	}
	if cfg.Baud == 0 {
		return &errcode.E{C: errcode.InvalidBaud, Op: op, Msg: c.inst.String()}
	}
	if !c.bank.clock.Ready() {
		return &errcode.E{C: errcode.ClockNotReady, Op: op}
	}
	bus := c.inst.bus()
	pclk := c.bank.clock.BusFrequency(bus) / c.bank.clock.BusPrescaler(bus)
	div, err := divisor(pclk, cfg.Baud)
	if err != nil {
		return err
	}

	info := cfg.Mapping.info()
	c.regs.Disable()
	c.bank.clock.EnableGate(c.inst.gate())
	if err := c.bank.pins.SetRemap(info.remap, info.remapOn); err != nil {
		c.unwind(info, false)
		return err
	}
	if err := c.bank.pins.Claim(info.tx, periph.RoleAltPushPull); err != nil {
		c.unwind(info, false)
		return err
	}
	if err := c.bank.pins.Claim(info.rx, periph.RoleInputFloating); err != nil {
		c.unwind(info, true)
		return err
	}

	c.cfg = cfg
	c.cfg.RxBufferSize = rxSize(cfg.RxBufferSize)
	c.div = div
	c.rx = newRxRing(c.cfg.RxBufferSize)
	c.stats.reset()

	c.regs.SetBaudDivisor(div)
	c.regs.SetFrame8N1()
	c.regs.EnableTransceiver()
	c.regs.Enable()
	c.regs.ClearStatus()
	c.regs.EnableIRQ()
	c.ready.Store(true)
	return nil
}

// unwind backs out a half-done Configure: pins released, remap
// cleared if the mapping set one, clock gate off.
func (c *Channel) unwind(info mapInfo, txClaimed bool) {
	if txClaimed {
		c.bank.pins.Release(info.tx)
	}
	if info.remapOn {
		_ = c.bank.pins.SetRemap(info.remap, false)
	}
	c.bank.clock.DisableGate(c.inst.gate())
}

// Deinit releases everything Configure took: interrupt off, block
// disabled, pins back to floating, remap cleared, clock gate off. The
// receive ring and its contents are gone afterwards.
func (c *Channel) Deinit() error {
	const op = "uart.Deinit"
	if !c.lock() {
		return &errcode.E{C: errcode.Busy, Op: op, Msg: c.inst.String()}
	}
	defer c.unlock()
	// Checked under the lock so a teardown that preempted us between
	// the two cannot leave a half-valid channel behind.
	if !c.ready.Load() {
		return &errcode.E{C: errcode.NotInitialized, Op: op, Msg: c.inst.String()}
	}
	c.ready.Store(false)
	c.regs.DisableIRQ()
	c.regs.Disable()
	info := c.cfg.Mapping.info()
	c.bank.pins.Release(info.tx)
	c.bank.pins.Release(info.rx)
	if info.remapOn {
		_ = c.bank.pins.SetRemap(info.remap, false)
	}
	c.bank.clock.DisableGate(c.inst.gate())
	c.rx.clear()
	c.rx = nil
	return nil
}

// service drains the receive data register into the ring. It runs in
// interrupt context: it never blocks and writes only the producer
// cursor. A full ring keeps its oldest bytes and the new byte is
// dropped and counted.
func (c *Channel) service() {
	r := c.rx
	if r == nil {
		return
	}
	for c.regs.RxPending() {
		if c.regs.Overrun() {
			c.stats.overruns.Add(1)
		}
		b := c.regs.ReadData()
		if r.put(b) {
			c.stats.received.Add(1)
		} else {
			c.stats.dropped.Add(1)
		}
	}
	if c.regs.TxComplete() {
		c.regs.ClearTxComplete()
	}
}

// Read copies up to len(p) of the oldest received bytes out of the
// ring and returns how many it copied. An empty ring reads as (0, nil)
// so callers can poll.
func (c *Channel) Read(p []byte) (int, error) {
	const op = "uart.Read"
	if !c.lock() {
		return 0, &errcode.E{C: errcode.Busy, Op: op, Msg: c.inst.String()}
	}
	defer c.unlock()
	if !c.ready.Load() {
		return 0, &errcode.E{C: errcode.NotInitialized, Op: op, Msg: c.inst.String()}
	}
	if len(p) == 0 {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: op}
	}
	return c.rx.readInto(p), nil
}

// Send writes p one byte at a time, busy-waiting on the transmit
// register with a fresh deadline per byte. A gap longer than
// DefaultSendTimeout ticks fails the call; bytes accepted before the
// gap are already on the wire and are not reported back.
func (c *Channel) Send(p []byte) error {
	const op = "uart.Send"
	if len(p) == 0 {
		return &errcode.E{C: errcode.NotReady, Op: op, Msg: c.inst.String()}
	}
	if !c.lock() {
		return &errcode.E{C: errcode.NotReady, Op: op, Msg: c.inst.String()}
	}
	defer c.unlock()
	if !c.ready.Load() {
		return &errcode.E{C: errcode.NotReady, Op: op, Msg: c.inst.String()}
	}
	// Drop the completion flag left by the previous send. The receive
	// flags belong to the interrupt and stay untouched.
	c.regs.ClearTxComplete()
	for _, b := range p {
		deadline := c.bank.ticks.Ticks() + DefaultSendTimeout
		for !c.regs.TxEmpty() {
			if c.bank.ticks.Ticks() > deadline {
				c.stats.sendTimeouts.Add(1)
				return &errcode.E{C: errcode.Timeout, Op: op, Msg: c.inst.String()}
			}
		}
		c.regs.WriteData(b)
	}
	return nil
}

// Buffered returns the number of received bytes waiting in the ring.
func (c *Channel) Buffered() int {
	r := c.rx
	if !c.ready.Load() || r == nil {
		return 0
	}
	return r.used()
}

// ReadByte pops the oldest received byte. An empty ring is an error
// here, unlike Read.
func (c *Channel) ReadByte() (byte, error) {
	var b [1]byte
	n, err := c.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, &errcode.E{C: errcode.BufferEmpty, Op: "uart.ReadByte", Msg: c.inst.String()}
	}
	return b[0], nil
}

// Write adapts Send to the io.Writer shape: all of p or an error. A
// failed call reports zero even when a prefix made it out.
func (c *Channel) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := c.Send(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte sends a single byte with Send's blocking behaviour.
func (c *Channel) WriteByte(b byte) error {
	return c.Send([]byte{b})
}

// WriteString implements io.StringWriter.
func (c *Channel) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Stats returns a snapshot of the channel's traffic counters. The
// counters survive until the next Configure.
func (c *Channel) Stats() Stats {
	return Stats{
		Received:     c.stats.received.Load(),
		Dropped:      c.stats.dropped.Load(),
		Overruns:     c.stats.overruns.Load(),
		SendTimeouts: c.stats.sendTimeouts.Load(),
	}
}
