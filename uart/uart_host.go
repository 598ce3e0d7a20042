//go:build !stm32f103

package uart

// simRegs is the host stand-in for a USART block. Tests feed receive
// bytes in with Feed and script transmit backpressure with StallTx;
// everything written to the data register lands in Tx order.
type simRegs struct {
	inst Instance

	enabled  bool
	txOn     bool
	irqOn    bool
	div      uint32
	frame8n1 bool

	rxq        []byte
	overrun    bool
	txStall    int // TxEmpty polls left to refuse; negative means forever
	stallAfter int // accepted bytes left before txStall arms itself
	tc         bool

	tx []byte

	onIRQ func()
}

func newRegs(i Instance) regs { return &simRegs{inst: i} }

func bindChannel(c *Channel) {
	if s, ok := c.regs.(*simRegs); ok {
		s.onIRQ = c.service
	}
}

func (s *simRegs) Enable()  { s.enabled = true }
func (s *simRegs) Disable() { s.enabled = false; s.txOn = false }

func (s *simRegs) SetBaudDivisor(div uint32) { s.div = div }
func (s *simRegs) SetFrame8N1()              { s.frame8n1 = true }
func (s *simRegs) EnableTransceiver()        { s.txOn = true }

func (s *simRegs) ClearStatus() {
	s.overrun = false
	s.tc = false
}

func (s *simRegs) TxEmpty() bool {
	if s.txStall < 0 {
		return false
	}
	if s.txStall > 0 {
		s.txStall--
		return false
	}
	return true
}

func (s *simRegs) WriteData(b byte) {
	s.tx = append(s.tx, b)
	s.tc = true
	if s.stallAfter > 0 {
		s.stallAfter--
		if s.stallAfter == 0 {
			s.txStall = -1
		}
	}
}

func (s *simRegs) TxComplete() bool { return s.tc }
func (s *simRegs) ClearTxComplete() { s.tc = false }

func (s *simRegs) RxPending() bool { return len(s.rxq) > 0 }
func (s *simRegs) Overrun() bool   { return s.overrun }

func (s *simRegs) ReadData() byte {
	s.overrun = false
	if len(s.rxq) == 0 {
		return 0
	}
	b := s.rxq[0]
	s.rxq = s.rxq[1:]
	return b
}

// EnableIRQ opens the line and immediately delivers anything already
// queued, the way a pending interrupt would fire.
func (s *simRegs) EnableIRQ() {
	s.irqOn = true
	s.pump()
}

func (s *simRegs) DisableIRQ() { s.irqOn = false }

func (s *simRegs) pump() {
	if s.irqOn && len(s.rxq) > 0 && s.onIRQ != nil {
		s.onIRQ()
	}
}

// Feed queues received bytes and, when the interrupt line is open,
// delivers them the way the receive interrupt would.
func (s *simRegs) Feed(p ...byte) {
	s.rxq = append(s.rxq, p...)
	s.pump()
}

// MarkOverrun latches the overrun flag; the next read sequence clears
// it.
func (s *simRegs) MarkOverrun() { s.overrun = true }

// StallTx makes TxEmpty refuse the next n polls; n < 0 refuses until
// ReleaseTx.
func (s *simRegs) StallTx(n int) { s.txStall = n }

// StallTxAfter lets n bytes through and then stalls the transmitter
// for good.
func (s *simRegs) StallTxAfter(n int) { s.stallAfter = n }

func (s *simRegs) ReleaseTx() {
	s.txStall = 0
	s.stallAfter = 0
}

// TxBytes returns everything written to the data register so far.
func (s *simRegs) TxBytes() []byte { return s.tx }
