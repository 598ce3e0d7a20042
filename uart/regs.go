package uart

// regs is the handful of register accesses a channel needs from its
// USART block. The stm32f103 build backs it with device/stm32; the
// host build backs it with an in-memory simulator so the package logic
// runs under go test.
type regs interface {
	// Enable turns the block on (UE). Disable clears the whole control
	// register, transmitter and interrupt enables included.
	Enable()
	Disable()

	// SetBaudDivisor writes a packed mantissa/fraction value produced
	// by divisor.
	SetBaudDivisor(div uint32)

	// SetFrame8N1 fixes the frame at 8 data bits, no parity, 1 stop.
	SetFrame8N1()

	// EnableTransceiver turns on the transmitter, the receiver and the
	// RXNE/TC interrupt sources.
	EnableTransceiver()

	// ClearStatus wipes every latched status flag. Only safe before
	// traffic starts.
	ClearStatus()

	// Transmit side.
	TxEmpty() bool
	WriteData(b byte)
	TxComplete() bool
	ClearTxComplete()

	// Receive side. ReadData also clears the pending and overrun
	// flags, per the status-then-data read sequence.
	RxPending() bool
	Overrun() bool
	ReadData() byte

	// EnableIRQ and DisableIRQ gate the block's interrupt line in the
	// controller, not the per-source enables.
	EnableIRQ()
	DisableIRQ()
}
