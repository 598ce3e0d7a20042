//go:build stm32f103

// Loopback self test. Cross-wire the two APB1 blocks before flashing:
// PA2 -> PB11 and PB10 -> PA3.
package main

import (
	"f103periph-go/afio"
	"f103periph-go/boardcfg"
	"f103periph-go/rcc"
	"f103periph-go/systick"
	"f103periph-go/uart"
	"f103periph-go/x/conv"
)

// Board is chosen at link time: -ldflags="-X main.board=maple".
var board string

func main() {
	println("[selftest] boot ...")

	prof, err := boardcfg.Load(board)
	if err != nil {
		println("[selftest] FAIL: profile:", err.Error())
		return
	}
	clock := rcc.New()
	if err := clock.Configure(prof.SysClock); err != nil {
		println("[selftest] FAIL: clock:", err.Error())
		return
	}
	pins := afio.NewRouter(clock)
	ticks := systick.New(clock)
	if err := ticks.Configure(prof.TickUnit, prof.TickStep); err != nil {
		println("[selftest] FAIL: systick:", err.Error())
		return
	}

	bank := uart.New(clock, pins, ticks)
	a := bank.Channel(uart.UART2)
	b := bank.Channel(uart.UART3)
	if err := a.Configure(uart.Config{Mapping: uart.UART2TxPA2RxPA3, Baud: prof.Console.Baud}); err != nil {
		println("[selftest] FAIL: uart2:", err.Error())
		return
	}
	if err := b.Configure(uart.Config{Mapping: uart.UART3TxPB10RxPB11, Baud: prof.Console.Baud}); err != nil {
		println("[selftest] FAIL: uart3:", err.Error())
		return
	}
	println("[selftest] wiring: PA2->PB11 and PB10->PA3")

	pass := true

	println("[selftest] smoke: uart2 -> uart3")
	if smoke(a, b, "hello-uart") {
		println("[selftest] smoke: PASS")
	} else {
		println("[selftest] smoke: FAIL")
		pass = false
	}

	println("[selftest] smoke: uart3 -> uart2")
	if smoke(b, a, "trau-olleh") {
		println("[selftest] smoke: PASS")
	} else {
		println("[selftest] smoke: FAIL")
		pass = false
	}

	println("[selftest] integrity: 4096 bytes, chunk 64")
	if integrity(a, b, 4096, 64) {
		println("[selftest] integrity: PASS")
	} else {
		println("[selftest] integrity: FAIL")
		pass = false
	}

	dumpStats("uart2", a)
	dumpStats("uart3", b)
	if pass {
		println("[selftest] PASS")
	} else {
		println("[selftest] FAIL")
	}
}

// smoke pushes one message across and spins until it comes back.
func smoke(tx, rx *uart.Channel, msg string) bool {
	if err := tx.Send([]byte(msg)); err != nil {
		println("[selftest] smoke: send:", err.Error())
		return false
	}
	got := make([]byte, len(msg))
	n := 0
	for spins := 0; n < len(got) && spins < 1_000_000; spins++ {
		k, err := rx.Read(got[n:])
		if err != nil {
			println("[selftest] smoke: read:", err.Error())
			return false
		}
		n += k
	}
	if n != len(got) || string(got) != msg {
		println("[selftest] smoke: got", n, "bytes")
		return false
	}
	return true
}

// integrity sends a deterministic stream and compares FNV-1a hashes of
// both ends.
func integrity(tx, rx *uart.Channel, total, chunk int) bool {
	gen := patternGenerator(0xA5)
	const off = uint32(2166136261)
	const prime = uint32(16777619)
	txHash, rxHash := off, off

	out := make([]byte, chunk)
	in := make([]byte, 128)
	written, received := 0, 0

	for spins := 0; (written < total || received < total) && spins < 10_000_000; spins++ {
		if written < total {
			toWrite := chunk
			if toWrite > total-written {
				toWrite = total - written
			}
			fillPattern(out[:toWrite], &gen)
			if err := tx.Send(out[:toWrite]); err != nil {
				println("[selftest] integrity: send:", err.Error())
				return false
			}
			for i := 0; i < toWrite; i++ {
				txHash ^= uint32(out[i])
				txHash *= prime
			}
			written += toWrite
		}
		for {
			n, err := rx.Read(in)
			if err != nil || n == 0 {
				break
			}
			for i := 0; i < n; i++ {
				rxHash ^= uint32(in[i])
				rxHash *= prime
			}
			received += n
		}
	}

	var hx [8]byte
	println("[selftest] integrity: written=", written, " received=", received)
	println("[selftest] integrity: tx=", string(conv.U32Hex(hx[:], txHash)), " rx=", string(conv.U32Hex(hx[:], rxHash)))
	return written == total && received == total && txHash == rxHash
}

func dumpStats(name string, ch *uart.Channel) {
	st := ch.Stats()
	println("[selftest]", name, "stats: rx=", st.Received, " drop=", st.Dropped,
		" orun=", st.Overruns, " sendto=", st.SendTimeouts)
}

// --- tiny utilities (no fmt) ---

// Simple deterministic pattern generator (xorshift8 over byte).
type patGen struct{ s byte }

func patternGenerator(seed byte) patGen { return patGen{s: seed} }
func (g *patGen) next() byte {
	x := g.s
	x ^= x << 3
	x ^= x >> 5
	x ^= x << 1
	g.s = x
	return x
}
func fillPattern(dst []byte, g *patGen) {
	for i := 0; i < len(dst); i++ {
		dst[i] = g.next()
	}
}
