//go:build !stm32f103

// Command uart-probe exercises a live board from the host end of the
// serial cable. Point it at a port running the echo firmware; it sends
// a deterministic pattern and verifies the echo byte for byte.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tarm/serial"
)

func main() {
	dev := flag.String("dev", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 9600, "line rate")
	total := flag.Int("bytes", 1024, "bytes to push through")
	chunk := flag.Int("chunk", 32, "write size")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("uart-probe: ")

	port, err := serial.OpenPort(&serial.Config{Name: *dev, Baud: *baud, ReadTimeout: 2 * time.Second})
	if err != nil {
		log.Fatalf("open %s: %v", *dev, err)
	}
	defer port.Close()

	log.Printf("device=%s baud=%d", *dev, *baud)

	gen := patternGenerator(0x42)
	const off = uint32(2166136261)
	const prime = uint32(16777619)
	txHash, rxHash := off, off

	out := make([]byte, *chunk)
	in := make([]byte, 256)
	sent, got := 0, 0
	start := time.Now()

	for sent < *total {
		n := *chunk
		if n > *total-sent {
			n = *total - sent
		}
		fillPattern(out[:n], &gen)
		if _, err := port.Write(out[:n]); err != nil {
			log.Fatalf("write: %v", err)
		}
		for i := 0; i < n; i++ {
			txHash ^= uint32(out[i])
			txHash *= prime
		}
		sent += n

		// Pull the echo back before pushing more, so neither side's
		// buffers overflow.
		for want := sent - got; want > 0; want = sent - got {
			k, err := port.Read(in[:min(want, len(in))])
			if err != nil || k == 0 {
				break
			}
			for i := 0; i < k; i++ {
				rxHash ^= uint32(in[i])
				rxHash *= prime
			}
			got += k
		}
	}

	elapsed := time.Since(start).Round(time.Millisecond)
	if sent != got || txHash != rxHash {
		log.Fatalf("FAIL: sent=%d got=%d tx=%08X rx=%08X", sent, got, txHash, rxHash)
	}
	fmt.Printf("PASS %d bytes echoed in %v (tx=rx=%08X)\n", sent, elapsed, txHash)
}

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
