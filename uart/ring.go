package uart

import "sync/atomic"

// rxRing is a single-producer single-consumer byte ring. The receive
// interrupt is the only writer of wr; application reads are the only
// writer of rd. Both cursors are monotonic, so used = wr - rd and a
// full ring is distinct from an empty one without a reserved slot.
// Capacity must be a power of two.
type rxRing struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)
}

func newRxRing(size int) *rxRing {
	return &rxRing{buf: make([]byte, size), mask: uint32(size - 1)}
}

func (r *rxRing) size() uint32 { return uint32(len(r.buf)) }

// used returns how many bytes are buffered. Safe from either side.
func (r *rxRing) used() int {
	return int(r.wr.Load() - r.rd.Load())
}

// put stores one byte and reports whether it fit. A full ring keeps
// its oldest bytes; the new one is the one dropped. Producer side
// only.
func (r *rxRing) put(b byte) bool {
	rd := r.rd.Load()
	wr := r.wr.Load()
	if wr-rd >= r.size() {
		return false
	}
	r.buf[wr&r.mask] = b
	r.wr.Store(wr + 1) // release
	return true
}

// readInto copies up to len(dst) of the oldest bytes out and advances
// the read cursor by exactly the amount copied. Consumer side only.
func (r *rxRing) readInto(dst []byte) (n int) {
	if len(dst) == 0 {
		return 0
	}
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	avail := int(wr - rd)
	if avail <= 0 {
		return 0
	}
	if len(dst) < avail {
		avail = len(dst)
	}
	n = avail

	size := r.size()
	rdIdx := rd & r.mask
	first := int(size - rdIdx)
	if first > n {
		first = n
	}
	copy(dst[:first], r.buf[rdIdx:rdIdx+uint32(first)])
	if second := n - first; second > 0 {
		copy(dst[first:n], r.buf[:second])
	}
	r.rd.Store(rd + uint32(n)) // release
	return n
}

// clear discards everything buffered. Call only with the producer
// interrupt masked.
func (r *rxRing) clear() {
	r.rd.Store(r.wr.Load())
}
