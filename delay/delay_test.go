package delay

import "testing"

// steppingSource advances one tick per read, like a free-running timer
// observed from a spin loop.
type steppingSource struct {
	now uint64
}

func (s *steppingSource) Ticks() uint64 {
	s.now++
	return s.now - 1
}

func TestWait(t *testing.T) {
	src := &steppingSource{}
	Wait(src, 10)
	// First read takes the start, then the loop polls until the count
	// passes start+10.
	if src.now < 11 {
		t.Fatalf("returned after %d reads, want at least 11", src.now)
	}
}

func TestWaitZero(t *testing.T) {
	src := &steppingSource{}
	Wait(src, 0)
	if src.now < 2 {
		t.Fatalf("zero wait still rounds up one tick, got %d reads", src.now)
	}
}
