//go:build !stm32f103

package rtc

// Host builds count in a plain field; tests advance it by hand.

func (r *RTC) applyStart(ClockSource) { r.seconds = 0 }

func (r *RTC) applySeconds() uint32 { return r.seconds }

func (r *RTC) applySet(v uint32) { r.seconds = v }

// AdvanceSeconds adds n seconds, standing in for the prescaler.
func (r *RTC) AdvanceSeconds(n uint32) {
	if r.ready {
		r.seconds += n
	}
}
