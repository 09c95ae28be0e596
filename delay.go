package st7920

import (
	"time"

	"periph.io/x/host/v3/cpu"
)

// Delayer blocks the caller for at least d.
//
// Sleeping longer than requested is harmless; returning early corrupts the
// serial stream since the display has no busy signal on this wiring.
type Delayer interface {
	Delay(d time.Duration)
}

// DelayFunc adapts an ordinary function to the Delayer interface.
type DelayFunc func(d time.Duration)

// Delay calls f(d).
func (f DelayFunc) Delay(d time.Duration) {
	f(d)
}

// spinThreshold is the longest wait handled by busy spinning. Longer waits
// go through the scheduler, which may oversleep but never undersleeps.
const spinThreshold = time.Millisecond

// hostDelay spins for microsecond waits and sleeps for millisecond waits.
type hostDelay struct{}

func (hostDelay) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	if d < spinThreshold {
		cpu.Nanospin(d)
		return
	}
	time.Sleep(d)
}
