package st7920

import (
	"testing"
	"time"
)

func TestDelayFunc(t *testing.T) {
	var got []time.Duration
	f := DelayFunc(func(d time.Duration) { got = append(got, d) })
	f.Delay(5 * time.Microsecond)
	f.Delay(2 * time.Millisecond)
	if len(got) != 2 || got[0] != 5*time.Microsecond || got[1] != 2*time.Millisecond {
		t.Errorf("DelayFunc recorded %v", got)
	}
}

func TestHostDelay(t *testing.T) {
	tests := []time.Duration{
		0,
		5 * time.Microsecond,
		500 * time.Microsecond,
		2 * time.Millisecond,
	}

	for _, d := range tests {
		start := time.Now()
		hostDelay{}.Delay(d)
		if elapsed := time.Since(start); elapsed < d {
			t.Errorf("Delay(%v) returned after %v", d, elapsed)
		}
	}
}
