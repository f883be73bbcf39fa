package platform

import (
	"testing"
	"time"
)

func TestGateWaitsTheFixedDelay(t *testing.T) {
	g := NewGate(25 * time.Millisecond)

	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 10; i++ {
		g.Wait()
	}

	if len(slept) != 10 {
		t.Fatalf("got %d sleeps, want 10", len(slept))
	}
	for i, d := range slept {
		if d != 25*time.Millisecond {
			t.Errorf("sleep %d = %v, want 25ms", i, d)
		}
	}
}

func TestGateDefaultsOnNonPositiveDelay(t *testing.T) {
	for _, delay := range []time.Duration{0, -time.Second} {
		g := NewGate(delay)
		if got := g.Delay(); got != defaultLoopDelay {
			t.Errorf("NewGate(%v).Delay() = %v, want %v", delay, got, defaultLoopDelay)
		}
	}
}
