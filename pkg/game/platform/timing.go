package platform

import "time"

// Gate bounds idle CPU usage with a fixed per-iteration delay. It is a
// coarse, non-adaptive throttle: no elapsed-time measurement, no fixed
// logical frame rate.
type Gate struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewGate creates a gate. A non-positive delay falls back to the
// built-in default.
func NewGate(delay time.Duration) *Gate {
	if delay <= 0 {
		delay = defaultLoopDelay
	}
	return &Gate{delay: delay, sleep: time.Sleep}
}

// Wait sleeps for the fixed delay.
func (g *Gate) Wait() {
	g.sleep(g.delay)
}

// Delay returns the configured delay.
func (g *Gate) Delay() time.Duration {
	return g.delay
}
