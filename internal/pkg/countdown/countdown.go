// Package countdown provides a resend-cooldown timer decoupled from any
// rendering lifecycle, so it can be tested without a UI harness.
package countdown

import (
	"sync"
	"time"
)

// Cooldown is a one-shot countdown. Start arms it for the configured
// duration; it counts down to zero and then reports Ready. A Cooldown is
// safe for concurrent use.
type Cooldown struct {
	mu       sync.Mutex
	duration time.Duration
	deadline time.Time
	now      func() time.Time
}

// New returns an unarmed cooldown of the given duration. An unarmed
// cooldown is Ready.
func New(d time.Duration) *Cooldown {
	return &Cooldown{duration: d, now: time.Now}
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(d time.Duration, now func() time.Time) *Cooldown {
	return &Cooldown{duration: d, now: now}
}

// Start arms (or re-arms) the cooldown for its full duration.
func (c *Cooldown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = c.now().Add(c.duration)
}

// Cancel disarms the cooldown immediately.
func (c *Cooldown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = time.Time{}
}

// Remaining returns the time left before the cooldown expires, or zero when
// it is unarmed or already expired.
func (c *Cooldown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deadline.IsZero() {
		return 0
	}
	r := c.deadline.Sub(c.now())
	if r < 0 {
		return 0
	}
	return r
}

// Seconds returns Remaining rounded up to whole seconds: a freshly started
// 60s cooldown reports 60, and exactly 0 only once 60 full seconds have
// elapsed.
func (c *Cooldown) Seconds() int {
	r := c.Remaining()
	if r == 0 {
		return 0
	}
	return int((r + time.Second - 1) / time.Second)
}

// Ready reports whether the cooldown has fully expired (or was never
// started).
func (c *Cooldown) Ready() bool {
	return c.Remaining() == 0
}
