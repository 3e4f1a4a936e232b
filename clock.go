package ethcal

import (
	"sync"
	"time"
)

// Clock supplies the current time to the "current date" conversions
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the host clock on every call
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// StableClock reads c once, on the first call to Now, and returns that instant
// from then on. Use one per unit of work (a request, a transaction) so every
// "current date" inside it agrees.
func StableClock(c Clock) Clock {
	return &stableClock{clock: c}
}

type stableClock struct {
	clock Clock
	once  sync.Once
	now   time.Time
}

func (c *stableClock) Now() time.Time {
	c.once.Do(func() {
		c.now = c.clock.Now()
	})
	return c.now
}
