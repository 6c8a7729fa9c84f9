package letterfield

import (
	"strings"
	"time"
)

// FormatClock renders t the way the nav bar shows it, e.g. "MON 03:04:05 PM".
func FormatClock(t time.Time) string {
	return strings.ToUpper(t.Format("Mon 03:04:05 PM"))
}

// Clock keeps a formatted wall-clock label current, refreshing once per
// second of update time.
type Clock struct {
	Now func() time.Time

	text    string
	elapsed float32
}

// NewClock returns a clock reading the system time, already formatted.
func NewClock() *Clock {
	c := &Clock{Now: time.Now}
	c.tick()
	return c
}

// Text returns the current label.
func (c *Clock) Text() string {
	return c.text
}

// Update advances the clock by dt seconds and reformats on each whole second.
func (c *Clock) Update(dt float32) {
	c.elapsed += dt
	if c.elapsed < 1 {
		return
	}
	for c.elapsed >= 1 {
		c.elapsed--
	}
	c.tick()
}

func (c *Clock) tick() {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	c.text = FormatClock(now())
}
