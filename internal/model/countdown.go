package model

import "fmt"

// DefaultCountdownPeriod is the fixed health-reminder interval in seconds.
const DefaultCountdownPeriod = 20 * 60

// Countdown tracks the seconds remaining until the next periodic health
// reminder. It always resets to the full period immediately after firing.
type Countdown struct {
	Remaining int
	Period    int
}

func NewCountdown(periodSec int) Countdown {
	if periodSec <= 0 {
		periodSec = DefaultCountdownPeriod
	}
	return Countdown{Remaining: periodSec, Period: periodSec}
}

// Tick advances the countdown by one second. It returns true on the tick that
// exhausts the period; the remaining time resets in the same call so the
// countdown keeps running indefinitely.
func (c *Countdown) Tick() bool {
	if c.Remaining > 0 {
		c.Remaining--
	}
	if c.Remaining == 0 {
		c.Remaining = c.Period
		return true
	}
	return false
}

// Display formats the remaining time as mm:ss.
func (c Countdown) Display() string {
	return fmt.Sprintf("%02d:%02d", c.Remaining/60, c.Remaining%60)
}

// Fraction reports elapsed progress through the current period in [0, 1].
func (c Countdown) Fraction() float64 {
	if c.Period <= 0 {
		return 0
	}
	return 1 - float64(c.Remaining)/float64(c.Period)
}
