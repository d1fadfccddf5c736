package model

import "fmt"

type CountdownState int

const (
	CountdownRunning CountdownState = iota
	CountdownPaused
	CountdownExpired
)

func (s CountdownState) String() string {
	switch s {
	case CountdownRunning:
		return "running"
	case CountdownPaused:
		return "paused"
	case CountdownExpired:
		return "expired"
	}
	return "unknown"
}

// Countdown is a fixed-duration single-session timer. It holds no scheduling
// responsibility: the host calls Tick once per elapsed second. There is no
// restart; a finished or abandoned countdown is discarded by its caller.
//
// Not safe for concurrent use; callers serialize access.
type Countdown struct {
	total     int
	remaining int
	state     CountdownState
	onExpire  func()
}

// NewCountdown creates a running countdown of totalSeconds. onExpire fires
// exactly once, synchronously, on the tick that first reaches zero.
func NewCountdown(totalSeconds int, onExpire func()) *Countdown {
	return &Countdown{
		total:     totalSeconds,
		remaining: totalSeconds,
		state:     CountdownRunning,
		onExpire:  onExpire,
	}
}

// Tick advances the countdown by one second. Ticks while paused or after
// expiry are no-ops, so a late tick can never fire the callback again.
func (c *Countdown) Tick() {
	if c.state != CountdownRunning {
		return
	}

	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = CountdownExpired
		if c.onExpire != nil {
			c.onExpire()
		}
	}
}

// Pause freezes the remaining time. Elapsed accounting is unaffected: Resume
// continues from exactly the frozen value.
func (c *Countdown) Pause() {
	if c.state == CountdownRunning {
		c.state = CountdownPaused
	}
}

func (c *Countdown) Resume() {
	if c.state == CountdownPaused {
		c.state = CountdownRunning
	}
}

func (c *Countdown) State() CountdownState {
	return c.state
}

func (c *Countdown) Remaining() int {
	return c.remaining
}

func (c *Countdown) Total() int {
	return c.total
}

// Progress reports completion as a percentage, monotonically non-decreasing
// while running.
func (c *Countdown) Progress() float64 {
	if c.total <= 0 {
		return 100
	}
	return (1 - float64(c.remaining)/float64(c.total)) * 100
}

// Format renders the remaining time as mm:ss.
func (c *Countdown) Format() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
