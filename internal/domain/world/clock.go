package world

import "fmt"

const (
	TicksPerSecond = 60
	TicksPerHour   = 2500
	TicksPerDay    = 60000

	// RareTickInterval is the batch size of the coarse tick.
	RareTickInterval = 250
)

type Clock struct {
	ticks int64
}

func NewClock(startTick int64) Clock {
	if startTick < 0 {
		startTick = 0
	}
	return Clock{ticks: startTick}
}

// Advance moves the clock one tick forward and returns the new tick number.
func (c *Clock) Advance() int64 {
	c.ticks++
	return c.ticks
}

func (c Clock) Ticks() int64 {
	return c.ticks
}

func IsRareTick(tick int64) bool {
	return tick > 0 && tick%RareTickInterval == 0
}

// FormatTicks renders a tick count as a readable period.
func FormatTicks(ticks int) string {
	if ticks < 0 {
		ticks = 0
	}
	switch {
	case ticks >= TicksPerDay:
		return fmt.Sprintf("%.1f days", float64(ticks)/TicksPerDay)
	case ticks >= TicksPerHour:
		return fmt.Sprintf("%.1f hours", float64(ticks)/TicksPerHour)
	default:
		return fmt.Sprintf("%d seconds", ticks/TicksPerSecond)
	}
}
