package stopwatch

import "time"

// Clock is the time source a Stopwatch reads from. Readings must be
// strictly non-decreasing; only differences between readings are
// meaningful, never absolute values. The stopwatch treats the clock as a
// pure function and never mutates it.
type Clock interface {
	Now() time.Time
}

// systemClock reads time.Now, which carries the system monotonic reading
// so that Sub and Add operate on monotonic time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

var _ Clock = systemClock{}
