// Package stopwatch measures execution time of arbitrary code with
// start/stop/suspend/resume/split semantics.
//
// The stopwatch reads a monotonic clock, never the wall clock, so readings
// are unaffected by system time adjustments and have the resolution needed
// for timings. It is a small state machine: every operation other than
// Reset and Restart is legal only from specific states and returns an
// ErrIllegalState error otherwise, leaving the stopwatch unchanged.
// Reading the elapsed time is legal at any point and returns an
// appropriate result.
//
// Basic usage:
//
//	sw := stopwatch.New()
//	sw.Start()
//	doSomething()
//	sw.Stop() // The call to Stop is optional.
//
//	fmt.Println("Elapsed time:", sw)
//
// A Stopwatch is not safe for concurrent use.
package stopwatch

import (
	"errors"
	"fmt"
	"time"
)

// State identifies the current mode of a Stopwatch. Every mutating
// operation is guarded by a precondition on the state.
type State int

const (
	// Ready is the initial state: the stopwatch has not been started since
	// construction or the last Reset.
	Ready State = iota
	// Running means the stopwatch is measuring elapsed time.
	Running
	// Stopped means a measurement has finished. Only Reset or Restart
	// leaves this state.
	Stopped
	// Suspended means the measurement is paused; Resume continues it
	// without counting the paused interval.
	Suspended
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Stopped:
		return "STOPPED"
	case Suspended:
		return "SUSPENDED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrIllegalState is returned when an operation is called from a state
// that does not permit it. The stopwatch is left unchanged on failure.
var ErrIllegalState = errors.New("illegal stopwatch state")

// Stopwatch measures elapsed time between explicitly signalled points.
//
// The zero value is not usable; construct instances with New or
// NewWithClock. A new Stopwatch is in the Ready state.
type Stopwatch struct {
	clock     Clock
	state     State
	issplit   bool
	startTime time.Time
	stopTime  time.Time
}

// New returns a Ready stopwatch reading the system monotonic clock.
func New() *Stopwatch {
	return NewWithClock(systemClock{})
}

// NewWithClock returns a Ready stopwatch reading time from clock.
// A nil clock falls back to the system clock. Supplying a manually
// advanced clock makes timing assertions deterministic in tests.
func NewWithClock(clock Clock) *Stopwatch {
	if clock == nil {
		clock = systemClock{}
	}
	return &Stopwatch{clock: clock}
}

// State reports the current state of the stopwatch.
func (sw *Stopwatch) State() State {
	return sw.state
}

// Start begins a new measurement.
// It fails with ErrIllegalState unless the stopwatch is Ready.
func (sw *Stopwatch) Start() error {
	if sw.state != Ready {
		return fmt.Errorf("%w: already started", ErrIllegalState)
	}
	sw.startTime = sw.clock.Now()
	sw.state = Running
	return nil
}

// Stop ends the current measurement, freezing the elapsed time.
// It fails with ErrIllegalState unless the stopwatch is Running or
// Suspended. Stopping a Suspended stopwatch keeps the suspension instant
// as the end of the measurement.
func (sw *Stopwatch) Stop() error {
	if sw.state != Running && sw.state != Suspended {
		return fmt.Errorf("%w: not started", ErrIllegalState)
	}
	if sw.state == Running {
		sw.stopTime = sw.clock.Now()
	}
	sw.state = Stopped
	return nil
}

// Suspend pauses the measurement. While suspended, the stopwatch does not
// accumulate elapsed time. It fails with ErrIllegalState unless the
// stopwatch is Running.
func (sw *Stopwatch) Suspend() error {
	if sw.state != Running {
		return fmt.Errorf("%w: not running", ErrIllegalState)
	}
	sw.stopTime = sw.clock.Now()
	sw.state = Suspended
	return nil
}

// Resume continues a suspended measurement. The time spent suspended is
// not included in the total. It fails with ErrIllegalState unless the
// stopwatch is Suspended.
func (sw *Stopwatch) Resume() error {
	if sw.state != Suspended {
		return fmt.Errorf("%w: not suspended", ErrIllegalState)
	}
	// Advance the origin by the time spent suspended.
	sw.startTime = sw.startTime.Add(sw.clock.Now().Sub(sw.stopTime))
	sw.state = Running
	return nil
}

// Reset returns the stopwatch to its initial Ready state, discarding any
// recorded times. Unlike the other operations, it is legal from any state.
func (sw *Stopwatch) Reset() {
	sw.startTime = time.Time{}
	sw.stopTime = time.Time{}
	sw.issplit = false
	sw.state = Ready
}

// Restart begins a new measurement regardless of the current state.
// Equivalent to Reset followed by Start.
func (sw *Stopwatch) Restart() {
	sw.Reset()
	_ = sw.Start() // cannot fail from Ready
}

// Split records the current instant as a split mark, freezing the value
// reported by Elapsed while the stopwatch keeps running. It fails with
// ErrIllegalState unless the stopwatch is Running.
func (sw *Stopwatch) Split() error {
	if sw.state != Running {
		return fmt.Errorf("%w: not running", ErrIllegalState)
	}
	sw.stopTime = sw.clock.Now()
	sw.issplit = true
	return nil
}

// Unsplit erases the recorded split mark, so Elapsed reads live again.
// It fails with ErrIllegalState if no split mark is recorded.
func (sw *Stopwatch) Unsplit() error {
	if !sw.issplit {
		return fmt.Errorf("%w: no split recorded", ErrIllegalState)
	}
	sw.stopTime = time.Time{}
	sw.issplit = false
	return nil
}

// Elapsed returns the time on the stopwatch. The reported duration is one
// of the following:
//  1. The interval between the start and stop instants.
//  2. The interval between the start instant and now (Running, no split).
//  3. The interval between the start and suspension instants.
//  4. The recorded split mark.
//
// Elapsed never fails and may be called from any state; before the first
// Start it reports zero.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.state == Running && !sw.issplit {
		return sw.clock.Now().Sub(sw.startTime)
	}
	return sw.stopTime.Sub(sw.startTime)
}

// Milliseconds returns the elapsed time in whole milliseconds,
// truncated toward zero.
func (sw *Stopwatch) Milliseconds() int64 {
	return sw.Elapsed().Milliseconds()
}

// String renders the elapsed time as hours:minutes:seconds.milliseconds.
// The trailing field is the total millisecond count, not a sub-second
// remainder; kept as documented behavior.
func (sw *Stopwatch) String() string {
	millis := sw.Milliseconds()
	hours := millis / 3600000
	minutes := (millis / 60000) % 60
	seconds := (millis / 1000) % 60
	return fmt.Sprintf("%d:%d:%d.%d", hours, minutes, seconds, millis)
}
