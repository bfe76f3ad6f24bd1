package instant

import (
	"errors"
	"fmt"
	"time"
)

// HostClock reports the current time as fractional milliseconds since a
// fixed origin chosen by the host.
type HostClock func() float64

var (
	// PerformanceNow is the precise host clock. On js/wasm it reads
	// performance.now() from the global object: monotonic, with
	// sub-millisecond resolution.
	PerformanceNow HostClock = performanceNow

	// DateNow is the inaccurate host clock. On js/wasm it reads Date.now():
	// wall-clock milliseconds, which may go backwards.
	DateNow HostClock = dateNow
)

// NowMillis is the host clock read by Now. Intentionally exported so that it
// can be overridden, for example by tests which need a deterministic clock.
var NowMillis HostClock = PerformanceNow

// Mode names one of the host clocks.
type Mode string

const (
	Precise    Mode = "precise"
	Inaccurate Mode = "inaccurate"
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("unknown clock mode")

// ParseMode returns the Mode called s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Precise, Inaccurate:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (want %q or %q)", ErrUnknownMode, s, Precise, Inaccurate)
}

// HostClock returns the host clock selected by m.
func (m Mode) HostClock() HostClock {
	switch m {
	case Precise:
		return PerformanceNow
	case Inaccurate:
		return DateNow
	}
	panic(fmt.Sprintf("instant: unknown clock mode %q", string(m)))
}

// Clock reads Instants from a single host clock.
type Clock struct {
	host HostClock
}

// NewClock returns a Clock reading from host. A nil host reads NowMillis at
// each call.
func NewClock(host HostClock) *Clock {
	return &Clock{host: host}
}

// Now returns the current instant according to c.
func (c *Clock) Now() Instant {
	if c == nil || c.host == nil {
		return Now()
	}
	return mustFromMillis(c.host())
}

// Since returns the time elapsed since t according to c.
func (c *Clock) Since(t Instant) time.Duration {
	return c.Now().DurationSince(t)
}
