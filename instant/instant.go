// Package instant provides a monotonic timestamp for js/wasm hosts.
//
// An Instant is read from the host's millisecond clock, which on a browser
// or other JavaScript host is performance.now(). Its value is only meaningful
// relative to other Instants read from the same clock: it cannot be converted
// into a wall-clock time.
//
// Arithmetic comes in two flavours. Plus, Minus, Advance, Rewind,
// DurationSince and MinusInstant panic when their result would leave the
// representable range, as a negative span or an overflowing offset is a bug
// in the caller. CheckedAdd and CheckedSub report the same condition with a
// boolean instead.
package instant // import "github.com/canonical/instant/instant"

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNonFinite is returned for NaN or infinite clock readings.
	ErrNonFinite = errors.New("clock reading is not finite")
	// ErrNegative is returned for clock readings below zero.
	ErrNegative = errors.New("clock reading is negative")
	// ErrOutOfRange is returned for clock readings too large to represent.
	ErrOutOfRange = errors.New("clock reading out of range")
)

// maxWholeMillis is the largest whole number of milliseconds which can be
// expressed as a time.Duration.
const maxWholeMillis = math.MaxInt64 / int64(time.Millisecond)

// Instant is a point in time read from a monotonic host clock, held as the
// span since that clock's origin. The zero value is the origin itself.
//
// Instants are comparable with == and may be used as map keys.
type Instant struct {
	offset time.Duration
}

// Now returns the current instant, read from NowMillis.
//
// Now panics if the host clock is unavailable or returns a reading which
// FromMillis rejects.
func Now() Instant {
	return mustFromMillis(NowMillis())
}

// Since returns the time elapsed since t. It is shorthand for
// Now().DurationSince(t).
func Since(t Instant) time.Duration {
	return Now().DurationSince(t)
}

// FromMillis converts a host clock reading, in fractional milliseconds since
// the clock's origin, into an Instant.
//
// The whole milliseconds and the fraction are converted separately, the
// fraction being truncated to the nanosecond, so that 1500.25 becomes
// 1.50025s exactly.
func FromMillis(ms float64) (Instant, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return Instant{}, fmt.Errorf("%w: %v", ErrNonFinite, ms)
	}
	if ms < 0 {
		return Instant{}, fmt.Errorf("%w: %v", ErrNegative, ms)
	}

	whole, frac := math.Modf(ms)
	if whole > float64(maxWholeMillis) {
		return Instant{}, fmt.Errorf("%w: %v", ErrOutOfRange, ms)
	}
	millis := int64(whole) * int64(time.Millisecond)
	nanos := int64(frac * 1e6)
	offset, ok := checkedAdd64(millis, nanos)
	if !ok {
		return Instant{}, fmt.Errorf("%w: %v", ErrOutOfRange, ms)
	}
	return Instant{time.Duration(offset)}, nil
}

func mustFromMillis(ms float64) Instant {
	t, err := FromMillis(ms)
	if err != nil {
		panic(fmt.Sprintf("instant: invalid host clock reading: %v", err))
	}
	return t
}

// DurationSince returns the span from earlier to t.
//
// DurationSince panics if earlier is after t.
func (t Instant) DurationSince(earlier Instant) time.Duration {
	if earlier.offset > t.offset {
		panic("instant: earlier cannot be later than the receiver")
	}
	return t.offset - earlier.offset
}

// Elapsed returns the time elapsed since t. It is shorthand for
// Now().DurationSince(t).
func (t Instant) Elapsed() time.Duration {
	return Since(t)
}

// MinusInstant returns t-u. It is equivalent to t.DurationSince(u).
func (t Instant) MinusInstant(u Instant) time.Duration {
	return t.DurationSince(u)
}

// CheckedAdd returns t+d and true, or the zero Instant and false if the
// result cannot be represented.
func (t Instant) CheckedAdd(d time.Duration) (Instant, bool) {
	offset, ok := checkedAdd64(int64(t.offset), int64(d))
	if !ok || offset < 0 {
		return Instant{}, false
	}
	return Instant{time.Duration(offset)}, true
}

// CheckedSub returns t-d and true, or the zero Instant and false if the
// result cannot be represented.
func (t Instant) CheckedSub(d time.Duration) (Instant, bool) {
	offset, ok := checkedSub64(int64(t.offset), int64(d))
	if !ok || offset < 0 {
		return Instant{}, false
	}
	return Instant{time.Duration(offset)}, true
}

// Plus returns t+d. It panics if the result cannot be represented.
func (t Instant) Plus(d time.Duration) Instant {
	u, ok := t.CheckedAdd(d)
	if !ok {
		panic("instant: overflow when adding duration to instant")
	}
	return u
}

// Minus returns t-d. It panics if the result cannot be represented.
func (t Instant) Minus(d time.Duration) Instant {
	u, ok := t.CheckedSub(d)
	if !ok {
		panic("instant: overflow when subtracting duration from instant")
	}
	return u
}

// Advance moves t forward by d. It panics, leaving t unchanged, if the
// result cannot be represented.
func (t *Instant) Advance(d time.Duration) {
	*t = t.Plus(d)
}

// Rewind moves t back by d. It panics, leaving t unchanged, if the result
// cannot be represented.
func (t *Instant) Rewind(d time.Duration) {
	*t = t.Minus(d)
}

// Cmp returns -1, 0 or +1 depending on whether t is before, equal to or
// after u.
func (t Instant) Cmp(u Instant) int {
	t.mustBeValid()
	u.mustBeValid()
	if t.offset < u.offset {
		return -1
	} else if t.offset > u.offset {
		return 1
	}
	return 0
}

// Before reports whether t is strictly before u.
func (t Instant) Before(u Instant) bool { return t.Cmp(u) < 0 }

// After reports whether t is strictly after u.
func (t Instant) After(u Instant) bool { return t.Cmp(u) > 0 }

// Equal reports whether t and u are the same instant.
func (t Instant) Equal(u Instant) bool { return t.Cmp(u) == 0 }

func (t Instant) mustBeValid() {
	if t.offset < 0 {
		panic(fmt.Sprintf("instant: an instant should never be negative, got %v", t.offset))
	}
}
