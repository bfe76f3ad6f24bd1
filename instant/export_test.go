package instant

import "time"

var CheckedAdd64 = checkedAdd64
var CheckedSub64 = checkedSub64

// At returns the Instant offset from the origin, without validation.
func At(offset time.Duration) Instant {
	return Instant{offset}
}

// Offset returns the span from the origin to t.
func (t Instant) Offset() time.Duration {
	return t.offset
}
