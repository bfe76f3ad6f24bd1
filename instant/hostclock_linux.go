//go:build linux && !js
// +build linux,!js

package instant

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// performanceNow reads CLOCK_MONOTONIC, whose origin is unspecified just
// like that of performance.now().
func performanceNow() float64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(fmt.Sprintf("instant: reading monotonic clock: %v", err))
	}
	return float64(ts.Sec)*1e3 + float64(ts.Nsec)/1e6
}
