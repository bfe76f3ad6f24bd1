// Package instanttest provides deterministic host clocks and assertions for
// testing code built on package instant.
package instanttest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/canonical/instant/instant"
)

type testBase interface {
	Helper()
	Errorf(format string, args ...interface{})
	Cleanup(func())
}

var _ testBase = &testing.T{}
var _ testBase = &testing.B{}

// Sequence returns a host clock which replays readings in order. Once they
// are exhausted, the last reading is repeated.
func Sequence(readings ...float64) instant.HostClock {
	if len(readings) == 0 {
		panic("instanttest: empty sequence")
	}
	readings = append([]float64(nil), readings...)
	next := 0
	return func() float64 {
		r := readings[next]
		if next < len(readings)-1 {
			next++
		}
		return r
	}
}

// Stepper returns a host clock whose first reading is start and which
// advances by step milliseconds on each subsequent read.
func Stepper(start, step float64) instant.HostClock {
	var n int64
	return func() float64 {
		r := start + float64(n)*step
		n++
		return r
	}
}

// UseHostClock makes instant.Now read from clock until the end of the test.
func UseHostClock(base testBase, clock instant.HostClock) {
	original := instant.NowMillis
	instant.NowMillis = clock
	base.Cleanup(func() { instant.NowMillis = original })
}

// ExpectPanic calls fn and reports an error unless it panics with a value
// whose text contains want.
func ExpectPanic(base testBase, want string, fn func()) {
	base.Helper()
	defer func() {
		r := recover()
		if r == nil {
			base.Errorf("expected panic containing %q, but none occurred", want)
			return
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			base.Errorf("unexpected panic: expected %q in %q", want, msg)
		}
	}()
	fn()
}
