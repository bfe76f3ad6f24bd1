//go:build !linux && !js
// +build !linux,!js

package instant

import (
	_ "unsafe" // for go:linkname hack
)

//go:linkname nanotime runtime.nanotime
func nanotime() int64

func performanceNow() float64 {
	return float64(nanotime()) / 1e6
}
