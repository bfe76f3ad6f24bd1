//go:build !js
// +build !js

package instant

import "time"

func dateNow() float64 {
	return float64(time.Now().UnixMilli())
}
