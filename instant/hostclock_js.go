//go:build js && wasm
// +build js,wasm

package instant

import "syscall/js"

func performanceNow() float64 {
	perf := js.Global().Get("performance")
	if perf.IsUndefined() || perf.IsNull() {
		panic("instant: failed to get performance from global object")
	}
	return perf.Call("now").Float()
}

func dateNow() float64 {
	return js.Global().Get("Date").Call("now").Float()
}
