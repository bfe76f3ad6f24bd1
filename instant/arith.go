package instant

// checkedAdd64 returns a+b, or false if the sum does not fit in an int64.
func checkedAdd64(a, b int64) (int64, bool) {
	if ret := int64(uint64(a) + uint64(b)); !sameSign64(a, b) || sameSign64(ret, a) {
		// no overflow possible
		return ret, true
	}
	return 0, false
}

// checkedSub64 returns a-b, or false if the difference does not fit in an
// int64.
func checkedSub64(a, b int64) (int64, bool) {
	if ret := int64(uint64(a) - uint64(b)); sameSign64(a, b) || sameSign64(ret, a) {
		return ret, true
	}
	return 0, false
}

//go:inline
func sameSign64(a, b int64) bool {
	return a^b >= 0
}
