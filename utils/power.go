package utils

// NextPowerOfTwo returns the smallest power of 2 that is >= x.
// Gate and wire padding both go through here, so the two dimensions
// can't disagree on rounding.
func NextPowerOfTwo(x int) int {
	padk := 0
	for x > (1 << padk) {
		padk++
	}
	return 1 << padk
}
