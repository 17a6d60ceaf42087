package numeric

// Factorial returns n! computed iteratively. Factorial(0) and Factorial(1)
// are 1. There is no overflow check: past 20! the product wraps around
// uint64 like any other unsigned multiplication, which caps how far the
// series functions can usefully expand.
func Factorial(n uint64) uint64 {
	if n == 0 || n == 1 {
		return 1
	}

	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		result *= i
	}

	return result
}
