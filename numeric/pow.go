package numeric

// Pow raises x to the integer power y using exponentiation by squaring,
// so the loop runs O(log |y|) multiplications.
//
// Special cases:
//   - Pow(x, 0) = 1 for any x, including Pow(0, 0)
//   - y < 0 is computed as the reciprocal raised to -y, so Pow(0, -n)
//     divides by zero and the resulting infinity propagates unguarded
func Pow(x float64, y int64) float64 {
	if y == 0 {
		return 1.0
	}

	if y < 0 {
		x = 1 / x
		y = -y
	}

	result := 1.0
	for y > 0 {
		if y%2 == 1 {
			result *= x
		}
		x *= x
		y /= 2
	}

	return result
}
