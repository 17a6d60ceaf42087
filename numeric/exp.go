package numeric

// Exp approximates e^x using the Maclaurin series with seriesSize+1 terms:
//
//	e^x ≈ Σ x^n / n!   for n = 0..seriesSize
//
// Exp(0, n) returns exactly 1 without evaluating the series. Each factorial
// denominator is reduced to single precision before the division, so results
// differ in the low bits from a full-precision evaluation; that reduction is
// part of the function's observable output, not an accident to fix.
func Exp(x float64, seriesSize uint) float64 {
	if x == 0 {
		return 1
	}

	result := 0.0
	for n := uint(0); n <= seriesSize; n++ {
		numerator := Pow(x, int64(n))
		denominator := float64(float32(Factorial(uint64(n))))

		result += numerator / denominator
	}

	return result
}
