package numeric

// Sine approximates the sine of an angle given in degrees using a truncated
// Taylor series with expansionSize+1 terms:
//
//	sin(x) ≈ Σ (-1)^n * x^(2n+1) / (2n+1)!   for n = 0..expansionSize
//
// The angle is converted to radians and normalized to [-π, π) before the
// series is evaluated, which keeps the powers small. Accuracy improves with
// expansionSize until the factorial denominators wrap uint64 (21! and
// beyond); callers choose expansion sizes accordingly.
func Sine(degrees float64, expansionSize uint) float64 {
	rad := degrees * (Pi / 180.0)
	rad = Mod(rad+Pi, TwoPi) - Pi

	result := 0.0
	for n := uint(0); n <= expansionSize; n++ {
		exponent := 2*n + 1
		denominator := float64(Factorial(uint64(exponent)))
		numerator := Pow(rad, int64(exponent))

		if n%2 == 0 {
			result += numerator / denominator
		} else {
			result -= numerator / denominator
		}
	}

	return result
}

// Cosine approximates the cosine of an angle given in degrees using a
// truncated Taylor series with expansionSize+1 terms:
//
//	cos(x) ≈ Σ (-1)^n * x^(2n) / (2n)!   for n = 0..expansionSize
//
// Normalization and overflow limits match Sine; only the exponent parity
// differs.
func Cosine(degrees float64, expansionSize uint) float64 {
	rad := degrees * (Pi / 180.0)
	rad = Mod(rad+Pi, TwoPi) - Pi

	result := 0.0
	for n := uint(0); n <= expansionSize; n++ {
		exponent := 2 * n
		denominator := float64(Factorial(uint64(exponent)))
		numerator := Pow(rad, int64(exponent))

		if n%2 == 0 {
			result += numerator / denominator
		} else {
			result -= numerator / denominator
		}
	}

	return result
}
