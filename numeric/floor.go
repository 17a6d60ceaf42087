package numeric

// Floor returns the largest integer value less than or equal to x.
//
// Truncation goes through int64, so inputs whose magnitude exceeds the
// int64 range produce incorrect results. Normalized angles, the only
// inputs this package generates itself, stay well inside it.
func Floor(x float64) float64 {
	if x == float64(int64(x)) {
		return x
	}

	if x > 0 {
		return float64(int64(x))
	}

	return float64(int64(x)) - 1
}

// Mod returns the floored remainder x - y*Floor(x/y). The result takes the
// sign of y, not the sign of x. A zero divisor is not guarded: the division
// yields an infinity that propagates through the arithmetic.
func Mod(x, y float64) float64 {
	return x - y*Floor(x/y)
}
