package numeric

// Max returns the larger of two unsigned values.
func Max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two unsigned values.
func Min(a, b uint64) uint64 {
	if a > b {
		return b
	}
	return a
}
