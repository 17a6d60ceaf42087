// Package checked wraps the numeric primitives with explicit error returns.
//
// The underlying package degrades silently into IEEE-754 special values and
// wrapped integers; this package validates arguments up front and delegates
// the actual math unchanged. It never reimplements a computation.
package checked

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/fluentkit/freemath/numeric"
)

// MaxFactorial is the largest n whose factorial fits in a uint64 without
// wrapping. It also bounds the usable series expansion sizes: 2n+1 for
// sine, 2n for cosine, and n for e^x must stay at or below it.
const MaxFactorial = 20

var (
	// ErrZeroBase reports a zero base raised to a negative exponent.
	ErrZeroBase = errors.New("zero base with negative exponent")
	// ErrZeroDivisor reports a zero divisor in a remainder operation.
	ErrZeroDivisor = errors.New("zero divisor")
	// ErrOverflow reports a factorial argument that would wrap uint64.
	ErrOverflow = errors.New("factorial overflow")
	// ErrRange reports a value outside the representable truncation range.
	ErrRange = errors.New("value outside int64 range")
)

// Pow returns numeric.Pow(x, y), rejecting the zero-base negative-exponent
// combination that would otherwise yield an infinity.
func Pow(x float64, y int64) (float64, error) {
	if x == 0 && y < 0 {
		return 0, fmt.Errorf("pow(%v, %d): %w", x, y, ErrZeroBase)
	}
	return numeric.Pow(x, y), nil
}

// Floor returns numeric.Floor(x), rejecting inputs whose magnitude cannot
// round-trip through int64 truncation.
func Floor(x float64) (float64, error) {
	if x != x || x < gomath.MinInt64 || x >= gomath.MaxInt64 {
		return 0, fmt.Errorf("floor(%v): %w", x, ErrRange)
	}
	return numeric.Floor(x), nil
}

// Mod returns the floored remainder numeric.Mod(x, y), rejecting a zero
// divisor.
func Mod(x, y float64) (float64, error) {
	if y == 0 {
		return 0, fmt.Errorf("fmod(%v, 0): %w", x, ErrZeroDivisor)
	}
	return numeric.Mod(x, y), nil
}

// Factorial returns numeric.Factorial(n), rejecting arguments past
// MaxFactorial instead of wrapping.
func Factorial(n uint64) (uint64, error) {
	if n > MaxFactorial {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
	}
	return numeric.Factorial(n), nil
}

// Sine returns numeric.Sine, rejecting expansion sizes whose largest
// factorial argument (2n+1) would wrap.
func Sine(degrees float64, expansionSize uint) (float64, error) {
	if 2*uint64(expansionSize)+1 > MaxFactorial {
		return 0, fmt.Errorf("sine expansion %d: %w", expansionSize, ErrOverflow)
	}
	return numeric.Sine(degrees, expansionSize), nil
}

// Cosine returns numeric.Cosine, rejecting expansion sizes whose largest
// factorial argument (2n) would wrap.
func Cosine(degrees float64, expansionSize uint) (float64, error) {
	if 2*uint64(expansionSize) > MaxFactorial {
		return 0, fmt.Errorf("cosine expansion %d: %w", expansionSize, ErrOverflow)
	}
	return numeric.Cosine(degrees, expansionSize), nil
}

// Exp returns numeric.Exp, rejecting series sizes whose largest factorial
// argument would wrap.
func Exp(x float64, seriesSize uint) (float64, error) {
	if uint64(seriesSize) > MaxFactorial {
		return 0, fmt.Errorf("exp series %d: %w", seriesSize, ErrOverflow)
	}
	return numeric.Exp(x, seriesSize), nil
}
