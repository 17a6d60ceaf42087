package numeric

// Mathematical constants used by the series approximations. Pi is the
// full-precision float64 value; narrower targets would pin a float32
// constant here instead.
const (
	Pi    = 3.14159265358979323846
	TwoPi = 2 * Pi

	// Euler is a single-precision approximation of e. The series functions
	// never read it; it exists for callers that want the constant without
	// paying for an Exp evaluation.
	Euler = 2.718282
)
