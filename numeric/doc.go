// Package numeric provides freestanding numeric primitives: integer
// comparisons, integer-exponent powers, a manual floor/modulo pair,
// factorials, and truncated-series approximations of sine, cosine, and e^x.
//
// Nothing here touches the standard math library. Every function is a pure
// mapping from scalar inputs to a scalar output, which keeps the package
// usable where no math runtime exists at all. The series approximations
// trade accuracy for that independence and are meant for teaching and for
// minimal runtime environments, not for production numerics.
//
// Failure modes follow raw machine arithmetic: division by zero produces an
// IEEE-754 infinity, factorial overflow wraps, and floor truncation outside
// the int64 range is undefined. Package checked wraps this API with explicit
// error returns for callers that want guarded variants.
package numeric
