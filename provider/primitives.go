package provider

import (
	"context"

	"github.com/fluentkit/freemath/checked"
	"github.com/fluentkit/freemath/internal/types"
	"github.com/fluentkit/freemath/numeric"
)

// PrimitiveOps handles comparison, power, rounding, and factorial tools
type PrimitiveOps struct {
	*Ops
}

// GetTools returns primitive tool definitions
func (p *PrimitiveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.max",
			Name:        "Maximum",
			Description: "Return the larger of two unsigned integers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First value", Required: true},
				{Name: "b", Type: "number", Description: "Second value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.min",
			Name:        "Minimum",
			Description: "Return the smaller of two unsigned integers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First value", Required: true},
				{Name: "b", Type: "number", Description: "Second value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.pow",
			Name:        "Integer Power",
			Description: "Raise base to an integer exponent by squaring",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Integer exponent, may be negative", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.floor",
			Name:        "Floor",
			Description: "Round down to the nearest integer",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.fmod",
			Name:        "Floored Remainder",
			Description: "Remainder of x/y with the sign of the divisor",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Dividend", Required: true},
				{Name: "y", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Iterative factorial of a non-negative integer",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Non-negative integer, at most 20", Required: true},
			},
			Returns: "number",
		},
	}
}

// Max returns the larger of two values
func (p *PrimitiveOps) Max(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := GetUint(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := GetUint(params, "b")
	if !ok {
		return Failure("b parameter required")
	}
	return Success(map[string]interface{}{"result": numeric.Max(a, b)})
}

// Min returns the smaller of two values
func (p *PrimitiveOps) Min(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := GetUint(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := GetUint(params, "b")
	if !ok {
		return Failure("b parameter required")
	}
	return Success(map[string]interface{}{"result": numeric.Min(a, b)})
}

// Pow raises base to an integer exponent
func (p *PrimitiveOps) Pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := GetNumber(params, "base")
	if !ok {
		return Failure("base parameter required")
	}
	exponent, ok := GetInt(params, "exponent")
	if !ok {
		return Failure("exponent parameter required")
	}

	result, err := checked.Pow(base, exponent)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// Floor rounds down to the nearest integer
func (p *PrimitiveOps) Floor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}

	result, err := checked.Floor(x)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// Fmod computes the floored remainder
func (p *PrimitiveOps) Fmod(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	y, ok := GetNumber(params, "y")
	if !ok {
		return Failure("y parameter required")
	}

	result, err := checked.Mod(x, y)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// Factorial computes n!
func (p *PrimitiveOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := GetUint(params, "n")
	if !ok {
		return Failure("n parameter required")
	}

	result, err := checked.Factorial(n)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}
