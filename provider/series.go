package provider

import (
	"context"

	"github.com/fluentkit/freemath/checked"
	"github.com/fluentkit/freemath/internal/types"
)

// SeriesOps handles the truncated-series approximation tools
type SeriesOps struct {
	*Ops

	// defaultExpansion is used when a call omits the size parameter.
	defaultExpansion uint
}

// GetTools returns series tool definitions
func (s *SeriesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sine",
			Name:        "Taylor Sine",
			Description: "Approximate sine of an angle in degrees via a truncated Taylor series",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Angle in degrees", Required: true},
				{Name: "expansion_size", Type: "number", Description: "Series terms beyond the first (max 9)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "math.cosine",
			Name:        "Taylor Cosine",
			Description: "Approximate cosine of an angle in degrees via a truncated Taylor series",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Angle in degrees", Required: true},
				{Name: "expansion_size", Type: "number", Description: "Series terms beyond the first (max 10)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "math.exp",
			Name:        "Maclaurin Exponential",
			Description: "Approximate e^x via a truncated Maclaurin series",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Exponent", Required: true},
				{Name: "series_size", Type: "number", Description: "Series terms beyond the first (max 20)", Required: false},
			},
			Returns: "number",
		},
	}
}

// Sine approximates sine of an angle in degrees
func (s *SeriesOps) Sine(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, ok := GetNumber(params, "value")
	if !ok {
		return Failure("value parameter required")
	}
	expansion := s.expansion(params, "expansion_size")

	result, err := checked.Sine(value, expansion)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// Cosine approximates cosine of an angle in degrees
func (s *SeriesOps) Cosine(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, ok := GetNumber(params, "value")
	if !ok {
		return Failure("value parameter required")
	}
	expansion := s.expansion(params, "expansion_size")

	result, err := checked.Cosine(value, expansion)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// Exp approximates e^x
func (s *SeriesOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	size := s.expansion(params, "series_size")

	result, err := checked.Exp(x, size)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// expansion reads the optional size parameter, falling back to the
// configured default.
func (s *SeriesOps) expansion(params map[string]interface{}, key string) uint {
	if n, ok := GetUint(params, key); ok {
		return uint(n)
	}
	return s.defaultExpansion
}
