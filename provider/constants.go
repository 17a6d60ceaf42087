package provider

import (
	"context"

	"github.com/fluentkit/freemath/internal/types"
	"github.com/fluentkit/freemath/numeric"
)

// ConstantsOps provides the library's numeric constants
type ConstantsOps struct {
	*Ops
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.pi",
			Name:        "Pi (π)",
			Description: "Get value of π",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.tau",
			Name:        "Tau (τ)",
			Description: "Get value of τ (2π)",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.e",
			Name:        "Euler's Number (e)",
			Description: "Get the single-precision approximation of e",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
	}
}

// Pi returns π
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{"result": numeric.Pi})
}

// Tau returns τ (2π)
func (c *ConstantsOps) Tau(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{"result": numeric.TwoPi})
}

// E returns the e approximation
func (c *ConstantsOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{"result": numeric.Euler})
}
