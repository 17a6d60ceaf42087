// Package provider exposes the numeric primitives as a modular tool
// service for embedding applications: a service definition listing every
// tool, and an Execute router dispatching tool IDs to handlers.
//
// Handlers validate their parameters and report misuse (missing values,
// series sizes past the factorial ceiling) as failed results. The
// underlying primitives in package numeric keep their unguarded
// semantics for direct callers.
package provider

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fluentkit/freemath/internal/config"
	"github.com/fluentkit/freemath/internal/logging"
	"github.com/fluentkit/freemath/internal/types"
)

// Provider implements the numeric primitive tool service
type Provider struct {
	primitives *PrimitiveOps
	series     *SeriesOps
	constants  *ConstantsOps
	log        *logging.Logger
}

// NewProvider creates a provider configured from the environment
func NewProvider() *Provider {
	cfg := config.LoadOrDefault()
	return NewProviderWith(cfg, logging.New(cfg.Logging.Level, cfg.Logging.Development))
}

// NewProviderWith creates a provider with explicit configuration and logger
func NewProviderWith(cfg *config.Config, log *logging.Logger) *Provider {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}

	ops := &Ops{}
	return &Provider{
		primitives: &PrimitiveOps{Ops: ops},
		series:     &SeriesOps{Ops: ops, defaultExpansion: cfg.Series.DefaultExpansion},
		constants:  &ConstantsOps{Ops: ops},
		log:        log,
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.primitives.GetTools()...)
	tools = append(tools, p.series.GetTools()...)
	tools = append(tools, p.constants.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Numeric Primitives",
		Description: "Freestanding numeric primitives (comparisons, powers, rounding, factorials, series approximations)",
		Capabilities: []string{
			"comparison",
			"power",
			"rounding",
			"factorial",
			"series",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p.log.Debug("executing tool", zap.String("tool", toolID))

	switch toolID {
	// Primitive operations
	case "math.max":
		return p.primitives.Max(ctx, params, appCtx)
	case "math.min":
		return p.primitives.Min(ctx, params, appCtx)
	case "math.pow":
		return p.primitives.Pow(ctx, params, appCtx)
	case "math.floor":
		return p.primitives.Floor(ctx, params, appCtx)
	case "math.fmod":
		return p.primitives.Fmod(ctx, params, appCtx)
	case "math.factorial":
		return p.primitives.Factorial(ctx, params, appCtx)

	// Series approximations
	case "math.sine":
		return p.series.Sine(ctx, params, appCtx)
	case "math.cosine":
		return p.series.Cosine(ctx, params, appCtx)
	case "math.exp":
		return p.series.Exp(ctx, params, appCtx)

	// Constants
	case "math.pi":
		return p.constants.Pi(ctx, params, appCtx)
	case "math.tau":
		return p.constants.Tau(ctx, params, appCtx)
	case "math.e":
		return p.constants.E(ctx, params, appCtx)

	default:
		p.log.Warn("unknown tool requested", zap.String("tool", toolID))
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}
