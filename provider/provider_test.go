package provider_test

import (
	"context"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentkit/freemath/internal/config"
	"github.com/fluentkit/freemath/internal/logging"
	"github.com/fluentkit/freemath/numeric"
	"github.com/fluentkit/freemath/provider"
)

func newTestProvider() *provider.Provider {
	return provider.NewProviderWith(config.Default(), logging.Nop())
}

func TestProviderDefinition(t *testing.T) {
	p := newTestProvider()
	def := p.Definition()

	assert.Equal(t, "math", def.ID)
	assert.NotEmpty(t, def.Capabilities)

	seen := map[string]bool{}
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
	}
	for _, id := range []string{
		"math.max", "math.min", "math.pow", "math.floor", "math.fmod",
		"math.factorial", "math.sine", "math.cosine", "math.exp",
		"math.pi", "math.tau", "math.e",
	} {
		assert.True(t, seen[id], "missing tool %s", id)
	}
}

func TestPrimitiveTools(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	t.Run("Max", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.max", map[string]interface{}{
			"a": 3, "b": 9,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, uint64(9), result.Data["result"])
	})

	t.Run("Min", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.min", map[string]interface{}{
			"a": 3, "b": 9,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, uint64(3), result.Data["result"])
	})

	t.Run("Max with missing param", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.max", map[string]interface{}{
			"a": 3,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Pow", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.pow", map[string]interface{}{
			"base": 2.0, "exponent": 10,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 1024.0, result.Data["result"])
	})

	t.Run("Pow with negative exponent", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.pow", map[string]interface{}{
			"base": 2.0, "exponent": -1,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 0.5, result.Data["result"])
	})

	t.Run("Pow zero base negative exponent", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.pow", map[string]interface{}{
			"base": 0.0, "exponent": -1,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Pow with fractional exponent", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.pow", map[string]interface{}{
			"base": 2.0, "exponent": 0.5,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Floor", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.floor", map[string]interface{}{
			"x": -3.7,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, -4.0, result.Data["result"])
	})

	t.Run("Fmod", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.fmod", map[string]interface{}{
			"x": -5.5, "y": 2.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 0.5, result.Data["result"])
	})

	t.Run("Fmod by zero", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.fmod", map[string]interface{}{
			"x": 5.5, "y": 0.0,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Factorial", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.factorial", map[string]interface{}{
			"n": 5,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, uint64(120), result.Data["result"])
	})

	t.Run("Factorial past ceiling", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.factorial", map[string]interface{}{
			"n": 21,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Factorial negative", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.factorial", map[string]interface{}{
			"n": -3,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestSeriesTools(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	t.Run("Sine", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.sine", map[string]interface{}{
			"value": 90.0, "expansion_size": 9,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 1.0, result.Data["result"].(float64), 1e-7)
	})

	t.Run("Sine with default expansion", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.sine", map[string]interface{}{
			"value": 30.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, numeric.Sine(30, 8), result.Data["result"])
	})

	t.Run("Sine expansion past ceiling", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.sine", map[string]interface{}{
			"value": 90.0, "expansion_size": 10,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Cosine", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.cosine", map[string]interface{}{
			"value": 180.0, "expansion_size": 10,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, -1.0, result.Data["result"].(float64), 1e-6)
	})

	t.Run("Exp", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.exp", map[string]interface{}{
			"x": 1.0, "series_size": 12,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, gomath.E, result.Data["result"].(float64), 1e-6)
	})

	t.Run("Exp of zero", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.exp", map[string]interface{}{
			"x": 0.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 1.0, result.Data["result"])
	})
}

func TestConstantTools(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	t.Run("Pi", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.pi", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, numeric.Pi, result.Data["result"])
	})

	t.Run("Tau", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.tau", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, numeric.TwoPi, result.Data["result"])
	})

	t.Run("E", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.e", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, numeric.Euler, result.Data["result"])
	})
}

func TestUnknownTool(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "math.nope", nil, nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestConfiguredDefaultExpansion(t *testing.T) {
	cfg := config.Default()
	cfg.Series.DefaultExpansion = 4
	p := provider.NewProviderWith(cfg, logging.Nop())

	result, err := p.Execute(context.Background(), "math.cosine", map[string]interface{}{
		"value": 60.0,
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, numeric.Cosine(60, 4), result.Data["result"])
}
