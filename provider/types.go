package provider

import (
	"github.com/fluentkit/freemath/internal/types"
)

// Ops provides common helpers shared by the tool modules
type Ops struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts a signed integer, accepting whole-valued floats
func GetInt(params map[string]interface{}, key string) (int64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// GetUint extracts a non-negative integer, accepting whole-valued floats
func GetUint(params map[string]interface{}, key string) (uint64, bool) {
	n, ok := GetInt(params, key)
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}
