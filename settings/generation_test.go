package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kwargConfig(kwargs map[string]any) GenerationConfig {
	return GenerationConfig{AddGenerationKwargs: kwargs}
}

// TestKwargString covers present, absent, and coerced values.
func TestKwargString(t *testing.T) {
	g := kwargConfig(map[string]any{"api_base": "http://localhost:4000", "retries": 3})

	assert.Equal(t, "http://localhost:4000", g.KwargString("api_base", ""))
	assert.Equal(t, "3", g.KwargString("retries", ""))
	assert.Equal(t, "fallback", g.KwargString("missing", "fallback"))
}

// TestKwargInt covers int64 values as decoded from TOML.
func TestKwargInt(t *testing.T) {
	g := kwargConfig(map[string]any{"seed": int64(42), "label": "abc"})

	assert.Equal(t, 42, g.KwargInt("seed", 0))
	assert.Equal(t, 7, g.KwargInt("missing", 7))
	assert.Equal(t, 7, g.KwargInt("label", 7), "non-numeric value falls back")
}

// TestKwargFloat covers float and integer coercion.
func TestKwargFloat(t *testing.T) {
	g := kwargConfig(map[string]any{"presence_penalty": 0.5, "n": int64(2)})

	assert.InDelta(t, 0.5, g.KwargFloat("presence_penalty", 0), 1e-9)
	assert.InDelta(t, 2.0, g.KwargFloat("n", 0), 1e-9)
	assert.InDelta(t, 1.5, g.KwargFloat("missing", 1.5), 1e-9)
}

// TestKwargBool covers bool values and fallbacks.
func TestKwargBool(t *testing.T) {
	g := kwargConfig(map[string]any{"logprobs": true, "bad": "not-a-bool"})

	assert.True(t, g.KwargBool("logprobs", false))
	assert.True(t, g.KwargBool("missing", true))
	assert.False(t, g.KwargBool("bad", false))
}

// TestKwarg_NilMap verifies accessors are safe on a zero-value config.
func TestKwarg_NilMap(t *testing.T) {
	var g GenerationConfig

	assert.Equal(t, "x", g.KwargString("k", "x"))
	assert.Equal(t, 1, g.KwargInt("k", 1))
	assert.InDelta(t, 2.0, g.KwargFloat("k", 2.0), 1e-9)
	assert.True(t, g.KwargBool("k", true))
}
