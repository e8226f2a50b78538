// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

import "github.com/spf13/cast"

// GenerationConfig controls LLM sampling. The same shape appears under
// [agent], [completion], every graph sub-table, and
// [ingestion.chunk_enrichment_settings]; sub-tables usually set only the
// fields they need and inherit the rest from [completion].
type GenerationConfig struct {
	// Model is the provider-qualified model identifier, e.g.
	// "openai/gpt-4o-mini".
	Model string `toml:"model" json:"model" env:"MODEL"`

	// Temperature is the sampling temperature, in [0, 1].
	Temperature float64 `toml:"temperature" json:"temperature" env:"TEMPERATURE"`

	// TopP is the nucleus sampling cutoff, in [0, 1].
	TopP float64 `toml:"top_p" json:"top_p" env:"TOP_P"`

	// MaxTokensToSample caps generated tokens per call.
	MaxTokensToSample int `toml:"max_tokens_to_sample" json:"max_tokens_to_sample" env:"MAX_TOKENS_TO_SAMPLE"`

	// Stream requests streamed token delivery.
	Stream bool `toml:"stream" json:"stream" env:"STREAM"`

	// AddGenerationKwargs carries provider-specific parameters passed
	// through verbatim. Typed access goes through KwargString,
	// KwargInt, KwargFloat, and KwargBool.
	AddGenerationKwargs map[string]any `toml:"add_generation_kwargs" json:"add_generation_kwargs"`
}

// KwargString returns the named generation kwarg coerced to a string, or
// fallback when the key is absent.
func (g GenerationConfig) KwargString(key, fallback string) string {
	v, ok := g.AddGenerationKwargs[key]
	if !ok {
		return fallback
	}
	return cast.ToString(v)
}

// KwargInt returns the named generation kwarg coerced to an int, or
// fallback when the key is absent or not coercible.
func (g GenerationConfig) KwargInt(key string, fallback int) int {
	v, ok := g.AddGenerationKwargs[key]
	if !ok {
		return fallback
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return fallback
	}
	return n
}

// KwargFloat returns the named generation kwarg coerced to a float64, or
// fallback when the key is absent or not coercible.
func (g GenerationConfig) KwargFloat(key string, fallback float64) float64 {
	v, ok := g.AddGenerationKwargs[key]
	if !ok {
		return fallback
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return fallback
	}
	return f
}

// KwargBool returns the named generation kwarg coerced to a bool, or
// fallback when the key is absent or not coercible.
func (g GenerationConfig) KwargBool(key string, fallback bool) bool {
	v, ok := g.AddGenerationKwargs[key]
	if !ok {
		return fallback
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return fallback
	}
	return b
}
