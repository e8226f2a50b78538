// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

import "strings"

// mask replaces secret values in redacted output.
const mask = "********"

// secretKwargFragments flags add_generation_kwargs keys whose values must
// not leave the process unmasked.
var secretKwargFragments = []string{"key", "secret", "token", "password"}

// Clone returns a deep copy of s. Nested maps and slices are copied so the
// clone can be mutated without affecting the receiver.
func (s *Settings) Clone() *Settings {
	c := *s

	c.Agent.ToolNames = cloneSlice(s.Agent.ToolNames)
	c.Agent.GenerationConfig = s.Agent.GenerationConfig.Clone()
	c.Completion.GenerationConfig = s.Completion.GenerationConfig.Clone()

	c.Database.GraphCreationSettings.EntityTypes = cloneSlice(s.Database.GraphCreationSettings.EntityTypes)
	c.Database.GraphCreationSettings.RelationTypes = cloneSlice(s.Database.GraphCreationSettings.RelationTypes)
	c.Database.GraphCreationSettings.GenerationConfig = s.Database.GraphCreationSettings.GenerationConfig.Clone()
	c.Database.GraphEntityDeduplicationSettings.GenerationConfig = s.Database.GraphEntityDeduplicationSettings.GenerationConfig.Clone()
	c.Database.GraphEnrichmentSettings.GenerationConfig = s.Database.GraphEnrichmentSettings.GenerationConfig.Clone()
	c.Database.GraphSearchSettings.GenerationConfig = s.Database.GraphSearchSettings.GenerationConfig.Clone()

	c.Ingestion.ExcludedParsers = cloneSlice(s.Ingestion.ExcludedParsers)
	c.Ingestion.ChunkEnrichmentSettings.Strategies = cloneSlice(s.Ingestion.ChunkEnrichmentSettings.Strategies)
	c.Ingestion.ChunkEnrichmentSettings.GenerationConfig = s.Ingestion.ChunkEnrichmentSettings.GenerationConfig.Clone()
	c.Ingestion.ExtraParsers = cloneStringMap(s.Ingestion.ExtraParsers)

	return &c
}

// Redacted returns a deep copy of s with credential-bearing values masked:
// the bootstrap admin password and any generation kwarg whose key looks
// like an API key or secret. The copy is safe to log, serve, or print.
func (s *Settings) Redacted() *Settings {
	c := s.Clone()

	if c.Auth.DefaultAdminPassword != "" {
		c.Auth.DefaultAdminPassword = mask
	}

	for _, g := range c.generationConfigs() {
		for k := range g.AddGenerationKwargs {
			if isSecretKwarg(k) {
				g.AddGenerationKwargs[k] = mask
			}
		}
	}

	return c
}

// generationConfigs returns pointers to every GenerationConfig in the
// document, in section order.
func (s *Settings) generationConfigs() []*GenerationConfig {
	return []*GenerationConfig{
		&s.Agent.GenerationConfig,
		&s.Completion.GenerationConfig,
		&s.Database.GraphCreationSettings.GenerationConfig,
		&s.Database.GraphEntityDeduplicationSettings.GenerationConfig,
		&s.Database.GraphEnrichmentSettings.GenerationConfig,
		&s.Database.GraphSearchSettings.GenerationConfig,
		&s.Ingestion.ChunkEnrichmentSettings.GenerationConfig,
	}
}

func isSecretKwarg(key string) bool {
	k := strings.ToLower(key)
	for _, fragment := range secretKwargFragments {
		if strings.Contains(k, fragment) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of g. The kwargs map is copied, so the clone
// can be merged into or mutated without affecting the receiver.
func (g GenerationConfig) Clone() GenerationConfig {
	c := g
	c.AddGenerationKwargs = cloneAnyMap(g.AddGenerationKwargs)
	return c
}

func cloneSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
