package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/raglet/raglet/settings"
)

// EffectiveGeneration resolves the sampling settings a platform component
// actually runs with. Sub-table generation configs (agent, graph
// extraction, chunk enrichment) usually set only the fields they care
// about — typically just the model — and inherit everything else from the
// [completion] defaults. Zero-valued fields of sub are filled from base;
// fields sub sets explicitly are kept.
func EffectiveGeneration(sub, base settings.GenerationConfig) (settings.GenerationConfig, error) {
	// Merge into deep copies: mergo writes base kwargs into sub's map,
	// which the caller's document shares by reference.
	sub = sub.Clone()
	if err := mergo.Merge(&sub, base.Clone()); err != nil {
		return settings.GenerationConfig{}, fmt.Errorf("error merging generation configs: %w", err)
	}

	return sub, nil
}

// EffectiveGenerations resolves every sub-table generation config in the
// document against the [completion] defaults, keyed by the sub-table's
// dotted path.
func EffectiveGenerations(s *settings.Settings) (map[string]settings.GenerationConfig, error) {
	base := s.Completion.GenerationConfig

	subs := map[string]settings.GenerationConfig{
		"agent.generation_config":                                        s.Agent.GenerationConfig,
		"completion.generation_config":                                   base,
		"database.graph_creation_settings.generation_config":             s.Database.GraphCreationSettings.GenerationConfig,
		"database.graph_entity_deduplication_settings.generation_config": s.Database.GraphEntityDeduplicationSettings.GenerationConfig,
		"database.graph_enrichment_settings.generation_config":           s.Database.GraphEnrichmentSettings.GenerationConfig,
		"database.graph_search_settings.generation_config":               s.Database.GraphSearchSettings.GenerationConfig,
		"ingestion.chunk_enrichment_settings.generation_config":          s.Ingestion.ChunkEnrichmentSettings.GenerationConfig,
	}

	effective := make(map[string]settings.GenerationConfig, len(subs))
	for path, sub := range subs {
		merged, err := EffectiveGeneration(sub, base)
		if err != nil {
			return nil, err
		}
		effective[path] = merged
	}

	return effective, nil
}
