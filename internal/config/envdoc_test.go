package config

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnvVars_DocumentedOverridesPresent verifies the well-known overrides
// map to the right keys.
func TestEnvVars_DocumentedOverridesPresent(t *testing.T) {
	vars := EnvVars()
	byName := make(map[string]string, len(vars))
	for _, v := range vars {
		byName[v.Name] = v.Key
	}

	assert.Equal(t, "app.project_name", byName["RAGLET_APP_PROJECT_NAME"])
	assert.Equal(t, "completion.generation_config.temperature", byName["RAGLET_COMPLETION_GENERATION_TEMPERATURE"])
	assert.Equal(t, "database.graph_enrichment_settings.leiden_params.max_cluster_size",
		byName["RAGLET_DATABASE_GRAPH_ENRICHMENT_LEIDEN_MAX_CLUSTER_SIZE"])
	assert.Equal(t, "embedding.quantization_settings.quantization_type",
		byName["RAGLET_EMBEDDING_QUANTIZATION_TYPE"])
	assert.Equal(t, "ingestion.chunk_enrichment_settings.enable_chunk_enrichment",
		byName["RAGLET_INGESTION_ENRICHMENT_ENABLE"])
}

// TestEnvVars_SortedAndUnique verifies deterministic, collision-free output.
func TestEnvVars_SortedAndUnique(t *testing.T) {
	vars := EnvVars()
	require.NotEmpty(t, vars)

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}

	assert.True(t, sort.StringsAreSorted(names))

	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		_, dup := seen[n]
		assert.False(t, dup, "duplicate env var %s", n)
		seen[n] = struct{}{}
	}
}

// TestEnvVars_EveryVarCarriesPrefix verifies nothing escapes the RAGLET_
// namespace.
func TestEnvVars_EveryVarCarriesPrefix(t *testing.T) {
	for _, v := range EnvVars() {
		assert.Regexp(t, "^RAGLET_", v.Name)
	}
}
