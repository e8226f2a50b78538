package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_NotNil verifies that Default returns a populated document.
func TestDefault_NotNil(t *testing.T) {
	s := Default()
	require.NotNil(t, s)
	assert.Equal(t, "raglet_default", s.App.ProjectName)
}

// TestDefault_ProviderSelectionsAreKnown verifies that every provider the
// defaults select is a member of the known set for its section.
func TestDefault_ProviderSelectionsAreKnown(t *testing.T) {
	s := Default()

	tests := []struct {
		section  string
		provider string
	}{
		{"auth", s.Auth.Provider},
		{"completion", s.Completion.Provider},
		{"crypto", s.Crypto.Provider},
		{"database", s.Database.Provider},
		{"embedding", s.Embedding.Provider},
		{"file", s.File.Provider},
		{"ingestion", s.Ingestion.Provider},
		{"logging", s.Logging.Provider},
		{"orchestration", s.Orchestration.Provider},
		{"prompt", s.Prompt.Provider},
		{"email", s.Email.Provider},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			assert.True(t, IsKnownProvider(tt.section, tt.provider),
				"default provider %q for section %q is not in the known set", tt.provider, tt.section)
		})
	}
}

// TestDefault_NumericDomains verifies the numeric invariants the document
// commentary promises.
func TestDefault_NumericDomains(t *testing.T) {
	s := Default()

	assert.Positive(t, s.Embedding.BaseDimension)
	assert.Positive(t, s.Ingestion.ChunkSize)
	assert.Less(t, s.Ingestion.ChunkOverlap, s.Ingestion.ChunkSize)

	gc := s.Completion.GenerationConfig
	assert.GreaterOrEqual(t, gc.Temperature, 0.0)
	assert.LessOrEqual(t, gc.Temperature, 1.0)
	assert.GreaterOrEqual(t, gc.TopP, 0.0)
	assert.LessOrEqual(t, gc.TopP, 1.0)
}

// TestDefault_KwargMapsAreInitialized verifies that every generation config
// ships a non-nil kwargs map so the document round-trips stably.
func TestDefault_KwargMapsAreInitialized(t *testing.T) {
	s := Default()
	for i, g := range s.generationConfigs() {
		assert.NotNil(t, g.AddGenerationKwargs, "generation config %d has nil kwargs", i)
	}
	assert.NotNil(t, s.Ingestion.ExtraParsers)
}

// TestDefault_ExcludedParsersAreKnownFormats verifies the shipped parser
// exclusions refer to real formats.
func TestDefault_ExcludedParsersAreKnownFormats(t *testing.T) {
	for _, f := range Default().Ingestion.ExcludedParsers {
		assert.True(t, IsKnownParserFormat(f), "excluded parser %q is not a known format", f)
	}
}
