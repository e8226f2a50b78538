package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClone_Independent verifies that mutating a clone leaves the original
// untouched.
func TestClone_Independent(t *testing.T) {
	s := Default()
	c := s.Clone()

	c.App.ProjectName = "mutated"
	c.Agent.ToolNames[0] = "mutated"
	c.Completion.GenerationConfig.AddGenerationKwargs["k"] = "v"
	c.Ingestion.ExtraParsers["pdf"] = "zerox"

	assert.Equal(t, "raglet_default", s.App.ProjectName)
	assert.Equal(t, "local_search", s.Agent.ToolNames[0])
	assert.Empty(t, s.Completion.GenerationConfig.AddGenerationKwargs)
	assert.Empty(t, s.Ingestion.ExtraParsers)
}

// TestRedacted_MasksAdminPassword verifies the bootstrap password never
// leaves Redacted output.
func TestRedacted_MasksAdminPassword(t *testing.T) {
	s := Default()
	r := s.Redacted()

	assert.Equal(t, mask, r.Auth.DefaultAdminPassword)
	assert.Equal(t, "change_me_immediately", s.Auth.DefaultAdminPassword, "original must not be mutated")
}

// TestRedacted_EmptyPasswordStaysEmpty verifies no mask is invented for an
// unset credential.
func TestRedacted_EmptyPasswordStaysEmpty(t *testing.T) {
	s := Default()
	s.Auth.DefaultAdminPassword = ""

	assert.Empty(t, s.Redacted().Auth.DefaultAdminPassword)
}

// TestRedacted_MasksSecretKwargs verifies key-like generation kwargs are
// masked while ordinary tuning kwargs pass through.
func TestRedacted_MasksSecretKwargs(t *testing.T) {
	s := Default()
	s.Completion.GenerationConfig.AddGenerationKwargs = map[string]any{
		"api_key":          "sk-live-abc",
		"AZURE_API_SECRET": "shh",
		"presence_penalty": 0.25,
	}

	r := s.Redacted()
	require.NotNil(t, r.Completion.GenerationConfig.AddGenerationKwargs)
	assert.Equal(t, mask, r.Completion.GenerationConfig.AddGenerationKwargs["api_key"])
	assert.Equal(t, mask, r.Completion.GenerationConfig.AddGenerationKwargs["AZURE_API_SECRET"])
	assert.Equal(t, 0.25, r.Completion.GenerationConfig.AddGenerationKwargs["presence_penalty"])

	assert.Equal(t, "sk-live-abc", s.Completion.GenerationConfig.AddGenerationKwargs["api_key"])
}

// TestIsSecretKwarg is a table over key spellings.
func TestIsSecretKwarg(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"api_key", true},
		{"API_KEY", true},
		{"client_secret", true},
		{"auth_token", true},
		{"password", true},
		{"temperature", false},
		{"num_ctx", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isSecretKwarg(tt.key))
		})
	}
}
