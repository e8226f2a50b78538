package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raglet/raglet/settings"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raglet.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_EmptyPath verifies that loading without a file yields the
// shipped defaults.
func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), cfg)
}

// TestLoad_FileOverridesDefaults verifies file values win over defaults
// while untouched keys keep their default values.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeTempTOML(t, `
[app]
project_name = "acme_docs"

[ingestion]
chunk_size = 2048
chunk_overlap = 256
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "acme_docs", cfg.App.ProjectName)
	assert.Equal(t, 2048, cfg.Ingestion.ChunkSize)
	assert.Equal(t, 256, cfg.Ingestion.ChunkOverlap)
	// untouched keys keep defaults
	assert.Equal(t, "recursive", cfg.Ingestion.ChunkingStrategy)
	assert.Equal(t, 512, cfg.Embedding.BaseDimension)
}

// TestLoad_ExplicitFalseOverridesDefaultTrue verifies that a file can turn
// a default-on boolean off; absence of the key keeps the default.
func TestLoad_ExplicitFalseOverridesDefaultTrue(t *testing.T) {
	path := writeTempTOML(t, `
[ingestion]
automatic_extraction = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Ingestion.AutomaticExtraction)

	cfg, err = Load(writeTempTOML(t, `[app]`))
	require.NoError(t, err)
	assert.True(t, cfg.Ingestion.AutomaticExtraction)
}

// TestLoad_CommentsAreInert verifies comments — including the
// commented-out web-search tool list — never affect parsing.
func TestLoad_CommentsAreInert(t *testing.T) {
	path := writeTempTOML(t, `
[agent]
system_instruction_name = "rag_agent"
tool_names = ["local_search"]
# tool_names = ["local_search", "web_search"]

[completion]
# concurrent_request_limit caps in-flight requests
concurrent_request_limit = 16
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"local_search"}, cfg.Agent.ToolNames)
	assert.Equal(t, 16, cfg.Completion.ConcurrentRequestLimit)
}

// TestLoad_MissingFile verifies a missing settings file is an error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

// TestLoad_MalformedTOML verifies syntax errors surface as load errors.
func TestLoad_MalformedTOML(t *testing.T) {
	path := writeTempTOML(t, `[app` + "\n")
	_, err := Load(path)
	require.Error(t, err)
}

// TestLoad_InvalidDocument verifies validation runs as part of loading.
func TestLoad_InvalidDocument(t *testing.T) {
	path := writeTempTOML(t, `
[embedding]
base_dimension = -1
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEmbeddingSettings)
}

// ── environment overrides ─────────────────────────────────────────────────────

// TestLoad_EnvOverridesProjectName verifies the documented project name
// override.
func TestLoad_EnvOverridesProjectName(t *testing.T) {
	path := writeTempTOML(t, `
[app]
project_name = "from_file"
`)
	t.Setenv("RAGLET_APP_PROJECT_NAME", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.App.ProjectName)
}

// TestLoad_EnvOverridesNestedKeys verifies overrides reach nested tables.
func TestLoad_EnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("RAGLET_COMPLETION_GENERATION_TEMPERATURE", "0.9")
	t.Setenv("RAGLET_DATABASE_GRAPH_ENRICHMENT_LEIDEN_MAX_CLUSTER_SIZE", "500")
	t.Setenv("RAGLET_AGENT_TOOL_NAMES", "local_search,web_search")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, cfg.Completion.GenerationConfig.Temperature, 1e-9)
	assert.Equal(t, 500, cfg.Database.GraphEnrichmentSettings.LeidenParams.MaxClusterSize)
	assert.Equal(t, []string{"local_search", "web_search"}, cfg.Agent.ToolNames)
}

// TestLoad_WithoutEnv verifies WithoutEnv ignores set variables.
func TestLoad_WithoutEnv(t *testing.T) {
	t.Setenv("RAGLET_APP_PROJECT_NAME", "should_be_ignored")

	cfg, err := Load("", WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, "raglet_default", cfg.App.ProjectName)
}

// TestLoad_InvalidEnvValue verifies type mismatches in the environment
// surface as errors.
func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("RAGLET_INGESTION_CHUNK_SIZE", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
}

// TestLoad_Dotenv verifies .env files seed the environment without
// overriding variables already set.
func TestLoad_Dotenv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(
		"RAGLET_APP_PROJECT_NAME=from_dotenv\nRAGLET_LOGGING_LOG_TABLE=dotenv_logs\n"), 0o644))

	t.Setenv("RAGLET_LOGGING_LOG_TABLE", "real_env_logs")
	t.Cleanup(func() { os.Unsetenv("RAGLET_APP_PROJECT_NAME") })

	cfg, err := Load("", WithDotenv(dotenv))
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.App.ProjectName)
	assert.Equal(t, "real_env_logs", cfg.Logging.LogTable, "real environment wins over .env")
}

// TestLoad_DotenvMissingFileIgnored verifies an absent .env is not an error.
func TestLoad_DotenvMissingFileIgnored(t *testing.T) {
	cfg, err := Load("", WithDotenv(filepath.Join(t.TempDir(), ".env")))
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

// ── overlays ──────────────────────────────────────────────────────────────────

// TestLoad_OverlayWins verifies overlay files layer over the base file in
// order.
func TestLoad_OverlayWins(t *testing.T) {
	base := writeTempTOML(t, `
[app]
project_name = "base"

[completion]
concurrent_request_limit = 8
`)
	overlay := writeTempTOML(t, `
[app]
project_name = "staging"
`)

	cfg, err := Load(base, WithOverlays(overlay))
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.App.ProjectName)
	assert.Equal(t, 8, cfg.Completion.ConcurrentRequestLimit, "keys the overlay omits keep the base value")
}

// ── strict mode ───────────────────────────────────────────────────────────────

// TestLoad_UnknownKeysIgnoredByDefault verifies unknown keys only warn.
func TestLoad_UnknownKeysIgnoredByDefault(t *testing.T) {
	path := writeTempTOML(t, `
[app]
project_name = "x"
no_such_key = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.App.ProjectName)
}

// TestLoad_UnknownKeysRejectedInStrictMode verifies strict loads fail on
// unknown keys and name them.
func TestLoad_UnknownKeysRejectedInStrictMode(t *testing.T) {
	path := writeTempTOML(t, `
[app]
no_such_key = true

[telemetry]
endpoint = "http://localhost:4317"
`)

	_, err := Load(path, WithStrict())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKeys)
	assert.Contains(t, err.Error(), "app.no_such_key")
	assert.Contains(t, err.Error(), "telemetry")
}

// ── shipped document ──────────────────────────────────────────────────────────

// TestLoad_ShippedDocument verifies the raglet.toml at the repository root
// parses strictly and passes validation.
func TestLoad_ShippedDocument(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "raglet.toml"), WithStrict(), WithoutEnv())
	require.NoError(t, err)

	assert.Equal(t, settings.Default(), cfg, "shipped document must equal the in-code defaults")
}
