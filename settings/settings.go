// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

// Settings is the top-level configuration document for a raglet deployment.
// It mirrors the raglet.toml file section for section and is populated by
// layering the TOML file and environment variables over the shipped
// defaults (see internal/config).
//
// Struct tags:
//   - toml      — key name in the settings document (BurntSushi/toml).
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Settings struct {
	// App holds project identity settings.
	App App `toml:"app" envPrefix:"RAGLET_APP_"`

	// Agent configures the conversational agent: which tools it may call
	// and how its completions are sampled.
	Agent Agent `toml:"agent" envPrefix:"RAGLET_AGENT_"`

	// Auth holds token lifetimes and credential policy.
	Auth Auth `toml:"auth" envPrefix:"RAGLET_AUTH_"`

	// Completion selects the LLM provider and its generation defaults.
	Completion Completion `toml:"completion" envPrefix:"RAGLET_COMPLETION_"`

	// Crypto selects the password hashing provider.
	Crypto Crypto `toml:"crypto" envPrefix:"RAGLET_CRYPTO_"`

	// Database selects the storage provider and carries the nested
	// knowledge-graph creation, deduplication, enrichment, and search
	// settings interpreted by the platform.
	Database Database `toml:"database" envPrefix:"RAGLET_DATABASE_"`

	// Embedding selects the embedding provider, model, and dimensionality.
	Embedding Embedding `toml:"embedding" envPrefix:"RAGLET_EMBEDDING_"`

	// File selects the blob storage provider for ingested documents.
	File File `toml:"file" envPrefix:"RAGLET_FILE_"`

	// Ingestion controls chunking, enrichment, and per-format parser
	// overrides for the ingestion pipeline.
	Ingestion Ingestion `toml:"ingestion" envPrefix:"RAGLET_INGESTION_"`

	// Logging selects the log sink provider and its table names.
	Logging Logging `toml:"logging" envPrefix:"RAGLET_LOGGING_"`

	// Orchestration selects the workflow provider and its concurrency
	// limits.
	Orchestration Orchestration `toml:"orchestration" envPrefix:"RAGLET_ORCHESTRATION_"`

	// Prompt selects the prompt-template provider.
	Prompt Prompt `toml:"prompt" envPrefix:"RAGLET_PROMPT_"`

	// Email selects the mail provider used for verification and reset
	// messages.
	Email Email `toml:"email" envPrefix:"RAGLET_EMAIL_"`
}

// App holds project identity settings.
type App struct {
	// ProjectName names the deployment. It scopes table names and log
	// streams on the platform side.
	// Env: RAGLET_APP_PROJECT_NAME
	ProjectName string `toml:"project_name" env:"PROJECT_NAME"`
}

// Agent configures the conversational agent.
type Agent struct {
	// SystemInstructionName is the prompt-template name used as the
	// agent's system instruction.
	// Env: RAGLET_AGENT_SYSTEM_INSTRUCTION_NAME
	SystemInstructionName string `toml:"system_instruction_name" env:"SYSTEM_INSTRUCTION_NAME"`

	// ToolNames lists the tools the agent may call. The shipped document
	// carries a commented-out variant that adds web search.
	// Env: RAGLET_AGENT_TOOL_NAMES (comma-separated)
	ToolNames []string `toml:"tool_names" env:"TOOL_NAMES"`

	// GenerationConfig controls sampling for agent completions.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`
}

// Auth holds token lifetimes and credential policy.
type Auth struct {
	// Provider selects the authentication implementation.
	// Env: RAGLET_AUTH_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// AccessTokenLifetimeInMinutes is the access token TTL.
	// Env: RAGLET_AUTH_ACCESS_TOKEN_LIFETIME_IN_MINUTES
	AccessTokenLifetimeInMinutes int `toml:"access_token_lifetime_in_minutes" env:"ACCESS_TOKEN_LIFETIME_IN_MINUTES"`

	// RefreshTokenLifetimeInDays is the refresh token TTL.
	// Env: RAGLET_AUTH_REFRESH_TOKEN_LIFETIME_IN_DAYS
	RefreshTokenLifetimeInDays int `toml:"refresh_token_lifetime_in_days" env:"REFRESH_TOKEN_LIFETIME_IN_DAYS"`

	// RequireAuthentication forces every request to carry credentials.
	// Env: RAGLET_AUTH_REQUIRE_AUTHENTICATION
	RequireAuthentication bool `toml:"require_authentication" env:"REQUIRE_AUTHENTICATION"`

	// RequireEmailVerification gates login on a verified email address.
	// Env: RAGLET_AUTH_REQUIRE_EMAIL_VERIFICATION
	RequireEmailVerification bool `toml:"require_email_verification" env:"REQUIRE_EMAIL_VERIFICATION"`

	// DefaultAdminEmail is the bootstrap administrator account address.
	// Env: RAGLET_AUTH_DEFAULT_ADMIN_EMAIL
	DefaultAdminEmail string `toml:"default_admin_email" env:"DEFAULT_ADMIN_EMAIL"`

	// DefaultAdminPassword is the bootstrap administrator password. It is
	// masked by [Settings.Redacted].
	// Env: RAGLET_AUTH_DEFAULT_ADMIN_PASSWORD
	DefaultAdminPassword string `toml:"default_admin_password" env:"DEFAULT_ADMIN_PASSWORD"`
}

// Completion selects the LLM provider and its generation defaults.
type Completion struct {
	// Provider selects the completion backend.
	// Env: RAGLET_COMPLETION_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// ConcurrentRequestLimit caps in-flight completion requests.
	// Env: RAGLET_COMPLETION_CONCURRENT_REQUEST_LIMIT
	ConcurrentRequestLimit int `toml:"concurrent_request_limit" env:"CONCURRENT_REQUEST_LIMIT"`

	// GenerationConfig holds the platform-wide default sampling settings.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`
}

// Crypto selects the password hashing provider.
type Crypto struct {
	// Provider selects the hashing implementation.
	// Env: RAGLET_CRYPTO_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`
}

// Logging selects the log sink provider and its table names.
type Logging struct {
	// Provider selects the log sink.
	// Env: RAGLET_LOGGING_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// LogTable is the table receiving run log entries.
	// Env: RAGLET_LOGGING_LOG_TABLE
	LogTable string `toml:"log_table" env:"LOG_TABLE"`

	// LogInfoTable is the table receiving run metadata.
	// Env: RAGLET_LOGGING_LOG_INFO_TABLE
	LogInfoTable string `toml:"log_info_table" env:"LOG_INFO_TABLE"`
}

// Orchestration selects the workflow provider and its concurrency limits.
// The limits are interpreted entirely by the platform's workflow runtime.
type Orchestration struct {
	// Provider selects the workflow engine.
	// Env: RAGLET_ORCHESTRATION_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// IngestionConcurrencyLimit caps parallel ingestion workflows.
	// Env: RAGLET_ORCHESTRATION_INGESTION_CONCURRENCY_LIMIT
	IngestionConcurrencyLimit int `toml:"ingestion_concurrency_limit" env:"INGESTION_CONCURRENCY_LIMIT"`

	// GraphCreationConcurrencyLimit caps parallel graph extraction
	// workflows.
	// Env: RAGLET_ORCHESTRATION_GRAPH_CREATION_CONCURRENCY_LIMIT
	GraphCreationConcurrencyLimit int `toml:"graph_creation_concurrency_limit" env:"GRAPH_CREATION_CONCURRENCY_LIMIT"`

	// GraphEnrichmentConcurrencyLimit caps parallel community-building
	// workflows.
	// Env: RAGLET_ORCHESTRATION_GRAPH_ENRICHMENT_CONCURRENCY_LIMIT
	GraphEnrichmentConcurrencyLimit int `toml:"graph_enrichment_concurrency_limit" env:"GRAPH_ENRICHMENT_CONCURRENCY_LIMIT"`
}

// Prompt selects the prompt-template provider.
type Prompt struct {
	// Provider selects the prompt store.
	// Env: RAGLET_PROMPT_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`
}

// Email selects the mail provider.
type Email struct {
	// Provider selects the mail backend.
	// Env: RAGLET_EMAIL_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`
}
