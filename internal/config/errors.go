package config

import "errors"

// Validation errors returned by [Validate]. Each sentinel covers one
// section of the settings document; individual violations wrap the
// sentinel so callers can test with errors.Is.
var (
	// ErrInvalidAgentSettings indicates invalid [agent] values
	// (for example, an empty system instruction name).
	ErrInvalidAgentSettings = errors.New("invalid agent settings")
	// ErrInvalidAuthSettings indicates invalid [auth] values
	// (for example, a non-positive token lifetime).
	ErrInvalidAuthSettings = errors.New("invalid auth settings")
	// ErrInvalidCompletionSettings indicates invalid [completion] values
	// (for example, temperature outside [0, 1]).
	ErrInvalidCompletionSettings = errors.New("invalid completion settings")
	// ErrInvalidDatabaseSettings indicates invalid [database] values,
	// including the nested graph sub-tables.
	ErrInvalidDatabaseSettings = errors.New("invalid database settings")
	// ErrInvalidEmbeddingSettings indicates invalid [embedding] values
	// (for example, a non-positive base dimension).
	ErrInvalidEmbeddingSettings = errors.New("invalid embedding settings")
	// ErrInvalidIngestionSettings indicates invalid [ingestion] values
	// (for example, chunk_overlap not smaller than chunk_size).
	ErrInvalidIngestionSettings = errors.New("invalid ingestion settings")
	// ErrInvalidOrchestrationSettings indicates invalid [orchestration]
	// values (for example, a non-positive concurrency limit).
	ErrInvalidOrchestrationSettings = errors.New("invalid orchestration settings")
	// ErrUnknownProvider indicates a provider selection outside the known
	// set for its section.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrUnknownKeys indicates the settings file carries keys the schema
	// does not define. Returned only by strict loads.
	ErrUnknownKeys = errors.New("unknown keys in settings file")
)
