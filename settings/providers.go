// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

// Provider names accepted by the platform, grouped by section.
const (
	AuthProviderBuiltin  = "raglet"
	AuthProviderSupabase = "supabase"

	CompletionProviderLiteLLM = "litellm"
	CompletionProviderOpenAI  = "openai"

	CryptoProviderBcrypt = "bcrypt"
	CryptoProviderNaCl   = "nacl"

	DatabaseProviderPostgres = "postgres"

	EmbeddingProviderLiteLLM = "litellm"
	EmbeddingProviderOpenAI  = "openai"
	EmbeddingProviderOllama  = "ollama"

	FileProviderPostgres = "postgres"
	FileProviderS3       = "s3"

	IngestionProviderBuiltin      = "raglet"
	IngestionProviderUnstructured = "unstructured_local"

	LoggingProviderBuiltin = "raglet"

	OrchestrationProviderSimple  = "simple"
	OrchestrationProviderHatchet = "hatchet"

	PromptProviderBuiltin = "raglet"

	EmailProviderConsoleMock = "console_mock"
	EmailProviderSMTP        = "smtp"
	EmailProviderSendGrid    = "sendgrid"
)

// Quantization types accepted for stored vectors.
const (
	QuantizationFP32 = "FP32"
	QuantizationFP16 = "FP16"
	QuantizationINT8 = "INT8"
)

// Clustering modes for graph creation.
const (
	ClusteringModeLocal  = "local"
	ClusteringModeRemote = "remote"
)

// Entity deduplication strategies.
const (
	DeduplicationByName        = "by_name"
	DeduplicationByDescription = "by_description"
)

// Chunking strategies.
const (
	ChunkingRecursive = "recursive"
	ChunkingByTitle   = "by_title"
	ChunkingCharacter = "character"
)

// Chunk enrichment strategies.
const (
	EnrichmentSemantic     = "semantic"
	EnrichmentNeighborhood = "neighborhood"
)

// KnownProviders maps each provider-bearing section to the set of names the
// platform ships an implementation for.
var KnownProviders = map[string][]string{
	"auth":          {AuthProviderBuiltin, AuthProviderSupabase},
	"completion":    {CompletionProviderLiteLLM, CompletionProviderOpenAI},
	"crypto":        {CryptoProviderBcrypt, CryptoProviderNaCl},
	"database":      {DatabaseProviderPostgres},
	"embedding":     {EmbeddingProviderLiteLLM, EmbeddingProviderOpenAI, EmbeddingProviderOllama},
	"file":          {FileProviderPostgres, FileProviderS3},
	"ingestion":     {IngestionProviderBuiltin, IngestionProviderUnstructured},
	"logging":       {LoggingProviderBuiltin},
	"orchestration": {OrchestrationProviderSimple, OrchestrationProviderHatchet},
	"prompt":        {PromptProviderBuiltin},
	"email":         {EmailProviderConsoleMock, EmailProviderSMTP, EmailProviderSendGrid},
}

// KnownParserFormats lists the document formats the ingestion pipeline has
// parsers for. excluded_parsers and extra_parsers entries must name one of
// these.
var KnownParserFormats = []string{
	"csv", "docx", "eml", "epub", "html", "json", "md", "mp3", "mp4",
	"odt", "pdf", "png", "jpeg", "jpg", "ppt", "pptx", "rtf", "tiff",
	"txt", "xls", "xlsx",
}

// KnownModelDimensions maps embedding model identifiers to their native
// vector dimension. base_dimension may be reduced below the native value
// but never exceed it.
var KnownModelDimensions = map[string]int{
	"openai/text-embedding-3-small": 1536,
	"openai/text-embedding-3-large": 3072,
	"openai/text-embedding-ada-002": 1536,
	"ollama/mxbai-embed-large":      1024,
	"ollama/nomic-embed-text":       768,
}

// IsKnownProvider reports whether name is a shipped provider for section.
// Unknown sections report false.
func IsKnownProvider(section, name string) bool {
	for _, p := range KnownProviders[section] {
		if p == name {
			return true
		}
	}
	return false
}

// IsKnownParserFormat reports whether format names a shipped parser.
func IsKnownParserFormat(format string) bool {
	for _, f := range KnownParserFormats {
		if f == format {
			return true
		}
	}
	return false
}
