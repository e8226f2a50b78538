// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

// Embedding selects the embedding provider, model, and dimensionality.
type Embedding struct {
	// Provider selects the embedding backend.
	// Env: RAGLET_EMBEDDING_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// BaseModel is the embedding model identifier.
	// Env: RAGLET_EMBEDDING_BASE_MODEL
	BaseModel string `toml:"base_model" env:"BASE_MODEL"`

	// BaseDimension is the stored vector dimensionality. Must be a
	// positive integer and, for known models, no larger than the model's
	// native dimension.
	// Env: RAGLET_EMBEDDING_BASE_DIMENSION
	BaseDimension int `toml:"base_dimension" env:"BASE_DIMENSION"`

	// BatchSize is the number of texts embedded per request.
	// Env: RAGLET_EMBEDDING_BATCH_SIZE
	BatchSize int `toml:"batch_size" env:"BATCH_SIZE"`

	// AddTitlePrefix prepends the document title to each chunk before
	// embedding.
	// Env: RAGLET_EMBEDDING_ADD_TITLE_AS_PREFIX
	AddTitlePrefix bool `toml:"add_title_as_prefix" env:"ADD_TITLE_AS_PREFIX"`

	// ConcurrentRequestLimit caps in-flight embedding requests.
	// Env: RAGLET_EMBEDDING_CONCURRENT_REQUEST_LIMIT
	ConcurrentRequestLimit int `toml:"concurrent_request_limit" env:"CONCURRENT_REQUEST_LIMIT"`

	// QuantizationSettings controls stored vector precision.
	QuantizationSettings QuantizationSettings `toml:"quantization_settings" envPrefix:"QUANTIZATION_"`
}

// QuantizationSettings controls stored vector precision.
type QuantizationSettings struct {
	// QuantizationType is one of FP32, FP16, or INT8.
	QuantizationType string `toml:"quantization_type" env:"TYPE"`
}

// File selects the blob storage provider for ingested documents.
type File struct {
	// Provider selects the blob store.
	// Env: RAGLET_FILE_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`
}

// Ingestion controls chunking, enrichment, and per-format parser overrides.
type Ingestion struct {
	// Provider selects the ingestion implementation.
	// Env: RAGLET_INGESTION_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// ChunkingStrategy selects how documents are split, e.g. "recursive"
	// or "by_title".
	// Env: RAGLET_INGESTION_CHUNKING_STRATEGY
	ChunkingStrategy string `toml:"chunking_strategy" env:"CHUNKING_STRATEGY"`

	// ChunkSize is the target chunk length in characters.
	// Env: RAGLET_INGESTION_CHUNK_SIZE
	ChunkSize int `toml:"chunk_size" env:"CHUNK_SIZE"`

	// ChunkOverlap is the character overlap between adjacent chunks.
	// Must be strictly smaller than ChunkSize.
	// Env: RAGLET_INGESTION_CHUNK_OVERLAP
	ChunkOverlap int `toml:"chunk_overlap" env:"CHUNK_OVERLAP"`

	// ExcludedParsers lists document formats skipped during ingestion.
	// Env: RAGLET_INGESTION_EXCLUDED_PARSERS (comma-separated)
	ExcludedParsers []string `toml:"excluded_parsers" env:"EXCLUDED_PARSERS"`

	// AutomaticExtraction triggers graph extraction as part of ingestion
	// instead of as a separate workflow.
	// Env: RAGLET_INGESTION_AUTOMATIC_EXTRACTION
	AutomaticExtraction bool `toml:"automatic_extraction" env:"AUTOMATIC_EXTRACTION"`

	// ChunksForDocumentSummary is the number of leading chunks fed to
	// document summary generation.
	// Env: RAGLET_INGESTION_CHUNKS_FOR_DOCUMENT_SUMMARY
	ChunksForDocumentSummary int `toml:"chunks_for_document_summary" env:"CHUNKS_FOR_DOCUMENT_SUMMARY"`

	// DocumentSummaryModel generates document summaries.
	// Env: RAGLET_INGESTION_DOCUMENT_SUMMARY_MODEL
	DocumentSummaryModel string `toml:"document_summary_model" env:"DOCUMENT_SUMMARY_MODEL"`

	// AudioTranscriptionModel transcribes ingested audio.
	// Env: RAGLET_INGESTION_AUDIO_TRANSCRIPTION_MODEL
	AudioTranscriptionModel string `toml:"audio_transcription_model" env:"AUDIO_TRANSCRIPTION_MODEL"`

	// VisionImgModel describes ingested images.
	// Env: RAGLET_INGESTION_VISION_IMG_MODEL
	VisionImgModel string `toml:"vision_img_model" env:"VISION_IMG_MODEL"`

	// VisionPDFModel reads PDFs that defeat text extraction.
	// Env: RAGLET_INGESTION_VISION_PDF_MODEL
	VisionPDFModel string `toml:"vision_pdf_model" env:"VISION_PDF_MODEL"`

	// ChunkEnrichmentSettings controls context enrichment of stored
	// chunks.
	ChunkEnrichmentSettings ChunkEnrichmentSettings `toml:"chunk_enrichment_settings" envPrefix:"ENRICHMENT_"`

	// ExtraParsers overrides the parser used for a document format, e.g.
	// pdf = "zerox".
	ExtraParsers map[string]string `toml:"extra_parsers"`
}

// ChunkEnrichmentSettings controls context enrichment of stored chunks.
type ChunkEnrichmentSettings struct {
	// EnableChunkEnrichment switches enrichment on.
	EnableChunkEnrichment bool `toml:"enable_chunk_enrichment" env:"ENABLE"`

	// Strategies lists the enrichment strategies applied, "semantic"
	// and/or "neighborhood".
	Strategies []string `toml:"strategies" env:"STRATEGIES"`

	// ForwardChunks is the neighborhood window after the chunk.
	ForwardChunks int `toml:"forward_chunks" env:"FORWARD_CHUNKS"`

	// BackwardChunks is the neighborhood window before the chunk.
	BackwardChunks int `toml:"backward_chunks" env:"BACKWARD_CHUNKS"`

	// SemanticNeighbors is the number of semantic neighbors retrieved.
	SemanticNeighbors int `toml:"semantic_neighbors" env:"SEMANTIC_NEIGHBORS"`

	// SemanticSimilarityThreshold filters neighbors below this cosine
	// similarity, in [0, 1].
	SemanticSimilarityThreshold float64 `toml:"semantic_similarity_threshold" env:"SEMANTIC_SIMILARITY_THRESHOLD"`

	// GenerationConfig controls sampling for enrichment calls.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`
}
