package config

import (
	"fmt"
	"net/mail"

	"github.com/hashicorp/go-multierror"

	"github.com/raglet/raglet/settings"
)

// Validate checks every invariant the settings document's commentary
// implies and returns all violations at once, each wrapped around the
// sentinel for its section. A nil return means the document is valid.
func Validate(s *settings.Settings) error {
	var result *multierror.Error

	result = multierror.Append(result, validateProviders(s)...)
	result = multierror.Append(result, validateAgent(&s.Agent)...)
	result = multierror.Append(result, validateAuth(&s.Auth)...)
	result = multierror.Append(result, validateCompletion(&s.Completion)...)
	result = multierror.Append(result, validateDatabase(&s.Database)...)
	result = multierror.Append(result, validateEmbedding(&s.Embedding)...)
	result = multierror.Append(result, validateIngestion(&s.Ingestion)...)
	result = multierror.Append(result, validateOrchestration(&s.Orchestration)...)

	return result.ErrorOrNil()
}

func validateProviders(s *settings.Settings) []error {
	selections := []struct {
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

	var errs []error
	for _, sel := range selections {
		if !settings.IsKnownProvider(sel.section, sel.provider) {
			errs = append(errs, fmt.Errorf("%w: [%s] provider %q", ErrUnknownProvider, sel.section, sel.provider))
		}
	}

	return errs
}

func validateAgent(a *settings.Agent) []error {
	var errs []error

	if a.SystemInstructionName == "" {
		errs = append(errs, fmt.Errorf("%w: system_instruction_name must not be empty", ErrInvalidAgentSettings))
	}
	for _, tool := range a.ToolNames {
		if tool == "" {
			errs = append(errs, fmt.Errorf("%w: tool_names must not contain empty entries", ErrInvalidAgentSettings))
			break
		}
	}
	errs = append(errs, validateGeneration("agent.generation_config", &a.GenerationConfig, ErrInvalidAgentSettings)...)

	return errs
}

func validateAuth(a *settings.Auth) []error {
	var errs []error

	if a.AccessTokenLifetimeInMinutes <= 0 {
		errs = append(errs, fmt.Errorf("%w: access_token_lifetime_in_minutes must be positive, got %d",
			ErrInvalidAuthSettings, a.AccessTokenLifetimeInMinutes))
	}
	if a.RefreshTokenLifetimeInDays <= 0 {
		errs = append(errs, fmt.Errorf("%w: refresh_token_lifetime_in_days must be positive, got %d",
			ErrInvalidAuthSettings, a.RefreshTokenLifetimeInDays))
	}
	if _, err := mail.ParseAddress(a.DefaultAdminEmail); err != nil {
		errs = append(errs, fmt.Errorf("%w: default_admin_email %q is not a valid address",
			ErrInvalidAuthSettings, a.DefaultAdminEmail))
	}

	return errs
}

func validateCompletion(c *settings.Completion) []error {
	var errs []error

	if c.ConcurrentRequestLimit <= 0 {
		errs = append(errs, fmt.Errorf("%w: concurrent_request_limit must be positive, got %d",
			ErrInvalidCompletionSettings, c.ConcurrentRequestLimit))
	}
	errs = append(errs, validateGeneration("completion.generation_config", &c.GenerationConfig, ErrInvalidCompletionSettings)...)

	return errs
}

func validateDatabase(d *settings.Database) []error {
	var errs []error

	creation := &d.GraphCreationSettings
	if creation.ClusteringMode != settings.ClusteringModeLocal && creation.ClusteringMode != settings.ClusteringModeRemote {
		errs = append(errs, fmt.Errorf("%w: clustering_mode must be %q or %q, got %q",
			ErrInvalidDatabaseSettings, settings.ClusteringModeLocal, settings.ClusteringModeRemote, creation.ClusteringMode))
	}
	if creation.FragmentMergeCount <= 0 {
		errs = append(errs, fmt.Errorf("%w: fragment_merge_count must be positive, got %d",
			ErrInvalidDatabaseSettings, creation.FragmentMergeCount))
	}
	if creation.MaxKnowledgeRelationships <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_knowledge_relationships must be positive, got %d",
			ErrInvalidDatabaseSettings, creation.MaxKnowledgeRelationships))
	}
	if creation.MaxDescriptionInputLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: graph_creation_settings.max_description_input_length must be positive, got %d",
			ErrInvalidDatabaseSettings, creation.MaxDescriptionInputLength))
	}
	errs = append(errs, validateGeneration("database.graph_creation_settings.generation_config",
		&creation.GenerationConfig, ErrInvalidDatabaseSettings)...)

	dedup := &d.GraphEntityDeduplicationSettings
	if dedup.GraphEntityDeduplicationType != settings.DeduplicationByName &&
		dedup.GraphEntityDeduplicationType != settings.DeduplicationByDescription {
		errs = append(errs, fmt.Errorf("%w: graph_entity_deduplication_type must be %q or %q, got %q",
			ErrInvalidDatabaseSettings, settings.DeduplicationByName, settings.DeduplicationByDescription,
			dedup.GraphEntityDeduplicationType))
	}
	if dedup.MaxDescriptionInputLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: graph_entity_deduplication_settings.max_description_input_length must be positive, got %d",
			ErrInvalidDatabaseSettings, dedup.MaxDescriptionInputLength))
	}
	errs = append(errs, validateGeneration("database.graph_entity_deduplication_settings.generation_config",
		&dedup.GenerationConfig, ErrInvalidDatabaseSettings)...)

	enrichment := &d.GraphEnrichmentSettings
	if enrichment.MaxSummaryInputLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_summary_input_length must be positive, got %d",
			ErrInvalidDatabaseSettings, enrichment.MaxSummaryInputLength))
	}
	if enrichment.LeidenParams.MaxClusterSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: leiden_params.max_cluster_size must be positive, got %d",
			ErrInvalidDatabaseSettings, enrichment.LeidenParams.MaxClusterSize))
	}
	errs = append(errs, validateGeneration("database.graph_enrichment_settings.generation_config",
		&enrichment.GenerationConfig, ErrInvalidDatabaseSettings)...)

	errs = append(errs, validateGeneration("database.graph_search_settings.generation_config",
		&d.GraphSearchSettings.GenerationConfig, ErrInvalidDatabaseSettings)...)

	if d.Limits.GlobalPerMin <= 0 {
		errs = append(errs, fmt.Errorf("%w: limits.global_per_min must be positive, got %d",
			ErrInvalidDatabaseSettings, d.Limits.GlobalPerMin))
	}
	if d.Limits.MonthlyLimit <= 0 {
		errs = append(errs, fmt.Errorf("%w: limits.monthly_limit must be positive, got %d",
			ErrInvalidDatabaseSettings, d.Limits.MonthlyLimit))
	}

	return errs
}

func validateEmbedding(e *settings.Embedding) []error {
	var errs []error

	if e.BaseDimension <= 0 {
		errs = append(errs, fmt.Errorf("%w: base_dimension must be a positive integer, got %d",
			ErrInvalidEmbeddingSettings, e.BaseDimension))
	}
	if e.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: batch_size must be positive, got %d",
			ErrInvalidEmbeddingSettings, e.BatchSize))
	}
	if e.ConcurrentRequestLimit <= 0 {
		errs = append(errs, fmt.Errorf("%w: concurrent_request_limit must be positive, got %d",
			ErrInvalidEmbeddingSettings, e.ConcurrentRequestLimit))
	}

	switch e.QuantizationSettings.QuantizationType {
	case settings.QuantizationFP32, settings.QuantizationFP16, settings.QuantizationINT8:
	default:
		errs = append(errs, fmt.Errorf("%w: quantization_type must be one of FP32, FP16, INT8, got %q",
			ErrInvalidEmbeddingSettings, e.QuantizationSettings.QuantizationType))
	}

	// base_dimension may shorten a known model's vectors but never extend
	// them.
	if native, ok := settings.KnownModelDimensions[e.BaseModel]; ok && e.BaseDimension > native {
		errs = append(errs, fmt.Errorf("%w: base_dimension %d exceeds native dimension %d of model %q",
			ErrInvalidEmbeddingSettings, e.BaseDimension, native, e.BaseModel))
	}

	return errs
}

func validateIngestion(i *settings.Ingestion) []error {
	var errs []error

	switch i.ChunkingStrategy {
	case settings.ChunkingRecursive, settings.ChunkingByTitle, settings.ChunkingCharacter:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown chunking_strategy %q",
			ErrInvalidIngestionSettings, i.ChunkingStrategy))
	}

	if i.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: chunk_size must be positive, got %d",
			ErrInvalidIngestionSettings, i.ChunkSize))
	}
	if i.ChunkOverlap < 0 {
		errs = append(errs, fmt.Errorf("%w: chunk_overlap must not be negative, got %d",
			ErrInvalidIngestionSettings, i.ChunkOverlap))
	}
	if i.ChunkSize > 0 && i.ChunkOverlap >= i.ChunkSize {
		errs = append(errs, fmt.Errorf("%w: chunk_overlap %d must be smaller than chunk_size %d",
			ErrInvalidIngestionSettings, i.ChunkOverlap, i.ChunkSize))
	}
	if i.ChunksForDocumentSummary <= 0 {
		errs = append(errs, fmt.Errorf("%w: chunks_for_document_summary must be positive, got %d",
			ErrInvalidIngestionSettings, i.ChunksForDocumentSummary))
	}

	for _, format := range i.ExcludedParsers {
		if !settings.IsKnownParserFormat(format) {
			errs = append(errs, fmt.Errorf("%w: excluded_parsers entry %q is not a known format",
				ErrInvalidIngestionSettings, format))
		}
	}
	for format, parser := range i.ExtraParsers {
		if !settings.IsKnownParserFormat(format) {
			errs = append(errs, fmt.Errorf("%w: extra_parsers format %q is not a known format",
				ErrInvalidIngestionSettings, format))
		}
		if parser == "" {
			errs = append(errs, fmt.Errorf("%w: extra_parsers override for %q must name a parser",
				ErrInvalidIngestionSettings, format))
		}
	}

	errs = append(errs, validateChunkEnrichment(&i.ChunkEnrichmentSettings)...)

	return errs
}

func validateChunkEnrichment(c *settings.ChunkEnrichmentSettings) []error {
	var errs []error

	for _, strategy := range c.Strategies {
		if strategy != settings.EnrichmentSemantic && strategy != settings.EnrichmentNeighborhood {
			errs = append(errs, fmt.Errorf("%w: unknown chunk enrichment strategy %q",
				ErrInvalidIngestionSettings, strategy))
		}
	}
	if c.ForwardChunks < 0 || c.BackwardChunks < 0 {
		errs = append(errs, fmt.Errorf("%w: forward_chunks and backward_chunks must not be negative",
			ErrInvalidIngestionSettings))
	}
	if c.SemanticNeighbors < 0 {
		errs = append(errs, fmt.Errorf("%w: semantic_neighbors must not be negative, got %d",
			ErrInvalidIngestionSettings, c.SemanticNeighbors))
	}
	if c.SemanticSimilarityThreshold < 0 || c.SemanticSimilarityThreshold > 1 {
		errs = append(errs, fmt.Errorf("%w: semantic_similarity_threshold must be in [0, 1], got %v",
			ErrInvalidIngestionSettings, c.SemanticSimilarityThreshold))
	}
	errs = append(errs, validateGeneration("ingestion.chunk_enrichment_settings.generation_config",
		&c.GenerationConfig, ErrInvalidIngestionSettings)...)

	return errs
}

func validateOrchestration(o *settings.Orchestration) []error {
	var errs []error

	limits := []struct {
		key   string
		value int
	}{
		{"ingestion_concurrency_limit", o.IngestionConcurrencyLimit},
		{"graph_creation_concurrency_limit", o.GraphCreationConcurrencyLimit},
		{"graph_enrichment_concurrency_limit", o.GraphEnrichmentConcurrencyLimit},
	}
	for _, l := range limits {
		if l.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d",
				ErrInvalidOrchestrationSettings, l.key, l.value))
		}
	}

	return errs
}

// validateGeneration checks the sampling ranges shared by every
// generation_config table. Violations wrap sentinel so they attribute to
// the owning section.
func validateGeneration(path string, g *settings.GenerationConfig, sentinel error) []error {
	var errs []error

	if g.Temperature < 0 || g.Temperature > 1 {
		errs = append(errs, fmt.Errorf("%w: %s.temperature must be in [0, 1], got %v", sentinel, path, g.Temperature))
	}
	if g.TopP < 0 || g.TopP > 1 {
		errs = append(errs, fmt.Errorf("%w: %s.top_p must be in [0, 1], got %v", sentinel, path, g.TopP))
	}
	if g.MaxTokensToSample < 0 {
		errs = append(errs, fmt.Errorf("%w: %s.max_tokens_to_sample must not be negative, got %d",
			sentinel, path, g.MaxTokensToSample))
	}

	return errs
}
