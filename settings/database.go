// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

// Database selects the storage provider and carries the knowledge-graph
// settings. Every sub-table nests exactly one level under [database], as
// documented in the shipped settings file.
type Database struct {
	// Provider selects the storage backend.
	// Env: RAGLET_DATABASE_PROVIDER
	Provider string `toml:"provider" env:"PROVIDER"`

	// DefaultCollectionName names the collection new documents land in.
	// Env: RAGLET_DATABASE_DEFAULT_COLLECTION_NAME
	DefaultCollectionName string `toml:"default_collection_name" env:"DEFAULT_COLLECTION_NAME"`

	// DefaultCollectionDescription describes the default collection.
	// Env: RAGLET_DATABASE_DEFAULT_COLLECTION_DESCRIPTION
	DefaultCollectionDescription string `toml:"default_collection_description" env:"DEFAULT_COLLECTION_DESCRIPTION"`

	// GraphCreationSettings controls entity and relationship extraction.
	GraphCreationSettings GraphCreationSettings `toml:"graph_creation_settings" envPrefix:"GRAPH_CREATION_"`

	// GraphEntityDeduplicationSettings controls merging of duplicate
	// extracted entities.
	GraphEntityDeduplicationSettings GraphEntityDeduplicationSettings `toml:"graph_entity_deduplication_settings" envPrefix:"GRAPH_DEDUP_"`

	// GraphEnrichmentSettings controls community building over the graph.
	GraphEnrichmentSettings GraphEnrichmentSettings `toml:"graph_enrichment_settings" envPrefix:"GRAPH_ENRICHMENT_"`

	// GraphSearchSettings controls graph-backed retrieval.
	GraphSearchSettings GraphSearchSettings `toml:"graph_search_settings" envPrefix:"GRAPH_SEARCH_"`

	// Limits carries platform-wide request quotas.
	Limits Limits `toml:"limits" envPrefix:"LIMITS_"`
}

// GraphCreationSettings controls how entities and relationships are
// extracted from ingested chunks.
type GraphCreationSettings struct {
	// ClusteringMode selects where graph clustering runs, "local" or
	// "remote".
	ClusteringMode string `toml:"clustering_mode" env:"CLUSTERING_MODE"`

	// EntityTypes restricts extraction to the listed entity types. Empty
	// means no restriction.
	EntityTypes []string `toml:"entity_types" env:"ENTITY_TYPES"`

	// RelationTypes restricts extraction to the listed relation types.
	// Empty means no restriction.
	RelationTypes []string `toml:"relation_types" env:"RELATION_TYPES"`

	// FragmentMergeCount is the number of chunk fragments merged into one
	// extraction request.
	FragmentMergeCount int `toml:"fragment_merge_count" env:"FRAGMENT_MERGE_COUNT"`

	// MaxKnowledgeRelationships caps relationships extracted per request.
	MaxKnowledgeRelationships int `toml:"max_knowledge_relationships" env:"MAX_KNOWLEDGE_RELATIONSHIPS"`

	// MaxDescriptionInputLength caps the characters fed to description
	// generation.
	MaxDescriptionInputLength int `toml:"max_description_input_length" env:"MAX_DESCRIPTION_INPUT_LENGTH"`

	// GenerationConfig controls sampling for extraction calls.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`
}

// GraphEntityDeduplicationSettings controls merging of duplicate entities.
type GraphEntityDeduplicationSettings struct {
	// GraphEntityDeduplicationType selects the dedup strategy, currently
	// "by_name" or "by_description".
	GraphEntityDeduplicationType string `toml:"graph_entity_deduplication_type" env:"TYPE"`

	// MaxDescriptionInputLength caps the characters fed to merged
	// description generation.
	MaxDescriptionInputLength int `toml:"max_description_input_length" env:"MAX_DESCRIPTION_INPUT_LENGTH"`

	// GenerationConfig controls sampling for dedup calls.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`
}

// GraphEnrichmentSettings controls community building over the extracted
// graph.
type GraphEnrichmentSettings struct {
	// MaxSummaryInputLength caps the characters fed to community summary
	// generation.
	MaxSummaryInputLength int `toml:"max_summary_input_length" env:"MAX_SUMMARY_INPUT_LENGTH"`

	// GenerationConfig controls sampling for community report calls.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`

	// LeidenParams tunes the Leiden clustering pass.
	LeidenParams LeidenParams `toml:"leiden_params" envPrefix:"LEIDEN_"`
}

// LeidenParams tunes the Leiden community detection algorithm.
type LeidenParams struct {
	// MaxClusterSize caps the community size before a cluster is split.
	MaxClusterSize int `toml:"max_cluster_size" env:"MAX_CLUSTER_SIZE"`
}

// GraphSearchSettings controls graph-backed retrieval.
type GraphSearchSettings struct {
	// GenerationConfig controls sampling for graph search answers.
	GenerationConfig GenerationConfig `toml:"generation_config" envPrefix:"GENERATION_"`
}

// Limits carries platform-wide request quotas enforced by the platform.
type Limits struct {
	// GlobalPerMin caps requests per minute across all routes.
	GlobalPerMin int `toml:"global_per_min" env:"GLOBAL_PER_MIN"`

	// MonthlyLimit caps requests per calendar month.
	MonthlyLimit int `toml:"monthly_limit" env:"MONTHLY_LIMIT"`
}
