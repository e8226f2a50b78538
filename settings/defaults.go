// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package settings

// Default returns the shipped settings document. It is equivalent, value
// for value, to the raglet.toml file at the repository root; the loader
// layers the file and the environment over this baseline.
func Default() *Settings {
	return &Settings{
		App: App{
			ProjectName: "raglet_default",
		},
		Agent: Agent{
			SystemInstructionName: "rag_agent",
			ToolNames:             []string{"local_search"},
			GenerationConfig: GenerationConfig{
				Model:               "openai/gpt-4o",
				AddGenerationKwargs: map[string]any{},
			},
		},
		Auth: Auth{
			Provider:                     AuthProviderBuiltin,
			AccessTokenLifetimeInMinutes: 60,
			RefreshTokenLifetimeInDays:   7,
			RequireAuthentication:        false,
			RequireEmailVerification:     false,
			DefaultAdminEmail:            "admin@example.com",
			DefaultAdminPassword:         "change_me_immediately",
		},
		Completion: Completion{
			Provider:               CompletionProviderLiteLLM,
			ConcurrentRequestLimit: 64,
			GenerationConfig: GenerationConfig{
				Model:               "openai/gpt-4o",
				Temperature:         0.1,
				TopP:                1,
				MaxTokensToSample:   1024,
				Stream:              false,
				AddGenerationKwargs: map[string]any{},
			},
		},
		Crypto: Crypto{
			Provider: CryptoProviderBcrypt,
		},
		Database: Database{
			Provider:                     DatabaseProviderPostgres,
			DefaultCollectionName:        "Default",
			DefaultCollectionDescription: "Your default collection.",
			GraphCreationSettings: GraphCreationSettings{
				ClusteringMode:            ClusteringModeLocal,
				EntityTypes:               []string{},
				RelationTypes:             []string{},
				FragmentMergeCount:        4,
				MaxKnowledgeRelationships: 100,
				MaxDescriptionInputLength: 65536,
				GenerationConfig: GenerationConfig{
					Model:               "openai/gpt-4o-mini",
					AddGenerationKwargs: map[string]any{},
				},
			},
			GraphEntityDeduplicationSettings: GraphEntityDeduplicationSettings{
				GraphEntityDeduplicationType: DeduplicationByName,
				MaxDescriptionInputLength:    65536,
				GenerationConfig: GenerationConfig{
					Model:               "openai/gpt-4o-mini",
					AddGenerationKwargs: map[string]any{},
				},
			},
			GraphEnrichmentSettings: GraphEnrichmentSettings{
				MaxSummaryInputLength: 65536,
				GenerationConfig: GenerationConfig{
					Model:               "openai/gpt-4o-mini",
					AddGenerationKwargs: map[string]any{},
				},
				LeidenParams: LeidenParams{
					MaxClusterSize: 1000,
				},
			},
			GraphSearchSettings: GraphSearchSettings{
				GenerationConfig: GenerationConfig{
					Model:               "openai/gpt-4o-mini",
					AddGenerationKwargs: map[string]any{},
				},
			},
			Limits: Limits{
				GlobalPerMin: 300,
				MonthlyLimit: 10000,
			},
		},
		Embedding: Embedding{
			Provider:               EmbeddingProviderLiteLLM,
			BaseModel:              "openai/text-embedding-3-small",
			BaseDimension:          512,
			BatchSize:              128,
			AddTitlePrefix:         false,
			ConcurrentRequestLimit: 256,
			QuantizationSettings: QuantizationSettings{
				QuantizationType: QuantizationFP32,
			},
		},
		File: File{
			Provider: FileProviderPostgres,
		},
		Ingestion: Ingestion{
			Provider:                 IngestionProviderBuiltin,
			ChunkingStrategy:         ChunkingRecursive,
			ChunkSize:                1024,
			ChunkOverlap:             512,
			ExcludedParsers:          []string{"mp4"},
			AutomaticExtraction:      true,
			ChunksForDocumentSummary: 16,
			DocumentSummaryModel:     "openai/gpt-4o-mini",
			AudioTranscriptionModel:  "openai/whisper-1",
			VisionImgModel:           "openai/gpt-4o",
			VisionPDFModel:           "openai/gpt-4o",
			ChunkEnrichmentSettings: ChunkEnrichmentSettings{
				EnableChunkEnrichment:       false,
				Strategies:                  []string{EnrichmentSemantic, EnrichmentNeighborhood},
				ForwardChunks:               3,
				BackwardChunks:              3,
				SemanticNeighbors:           10,
				SemanticSimilarityThreshold: 0.7,
				GenerationConfig: GenerationConfig{
					Model:               "openai/gpt-4o-mini",
					AddGenerationKwargs: map[string]any{},
				},
			},
			ExtraParsers: map[string]string{},
		},
		Logging: Logging{
			Provider:     LoggingProviderBuiltin,
			LogTable:     "logs",
			LogInfoTable: "log_info",
		},
		Orchestration: Orchestration{
			Provider:                        OrchestrationProviderSimple,
			IngestionConcurrencyLimit:       16,
			GraphCreationConcurrencyLimit:   32,
			GraphEnrichmentConcurrencyLimit: 4,
		},
		Prompt: Prompt{
			Provider: PromptProviderBuiltin,
		},
		Email: Email{
			Provider: EmailProviderConsoleMock,
		},
	}
}
