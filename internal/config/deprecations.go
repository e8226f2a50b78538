package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raglet/raglet/internal/logger"
)

// Deprecation describes a retired key spelling in the settings document.
type Deprecation struct {
	// OldKey is the dotted path of the retired key.
	OldKey string
	// NewKey is the dotted path that replaces it.
	NewKey string
	// Since is the release that retired the old spelling.
	Since string
}

// deprecationRegistry lists every retired key spelling. The graph
// sub-tables were renamed from their original kg_* spellings, and the
// relationship cap lost its "triples" name when relation extraction
// stopped being triple-based.
var deprecationRegistry = []Deprecation{
	{
		OldKey: "database.kg_creation_settings",
		NewKey: "database.graph_creation_settings",
		Since:  "0.9.0",
	},
	{
		OldKey: "database.kg_entity_deduplication_settings",
		NewKey: "database.graph_entity_deduplication_settings",
		Since:  "0.9.0",
	},
	{
		OldKey: "database.kg_enrichment_settings",
		NewKey: "database.graph_enrichment_settings",
		Since:  "0.9.0",
	},
	{
		OldKey: "database.kg_search_settings",
		NewKey: "database.graph_search_settings",
		Since:  "0.9.0",
	},
	{
		OldKey: "database.graph_creation_settings.max_knowledge_triples",
		NewKey: "database.graph_creation_settings.max_knowledge_relationships",
		Since:  "0.11.0",
	},
}

// deprecationFor returns the deprecation covering the dotted key path, or
// nil. A key nested under a deprecated table (e.g. a field inside
// kg_creation_settings) is covered by the table's deprecation.
func deprecationFor(path string) *Deprecation {
	for i := range deprecationRegistry {
		d := &deprecationRegistry[i]
		if path == d.OldKey || strings.HasPrefix(path, d.OldKey+".") {
			return d
		}
	}

	return nil
}

// findDeprecations scans the keys a settings file defined for retired
// spellings and returns each deprecation at most once.
func findDeprecations(md toml.MetaData) []Deprecation {
	seen := make(map[string]struct{})
	var found []Deprecation

	for _, key := range md.Undecoded() {
		d := deprecationFor(key.String())
		if d == nil {
			continue
		}
		if _, ok := seen[d.OldKey]; ok {
			continue
		}
		seen[d.OldKey] = struct{}{}
		found = append(found, *d)
	}

	return found
}

// logDeprecations emits one structured warning per retired spelling so
// operators see the migration path before the old keys stop parsing.
func logDeprecations(log *logger.Logger, path string, found []Deprecation) {
	for _, d := range found {
		log.Warn().
			Str("file", path).
			Str("old_key", d.OldKey).
			Str("new_key", d.NewKey).
			Str("deprecated_since", d.Since).
			Msg("deprecated settings key; values under it are ignored")
	}
}
