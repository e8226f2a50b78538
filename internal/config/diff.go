package config

import (
	"reflect"
	"sort"
	"strings"

	"github.com/raglet/raglet/settings"
)

// ChangeSummary describes the result of comparing two settings documents.
type ChangeSummary struct {
	// ChangedKeys lists the dotted TOML paths whose values differ, sorted.
	ChangedKeys []string
	// RestartRequired is true when any changed key is not hot-reloadable.
	RestartRequired bool
}

// hotReloadAllowlist names the keys the platform applies without a
// restart: sampling parameters, tool selection, and throughput limits.
// Provider selections, dimensions, and storage layout always require a
// restart.
var hotReloadAllowlist = map[string]struct{}{
	"agent.tool_names":                                  {},
	"agent.generation_config.temperature":               {},
	"agent.generation_config.top_p":                     {},
	"agent.generation_config.max_tokens_to_sample":      {},
	"agent.generation_config.stream":                    {},
	"completion.concurrent_request_limit":               {},
	"completion.generation_config.temperature":          {},
	"completion.generation_config.top_p":                {},
	"completion.generation_config.max_tokens_to_sample": {},
	"completion.generation_config.stream":               {},
	"database.limits.global_per_min":                    {},
	"database.limits.monthly_limit":                     {},
	"embedding.concurrent_request_limit":                {},
	"orchestration.ingestion_concurrency_limit":         {},
	"orchestration.graph_creation_concurrency_limit":    {},
	"orchestration.graph_enrichment_concurrency_limit":  {},
}

// Diff compares two documents and returns the changed keys plus a restart
// verdict.
func Diff(old, next *settings.Settings) ChangeSummary {
	summary := ChangeSummary{}
	summary.compareStruct("", reflect.ValueOf(*old), reflect.ValueOf(*next))
	sort.Strings(summary.ChangedKeys)

	return summary
}

func (s *ChangeSummary) compareStruct(prefix string, oldVal, nextVal reflect.Value) {
	t := oldVal.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		key := tomlKey(f)
		if key == "" {
			continue
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		ov := oldVal.Field(i)
		nv := nextVal.Field(i)

		if ov.Kind() == reflect.Struct {
			s.compareStruct(path, ov, nv)
			continue
		}

		// Leaf comparison; slices and maps compare structurally.
		if !reflect.DeepEqual(ov.Interface(), nv.Interface()) {
			s.record(path)
		}
	}
}

func (s *ChangeSummary) record(path string) {
	s.ChangedKeys = append(s.ChangedKeys, path)
	if _, ok := hotReloadAllowlist[path]; !ok {
		s.RestartRequired = true
	}
}

// tomlKey extracts the key name from a field's toml tag.
func tomlKey(f reflect.StructField) string {
	tag := f.Tag.Get("toml")
	if tag == "" || tag == "-" {
		return ""
	}

	return strings.Split(tag, ",")[0]
}
