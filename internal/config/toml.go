package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raglet/raglet/settings"
)

// decodeFile decodes the TOML document at path over cfg. Keys present in
// the file overwrite the corresponding fields; keys absent leave the
// current values (the shipped defaults, or an earlier layer) in place.
// Comments in the file, including commented-out alternates, are inert.
//
// The returned metadata records every key the file defined, which
// [unknownKeys] and [findDeprecations] inspect afterwards.
func decodeFile(path string, cfg *settings.Settings) (toml.MetaData, error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return md, fmt.Errorf("error decoding settings file %s: %w", path, err)
	}

	return md, nil
}

// unknownKeys returns the dotted paths of keys the file defined but the
// schema does not, excluding keys that are merely deprecated spellings
// (those are reported separately with a migration path).
func unknownKeys(md toml.MetaData) []string {
	var unknown []string
	for _, key := range md.Undecoded() {
		path := key.String()
		if deprecationFor(path) != nil {
			continue
		}
		unknown = append(unknown, path)
	}

	return unknown
}

// unknownKeysError wraps ErrUnknownKeys with the offending paths.
func unknownKeysError(unknown []string) error {
	return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(unknown, ", "))
}
