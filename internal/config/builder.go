package config

import (
	"errors"
	"fmt"

	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

// settingsBuilder layers configuration sources over the shipped defaults.
// Each with* method mutates the document in place, so later layers win;
// errors are joined and surface once in build.
type settingsBuilder struct {
	cfg        *settings.Settings
	log        *logger.Logger
	unknown    []string
	deprecated []Deprecation
	err        error
}

func newSettingsBuilder(log *logger.Logger) *settingsBuilder {
	return &settingsBuilder{
		cfg: settings.Default(),
		log: log,
	}
}

func (b *settingsBuilder) withFile(path string) *settingsBuilder {
	md, err := decodeFile(path, b.cfg)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	found := findDeprecations(md)
	logDeprecations(b.log, path, found)
	b.deprecated = append(b.deprecated, found...)

	unknown := unknownKeys(md)
	for _, key := range unknown {
		b.log.Warn().Str("file", path).Str("key", key).Msg("unknown settings key")
	}
	b.unknown = append(b.unknown, unknown...)

	return b
}

func (b *settingsBuilder) withDotenv(path string) *settingsBuilder {
	if err := loadDotenv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	if err := parseEnv(b.cfg); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

// build finalizes the document. Unknown keys become an error when strict
// is set; otherwise they were already logged by withFile. The returned
// document has passed [Validate].
func (b *settingsBuilder) build(strict bool) (*settings.Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building settings: %w", b.err)
	}

	if strict && len(b.unknown) > 0 {
		return nil, unknownKeysError(b.unknown)
	}

	return b.cfg, Validate(b.cfg)
}
