package config

import (
	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

// Loader assembles the effective settings document from the shipped
// defaults, a TOML file with optional overlays, and the environment.
type Loader struct {
	path     string
	overlays []string
	dotenv   string
	strict   bool
	skipEnv  bool
	log      *logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithOverlays layers additional partial TOML files over the main file, in
// order. Keys set in an overlay win; keys it omits keep their values from
// earlier layers.
func WithOverlays(paths ...string) Option {
	return func(l *Loader) { l.overlays = append(l.overlays, paths...) }
}

// WithDotenv seeds the process environment from the .env file at path
// before applying environment overrides. A missing file is ignored.
func WithDotenv(path string) Option {
	return func(l *Loader) { l.dotenv = path }
}

// WithStrict makes unknown keys in any settings file a load error instead
// of a warning.
func WithStrict() Option {
	return func(l *Loader) { l.strict = true }
}

// WithoutEnv skips the environment layer. Used when two files must be
// compared exactly as written.
func WithoutEnv() Option {
	return func(l *Loader) { l.skipEnv = true }
}

// WithLogger routes load warnings (unknown keys, deprecations) to log.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader returns a Loader for the settings file at path. An empty path
// loads defaults plus environment only.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		path: path,
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load layers defaults, file, overlays, and environment, then validates.
// Returns the effective document or an error describing every violation.
func (l *Loader) Load() (*settings.Settings, error) {
	b := newSettingsBuilder(l.log)

	if l.path != "" {
		b = b.withFile(l.path)
	}
	for _, overlay := range l.overlays {
		b = b.withFile(overlay)
	}

	if !l.skipEnv {
		if l.dotenv != "" {
			b = b.withDotenv(l.dotenv)
		}
		b = b.withEnv()
	}

	return b.build(l.strict)
}

// Load is a convenience for NewLoader(path, opts...).Load().
func Load(path string, opts ...Option) (*settings.Settings, error) {
	return NewLoader(path, opts...).Load()
}
