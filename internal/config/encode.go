package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"

	"github.com/raglet/raglet/settings"
)

// Encode serializes the document to TOML on w. Every key/value pair and
// the documented one-level nesting are preserved, so decoding the output
// yields a value equal to cfg.
func Encode(w io.Writer, cfg *settings.Settings) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	return nil
}

// EncodeBytes serializes the document to TOML in memory.
func EncodeBytes(cfg *settings.Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile atomically writes the document to path as TOML. The file is
// staged in the same directory and renamed into place, so readers never
// observe a partially written config.
func WriteFile(path string, cfg *settings.Settings) error {
	data, err := EncodeBytes(cfg)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing settings file %s: %w", path, err)
	}

	return nil
}
