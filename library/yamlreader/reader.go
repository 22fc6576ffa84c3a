// Package yamlreader loads typed configuration from YAML files.
package yamlreader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// NewConfig reads the file at path and decodes it into a fresh T.
// Unknown keys are rejected so typos in config files surface at startup.
func NewConfig[T any](path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return Decode[T](raw)
}

// Decode decodes raw YAML into a fresh T.
func Decode[T any](raw []byte) (*T, error) {
	var cfg T

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml.Decode: %w", err)
	}

	return &cfg, nil
}
