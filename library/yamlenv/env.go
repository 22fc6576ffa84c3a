// Package yamlenv provides YAML scalar values that may reference
// environment variables.
//
// A value written as ${NAME} is replaced with the variable's content, and
// ${NAME:fallback} falls back to the literal after the colon when NAME is
// unset or empty. Anything else is decoded as a plain YAML scalar.
package yamlenv

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var reference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// Env is a config value resolved from YAML and the process environment.
type Env[T any] struct {
	Value T

	// Raw is the scalar as written in the file, before expansion.
	Raw string
}

// New wraps a literal value.
func New[T any](v T) *Env[T] {
	return &Env[T]{Value: v}
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("yamlenv: line %d: expected scalar, got kind %d", node.Line, node.Kind)
	}

	e.Raw = node.Value
	expanded := Expand(node.Value)

	resolved := yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: expanded,
		Line:  node.Line,
	}
	if expanded == node.Value {
		resolved.Tag = node.Tag
		resolved.Style = node.Style
	}

	var out T
	if err := resolved.Decode(&out); err != nil {
		return fmt.Errorf("yamlenv: line %d: decode %q: %w", node.Line, expanded, err)
	}
	e.Value = out

	return nil
}

// Expand replaces every ${NAME} and ${NAME:fallback} reference in s.
func Expand(s string) string {
	return reference.ReplaceAllStringFunc(s, func(m string) string {
		parts := reference.FindStringSubmatch(m)
		if v, ok := os.LookupEnv(parts[1]); ok && v != "" {
			return v
		}
		return parts[2]
	})
}
