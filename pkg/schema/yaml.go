package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// ParseYAML loads a schema from a YAML document, preserving the document's
// key order for chain execution order. The document must be a mapping of
// path → rule specification:
//
//	email:
//	  required: true
//	  isEmail: true
//	  normalizeEmail: true
//	items.*.price:
//	  isNumeric: true
//	  min: 0
func ParseYAML(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &CompilationError{Err: fmt.Errorf("%w: %v", ErrBadSchema, err)}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &CompilationError{Err: fmt.Errorf("%w: empty document", ErrBadSchema)}
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, &CompilationError{Err: fmt.Errorf("%w: top level must be a mapping", ErrBadSchema)}
	}

	s := New()
	// Mapping node content alternates key, value.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]

		var path string
		if err := keyNode.Decode(&path); err != nil {
			return nil, &CompilationError{Err: fmt.Errorf("%w: bad path key at line %d", ErrBadSchema, keyNode.Line)}
		}

		var spec map[string]any
		if err := valueNode.Decode(&spec); err != nil {
			return nil, &CompilationError{Path: path,
				Err: fmt.Errorf("%w: entry must be a rule mapping: %v", ErrBadSchema, err)}
		}
		s.Field(path, Spec(spec))
	}
	return s, nil
}

// CompileYAML parses and compiles a YAML schema with the built-in registry.
func CompileYAML(data []byte) ([]chain.Chain, error) {
	s, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return Compile(s)
}
