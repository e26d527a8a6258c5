package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/openkraft/tokenkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.ProfileLoader for YAML and JSON files.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and parses the profile at path. Failures are *domain.LoadError.
func (l *YAMLLoader) Load(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Kind: domain.LoadErrorRead, Err: err}
	}
	return Parse(data, path)
}

// Parse converts YAML (or JSON) content into a profile, keeping key order.
// The document root must be a mapping.
func Parse(data []byte, source string) (*domain.Profile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.LoadError{Path: source, Kind: domain.LoadErrorParse, Err: err}
	}
	if doc.Kind == 0 {
		return nil, parseError(source, errors.New("document is empty"))
	}

	v, err := convert(&doc)
	if err != nil {
		return nil, parseError(source, err)
	}
	root, ok := v.(*domain.Mapping)
	if !ok {
		return nil, parseError(source, errors.New("document root must be a mapping"))
	}
	return &domain.Profile{Source: source, Root: root}, nil
}

func parseError(source string, err error) error {
	return &domain.LoadError{Path: source, Kind: domain.LoadErrorParse, Err: err}
}

func convert(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0])
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.MappingNode:
		m := domain.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind == yaml.AliasNode {
				key = key.Alias
			}
			if m.Has(key.Value) {
				return nil, fmt.Errorf("line %d: duplicate key %q", key.Line, key.Value)
			}
			v, err := convert(val)
			if err != nil {
				return nil, err
			}
			m.Set(key.Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convert(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		// Dates stay strings, as under the YAML 1.2 core schema.
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}
