package frontmatter

import (
	"bytes"
	"slices"

	"gopkg.in/yaml.v3"
)

// Field is one frontmatter key/value pair.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered frontmatter block. Navigation themes read keys in
// whatever order they appear, so the order is kept exactly as built.
type Fields []Field

// Set replaces the value of key, or appends it when absent.
func (f Fields) Set(key string, value any) Fields {
	if i := f.index(key); i >= 0 {
		f[i].Value = value
		return f
	}
	return append(f, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	if i := f.index(key); i >= 0 {
		return f[i].Value, true
	}
	return nil, false
}

// Without returns a copy of f minus the named keys.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, 0, len(f))
	for _, field := range f {
		if !slices.Contains(keys, field.Key) {
			out = append(out, field)
		}
	}
	return out
}

func (f Fields) index(key string) int {
	return slices.IndexFunc(f, func(field Field) bool { return field.Key == key })
}

// MarshalYAML emits f as a mapping in insertion order.
func (f Fields) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range f {
		var value yaml.Node
		if err := value.Encode(field.Value); err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key},
			&value,
		)
	}
	return n, nil
}

// Serialize renders f as YAML without delimiters. An empty block renders as
// nothing.
func Serialize(f Fields) ([]byte, error) {
	if len(f) == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
