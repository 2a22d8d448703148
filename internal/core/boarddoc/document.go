// Package boarddoc implements the ordered JSON document used as board template
// and as synthesized board descriptor.
//
// The document is held as a yaml.Node tree: JSON parses as YAML, and the node
// tree keeps the key order of the source, which plain maps do not.
package boarddoc

import (
	"strconv"
	"strings"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	tagString = "!!str"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagBool   = "!!bool"
	tagNull   = "!!null"
)

// Document is an ordered JSON object.
type Document struct {
	root *yaml.Node
}

// Parse reads a JSON (or YAML) object.
func Parse(data []byte) (*Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, zerr.Wrap(err, domain.ErrTemplateParseFailed.Error())
	}

	root := &n
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrTemplateParseFailed, "document root must be an object"),
			"kind", kindName(root.Kind))
	}

	return &Document{root: root}, nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: cloneNode(d.root)}
}

// Has reports whether the key path exists.
func (d *Document) Has(path ...string) bool {
	_, err := d.lookup(path)
	return err == nil
}

// Lookup returns the scalar value at the key path.
func (d *Document) Lookup(path ...string) (string, bool) {
	n, err := d.lookup(path)
	if err != nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// Missing returns the paths, joined with dots, that are absent from the document.
func (d *Document) Missing(paths ...[]string) []string {
	var missing []string
	for _, p := range paths {
		if !d.Has(p...) {
			missing = append(missing, strings.Join(p, "."))
		}
	}
	return missing
}

// SetString replaces the value at an existing key path with a string.
func (d *Document) SetString(value string, path ...string) error {
	return d.set(&yaml.Node{Kind: yaml.ScalarNode, Tag: tagString, Value: value}, path)
}

// SetInt replaces the value at an existing key path with an integer.
func (d *Document) SetInt(value int, path ...string) error {
	return d.set(&yaml.Node{Kind: yaml.ScalarNode, Tag: tagInt, Value: strconv.Itoa(value)}, path)
}

func (d *Document) set(value *yaml.Node, path []string) error {
	n, err := d.lookup(path)
	if err != nil {
		return err
	}
	*n = *value
	return nil
}

func (d *Document) lookup(path []string) (*yaml.Node, error) {
	if len(path) == 0 {
		return nil, domain.ErrInvalidTemplatePath
	}

	current := d.root
	for i, key := range path {
		current = resolveAlias(current)
		if current.Kind != yaml.MappingNode {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTemplatePath, "not an object"),
				"path", strings.Join(path[:i], "."))
		}
		next := mappingValue(current, key)
		if next == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTemplatePath, "key not found"),
				"path", strings.Join(path[:i+1], "."))
		}
		current = next
	}
	return current, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	r := resolveAlias(n)
	c := *r
	c.Alias = nil
	if len(r.Content) > 0 {
		c.Content = make([]*yaml.Node, len(r.Content))
		for i, child := range r.Content {
			c.Content[i] = cloneNode(child)
		}
	}
	return &c
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty"
	}
}
