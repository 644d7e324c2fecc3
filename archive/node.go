// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ctxParse    = "archive.Parse"
	ctxMarshal  = "archive.Marshal"
	ctxReadFile = "archive.ReadFile"
	ctxWrite    = "archive.WriteFile"

	yamlIndent = 2
	filePerm   = 0o644
)

// Node is a named hierarchical DataAdaptor. Values keep insertion order and
// children keep document order, so a Parse/Marshal round trip is stable.
type Node struct {
	name     string
	keys     []string
	values   map[string]string
	children []*Node
}

// NewNode returns an empty node with the given name.
func NewNode(name string) *Node {
	return &Node{name: name, values: make(map[string]string)}
}

// Name returns the node name (the YAML key it was read from).
func (n *Node) Name() string { return n.name }

// SetValue stores value under key, replacing any previous value.
func (n *Node) SetValue(key, value string) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// GetValue returns the value stored under key.
func (n *Node) GetValue(key string) (string, bool) {
	v, ok := n.values[key]

	return v, ok
}

// Keys returns the value keys in insertion order.
func (n *Node) Keys() []string { return append([]string(nil), n.keys...) }

// AddChild appends a new child node and returns it.
func (n *Node) AddChild(name string) *Node {
	c := NewNode(name)
	n.children = append(n.children, c)

	return c
}

// Child returns the first child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}

	return nil, false
}

// Require is Child returning ErrMissingChild instead of a flag.
func (n *Node) Require(name string) (*Node, error) {
	c, ok := n.Child(name)
	if !ok {
		return nil, fmt.Errorf("%q under %q: %w", name, n.name, ErrMissingChild)
	}

	return c, nil
}

// Children returns every child with the given name, in document order.
func (n *Node) Children(name string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}

	return out
}

// MarshalYAML implements yaml.Marshaler.
// Values come first, then children grouped by name in order of first
// appearance; a name used more than once becomes a sequence.
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.toYAML(), nil
}

func (n *Node) toYAML() *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range n.keys {
		out.Content = append(out.Content, scalar(k), scalar(n.values[k]))
	}

	var order []string
	groups := make(map[string][]*Node)
	for _, c := range n.children {
		if _, seen := groups[c.name]; !seen {
			order = append(order, c.name)
		}
		groups[c.name] = append(groups[c.name], c)
	}
	for _, name := range order {
		group := groups[name]
		if len(group) == 1 {
			out.Content = append(out.Content, scalar(name), group[0].toYAML())

			continue
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range group {
			seq.Content = append(seq.Content, c.toYAML())
		}
		out.Content = append(out.Content, scalar(name), seq)
	}

	return out
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// UnmarshalYAML implements yaml.Unmarshaler; the receiver keeps its name.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := fromYAML(n.name, value)
	if err != nil {
		return err
	}
	*n = *parsed

	return nil
}

// fromYAML converts a mapping node into a Node tree.
func fromYAML(name string, yn *yaml.Node) (*Node, error) {
	if yn.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("node %q: line %d: expected a mapping: %w", name, yn.Line, ErrFormat)
	}
	n := NewNode(name)
	for k := 0; k+1 < len(yn.Content); k += 2 {
		key, val := yn.Content[k], yn.Content[k+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("node %q: line %d: non-scalar key: %w", name, key.Line, ErrFormat)
		}
		switch val.Kind {
		case yaml.ScalarNode:
			n.SetValue(key.Value, val.Value)
		case yaml.MappingNode:
			c, err := fromYAML(key.Value, val)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, c)
		case yaml.SequenceNode:
			for _, item := range val.Content {
				c, err := fromYAML(key.Value, item)
				if err != nil {
					return nil, err
				}
				n.children = append(n.children, c)
			}
		default:
			return nil, fmt.Errorf("node %q: key %q: line %d: unsupported value: %w", name, key.Value, val.Line, ErrFormat)
		}
	}

	return n, nil
}

// Parse reads a YAML document into a root node named "".
// An empty document yields an empty root.
//
// Errors:
//   - YAML syntax errors from gopkg.in/yaml.v3.
//   - ErrFormat for documents that are not node-shaped.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxParse, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewNode(""), nil
	}
	root, err := fromYAML("", doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxParse, err)
	}

	return root, nil
}

// Marshal renders n as a YAML document.
func Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(n.toYAML()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMarshal, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMarshal, err)
	}

	return buf.Bytes(), nil
}

// ReadFile parses the YAML file at path.
func ReadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReadFile, err)
	}

	return Parse(data)
}

// WriteFile writes n as YAML to path.
func WriteFile(path string, n *Node) error {
	data, err := Marshal(n)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%s: %w", ctxWrite, err)
	}

	return nil
}
