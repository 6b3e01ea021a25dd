// Package seedfile reads and writes form data as YAML. The top level is a
// mapping whose order becomes the row order. Colors use the !color tag.
package seedfile

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"inputform.app/inputform"
)

const colorTag = "!color"

// Load decodes a YAML mapping into form data.
func Load(r io.Reader) (*inputform.Data, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &inputform.Data{}, nil
		}
		return nil, errors.Wrap(err, "seedfile: decode")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("seedfile: line %d: top level must be a mapping", root.Line)
	}

	data := &inputform.Data{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]

		v, err := nodeValue(node)
		if err != nil {
			return nil, errors.Wrapf(err, "seedfile: line %d: field %q", node.Line, key.Value)
		}
		data.Set(key.Value, v)
	}

	return data, nil
}

func nodeValue(node *yaml.Node) (inputform.Value, error) {
	if node.Tag == colorTag {
		c, err := colorful.Hex(node.Value)
		if err != nil {
			return nil, err
		}
		return inputform.ColorOf(c), nil
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}

	return inputform.ValueOf(raw)
}

// Write encodes data as a YAML mapping in entry order.
func Write(w io.Writer, data *inputform.Data) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range data.Entries() {
		node, err := valueNode(e.Value)
		if err != nil {
			return errors.Wrapf(err, "seedfile: field %q", e.Name)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: e.Name}, node)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "seedfile: encode")
	}
	return enc.Close()
}

func valueNode(v inputform.Value) (*yaml.Node, error) {
	switch t := v.(type) {
	case inputform.Color:
		c, _ := colorful.MakeColor(t)
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: colorTag, Value: c.Hex()}, nil
	case inputform.Vector2:
		return flowNode(t[:])
	case inputform.Vector3:
		return flowNode(t[:])
	case inputform.List:
		return flowNode([]string(t))
	case inputform.Bool:
		return encodeNode(bool(t))
	case inputform.Float:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(float64(t))}, nil
	case inputform.Int:
		return encodeNode(int(t))
	case inputform.Text:
		return encodeNode(string(t))
	}

	return nil, &inputform.UnsupportedValueTypeError{Type: "nil"}
}

func encodeNode(v any) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

func flowNode(v any) (*yaml.Node, error) {
	node, err := encodeNode(v)
	if err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

// formatFloat keeps a decimal point so the scalar reads back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
