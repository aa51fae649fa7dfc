// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: YAML representation of a Record (used by cmd/topolift).
// Policy:
//   - x and edge_attr always decode to *tensor.Dense; edge_index to tensor.EdgeIndex.
//   - Any other list of numeric rows decodes to *tensor.Dense; everything else
//     decodes to plain YAML values.
//   - Encode writes keys sorted, matrix rows in flow style.

package data

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topolift/tensor"
)

// Decode reads one YAML mapping document into a new Record.
func Decode(r io.Reader) (*Record, error) {
	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	rec := New()
	for key, node := range doc {
		v, err := decodeField(key, &node)
		if err != nil {
			return nil, err
		}
		rec.Set(key, v)
	}

	return rec, nil
}

// decodeField converts one YAML value according to the field policy above.
func decodeField(key string, node *yaml.Node) (any, error) {
	switch {
	case key == KeyEdgeIndex:
		var rows [][]int
		if err := node.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
		}
		if len(rows) == 0 {
			return tensor.EdgeIndex{Src: []int{}, Dst: []int{}}, nil
		}
		if len(rows) != 2 {
			return nil, fmt.Errorf("%w: %s: want 2 rows, got %d", ErrDecode, key, len(rows))
		}
		ei, err := tensor.NewEdgeIndex(rows[0], rows[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
		}
		return ei, nil
	case key == KeyX || key == KeyEdgeAttr || isNumericRows(node):
		var rows [][]float64
		if err := node.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
		}
		m, err := tensor.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
		}
		return m, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
		}
		return v, nil
	}
}

// isNumericRows reports whether node is a non-empty sequence of sequences of
// int/float scalars.
func isNumericRows(node *yaml.Node) bool {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return false
	}
	for _, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return false
		}
		for _, cell := range row.Content {
			if cell.Kind != yaml.ScalarNode || (cell.Tag != "!!int" && cell.Tag != "!!float") {
				return false
			}
		}
	}

	return true
}

// Encode writes rec as a YAML mapping document.
func Encode(w io.Writer, rec *Record) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range rec.Keys() {
		v, _ := rec.Get(key)
		val, err := encodeField(v)
		if err != nil {
			return fmt.Errorf("Encode(%q): %w", key, err)
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, val)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// encodeField renders tensors as row lists and leaves other values to yaml.v3.
func encodeField(v any) (*yaml.Node, error) {
	var payload any
	switch t := v.(type) {
	case *tensor.Dense:
		payload = t.Rows2D()
	case tensor.EdgeIndex:
		payload = [][]int{t.Src, t.Dst}
	default:
		payload = v
	}
	node := &yaml.Node{}
	if err := node.Encode(payload); err != nil {
		return nil, err
	}
	if _, isTensor := payload.([][]float64); isTensor {
		flowRows(node)
	}
	if _, isIndex := payload.([][]int); isIndex {
		flowRows(node)
	}

	return node, nil
}

// flowRows prints each row of a sequence-of-sequences on one line.
func flowRows(node *yaml.Node) {
	for _, row := range node.Content {
		row.Style = yaml.FlowStyle
	}
}
