// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: Record type, field-set snapshots and typed accessors for the graph fields.
// Determinism:
//   - Keys() returns field names sorted ascending.
// Concurrency:
//   - Concurrent reads are safe; Set is for single-goroutine construction only.

package data

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topolift/tensor"
)

// Well-known field names of a raw graph sample.
const (
	KeyX         = "x"
	KeyEdgeIndex = "edge_index"
	KeyEdgeAttr  = "edge_attr"
)

// Record is an open-ended keyed bag of named fields.
type Record struct {
	fields map[string]any
}

// New returns an empty Record.
func New() *Record {
	return &Record{fields: make(map[string]any)}
}

// FromDict builds a new Record from a field set. The map is copied; values
// are shared.
// Complexity: O(len(fields)).
func FromDict(fields map[string]any) *Record {
	r := &Record{fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		r.fields[k] = v
	}

	return r
}

// ToDict returns a private copy of the field set.
// Complexity: O(Len()).
func (r *Record) ToDict() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}

	return out
}

// Set stores v under key, replacing any previous value.
func (r *Record) Set(key string, v any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}
	r.fields[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]

	return v, ok
}

// Has reports whether key is present with a non-nil value.
func (r *Record) Has(key string) bool {
	v, ok := r.fields[key]

	return ok && v != nil
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Keys returns all field names in ascending order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Dense returns the matrix stored under key.
// Returns ErrFieldMissing when absent or nil, ErrFieldType for other types.
func (r *Record) Dense(key string) (*tensor.Dense, error) {
	v, ok := r.fields[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("Record.Dense(%q): %w", key, ErrFieldMissing)
	}
	m, ok := v.(*tensor.Dense)
	if !ok || m == nil {
		return nil, fmt.Errorf("Record.Dense(%q): %T: %w", key, v, ErrFieldType)
	}

	return m, nil
}

// X returns the node feature matrix.
func (r *Record) X() (*tensor.Dense, error) { return r.Dense(KeyX) }

// EdgeIndex returns the (2, E) edge index.
func (r *Record) EdgeIndex() (tensor.EdgeIndex, error) {
	v, ok := r.fields[KeyEdgeIndex]
	if !ok || v == nil {
		return tensor.EdgeIndex{}, fmt.Errorf("Record.EdgeIndex: %w", ErrFieldMissing)
	}
	switch ei := v.(type) {
	case tensor.EdgeIndex:
		return ei, ei.Validate()
	case *tensor.EdgeIndex:
		if ei == nil {
			return tensor.EdgeIndex{}, fmt.Errorf("Record.EdgeIndex: %w", ErrFieldMissing)
		}
		return *ei, ei.Validate()
	default:
		return tensor.EdgeIndex{}, fmt.Errorf("Record.EdgeIndex: %T: %w", v, ErrFieldType)
	}
}

// HasEdgeAttr reports whether the record carries a non-nil edge attribute matrix.
func (r *Record) HasEdgeAttr() bool { return r.Has(KeyEdgeAttr) }

// EdgeAttr returns the edge attribute matrix.
func (r *Record) EdgeAttr() (*tensor.Dense, error) { return r.Dense(KeyEdgeAttr) }
