// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/topolift/tensor"
)

// Key prefixes and fixed keys.
const (
	IncidencePrefix     = "incidence_"
	FeaturePrefix       = "x_"
	DownLaplacianPrefix = "down_laplacian_"
	UpLaplacianPrefix   = "up_laplacian_"
	HyperedgesSuffix    = "hyperedges"
	KeyShape            = "shape"
	KeyNumHyperedges    = "num_hyperedges"
)

// ErrKeyType indicates a descriptor entry holds an unexpected type.
var ErrKeyType = errors.New("topology: entry has unexpected type")

// Descriptor maps names of newly introduced structural and feature tensors
// to their values.
type Descriptor map[string]any

// IncidenceKey returns "incidence_<r>".
func IncidenceKey(rank int) string { return IncidencePrefix + strconv.Itoa(rank) }

// FeatureKey returns "x_<r>".
func FeatureKey(rank int) string { return FeaturePrefix + strconv.Itoa(rank) }

// DownLaplacianKey returns "down_laplacian_<r>".
func DownLaplacianKey(rank int) string { return DownLaplacianPrefix + strconv.Itoa(rank) }

// UpLaplacianKey returns "up_laplacian_<r>".
func UpLaplacianKey(rank int) string { return UpLaplacianPrefix + strconv.Itoa(rank) }

// Clone returns a shallow copy; values are shared.
func (d Descriptor) Clone() Descriptor {
	out := make(Descriptor, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Keys returns all keys in ascending order.
func (d Descriptor) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Has reports whether key is present with a non-nil value.
func (d Descriptor) Has(key string) bool {
	v, ok := d[key]

	return ok && v != nil
}

// Dense returns the matrix stored under key, or ErrKeyType.
func (d Descriptor) Dense(key string) (*tensor.Dense, error) {
	m, ok := d[key].(*tensor.Dense)
	if !ok || m == nil {
		return nil, fmt.Errorf("Descriptor.Dense(%q): %T: %w", key, d[key], ErrKeyType)
	}

	return m, nil
}

// IncidenceSuffixes returns the suffixes s of every "incidence_<s>" key:
// integer ranks ascending first, then non-numeric suffixes (e.g. "hyperedges")
// in lexical order. Ranks must be processed low to high so that x_{r-1}
// exists before x_r is derived from it.
func (d Descriptor) IncidenceSuffixes() []string {
	var ranks []int
	var named []string
	for k := range d {
		if !strings.HasPrefix(k, IncidencePrefix) {
			continue
		}
		s := strings.TrimPrefix(k, IncidencePrefix)
		if r, err := strconv.Atoi(s); err == nil {
			ranks = append(ranks, r)
			continue
		}
		named = append(named, s)
	}
	sort.Ints(ranks)
	sort.Strings(named)
	out := make([]string, 0, len(ranks)+len(named))
	for _, r := range ranks {
		out = append(out, strconv.Itoa(r))
	}

	return append(out, named...)
}
