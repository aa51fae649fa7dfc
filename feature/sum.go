// SPDX-License-Identifier: MIT
//
// File: sum.go
// Role: SumLifting, the sum-of-incident-features aggregation rule.
// Contract:
//   - For each incidence_<s> (ranks ascending, then named suffixes) with no x_<s>:
//     x_<s> = |incidence_<s>|ᵀ · x_<src>, src = 0 for "hyperedges", r-1 for rank r.
//   - Existing x_<s> entries are never overwritten.
//   - The input descriptor is not mutated; the result is a shallow copy.

package feature

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/topolift/tensor"
	"github.com/katalvlaran/topolift/topology"
)

// SumLiftingName is the registry name of SumLifting.
const SumLiftingName = "SumLifting"

// SumLifting sets the features of each cell to the sum of the features of
// the lower-rank cells on its boundary.
type SumLifting struct{}

// Enrich implements Strategy.
// Complexity: Σ_r O(n_{r-1}·n_r·f) for dense incidence operators.
func (SumLifting) Enrich(topo topology.Descriptor) (topology.Descriptor, error) {
	out := topo.Clone()
	for _, suffix := range out.IncidenceSuffixes() {
		target := topology.FeaturePrefix + suffix
		if out.Has(target) {
			continue
		}
		src, err := sourceKey(suffix)
		if err != nil {
			return nil, err
		}
		x, err := sumFeatures(out, topology.IncidencePrefix+suffix, src)
		if err != nil {
			return nil, fmt.Errorf("SumLifting(%s): %w", target, err)
		}
		out[target] = x
	}

	return out, nil
}

// sourceKey names the feature matrix a suffix aggregates from.
func sourceKey(suffix string) (string, error) {
	if suffix == topology.HyperedgesSuffix {
		return topology.FeatureKey(0), nil
	}
	r, err := strconv.Atoi(suffix)
	if err != nil || r < 1 {
		return "", fmt.Errorf("SumLifting(incidence_%s): no source rank: %w", suffix, ErrMissingSource)
	}

	return topology.FeatureKey(r - 1), nil
}

// sumFeatures computes |B|ᵀ · x for B = topo[incKey], x = topo[srcKey].
func sumFeatures(topo topology.Descriptor, incKey, srcKey string) (*tensor.Dense, error) {
	if !topo.Has(srcKey) {
		return nil, fmt.Errorf("%s: %w", srcKey, ErrMissingSource)
	}
	x, err := topo.Dense(srcKey)
	if err != nil {
		return nil, err
	}
	inc, err := topo.Dense(incKey)
	if err != nil {
		return nil, err
	}
	abs, err := tensor.Abs(inc)
	if err != nil {
		return nil, err
	}
	bt, err := tensor.Transpose(abs)
	if err != nil {
		return nil, err
	}

	return tensor.Mul(bt, x)
}
