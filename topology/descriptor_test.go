// SPDX-License-Identifier: MIT

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolift/tensor"
	"github.com/katalvlaran/topolift/topology"
)

func TestDescriptor_IncidenceSuffixesOrder(t *testing.T) {
	d := topology.Descriptor{
		"incidence_10":         1,
		"incidence_2":          1,
		"incidence_hyperedges": 1,
		"incidence_1":          1,
		"x_0":                  1,
		"shape":                []int{3},
	}
	assert.Equal(t, []string{"1", "2", "10", "hyperedges"}, d.IncidenceSuffixes())
}

func TestDescriptor_CloneAndKeys(t *testing.T) {
	d := topology.Descriptor{"b": 1, "a": nil}
	c := d.Clone()
	c["c"] = 3

	assert.Equal(t, []string{"a", "b"}, d.Keys())
	assert.False(t, d.Has("a"))
	assert.True(t, c.Has("c"))
}

func TestDescriptor_Dense(t *testing.T) {
	m := tensor.MustFromRows([][]float64{{1}})
	d := topology.Descriptor{topology.FeatureKey(0): m, "shape": []int{1}}

	got, err := d.Dense("x_0")
	require.NoError(t, err)
	assert.Same(t, m, got)

	_, err = d.Dense("shape")
	require.ErrorIs(t, err, topology.ErrKeyType)
	_, err = d.Dense("missing")
	require.ErrorIs(t, err, topology.ErrKeyType)
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "incidence_2", topology.IncidenceKey(2))
	assert.Equal(t, "x_1", topology.FeatureKey(1))
	assert.Equal(t, "down_laplacian_1", topology.DownLaplacianKey(1))
	assert.Equal(t, "up_laplacian_0", topology.UpLaplacianKey(0))
}
