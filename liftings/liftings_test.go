// SPDX-License-Identifier: MIT

package liftings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolift/builder"
	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/feature"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/liftings"
	"github.com/katalvlaran/topolift/tensor"
	"github.com/katalvlaran/topolift/topology"
)

func fixture(t *testing.T, con builder.Constructor, opts ...builder.BuilderOption) *data.Record {
	t.Helper()
	rec, err := builder.Record(con, opts...)
	require.NoError(t, err)

	return rec
}

// requireChainComplex asserts B_r · B_{r+1} = 0.
func requireChainComplex(t *testing.T, topo topology.Descriptor, r int) {
	t.Helper()
	lo, err := topo.Dense(topology.IncidenceKey(r))
	require.NoError(t, err)
	hi, err := topo.Dense(topology.IncidenceKey(r + 1))
	require.NoError(t, err)
	prod, err := tensor.Mul(lo, hi)
	require.NoError(t, err)
	zero, err := tensor.NewDense(prod.Rows(), prod.Cols())
	require.NoError(t, err)
	assert.True(t, tensor.Equal(zero, prod), "B%d·B%d = %v", r, r+1, prod)
}

func TestSimplicialClique_Complete4(t *testing.T) {
	topo, err := liftings.SimplicialCliqueLifting{}.LiftTopology(fixture(t, builder.Complete(4)), lifting.Params{})
	require.NoError(t, err)

	assert.Equal(t, []int{4, 6, 4}, topo[topology.KeyShape])
	requireChainComplex(t, topo, 1)

	b2, err := topo.Dense(topology.IncidenceKey(2))
	require.NoError(t, err)
	assert.Equal(t, 6, b2.Rows())
	assert.Equal(t, 4, b2.Cols())

	for _, key := range []string{
		topology.DownLaplacianKey(1), topology.DownLaplacianKey(2),
		topology.UpLaplacianKey(0), topology.UpLaplacianKey(1),
	} {
		assert.True(t, topo.Has(key), key)
	}
	l0, err := topo.Dense(topology.UpLaplacianKey(0))
	require.NoError(t, err)
	// Graph Laplacian of K4: degree 3 on the diagonal, −1 elsewhere.
	d, _ := l0.At(0, 0)
	o, _ := l0.At(0, 1)
	assert.Equal(t, 3.0, d)
	assert.Equal(t, -1.0, o)

	assert.False(t, topo.Has(topology.FeatureKey(1)))
}

func TestSimplicialClique_HigherDimension(t *testing.T) {
	topo, err := liftings.SimplicialCliqueLifting{ComplexDim: 3}.LiftTopology(fixture(t, builder.Complete(4)), lifting.Params{})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 4, 1}, topo[topology.KeyShape])
	requireChainComplex(t, topo, 2)

	_, err = liftings.SimplicialCliqueLifting{ComplexDim: -1}.LiftTopology(fixture(t, builder.Complete(3)), lifting.Params{})
	require.ErrorIs(t, err, liftings.ErrInvalidParam)
}

func TestSimplicialClique_CarriesEdgeAttributes(t *testing.T) {
	rec := fixture(t, builder.Cycle(3), builder.WithEdgeAttrs())
	topo, err := liftings.SimplicialCliqueLifting{}.LiftTopology(rec, lifting.Params{PreserveEdgeAttr: true})
	require.NoError(t, err)

	x1, err := topo.Dense(topology.FeatureKey(1))
	require.NoError(t, err)
	// Cycle(3) labels (0,1)=1, (1,2)=2, (2,0)=3; skeleton order is 01, 02, 12.
	assert.Equal(t, [][]float64{{1}, {3}, {2}}, x1.Rows2D())
}

func TestHypergraphKHop_Path(t *testing.T) {
	rec := fixture(t, builder.Path(4))
	topo, err := liftings.HypergraphKHopLifting{}.LiftTopology(rec, lifting.Params{})
	require.NoError(t, err)

	assert.Equal(t, 4, topo[topology.KeyNumHyperedges])
	inc, err := topo.Dense("incidence_hyperedges")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 1, 0, 0},
		{1, 1, 1, 0},
		{0, 1, 1, 1},
		{0, 0, 1, 1},
	}, inc.Rows2D())

	wide, err := liftings.HypergraphKHopLifting{K: 3}.LiftTopology(rec, lifting.Params{})
	require.NoError(t, err)
	all, err := wide.Dense("incidence_hyperedges")
	require.NoError(t, err)
	for _, row := range all.Rows2D() {
		assert.Equal(t, []float64{1, 1, 1, 1}, row)
	}

	_, err = liftings.HypergraphKHopLifting{K: -1}.LiftTopology(rec, lifting.Params{})
	require.ErrorIs(t, err, liftings.ErrInvalidParam)
}

func TestCellCycle_Square(t *testing.T) {
	rec := fixture(t, builder.Cycle(4), builder.WithEdgeAttrs(), builder.WithSymmetric())
	topo, err := liftings.CellCycleLifting{}.LiftTopology(rec, lifting.Params{PreserveEdgeAttr: true})
	require.NoError(t, err)

	assert.Equal(t, []int{4, 4, 1}, topo[topology.KeyShape])
	requireChainComplex(t, topo, 1)
	b2, err := topo.Dense(topology.IncidenceKey(2))
	require.NoError(t, err)
	// Skeleton edges 01, 03, 12, 23; the cell walks 0→1→2→3→0.
	assert.Equal(t, [][]float64{{1}, {-1}, {1}, {1}}, b2.Rows2D())
	assert.True(t, topo.Has(topology.FeatureKey(1)))

	short, err := liftings.CellCycleLifting{MaxCellLength: 3}.LiftTopology(rec, lifting.Params{})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 0}, short[topology.KeyShape])
}

func TestCellCycle_Wheel(t *testing.T) {
	topo, err := liftings.CellCycleLifting{}.LiftTopology(fixture(t, builder.Wheel(6)), lifting.Params{})
	require.NoError(t, err)
	// E − V + 1 = 10 − 6 + 1.
	assert.Equal(t, []int{6, 10, 5}, topo[topology.KeyShape])
	requireChainComplex(t, topo, 1)
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{liftings.CycleName, liftings.KHopName, liftings.CliqueName}, liftings.Names())

	_, err := liftings.New("graph2void/none", lifting.Config{})
	require.ErrorIs(t, err, liftings.ErrUnknownLifting)

	_, err = liftings.New(liftings.CliqueName, lifting.Config{}.WithFeatureLifting(feature.Some("Bogus")))
	require.ErrorIs(t, err, feature.ErrUnknownStrategy)

	tr, err := liftings.New(liftings.CliqueName, lifting.Config{})
	require.NoError(t, err)
	assert.Equal(t, lifting.Graph, tr.Domain())

	out, err := tr.Apply(fixture(t, builder.Complete(4)))
	require.NoError(t, err)
	x2, err := out.Dense(topology.FeatureKey(2))
	require.NoError(t, err)
	// x_0 = [0,1,2,3]; each edge sums its endpoints, each triangle its three edges.
	assert.Equal(t, [][]float64{{6}, {8}, {10}, {12}}, x2.Rows2D())
	assert.True(t, out.Has(data.KeyEdgeIndex))
}

func TestCatalog_KHopEnrichesHyperedges(t *testing.T) {
	tr, err := liftings.New(liftings.KHopName, lifting.Config{})
	require.NoError(t, err)
	out, err := tr.Apply(fixture(t, builder.Star(4)))
	require.NoError(t, err)
	xh, err := out.Dense("x_hyperedges")
	require.NoError(t, err)
	// Hub hyperedge holds every node: 0+1+2+3; each leaf holds itself and the hub.
	assert.Equal(t, [][]float64{{6}, {1}, {2}, {3}}, xh.Rows2D())
}
