// SPDX-License-Identifier: MIT

package liftings_test

import (
	"fmt"

	"github.com/katalvlaran/topolift/builder"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/liftings"
	"github.com/katalvlaran/topolift/topology"
)

// ExampleNew lifts a triangle to its clique complex and sums node features
// up to the 2-simplex.
func ExampleNew() {
	rec, err := builder.Record(builder.Complete(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	t, err := liftings.New(liftings.CliqueName, lifting.Config{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, err := t.Apply(rec)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	shape, _ := out.Get(topology.KeyShape)
	x1, _ := out.Dense(topology.FeatureKey(1))
	x2, _ := out.Dense(topology.FeatureKey(2))
	fmt.Println("shape:", shape)
	fmt.Println("x_1:", x1.Rows2D())
	fmt.Println("x_2:", x2.Rows2D())

	// Output:
	// shape: [3 3 1]
	// x_1: [[1] [2] [3]]
	// x_2: [[6]]
}
