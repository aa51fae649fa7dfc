// SPDX-License-Identifier: MIT

// Command topolift lifts graph records to higher-order topologies.
//
//	topolift lift --lifting graph2simplicial/clique --input graph.yaml
//	topolift synth --kind cycle --n 5 | topolift lift --lifting graph2cell/cycle --input -
//	topolift strategies
//	topolift liftings
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
