// Package topolift lifts graph data into higher-order topological domains
// (simplicial complexes, cell complexes, hypergraphs) for topological
// deep learning pipelines.
//
// 🚀 What is topolift?
//
//	A small pipeline library built around one idea: a lifting is
//		• a topology builder that reinterprets a record's connectivity, and
//		• a feature strategy that fills in features of the new cells,
//	composed by a single generic Transform.
//
// ✨ Guarantees
//
//   - Field preservation – every input field survives unless a lifted field replaces it
//   - Fail fast – unknown strategies and options are rejected at construction
//   - Deterministic – identical input and configuration give identical output
//   - Shareable – a Transform is immutable and safe for concurrent use
//
// Packages:
//
//	tensor/    - dense float64 matrices and the (2, E) edge index
//	data/      - the open keyed Record and its YAML codec
//	topology/  - the Descriptor produced by topology builders
//	feature/   - feature-lifting registry: Identity and SumLifting
//	graph/     - int-indexed undirected graph with NodeAttrs / EdgeAttrs
//	bfs/, dfs/ - traversals, k-hop neighborhoods and cycle bases
//	lifting/   - domains, Config, Transform and BuildGraph
//	liftings/  - clique, k-hop and cycle builders plus a name catalog
//	builder/   - synthetic record fixtures
//	metrics/   - Prometheus collector for lifting calls
//	batch/     - concurrent lifting of many records
//	cmd/topolift - command-line front end
//
// Quick start:
//
//	rec, _ := builder.Record(builder.Complete(4))
//	t, _ := liftings.New(liftings.CliqueName, lifting.Config{})
//	out, _ := t.Apply(rec) // x_0, incidence_1, incidence_2, x_1, x_2, ...
package topolift
