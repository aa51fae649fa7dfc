// SPDX-License-Identifier: MIT

// Package topology defines Descriptor, the ephemeral mapping a topology
// construction step produces and a feature-aggregation strategy consumes.
//
// Keys follow the rank-suffixed naming used throughout the pipeline:
//
//	incidence_<r>        |cells of rank r-1| × |cells of rank r| operator
//	incidence_hyperedges |nodes| × |hyperedges| operator
//	x_<r>, x_hyperedges  feature matrix of the cells of that rank
//	down_laplacian_<r>   B_rᵀ·B_r
//	up_laplacian_<r>     B_{r+1}·B_{r+1}ᵀ
//	shape                []int, number of cells per rank
//	num_hyperedges       int
//
// A Descriptor has no identity beyond the lifting call that produces it.
package topology
