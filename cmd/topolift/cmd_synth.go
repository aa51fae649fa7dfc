// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/topolift/builder"
	"github.com/katalvlaran/topolift/data"
)

type synthFlags struct {
	kind       string
	n          int
	featureDim int
	edgeAttrs  bool
	symmetric  bool
	seed       int64
}

func newSynthCmd(a *app) *cobra.Command {
	f := &synthFlags{}
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Emit a synthetic graph record as YAML",
		Long:  "Kinds: " + strings.Join(builder.Kinds(), ", ") + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := builder.ByKind(f.kind, f.n)
			if err != nil {
				return err
			}
			if f.featureDim < 1 {
				return fmt.Errorf("--feature-dim must be at least 1, got %d", f.featureDim)
			}
			opts := []builder.BuilderOption{builder.WithFeatureDim(f.featureDim)}
			if f.edgeAttrs {
				opts = append(opts, builder.WithEdgeAttrs())
			}
			if f.symmetric {
				opts = append(opts, builder.WithSymmetric())
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, builder.WithSeed(f.seed))
			}
			rec, err := builder.Record(con, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("synthesized record", zap.String("kind", f.kind), zap.Int("n", f.n))

			return data.Encode(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "cycle", "fixture topology")
	cmd.Flags().IntVar(&f.n, "n", 5, "number of nodes")
	cmd.Flags().IntVar(&f.featureDim, "feature-dim", 1, "node feature columns")
	cmd.Flags().BoolVar(&f.edgeAttrs, "edge-attrs", false, "emit edge_attr")
	cmd.Flags().BoolVar(&f.symmetric, "symmetric", false, "emit both directions of every edge")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random node features from this seed")

	return cmd
}
