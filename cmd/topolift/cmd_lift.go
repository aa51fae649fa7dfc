// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/topolift/batch"
	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/feature"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/liftings"
)

// noneName selects the identity strategy on the command line.
const noneName = "none"

type liftFlags struct {
	lifting          string
	configPath       string
	preserveEdgeAttr bool
	featureLifting   string
	inputs           []string
	workers          int
}

func newLiftCmd(a *app) *cobra.Command {
	f := &liftFlags{}
	cmd := &cobra.Command{
		Use:   "lift",
		Short: "Apply a lifting to one or more YAML records",
		Long: `Reads each --input record (use - for stdin), applies the named lifting
and writes the lifted records to stdout as YAML documents separated by ---.

--feature-lifting and --preserve-edge-attr override the --config file.
Pass --feature-lifting none for the identity strategy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLift(cmd, a, f)
		},
	}
	cmd.Flags().StringVarP(&f.lifting, "lifting", "l", "", "catalog name (see 'topolift liftings')")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML lifting configuration")
	cmd.Flags().BoolVar(&f.preserveEdgeAttr, "preserve-edge-attr", false, "carry edge_attr onto the graph")
	cmd.Flags().StringVar(&f.featureLifting, "feature-lifting", "", "feature strategy name, or 'none'")
	cmd.Flags().StringArrayVarP(&f.inputs, "input", "i", nil, "input record file (repeatable)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("lifting")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runLift(cmd *cobra.Command, a *app, f *liftFlags) error {
	cfg, err := loadLiftConfig(cmd, f)
	if err != nil {
		return err
	}
	tr, err := liftings.New(f.lifting, cfg, lifting.WithLogger(a.logger))
	if err != nil {
		return err
	}

	records := make([]*data.Record, len(f.inputs))
	for i, path := range f.inputs {
		if records[i], err = readRecord(cmd.InOrStdin(), path); err != nil {
			return err
		}
	}

	out, err := batch.Apply(context.Background(), tr, records, f.workers, batch.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("lifted records",
		zap.String("lifting", f.lifting),
		zap.String("strategy", tr.FeatureLifting().String()),
		zap.Int("records", len(out)))

	return writeRecords(cmd.OutOrStdout(), out)
}

// loadLiftConfig reads --config and applies flag overrides.
func loadLiftConfig(cmd *cobra.Command, f *liftFlags) (lifting.Config, error) {
	var cfg lifting.Config
	if f.configPath != "" {
		file, err := os.Open(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if cfg, err = lifting.LoadConfig(file); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("preserve-edge-attr") {
		cfg.PreserveEdgeAttr = f.preserveEdgeAttr
	}
	if cmd.Flags().Changed("feature-lifting") {
		name := feature.Some(f.featureLifting)
		if f.featureLifting == noneName {
			name = feature.None
		}
		cfg = cfg.WithFeatureLifting(name)
	}

	return cfg, nil
}

func readRecord(stdin io.Reader, path string) (*data.Record, error) {
	if path == "-" {
		return data.Decode(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	rec, err := data.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rec, nil
}

func writeRecords(w io.Writer, recs []*data.Record) error {
	for i, rec := range recs {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := data.Encode(w, rec); err != nil {
			return err
		}
	}

	return nil
}
