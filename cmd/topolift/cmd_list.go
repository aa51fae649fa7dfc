// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topolift/feature"
	"github.com/katalvlaran/topolift/liftings"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List feature-lifting strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, noneName)
			for _, name := range feature.Names() {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}

func newLiftingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "liftings",
		Short: "List catalog liftings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range liftings.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
