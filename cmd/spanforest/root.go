// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/internal/app"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

var (
	input   string
	method  string
	root    string
	verbose bool
)

// newRootCmd builds the spanforest command. Flags are bound to package
// variables, so build one command per process.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spanforest",
		Short: "Compute the minimum spanning forest of a weighted edge list",
		Long: `spanforest reads an undirected weighted graph as an edge list
("src dst weight" per line, a bare name for an isolated vertex, '#' comments)
and prints its minimum spanning forest in the same format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), &app.Config{
				Input:   input,
				Method:  method,
				Root:    root,
				Verbose: verbose,
			}, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", app.StdinPath, "edge-list file, - for stdin")
	flags.StringVarP(&method, "method", "m", prim_kruskal.MethodKruskal, "algorithm: kruskal or prim")
	flags.StringVarP(&root, "root", "r", "", "start vertex for prim; empty covers every component")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every accepted and discarded edge")

	return cmd
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
