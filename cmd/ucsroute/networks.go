package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsroute/dfs"
)

func newNetworksCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "networks [file]",
		Short: "List groups of stations that are connected to each other",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := root.loadGraph(args)
			if err != nil {
				return err
			}

			nets, err := dfs.Components(cmd.Context(), g)
			if err != nil {
				return err
			}
			for i, n := range nets {
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i+1, strings.Join(n, " ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
