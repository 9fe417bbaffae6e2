// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/boolnet/config"
	"github.com/spf13/cobra"
)

func (a *app) newEncodeCmd() *cobra.Command {
	var networkPath string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the compressed incidence arrays of a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := config.LoadNetwork(networkPath)
			if err != nil {
				return err
			}
			inc, err := network.Encode()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes\t%s\n", strings.Join(inc.Nodes, " "))
			fmt.Fprintf(out, "ptr\t%s\n", joinInts(inc.Ptr))
			fmt.Fprintf(out, "adj\t%s\n", joinInts(inc.Adj))
			fmt.Fprintf(out, "func\t%s\n", joinInts(inc.Func))

			return nil
		},
	}
	cmd.Flags().StringVarP(&networkPath, "network", "n", "", "Network YAML file (required)")
	_ = cmd.MarkFlagRequired("network")

	return cmd
}

func joinInts(xs []int32) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, " ")
}
