// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/spf13/cobra"
)

func (a *app) newAttractorCmd() *cobra.Command {
	var (
		networkPath string
		state       string
		tie         string
		maxSteps    int
	)
	cmd := &cobra.Command{
		Use:   "attractor",
		Short: "Follow the synchronous trajectory from a state until it repeats",
		Example: `  boolsim attractor --network net.yaml --state 100
  boolsim attractor --network net.yaml --state 1 --tie on`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := config.LoadNetwork(networkPath)
			if err != nil {
				return err
			}
			inc, err := network.Encode()
			if err != nil {
				return err
			}
			eng, err := dynamics.FromIncidence(inc)
			if err != nil {
				return err
			}
			initial, err := parseState(state)
			if err != nil {
				return err
			}
			policy, err := dynamics.ParseTiePolicy(tie)
			if err != nil {
				return err
			}

			att, err := eng.FindAttractor(initial, maxSteps, dynamics.WithTiePolicy(policy))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes\t%s\n", strings.Join(inc.Nodes, " "))
			fmt.Fprintf(out, "transient\t%d\n", att.Transient)
			fmt.Fprintf(out, "period\t%d\n", att.Period)
			for _, s := range att.States {
				fmt.Fprintf(out, "state\t%s\n", formatState(s))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&networkPath, "network", "n", "", "Network YAML file (required)")
	cmd.Flags().StringVarP(&state, "state", "s", "", "Initial state as 0/1 characters in node order (required)")
	cmd.Flags().StringVar(&tie, "tie", dynamics.TieHold.String(), "Tie policy: hold, on or off")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1024, "Give up after this many ticks")
	_ = cmd.MarkFlagRequired("network")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

// parseState converts "1011" into a state vector.
func parseState(s string) ([]uint8, error) {
	out := make([]uint8, len(s))
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("state %q: position %d: %w", s, i, dynamics.ErrBadInitialState)
		}
	}

	return out, nil
}

func formatState(s []uint8) string {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = '0' + v
	}

	return string(b)
}
