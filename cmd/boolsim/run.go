// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newRunCmd() *cobra.Command {
	var (
		networkPath string
		jobPath     string
		seed        int64
		mode        string
		handoff     bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one job and print its expression matrix as TSV",
		Example: `  boolsim run --network net.yaml
  boolsim run --network net.yaml --job job.yaml --seed 42 --mode async`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := config.LoadNetwork(networkPath)
			if err != nil {
				return err
			}
			job := config.DefaultJob()
			if jobPath != "" {
				job, err = config.LoadJob(jobPath)
			} else {
				err = job.ApplyEnvOverrides()
			}
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				job.Seed = &seed
			}
			if mode != "" {
				job.Mode = mode
			}
			g, err := network.Graph()
			if err != nil {
				return err
			}

			res, err := pipeline.Run(cmd.Context(), g, job, a.logger, network.EncodeOptions()...)
			if err != nil {
				return err
			}
			a.logger.Debug("Writing expression", zap.Bool("handoff", handoff))
			if handoff {
				return pipeline.WriteTSV(cmd.OutOrStdout(), res.Handoff(), nil)
			}

			return pipeline.WriteTSV(cmd.OutOrStdout(), res.Expression, res.Incidence.Nodes)
		},
	}
	cmd.Flags().StringVarP(&networkPath, "network", "n", "", "Network YAML file (required)")
	cmd.Flags().StringVarP(&jobPath, "job", "j", "", "Job YAML file (default: built-in defaults)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (overrides the job file)")
	cmd.Flags().StringVar(&mode, "mode", "", "Update mode: synchronous or asynchronous")
	cmd.Flags().BoolVar(&handoff, "handoff", false, "Print windows × nodes instead of nodes × windows")
	_ = cmd.MarkFlagRequired("network")

	return cmd
}
