// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) newBatchCmd() *cobra.Command {
	var (
		configPath string
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every job of a batch file in parallel and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.LoadBatch(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				b.Workers = workers
			}
			tasks, err := pipeline.TasksFromBatch(b)
			if err != nil {
				return err
			}
			results, err := pipeline.RunBatch(cmd.Context(), tasks, b.Workers, a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "job\tnodes\tedges\tticks\twindows\telapsed")
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%d\t%s\n",
					r.Job.Name, r.Incidence.N(), r.Incidence.E(),
					r.Series.Len(), r.Expression.Cols(), r.Elapsed)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Batch YAML file (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (overrides the batch file; <= 0 means unbounded)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
