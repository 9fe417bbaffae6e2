// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/incidence"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Task is one independent unit of a batch.
type Task struct {
	Graph         *core.Graph
	Job           *config.Job
	EncodeOptions []incidence.Option
}

// TasksFromBatch builds one task per batch entry.
func TasksFromBatch(b *config.Batch) ([]Task, error) {
	tasks := make([]Task, 0, len(b.Jobs))
	for i := range b.Jobs {
		entry := &b.Jobs[i]
		g, err := entry.Network.Graph()
		if err != nil {
			return nil, fmt.Errorf("jobs[%d] %s: %w", i, entry.NetworkPath, err)
		}
		tasks = append(tasks, Task{
			Graph:         g,
			Job:           &entry.Job,
			EncodeOptions: entry.Network.EncodeOptions(),
		})
	}

	return tasks, nil
}

// RunBatch runs every task on at most workers goroutines (workers <= 0 means
// unbounded). Results are returned in task order. The first failure cancels
// the context seen by tasks that have not yet started and is returned.
func RunBatch(ctx context.Context, tasks []Task, workers int, logger *zap.Logger) ([]*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]*Result, len(tasks))

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	logger.Info("Starting batch", zap.Int("tasks", len(tasks)), zap.Int("workers", workers))
	for i, task := range tasks {
		eg.Go(func() error {
			res, err := Run(egCtx, task.Graph, task.Job, logger.With(zap.Int("task", i)), task.EncodeOptions...)
			if err != nil {
				return fmt.Errorf("task %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error("Batch failed", zap.Error(err))
		return nil, err
	}

	return results, nil
}
