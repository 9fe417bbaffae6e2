// SPDX-License-Identifier: MIT
package pipeline_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/katalvlaran/boolnet/matrix"
	"github.com/katalvlaran/boolnet/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const feedbackYAML = `
edges:
  - {from: A, to: B, sign: 1}
  - {from: B, to: C, sign: 1}
  - {from: C, to: A, sign: 1}
  - {from: A, to: A, sign: -1}
  - {from: B, to: B, sign: -1}
  - {from: C, to: C, sign: -1}
`

func feedbackGraph(t *testing.T) *core.Graph {
	t.Helper()
	n, err := config.ParseNetwork([]byte(feedbackYAML))
	require.NoError(t, err)
	g, err := n.Graph()
	require.NoError(t, err)

	return g
}

func seededJob(name string, seed int64) *config.Job {
	job := config.DefaultJob()
	job.Name = name
	job.Repeats = 4
	job.Steps = 10
	job.Seed = &seed
	job.Window.Size = 5

	return job
}

func TestRun_Shapes(t *testing.T) {
	res, err := pipeline.Run(context.Background(), feedbackGraph(t), seededJob("shape", 1), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Incidence.N())
	assert.Equal(t, 3, res.Series.Nodes())
	assert.Equal(t, 40, res.Series.Len())
	assert.Equal(t, 3, res.Expression.Rows())
	assert.Equal(t, 8, res.Expression.Cols())

	h := res.Handoff()
	assert.Equal(t, 8, h.Rows())
	assert.Equal(t, 3, h.Cols())

	starts := dynamics.StitchedInitialStates(res.Series, 10)
	require.Len(t, starts, 4)
	seen := map[string]bool{}
	for _, s := range starts {
		assert.False(t, seen[string(s)])
		seen[string(s)] = true
	}
}

// TestRun_WindowSums: under window normalization every non-silent window sums to 1.
func TestRun_WindowSums(t *testing.T) {
	res, err := pipeline.Run(context.Background(), feedbackGraph(t), seededJob("sums", 3), nil)
	require.NoError(t, err)
	for j, s := range res.Expression.ColSums() {
		if s != 0 {
			assert.InDelta(t, 1.0, s, 1e-12, "window %d", j)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	g := feedbackGraph(t)
	a, err := pipeline.Run(context.Background(), g, seededJob("a", 9), nil)
	require.NoError(t, err)
	b, err := pipeline.Run(context.Background(), g, seededJob("b", 9), nil)
	require.NoError(t, err)

	assert.True(t, a.Series.Equal(b.Series))
	assert.Equal(t, a.Expression.String(), b.Expression.String())
}

func TestRun_Errors(t *testing.T) {
	g := feedbackGraph(t)

	_, err := pipeline.Run(context.Background(), g, nil, nil)
	assert.ErrorIs(t, err, pipeline.ErrNilJob)

	bad := seededJob("bad", 1)
	bad.Repeats = 0
	_, err = pipeline.Run(context.Background(), g, bad, nil)
	assert.ErrorIs(t, err, config.ErrInvalidJob)

	tooMany := seededJob("many", 1)
	tooMany.Repeats = 8 // 2^3 − 1 = 7 distinct starts
	_, err = pipeline.Run(context.Background(), g, tooMany, nil)
	assert.ErrorIs(t, err, dynamics.ErrUnsatisfiableDistinctSampling)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Run(ctx, g, seededJob("cancelled", 1), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_Order(t *testing.T) {
	g := feedbackGraph(t)
	var tasks []pipeline.Task
	for i := 0; i < 12; i++ {
		tasks = append(tasks, pipeline.Task{Graph: g, Job: seededJob(fmt.Sprintf("job-%02d", i), int64(i))})
	}

	results, err := pipeline.RunBatch(context.Background(), tasks, 3, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, results, len(tasks))
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("job-%02d", i), r.Job.Name)

		solo, err := pipeline.Run(context.Background(), g, seededJob("solo", int64(i)), nil)
		require.NoError(t, err)
		assert.True(t, solo.Series.Equal(r.Series), "task %d differs from a solo run", i)
	}
}

func TestRunBatch_FirstErrorWins(t *testing.T) {
	g := feedbackGraph(t)
	bad := seededJob("bad", 1)
	bad.Window.Normalization = "median"
	tasks := []pipeline.Task{
		{Graph: g, Job: seededJob("ok", 1)},
		{Graph: g, Job: bad},
	}

	_, err := pipeline.RunBatch(context.Background(), tasks, 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 1")
}

func TestTasksFromBatch(t *testing.T) {
	n, err := config.ParseNetwork([]byte(feedbackYAML))
	require.NoError(t, err)
	b := &config.Batch{
		Workers: 2,
		Jobs: []config.BatchEntry{
			{NetworkPath: "a.yaml", Network: n, Job: *seededJob("first", 1)},
			{NetworkPath: "b.yaml", Network: n, Job: *seededJob("second", 2)},
		},
	}
	tasks, err := pipeline.TasksFromBatch(b)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[1].Job.Name)

	results, err := pipeline.RunBatch(context.Background(), tasks, b.Workers, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestWriteTSV(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{0.5, 0.25, 1, 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pipeline.WriteTSV(&buf, m, []string{"A", "B"}))
	assert.Equal(t, "A\t0.5\t0.25\nB\t1\t0\n", buf.String())

	buf.Reset()
	require.NoError(t, pipeline.WriteTSV(&buf, m, nil))
	assert.Equal(t, "0.5\t0.25\n1\t0\n", buf.String())
}
