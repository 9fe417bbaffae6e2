// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/katalvlaran/boolnet/expression"
	"github.com/katalvlaran/boolnet/incidence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestParseNetwork_Feedback(t *testing.T) {
	n, err := config.ParseNetwork([]byte(feedbackYAML))
	require.NoError(t, err)
	assert.Equal(t, incidence.DefaultSignAttribute, n.SignAttribute)

	g, err := n.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	inc, err := n.Encode()
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 4, 6}, inc.Ptr)
	assert.Equal(t, []string{"A", "B", "C"}, inc.Nodes)
}

func TestParseNetwork_MultigraphAndIndex(t *testing.T) {
	doc := `
multigraph: true
nodes: [X, Y, Z]
index: {Z: 0, Y: 1, X: 2}
edges:
  - {from: X, to: Y, sign: 1}
  - {from: X, to: Y, sign: -1}
  - {from: Y, to: X, sign: 1}
`
	n, err := config.ParseNetwork([]byte(doc))
	require.NoError(t, err)
	inc, err := n.Encode()
	require.NoError(t, err)

	assert.Equal(t, []string{"Z", "Y", "X"}, inc.Nodes)
	// Z has no inputs, Y has X(+1) and X(−1), X has Y(+1).
	assert.Equal(t, []int32{0, 0, 2, 3}, inc.Ptr)
	assert.Equal(t, []int32{2, 2, 1}, inc.Adj)
	assert.Equal(t, []int32{1, -1, 1}, inc.Func)
}

func TestParseNetwork_CustomSignAttribute(t *testing.T) {
	doc := `
sign_attribute: effect
edges:
  - {from: P, to: Q, sign: -1}
  - {from: Q, to: P, sign: 1}
`
	n, err := config.ParseNetwork([]byte(doc))
	require.NoError(t, err)
	inc, err := n.Encode()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -1}, inc.Func)
}

func TestParseNetwork_Invalid(t *testing.T) {
	_, err := config.ParseNetwork([]byte("edges:\n  - {from: A, to: B, sign: 2}\n"))
	assert.ErrorIs(t, err, config.ErrBadSign)

	_, err = config.ParseNetwork([]byte("edges:\n  - {from: A, sign: 1}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidNetwork)

	_, err = config.ParseNetwork([]byte("edges: [oops"))
	assert.Error(t, err)

	n, err := config.ParseNetwork([]byte("edges:\n  - {from: A, to: B, sign: 1}\n"))
	require.NoError(t, err)
	_, err = n.Encode()
	assert.ErrorIs(t, err, incidence.ErrTooSmallNetwork)
}

func TestLoadNetwork_Missing(t *testing.T) {
	_, err := config.LoadNetwork(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultJob(t *testing.T) {
	job := config.DefaultJob()
	require.NoError(t, job.Validate())
	assert.Equal(t, 10, job.Repeats)
	assert.Equal(t, 100, job.Steps)
	assert.Nil(t, job.Seed)

	norm, err := job.Normalization()
	require.NoError(t, err)
	assert.Equal(t, expression.NormWindow, norm)
}

func TestLoadJob_PartialKeepsDefaults(t *testing.T) {
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvMode, "")
	path := writeFile(t, t.TempDir(), "job.yaml", `
name: quick
steps: 8
mode: async
seed: 5
window: {size: 4}
`)
	job, err := config.LoadJob(path)
	require.NoError(t, err)
	require.NoError(t, job.Validate())

	assert.Equal(t, "quick", job.Name)
	assert.Equal(t, 10, job.Repeats)
	assert.Equal(t, 8, job.Steps)
	require.NotNil(t, job.Seed)
	assert.Equal(t, int64(5), *job.Seed)
	assert.Equal(t, 4, job.Window.Size)
	assert.Equal(t, "window", job.Window.Normalization)
}

func TestLoadJob_MissingFileAndEnv(t *testing.T) {
	t.Setenv(config.EnvSeed, "77")
	t.Setenv(config.EnvMode, "asynchronous")
	job, err := config.LoadJob(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NotNil(t, job.Seed)
	assert.Equal(t, int64(77), *job.Seed)
	assert.Equal(t, "asynchronous", job.Mode)

	t.Setenv(config.EnvSeed, "abc")
	_, err = config.LoadJob(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidJob)
}

// TestJob_RunOptionsReproduce: options from the same seeded job give the same run.
func TestJob_RunOptionsReproduce(t *testing.T) {
	n, err := config.ParseNetwork([]byte(feedbackYAML))
	require.NoError(t, err)
	inc, err := n.Encode()
	require.NoError(t, err)
	eng, err := dynamics.FromIncidence(inc)
	require.NoError(t, err)

	seed := int64(11)
	job := config.DefaultJob()
	job.Mode = "async"
	job.Seed = &seed
	opts, err := job.RunOptions()
	require.NoError(t, err)

	a, err := eng.Run(20, opts...)
	require.NoError(t, err)
	b, err := eng.Run(20, opts...)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestJob_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Job)
		want   error
	}{
		{"repeats", func(j *config.Job) { j.Repeats = 0 }, config.ErrInvalidJob},
		{"steps", func(j *config.Job) { j.Steps = 0 }, config.ErrInvalidJob},
		{"mode", func(j *config.Job) { j.Mode = "parallel" }, dynamics.ErrUnknownMode},
		{"tie", func(j *config.Job) { j.TiePolicy = "coin" }, dynamics.ErrUnknownTiePolicy},
		{"granularity", func(j *config.Job) { j.AsyncGranularity = "edge" }, dynamics.ErrUnknownGranularity},
		{"normalization", func(j *config.Job) { j.Window.Normalization = "max" }, expression.ErrUnknownNormalization},
		{"size", func(j *config.Job) { j.Window.Size = 0 }, expression.ErrInvalidSize},
		{"overlap", func(j *config.Job) { j.Window.Overlap = 10 }, expression.ErrInvalidOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := config.DefaultJob()
			tc.mutate(job)
			assert.ErrorIs(t, job.Validate(), tc.want)
		})
	}
}

func TestLoadBatch(t *testing.T) {
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvMode, "")
	dir := t.TempDir()
	writeFile(t, dir, "nets/feedback.yaml", feedbackYAML)
	path := writeFile(t, dir, "batch.yaml", `
workers: 2
jobs:
  - network: nets/feedback.yaml
    job: {name: first, repeats: 3, steps: 5, seed: 1, window: {size: 5}}
  - network: nets/feedback.yaml
`)
	b, err := config.LoadBatch(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Workers)
	require.Len(t, b.Jobs, 2)

	assert.Equal(t, filepath.Join(dir, "nets", "feedback.yaml"), b.Jobs[0].NetworkPath)
	require.NotNil(t, b.Jobs[0].Network)
	assert.Equal(t, "first", b.Jobs[0].Job.Name)
	assert.Equal(t, 3, b.Jobs[0].Job.Repeats)
	assert.Equal(t, "default", b.Jobs[1].Job.Name)
	assert.Equal(t, 100, b.Jobs[1].Job.Steps)
}

func TestLoadBatch_Invalid(t *testing.T) {
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvMode, "")
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.yaml", "workers: 1\n")
	_, err := config.LoadBatch(empty)
	assert.ErrorIs(t, err, config.ErrInvalidBatch)

	noNet := writeFile(t, dir, "nonet.yaml", "jobs:\n  - job: {name: x}\n")
	_, err = config.LoadBatch(noNet)
	assert.ErrorIs(t, err, config.ErrInvalidBatch)

	writeFile(t, dir, "net.yaml", feedbackYAML)
	badJob := writeFile(t, dir, "badjob.yaml", "jobs:\n  - network: net.yaml\n    job: {repeats: -1}\n")
	_, err = config.LoadBatch(badJob)
	assert.ErrorIs(t, err, config.ErrInvalidJob)
}
