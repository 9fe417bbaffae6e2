// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/katalvlaran/boolnet/expression"
	"github.com/katalvlaran/boolnet/incidence"
	"github.com/katalvlaran/boolnet/matrix"
	"go.uber.org/zap"
)

// Result holds every artifact of one job.
type Result struct {
	Job        *config.Job
	Incidence  *incidence.Incidence
	Series     *dynamics.Series
	Expression *matrix.Dense // N × windows
	Elapsed    time.Duration
}

// Handoff returns the expression matrix as windows × nodes, one observation per row.
func (r *Result) Handoff() *matrix.Dense {
	return r.Expression.Transpose()
}

// Run encodes g, stitches job.Repeats runs of job.Steps time points and
// windows the result. The job is validated before any work starts.
func Run(ctx context.Context, g *core.Graph, job *config.Job, logger *zap.Logger, opts ...incidence.Option) (*Result, error) {
	if job == nil {
		return nil, ErrNilJob
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	runOpts, err := job.RunOptions()
	if err != nil {
		return nil, err
	}
	norm, err := job.Normalization()
	if err != nil {
		return nil, err
	}
	log := logger.With(zap.String("job", job.Name))
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	inc, err := incidence.Encode(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}
	log.Debug("Encoded network", zap.Int("nodes", inc.N()), zap.Int("edges", inc.E()))

	eng, err := dynamics.FromIncidence(inc)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series, err := dynamics.Stitch(eng, job.Repeats, job.Steps, runOpts...)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}
	log.Debug("Stitched series",
		zap.Int("repeats", job.Repeats),
		zap.Int("steps", job.Steps),
		zap.String("mode", job.Mode))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	expr, err := expression.ToExpression(series, job.Window.Size, job.Window.Overlap, norm)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}

	res := &Result{
		Job:        job,
		Incidence:  inc,
		Series:     series,
		Expression: expr,
		Elapsed:    time.Since(start),
	}
	log.Info("Job complete",
		zap.Int("nodes", inc.N()),
		zap.Int("edges", inc.E()),
		zap.Int("windows", expr.Cols()),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}
