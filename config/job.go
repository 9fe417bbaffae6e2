// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/katalvlaran/boolnet/expression"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by LoadJob and LoadBatch.
const (
	EnvSeed = "BOOLSIM_SEED"
	EnvMode = "BOOLSIM_MODE"
)

// WindowConfig holds the expression windowing parameters.
type WindowConfig struct {
	Size          int    `yaml:"size"`
	Overlap       int    `yaml:"overlap"`
	Normalization string `yaml:"normalization"`
}

// Job describes one stitched simulation plus its expression windowing.
type Job struct {
	Name             string       `yaml:"name"`
	Repeats          int          `yaml:"repeats"`
	Steps            int          `yaml:"steps"`
	Mode             string       `yaml:"mode"`
	TiePolicy        string       `yaml:"tie_policy"`
	AsyncGranularity string       `yaml:"async_granularity"`
	Seed             *int64       `yaml:"seed,omitempty"`
	Window           WindowConfig `yaml:"window"`
}

// DefaultJob returns the defaults every decoded job starts from.
func DefaultJob() *Job {
	return &Job{
		Name:             "default",
		Repeats:          10,
		Steps:            100,
		Mode:             dynamics.Synchronous.String(),
		TiePolicy:        dynamics.TieHold.String(),
		AsyncGranularity: dynamics.SweepTick.String(),
		Window: WindowConfig{
			Size:          10,
			Overlap:       0,
			Normalization: expression.NormWindow.String(),
		},
	}
}

// UnmarshalYAML decodes on top of DefaultJob so omitted fields keep their defaults,
// including jobs nested inside a batch.
func (j *Job) UnmarshalYAML(value *yaml.Node) error {
	type plain Job
	p := plain(*DefaultJob())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*j = Job(p)

	return nil
}

// LoadJob reads a job file. A missing file yields DefaultJob.
func LoadJob(path string) (*Job, error) {
	job := DefaultJob()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return job, job.ApplyEnvOverrides()
		}
		return nil, fmt.Errorf("failed to read job: %w", err)
	}
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	if err := job.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	return job, nil
}

// ApplyEnvOverrides applies BOOLSIM_SEED and BOOLSIM_MODE. LoadJob and
// LoadBatch call it; callers starting from DefaultJob call it themselves.
func (j *Job) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidJob)
		}
		j.Seed = &seed
	}
	if v := os.Getenv(EnvMode); v != "" {
		j.Mode = v
	}

	return nil
}

// Validate checks numeric ranges and parses every enumerated field.
func (j *Job) Validate() error {
	if j.Repeats < 1 {
		return fmt.Errorf("job %q: repeats=%d: %w", j.Name, j.Repeats, ErrInvalidJob)
	}
	if j.Steps < 1 {
		return fmt.Errorf("job %q: steps=%d: %w", j.Name, j.Steps, ErrInvalidJob)
	}
	if _, err := j.RunOptions(); err != nil {
		return fmt.Errorf("job %q: %w", j.Name, err)
	}
	if _, err := j.Normalization(); err != nil {
		return fmt.Errorf("job %q: %w", j.Name, err)
	}
	w := j.Window
	if w.Size < 1 {
		return fmt.Errorf("job %q: %w", j.Name, expression.ErrInvalidSize)
	}
	if w.Overlap < 0 || w.Overlap >= w.Size {
		return fmt.Errorf("job %q: %w", j.Name, expression.ErrInvalidOverlap)
	}

	return nil
}

// RunOptions converts the job's dynamics settings into run options.
func (j *Job) RunOptions() ([]dynamics.RunOption, error) {
	mode, err := dynamics.ParseMode(j.Mode)
	if err != nil {
		return nil, err
	}
	tie, err := dynamics.ParseTiePolicy(j.TiePolicy)
	if err != nil {
		return nil, err
	}
	gran, err := dynamics.ParseAsyncGranularity(j.AsyncGranularity)
	if err != nil {
		return nil, err
	}
	opts := []dynamics.RunOption{
		dynamics.WithMode(mode),
		dynamics.WithTiePolicy(tie),
		dynamics.WithAsyncGranularity(gran),
	}
	if j.Seed != nil {
		opts = append(opts, dynamics.WithSeed(*j.Seed))
	}

	return opts, nil
}

// Normalization parses the window normalization.
func (j *Job) Normalization() (expression.Normalization, error) {
	return expression.ParseNormalization(j.Window.Normalization)
}
