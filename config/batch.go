// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// BatchEntry pairs a network file with the job to run on it.
type BatchEntry struct {
	NetworkPath string   `yaml:"network"`
	Job         Job      `yaml:"job"`
	Network     *Network `yaml:"-"`
}

// Batch is a list of independent jobs run by a bounded worker pool.
type Batch struct {
	Workers int          `yaml:"workers"`
	Jobs    []BatchEntry `yaml:"jobs"`
}

// UnmarshalYAML pre-fills the entry's job with DefaultJob so entries without a
// job section still run with defaults.
func (e *BatchEntry) UnmarshalYAML(value *yaml.Node) error {
	type plain BatchEntry
	p := plain{Job: *DefaultJob()}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = BatchEntry(p)

	return nil
}

// LoadBatch reads a batch file and loads every referenced network.
// Relative network paths are resolved against the batch file's directory.
// Workers defaults to GOMAXPROCS.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	b := &Batch{}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}
	if b.Workers == 0 {
		b.Workers = runtime.GOMAXPROCS(0)
	}
	if b.Workers < 0 {
		return nil, fmt.Errorf("workers=%d: %w", b.Workers, ErrInvalidBatch)
	}
	if len(b.Jobs) == 0 {
		return nil, fmt.Errorf("%s: no jobs: %w", path, ErrInvalidBatch)
	}

	dir := filepath.Dir(path)
	for i := range b.Jobs {
		entry := &b.Jobs[i]
		if entry.NetworkPath == "" {
			return nil, fmt.Errorf("jobs[%d]: missing network: %w", i, ErrInvalidBatch)
		}
		if !filepath.IsAbs(entry.NetworkPath) {
			entry.NetworkPath = filepath.Join(dir, entry.NetworkPath)
		}
		if entry.Network, err = LoadNetwork(entry.NetworkPath); err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if err := entry.Job.ApplyEnvOverrides(); err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if err := entry.Job.Validate(); err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
	}

	return b, nil
}
