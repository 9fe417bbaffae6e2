// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidNetwork indicates a structurally invalid network file.
	ErrInvalidNetwork = errors.New("config: invalid network")

	// ErrBadSign indicates an edge sign other than +1 or −1.
	ErrBadSign = errors.New("config: edge sign must be 1 or -1")

	// ErrInvalidJob indicates a job with out-of-range numeric fields.
	ErrInvalidJob = errors.New("config: invalid job")

	// ErrInvalidBatch indicates a batch without jobs or with a bad worker count.
	ErrInvalidBatch = errors.New("config: invalid batch")
)
