// SPDX-License-Identifier: MIT

package pipeline

import "errors"

// ErrNilJob indicates a task without a job.
var ErrNilJob = errors.New("pipeline: job is nil")
