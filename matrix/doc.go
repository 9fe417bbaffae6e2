// SPDX-License-Identifier: MIT

// Package matrix provides the dense real-valued matrix used to hand windowed
// expression data to downstream consumers.
//
// Dense is row-major (offset = i*cols + j). Zero-sized shapes are legal: an
// expression matrix with zero windows is N×0. Public accessors return sentinel
// errors instead of panicking, and Set/NewDenseFrom reject NaN and ±Inf.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); ColSums/Transpose: O(r*c).
package matrix
