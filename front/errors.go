// SPDX-License-Identifier: MIT

package front

import "errors"

// Sentinel errors returned by the front package. Match them with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// sizes, zero objectives, or ragged rows on ingestion).
	ErrBadShape = errors.New("front: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf objective value on ingestion.
	ErrNaNInf = errors.New("front: NaN or Inf encountered")

	// ErrCapacityExceeded is returned by Resize when the requested logical
	// size does not fit the allocated capacity. Callers that size their
	// buffers up front treat it as an internal defect.
	ErrCapacityExceeded = errors.New("front: capacity exceeded")

	// ErrOutOfRange indicates a point index outside [0, Len).
	ErrOutOfRange = errors.New("front: index out of range")
)
