// SPDX-License-Identifier: MIT

package linalg

import "errors"

var (
	// ErrDimensionMismatch indicates that a dynamically sized matrix did not
	// have the shape of the fixed-size container it was converted into.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNilMatrix indicates that a nil gonum matrix was passed to a converter.
	ErrNilMatrix = errors.New("linalg: nil matrix")
)
