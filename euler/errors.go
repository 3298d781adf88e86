// SPDX-License-Identifier: MIT

package euler

import "errors"

var (
	// ErrUnknownBasis is returned for a Basis value or name outside the supported set.
	ErrUnknownBasis = errors.New("euler: unknown basis")

	// ErrNotFinite is returned when the input matrix has a NaN or Inf entry.
	ErrNotFinite = errors.New("euler: matrix has non-finite entries")
)
