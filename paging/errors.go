// SPDX-License-Identifier: MIT
// Package paging: sentinel error set.
// All constructors and indexers return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.
// Panics are reserved for nonsensical option values (programmer error).

package paging

import "errors"

var (
	// ErrInvalidArgument is returned by constructors when a leading or trailing
	// null count, explicit or derived from a total size, is negative.
	ErrInvalidArgument = errors.New("paging: invalid argument")

	// ErrIndexOutOfBounds is returned by Get when index is outside [0, Size()).
	// It signals a contract violation by the caller, not a transient condition.
	ErrIndexOutOfBounds = errors.New("paging: index out of bounds")

	// ErrInvalidSnapshot is returned by AddCallback when the previous snapshot
	// cannot be an earlier state of the receiving list.
	ErrInvalidSnapshot = errors.New("paging: snapshot is not a previous state of this list")
)
