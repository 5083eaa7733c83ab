package utils

import "errors"

// Sentinel error kinds, per spec: InvalidArgument, NotFound, Internal.
// Call sites check with errors.Is against these, matching the flat
// sentinel-error style used throughout the retrieved pack rather than a
// typed error hierarchy.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal invariant violation")
)
