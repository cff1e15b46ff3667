package domain

import "errors"

var (
	// ErrResourceNotFound is returned when a lookup path resolves in no search directory.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrPackageNotInIndex is returned when the data index has no such package.
	ErrPackageNotInIndex = errors.New("package not in index")
	// ErrChecksumMismatch is returned when a downloaded archive fails verification.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrChecksFailed signals that a run completed but at least one check failed.
	ErrChecksFailed = errors.New("checks failed")
)
