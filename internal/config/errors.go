package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// value is unusable.
var (
	// ErrInvalidAlgorithm indicates an HMAC algorithm name that is not
	// SHA256, SHA3-256 or BLAKE2b512.
	ErrInvalidAlgorithm = errors.New("invalid algorithm configuration")
	// ErrInvalidTimeout indicates a negative request timeout.
	ErrInvalidTimeout = errors.New("invalid request timeout configuration")
)
