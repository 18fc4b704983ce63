package signer

import "errors"

var (
	ErrMalformedAuthorization = errors.New("malformed authorization header")
	ErrUnsupportedAlgorithm   = errors.New("unsupported hmac algorithm")
	ErrUnknownAuthKeyID       = errors.New("unknown auth key id")
	ErrSignatureMismatch      = errors.New("signature mismatch")
	ErrChainIDMismatch        = errors.New("chain id mismatch")
	ErrStaleTimestamp         = errors.New("timestamp outside allowed skew")
	ErrMalformedTimestamp     = errors.New("malformed timestamp")
)
