// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signer

import (
	"crypto/sha256"
	"hash"
	"strings"

	"github.com/MKhiriev/dragonchain-go/models"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names the digest used for both the body hash and the HMAC. The
// string value is written verbatim into the Authorization header.
type Algorithm string

const (
	SHA256     Algorithm = "SHA256"
	SHA3_256   Algorithm = "SHA3-256"
	BLAKE2b512 Algorithm = "BLAKE2b512"
)

// DefaultAlgorithm is used when a client is created without an explicit
// algorithm.
const DefaultAlgorithm = SHA256

var supportedAlgorithms = []Algorithm{SHA256, SHA3_256, BLAKE2b512}

// SupportedAlgorithms returns the algorithms accepted by [ParseAlgorithm].
func SupportedAlgorithms() []Algorithm {
	out := make([]Algorithm, len(supportedAlgorithms))
	copy(out, supportedAlgorithms)
	return out
}

// ParseAlgorithm maps a case-insensitive algorithm name onto an [Algorithm].
// An empty string yields [DefaultAlgorithm]. Unknown names return a
// PARAM_ERROR failure.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultAlgorithm, nil
	}
	for _, alg := range supportedAlgorithms {
		if strings.EqualFold(name, string(alg)) {
			return alg, nil
		}
	}
	return "", models.NewParamError("unsupported hmac algorithm %q: must be one of SHA256, SHA3-256, BLAKE2b512", name).
		WithCause(ErrUnsupportedAlgorithm)
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	for _, alg := range supportedAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}

func (a Algorithm) String() string {
	return string(a)
}

// hasher returns the constructor for a. It panics on an invalid algorithm;
// CredentialContext rejects those at construction.
func (a Algorithm) hasher() func() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New
	case SHA3_256:
		return sha3.New256
	case BLAKE2b512:
		return newBlake2b512
	default:
		panic("signer: unsupported algorithm " + string(a))
	}
}

func newBlake2b512() hash.Hash {
	// error is only returned for keys longer than 64 bytes
	h, _ := blake2b.New512(nil)
	return h
}
