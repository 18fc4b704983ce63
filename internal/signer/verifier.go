package signer

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// KeyLookup returns the secret auth key for authKeyID, or false when the key
// is unknown.
type KeyLookup func(authKeyID string) (authKey string, ok bool)

// Verifier checks Authorization headers on the receiving side. It recomputes
// the canonical message with the algorithm named in the header.
type Verifier struct {
	chainID string
	lookup  KeyLookup

	maxSkew time.Duration
	now     func() time.Time
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithMaxSkew rejects timestamps further than skew from now. Zero disables
// the freshness check.
func WithMaxSkew(skew time.Duration, now func() time.Time) VerifierOption {
	return func(v *Verifier) {
		v.maxSkew = skew
		if now != nil {
			v.now = now
		}
	}
}

// NewVerifier returns a Verifier for requests addressed to chainID.
func NewVerifier(chainID string, lookup KeyLookup, opts ...VerifierOption) *Verifier {
	v := &Verifier{chainID: chainID, lookup: lookup, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ParsedAuthorization is the decoded form of an Authorization header.
type ParsedAuthorization struct {
	Algorithm Algorithm
	AuthKeyID string
	Signature string
}

// ParseAuthorization splits "DC1-HMAC-<ALG> <keyId>:<signature>".
func ParseAuthorization(header string) (ParsedAuthorization, error) {
	scheme, credential, ok := strings.Cut(header, " ")
	if !ok || !strings.HasPrefix(scheme, SchemePrefix) {
		return ParsedAuthorization{}, ErrMalformedAuthorization
	}

	alg := Algorithm(strings.TrimPrefix(scheme, SchemePrefix))
	if !alg.Valid() {
		return ParsedAuthorization{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(alg))
	}

	keyID, signature, ok := strings.Cut(credential, ":")
	if !ok || keyID == "" || signature == "" {
		return ParsedAuthorization{}, ErrMalformedAuthorization
	}

	return ParsedAuthorization{Algorithm: alg, AuthKeyID: keyID, Signature: signature}, nil
}

// Verify checks that header is a valid signature of req for chainID.
func (v *Verifier) Verify(chainID string, req Request, header string) error {
	if chainID != v.chainID {
		return fmt.Errorf("%w: got %q", ErrChainIDMismatch, chainID)
	}

	parsed, err := ParseAuthorization(header)
	if err != nil {
		return err
	}

	authKey, ok := v.lookup(parsed.AuthKeyID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAuthKeyID, parsed.AuthKeyID)
	}

	if v.maxSkew > 0 {
		ts, err := ParseTimestamp(req.Timestamp)
		if err != nil {
			return err
		}
		if d := v.now().Sub(ts); d > v.maxSkew || d < -v.maxSkew {
			return ErrStaleTimestamp
		}
	}

	got, err := base64.StdEncoding.DecodeString(parsed.Signature)
	if err != nil {
		return fmt.Errorf("%w: signature is not base64", ErrMalformedAuthorization)
	}

	want := mac(parsed.Algorithm, authKey, CanonicalMessage(parsed.Algorithm, v.chainID, req))
	if !hmac.Equal(got, want) {
		return ErrSignatureMismatch
	}

	return nil
}
