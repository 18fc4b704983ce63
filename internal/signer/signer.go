// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signer

import (
	"crypto/hmac"
	"encoding/base64"
	"strings"
)

// Header names that make up the wire contract with the node.
const (
	HeaderAuthorization = "Authorization"
	HeaderChainID       = "dragonchain"
	HeaderTimestamp     = "timestamp"
	HeaderContentType   = "Content-Type"
	HeaderCallbackURL   = "X-Callback-URL"
)

// SchemePrefix starts every Authorization value; the algorithm name follows.
const SchemePrefix = "DC1-HMAC-"

// Request is the part of an outbound request covered by the signature. It is
// built fresh for every request and discarded after signing.
type Request struct {
	Method      string
	Path        string
	Body        []byte
	ContentType string
	Timestamp   string
}

// Signer produces Authorization header values for one [CredentialContext].
// It holds no mutable state and is safe for concurrent use.
type Signer struct {
	cc *CredentialContext
}

// New returns a Signer bound to cc.
func New(cc *CredentialContext) *Signer {
	return &Signer{cc: cc}
}

// Context returns the credential context the signer is bound to.
func (s *Signer) Context() *CredentialContext {
	return s.cc
}

// CanonicalMessage returns the exact string that is signed for req.
func (s *Signer) CanonicalMessage(req Request) string {
	return CanonicalMessage(s.cc.algorithm, s.cc.chainID, req)
}

// Sign returns the base64 HMAC of the canonical message of req.
func (s *Signer) Sign(req Request) string {
	return sign(s.cc.algorithm, s.cc.credentials.AuthKey, CanonicalMessage(s.cc.algorithm, s.cc.chainID, req))
}

// AuthorizationHeader returns the full Authorization header value for req:
//
//	DC1-HMAC-<ALGORITHM> <authKeyId>:<signature>
func (s *Signer) AuthorizationHeader(req Request) string {
	return FormatAuthorization(s.cc.algorithm, s.cc.credentials.AuthKeyID, s.Sign(req))
}

// CanonicalMessage joins, in order, the upper-cased method, the path, the
// chain id, the timestamp, the content type and the base64 body digest.
func CanonicalMessage(alg Algorithm, chainID string, req Request) string {
	return strings.Join([]string{
		strings.ToUpper(req.Method),
		req.Path,
		chainID,
		req.Timestamp,
		req.ContentType,
		BodyDigest(alg, req.Body),
	}, "\n")
}

// BodyDigest returns the standard base64 encoding of the alg digest of body.
// A nil or empty body hashes the empty input.
func BodyDigest(alg Algorithm, body []byte) string {
	h := alg.hasher()()
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// FormatAuthorization assembles an Authorization header value.
func FormatAuthorization(alg Algorithm, authKeyID, signature string) string {
	return SchemePrefix + string(alg) + " " + authKeyID + ":" + signature
}

func sign(alg Algorithm, authKey, message string) string {
	return base64.StdEncoding.EncodeToString(mac(alg, authKey, message))
}

func mac(alg Algorithm, authKey, message string) []byte {
	h := hmac.New(alg.hasher(), []byte(authKey))
	h.Write([]byte(message))
	return h.Sum(nil)
}
