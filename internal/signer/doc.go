// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package signer implements the DC1-HMAC request authentication scheme used
// by Dragonchain nodes.
//
// For every request a canonical message is built by joining, with "\n":
//
//	METHOD
//	/path
//	chain id
//	timestamp
//	content type (empty when there is no body)
//	base64(digest(body))
//
// and signed with HMAC under the secret auth key. The resulting header is
//
//	Authorization: DC1-HMAC-<ALGORITHM> <authKeyId>:<base64 signature>
//
// The digest and the HMAC always use the same algorithm, fixed when the
// [CredentialContext] is created. Nothing is cached: every call recomputes
// the message and the signature.
package signer
