// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the HMAC key pair used to authenticate requests against a
// Dragonchain node. A resolved value is never mutated.
type Credentials struct {
	// AuthKey is the shared secret. It is never sent over the wire.
	AuthKey string `json:"-"`

	// AuthKeyID identifies AuthKey on the node and is sent in the
	// Authorization header.
	AuthKeyID string `json:"auth_key_id"`
}

// IsComplete reports whether both halves of the key pair are present.
// Partial credentials are treated as absent by every resolution source.
func (c Credentials) IsComplete() bool {
	return c.AuthKey != "" && c.AuthKeyID != ""
}

// Resolution is everything a client needs to sign requests for one chain.
type Resolution struct {
	ChainID     string      `json:"chainId"`
	Endpoint    string      `json:"endpoint"`
	Credentials Credentials `json:"credentials"`
}
