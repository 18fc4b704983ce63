// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials resolves the chain id, endpoint and HMAC key pair a
// client needs before it can talk to a Dragonchain node.
//
// Every value is looked up through a fixed chain of sources:
//
//	chain id:    DRAGONCHAIN_ID -> [default] dragonchain_id
//	endpoint:    DRAGONCHAIN_ENDPOINT -> [<chainId>] endpoint -> registration service
//	credentials: AUTH_KEY + AUTH_KEY_ID -> [<chainId>] auth_key + auth_key_id -> smart contract secrets
//
// A source that fails or holds only part of a value is skipped. Only
// exhausting the whole chain returns an error, always with code NOT_FOUND.
package credentials
