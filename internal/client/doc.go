// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the entry point of the SDK.
//
// [New] resolves whatever the caller did not supply (chain id, endpoint and
// credentials) once, builds an immutable signing context and a dispatcher
// bound to it, and returns a [Client] whose methods map onto the REST
// operations of a Dragonchain node.
//
// Every operation validates its parameters first and reports missing ones
// as PARAM_ERROR failures. A request that reaches the node always yields a
// [models.Response]; 4xx and 5xx statuses are data, not errors.
//
// A Client holds no mutable state and is safe for concurrent use.
package client
