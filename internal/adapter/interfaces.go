// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter sends signed requests to a Dragonchain node.
//
// The primary abstraction is [Dispatcher], which decouples the client facade
// from the transport. The package ships a resty implementation
// ([NewHTTPDispatcher]) that signs each request right before it is sent.
//
// Status codes are never turned into errors: a 4xx or 5xx answer is returned
// as a [models.Response] with OK set to false. Only transport failures and
// invalid requests produce an error.
package adapter

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Dispatcher signs and sends one request to a Dragonchain node.
type Dispatcher interface {
	// Dispatch generates a fresh timestamp, signs req and transfers it.
	// The node's answer is returned whatever its status code. An error is
	// returned only when the request is invalid or could not be delivered.
	Dispatch(ctx context.Context, req models.DispatchRequest) (models.Response, error)

	// Endpoint returns the normalised base URL requests are sent to.
	Endpoint() string
}
