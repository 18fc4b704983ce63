// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// Resolver supplies the connection details a Client was not given
// explicitly. *credentials.Resolver is the production implementation.
type Resolver interface {
	// ResolveChainID returns the default chain id.
	ResolveChainID(ctx context.Context) (string, error)

	// ResolveEndpoint returns the base URL of chainID.
	ResolveEndpoint(ctx context.Context, chainID string) (string, error)

	// ResolveCredentials returns the HMAC key pair for chainID.
	ResolveCredentials(ctx context.Context, chainID string) (models.Credentials, error)
}
