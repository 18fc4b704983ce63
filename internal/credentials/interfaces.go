package credentials

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_client_mock.go -package=mock

// RegistryClient looks up the public endpoint of a chain in the Dragonchain
// registration service.
type RegistryClient interface {
	LookupEndpoint(ctx context.Context, chainID string) (string, error)
}
