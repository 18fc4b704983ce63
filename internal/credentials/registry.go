package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/dragonchain-go/internal/utils"
)

const (
	// RegistryURL is the base URL of the Dragonchain registration service.
	// The chain id is appended to it.
	RegistryURL = "https://matchmaking.api.dragonchain.com/registration/"

	// RegistryTimeout bounds a single registration lookup.
	RegistryTimeout = 30 * time.Second
)

// registration is the body returned by the registration service.
type registration struct {
	URL string `json:"url"`
}

// registryClient is the resty-backed RegistryClient.
type registryClient struct {
	client  *utils.HTTPClient
	baseURL string
}

// NewRegistryClient returns a RegistryClient that queries baseURL+chainID
// with a fixed RegistryTimeout. baseURL must end with a slash.
func NewRegistryClient(baseURL string) RegistryClient {
	opts := utils.DefaultHTTPClientOptions()
	opts.Timeout = RegistryTimeout

	return &registryClient{
		client:  utils.NewHTTPClient(opts),
		baseURL: baseURL,
	}
}

// LookupEndpoint returns the "url" field of the registration of chainID.
// The body is decoded whatever the status code; a missing or empty url is
// reported as ErrMalformedRegistration.
func (c *registryClient) LookupEndpoint(ctx context.Context, chainID string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.baseURL + url.PathEscape(chainID))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	var reg registration
	if err = json.Unmarshal(resp.Body(), &reg); err != nil {
		return "", fmt.Errorf("%w: status %d: %w", ErrMalformedRegistration, resp.StatusCode(), err)
	}
	if reg.URL == "" {
		return "", fmt.Errorf("%w: status %d", ErrMalformedRegistration, resp.StatusCode())
	}

	return reg.URL, nil
}
