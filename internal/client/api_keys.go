package client

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/models"
)

// CreateAPIKey generates a new HMAC key on the node.
func (c *Client) CreateAPIKey(ctx context.Context, req models.CreateAPIKeyRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.post(ctx, "/v1/api-key", req, "")
}

// ListAPIKeys returns the ids and metadata of every HMAC key.
func (c *Client) ListAPIKeys(ctx context.Context) (models.Response, error) {
	return c.get(ctx, "/v1/api-key", nil)
}

// GetAPIKey returns the metadata of one HMAC key.
func (c *Client) GetAPIKey(ctx context.Context, req models.APIKeyRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/api-key/"+segment(req.KeyID), nil)
}

// DeleteAPIKey removes an HMAC key.
func (c *Client) DeleteAPIKey(ctx context.Context, req models.APIKeyRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.delete(ctx, "/v1/api-key/"+segment(req.KeyID))
}

// UpdateAPIKey changes the nickname of an HMAC key.
func (c *Client) UpdateAPIKey(ctx context.Context, req models.UpdateAPIKeyRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.put(ctx, "/v1/api-key/"+segment(req.KeyID), req)
}
