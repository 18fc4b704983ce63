package client

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/models"
)

// GetStatus returns the status of the chain.
func (c *Client) GetStatus(ctx context.Context) (models.Response, error) {
	return c.get(ctx, "/v1/status", nil)
}
