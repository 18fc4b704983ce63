package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/dragonchain-go/models"
)

// GetBlock returns a single block by id.
func (c *Client) GetBlock(ctx context.Context, req models.GetBlockRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/block/"+segment(req.BlockID), nil)
}

// QueryBlocks runs a Redisearch query over blocks. Limit defaults to 10.
func (c *Client) QueryBlocks(ctx context.Context, req models.QueryBlocksRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/block", blocksQuery(req))
}

// GetVerifications returns the higher level verifications of a level 1
// block. A zero Level returns every level.
func (c *Client) GetVerifications(ctx context.Context, req models.GetVerificationsRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	var query url.Values
	if req.Level > 0 {
		query = url.Values{"level": {strconv.Itoa(req.Level)}}
	}

	return c.get(ctx, "/v1/verifications/"+segment(req.BlockID), query)
}

// GetPendingVerifications returns the chain ids still expected to verify a
// level 1 block.
func (c *Client) GetPendingVerifications(ctx context.Context, req models.GetBlockRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/verifications/pending/"+segment(req.BlockID), nil)
}
