package client

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/models"
)

// CreateTransactionType registers a transaction type with optional custom
// indexes. Index options that do not apply to the index type are dropped.
func (c *Client) CreateTransactionType(ctx context.Context, req models.CreateTransactionTypeRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	body := models.TransactionTypeBody{
		Version:         models.TransactionTypeVersion,
		TransactionType: req.TransactionType,
		CustomIndexes:   customIndexes(req.CustomIndexFields),
	}

	return c.post(ctx, "/v1/transaction-type", body, "")
}

// GetTransactionType returns a registered transaction type.
func (c *Client) GetTransactionType(ctx context.Context, req models.TransactionTypeRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/transaction-type/"+segment(req.TransactionType), nil)
}

// ListTransactionTypes returns every registered transaction type.
func (c *Client) ListTransactionTypes(ctx context.Context) (models.Response, error) {
	return c.get(ctx, "/v1/transaction-types", nil)
}

// DeleteTransactionType removes a registered transaction type.
func (c *Client) DeleteTransactionType(ctx context.Context, req models.TransactionTypeRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.delete(ctx, "/v1/transaction-type/"+segment(req.TransactionType))
}

// customIndexes copies fields, keeping only the options the node accepts
// for each index type. no_index applies to every type.
func customIndexes(fields []models.CustomIndexField) []models.CustomIndexField {
	if len(fields) == 0 {
		return nil
	}

	out := make([]models.CustomIndexField, 0, len(fields))
	for _, f := range fields {
		if f.Options != nil {
			in := f.Options
			opts := &models.CustomIndexOptions{NoIndex: in.NoIndex}
			switch f.Type {
			case models.IndexTag:
				opts.Separator = in.Separator
			case models.IndexText:
				opts.NoStem = in.NoStem
				opts.Weight = in.Weight
				opts.Sortable = in.Sortable
			case models.IndexNumber:
				opts.Sortable = in.Sortable
			}
			f.Options = opts
		}
		out = append(out, f)
	}
	return out
}
