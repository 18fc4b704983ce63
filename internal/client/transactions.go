package client

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/models"
)

// GetTransaction returns a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, req models.GetTransactionRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/transaction/"+segment(req.TransactionID), nil)
}

// CreateTransaction ledgers a new transaction. When req.CallbackURL is set
// the node POSTs to it once the transaction is in a block.
func (c *Client) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.post(ctx, "/v1/transaction", transactionBody(req), req.CallbackURL)
}

// CreateBulkTransaction ledgers many transactions in one request. Callback
// URLs of the individual transactions are ignored.
func (c *Client) CreateBulkTransaction(ctx context.Context, req models.CreateBulkTransactionRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	body := make([]models.TransactionBody, 0, len(req.Transactions))
	for _, txn := range req.Transactions {
		body = append(body, transactionBody(txn))
	}

	return c.post(ctx, "/v1/transaction_bulk", body, "")
}

// QueryTransactions runs a Redisearch query over one transaction type.
// Limit defaults to 10.
func (c *Client) QueryTransactions(ctx context.Context, req models.QueryTransactionsRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.get(ctx, "/v1/transaction", transactionsQuery(req))
}

func transactionBody(req models.CreateTransactionRequest) models.TransactionBody {
	payload := req.Payload
	if payload == nil {
		payload = ""
	}
	return models.TransactionBody{
		Version:         models.TransactionVersion,
		TransactionType: req.TransactionType,
		Payload:         payload,
		Tag:             req.Tag,
	}
}
