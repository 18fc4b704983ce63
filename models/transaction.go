package models

// TransactionVersion is the body version the node expects for transactions.
const TransactionVersion = "1"

// GetTransactionRequest selects a single transaction by id.
type GetTransactionRequest struct {
	TransactionID string
}

// CreateTransactionRequest describes a new transaction to ledger.
type CreateTransactionRequest struct {
	// TransactionType is the registered transaction type. Required.
	TransactionType string `json:"txn_type"`

	// Payload is arbitrary content. A string is sent verbatim, anything else
	// is JSON encoded. Defaults to an empty string.
	Payload any `json:"payload"`

	// Tag is an optional free-text field indexed by the node.
	Tag string `json:"tag,omitempty"`

	// CallbackURL receives a POST when the transaction lands in a block.
	CallbackURL string `json:"-"`
}

// CreateBulkTransactionRequest posts many transactions in one call.
type CreateBulkTransactionRequest struct {
	Transactions []CreateTransactionRequest
}

// TransactionBody is the wire form of a single transaction.
type TransactionBody struct {
	Version         string `json:"version"`
	TransactionType string `json:"txn_type"`
	Payload         any    `json:"payload"`
	Tag             string `json:"tag,omitempty"`
}

// QueryTransactionsRequest is a Redisearch query over one transaction type.
type QueryTransactionsRequest struct {
	TransactionType string
	RedisearchQuery string
	Verbatim        *bool
	Offset          int
	Limit           int
	IDsOnly         *bool
	SortBy          string
	SortAscending   *bool
}
