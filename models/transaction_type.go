package models

// TransactionTypeVersion is the body version the node expects for
// transaction type registration.
const TransactionTypeVersion = "2"

// CustomIndexType is the Redisearch field type of a custom index.
type CustomIndexType string

const (
	IndexTag    CustomIndexType = "tag"
	IndexText   CustomIndexType = "text"
	IndexNumber CustomIndexType = "number"
)

// CustomIndexOptions are the optional Redisearch settings of a custom index.
// Only the options that apply to the field type are sent.
type CustomIndexOptions struct {
	NoIndex   *bool    `json:"no_index,omitempty"`
	Separator *string  `json:"separator,omitempty"`
	NoStem    *bool    `json:"no_stem,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Sortable  *bool    `json:"sortable,omitempty"`
}

// CustomIndexField indexes a JSON path of the transaction payload.
type CustomIndexField struct {
	Path      string              `json:"path"`
	FieldName string              `json:"field_name"`
	Type      CustomIndexType     `json:"type"`
	Options   *CustomIndexOptions `json:"options,omitempty"`
}

// CreateTransactionTypeRequest registers a transaction type.
type CreateTransactionTypeRequest struct {
	TransactionType   string
	CustomIndexFields []CustomIndexField
}

// TransactionTypeRequest selects a registered transaction type.
type TransactionTypeRequest struct {
	TransactionType string
}

// TransactionTypeBody is the wire form of a transaction type registration.
type TransactionTypeBody struct {
	Version         string             `json:"version"`
	TransactionType string             `json:"txn_type"`
	CustomIndexes   []CustomIndexField `json:"custom_indexes,omitempty"`
}
