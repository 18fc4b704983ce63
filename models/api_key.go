package models

// CreateAPIKeyRequest creates a new HMAC key on the node.
type CreateAPIKeyRequest struct {
	Nickname string `json:"nickname,omitempty"`
}

// APIKeyRequest selects an existing HMAC key.
type APIKeyRequest struct {
	KeyID string
}

// UpdateAPIKeyRequest renames an existing HMAC key.
type UpdateAPIKeyRequest struct {
	KeyID    string `json:"-"`
	Nickname string `json:"nickname"`
}
