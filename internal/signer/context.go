package signer

import (
	"github.com/MKhiriev/dragonchain-go/models"
)

// CredentialContext binds a chain id, its credentials and the HMAC algorithm.
// It is created once per client and is read-only afterwards, so it can be
// shared by concurrent requests.
type CredentialContext struct {
	chainID     string
	credentials models.Credentials
	algorithm   Algorithm
}

// NewCredentialContext validates its inputs and returns an immutable context.
// An empty chain id, incomplete credentials or an unsupported algorithm yield
// a PARAM_ERROR failure.
func NewCredentialContext(chainID string, credentials models.Credentials, algorithm Algorithm) (*CredentialContext, error) {
	if chainID == "" {
		return nil, models.NewParamError("chain id is required")
	}
	if !credentials.IsComplete() {
		return nil, models.NewParamError("both authKey and authKeyId are required")
	}
	if !algorithm.Valid() {
		return nil, models.NewParamError("unsupported hmac algorithm %q", string(algorithm)).WithCause(ErrUnsupportedAlgorithm)
	}

	return &CredentialContext{
		chainID:     chainID,
		credentials: credentials,
		algorithm:   algorithm,
	}, nil
}

func (c *CredentialContext) ChainID() string {
	return c.chainID
}

func (c *CredentialContext) AuthKeyID() string {
	return c.credentials.AuthKeyID
}

func (c *CredentialContext) Algorithm() Algorithm {
	return c.algorithm
}
