package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/dragonchain-go/internal/credentials"
	"github.com/MKhiriev/dragonchain-go/internal/validators"
	"github.com/MKhiriev/dragonchain-go/models"
)

// GetSmartContract returns a smart contract by exactly one of its id or
// its transaction type.
func (c *Client) GetSmartContract(ctx context.Context, req models.GetSmartContractRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	if req.SmartContractID != "" {
		return c.get(ctx, "/v1/contract/"+segment(req.SmartContractID), nil)
	}
	return c.get(ctx, "/v1/contract/txn_type/"+segment(req.TransactionType), nil)
}

// ListSmartContracts returns every smart contract on the chain.
func (c *Client) ListSmartContracts(ctx context.Context) (models.Response, error) {
	return c.get(ctx, "/v1/contract", nil)
}

// DeleteSmartContract removes a smart contract.
func (c *Client) DeleteSmartContract(ctx context.Context, req models.SmartContractRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}
	return c.delete(ctx, "/v1/contract/"+segment(req.SmartContractID))
}

// GetSmartContractLogs returns the logs of a smart contract.
func (c *Client) GetSmartContractLogs(ctx context.Context, req models.SmartContractLogsRequest) (models.Response, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	query := url.Values{}
	if req.Tail > 0 {
		query.Set("tail", strconv.Itoa(req.Tail))
	}
	if req.Since != "" {
		query.Set("since", req.Since)
	}

	return c.get(ctx, "/v1/contract/"+segment(req.SmartContractID)+"/logs", query)
}

// GetSmartContractObject reads one key from a smart contract heap. The
// value is returned as text; use [models.Response.Text]. The running
// contract's SMART_CONTRACT_ID is used when req.SmartContractID is empty.
func (c *Client) GetSmartContractObject(ctx context.Context, req models.SmartContractObjectRequest) (models.Response, error) {
	if req.SmartContractID == "" {
		req.SmartContractID = c.smartContractID()
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	return c.dispatcher.Dispatch(ctx, models.DispatchRequest{
		Method:  http.MethodGet,
		Path:    "/v1/get/" + segment(req.SmartContractID) + "/" + segments(req.Key),
		RawText: true,
	})
}

// ListSmartContractObjects lists the keys under a heap folder. An empty
// PrefixKey lists the root. The running contract's SMART_CONTRACT_ID is
// used when req.SmartContractID is empty.
func (c *Client) ListSmartContractObjects(ctx context.Context, req models.ListSmartContractObjectsRequest) (models.Response, error) {
	if req.SmartContractID == "" {
		req.SmartContractID = c.smartContractID()
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Response{}, err
	}

	path := "/v1/list/" + segment(req.SmartContractID) + "/"
	if req.PrefixKey != "" {
		path += segments(req.PrefixKey) + "/"
	}

	return c.get(ctx, path, nil)
}

// GetSmartContractSecret reads a secret mounted into the running smart
// contract. It works only inside a contract created with secrets.
func (c *Client) GetSmartContractSecret(ctx context.Context, req models.SmartContractSecretRequest) (string, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	id := c.smartContractID()
	if id == "" {
		return "", models.NewParamError("%s is not set", credentials.EnvSmartContractID).
			WithCause(validators.ErrSmartContractIDRequired)
	}

	return credentials.ReadSecret(c.fs, c.secretsDir, id, req.SecretName)
}
