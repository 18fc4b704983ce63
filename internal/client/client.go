package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/dragonchain-go/internal/adapter"
	"github.com/MKhiriev/dragonchain-go/internal/credentials"
	"github.com/MKhiriev/dragonchain-go/internal/logger"
	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/MKhiriev/dragonchain-go/internal/validators"
	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/spf13/afero"
)

// Options configures New. Zero values select the documented defaults.
type Options struct {
	// ChainID is the Dragonchain id. Resolved when empty.
	ChainID string

	// Endpoint is the base URL of the node. Resolved when empty.
	Endpoint string

	// AuthKey and AuthKeyID are used only when both are set; otherwise the
	// pair is resolved.
	AuthKey   string
	AuthKeyID string

	// Algorithm defaults to SHA256.
	Algorithm signer.Algorithm

	// Verify toggles TLS certificate verification for this client. Nil
	// means true.
	Verify *bool

	// Timeout bounds every request. Zero relies on the request context.
	Timeout time.Duration

	// Resolver overrides the default credentials.Resolver.
	Resolver Resolver

	// Dispatcher replaces the signing HTTP dispatcher. No resolution takes
	// place when it is set.
	Dispatcher adapter.Dispatcher

	// Fs is used for the credentials file and smart contract secrets.
	// Defaults to the OS filesystem.
	Fs afero.Fs

	// Environment replaces the process environment for resolution and
	// SMART_CONTRACT_ID lookups.
	Environment map[string]string

	// SecretsDir defaults to credentials.SecretsDir.
	SecretsDir string

	Logger *logger.Logger
}

// Client is a signed API client bound to one chain.
type Client struct {
	chainID    string
	dispatcher adapter.Dispatcher
	validator  validators.Validator

	fs         afero.Fs
	environ    map[string]string
	secretsDir string

	logger *logger.Logger
}

// New resolves the missing connection details and returns a ready Client.
// Resolution happens once; the resulting credentials are never re-read.
//
// Returns a NOT_FOUND failure when a required value cannot be resolved and
// a PARAM_ERROR failure when the algorithm is unsupported.
func New(ctx context.Context, opts Options) (*Client, error) {
	c := &Client{
		chainID:    opts.ChainID,
		validator:  validators.NewRequestValidator(),
		fs:         opts.Fs,
		environ:    opts.Environment,
		secretsDir: opts.SecretsDir,
		logger:     logger.OrNop(opts.Logger).Component("client"),
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.secretsDir == "" {
		c.secretsDir = credentials.SecretsDir
	}

	if opts.Dispatcher != nil {
		c.dispatcher = opts.Dispatcher
		return c, nil
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = credentials.NewResolver(
			credentials.WithFs(c.fs),
			credentials.WithEnvironment(c.environ),
			credentials.WithSecretsDir(c.secretsDir),
			credentials.WithLogger(opts.Logger),
		)
	}

	var err error
	if c.chainID == "" {
		if c.chainID, err = resolver.ResolveChainID(ctx); err != nil {
			return nil, err
		}
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		if endpoint, err = resolver.ResolveEndpoint(ctx, c.chainID); err != nil {
			return nil, err
		}
	}

	creds := models.Credentials{AuthKey: opts.AuthKey, AuthKeyID: opts.AuthKeyID}
	if !creds.IsComplete() {
		if creds, err = resolver.ResolveCredentials(ctx, c.chainID); err != nil {
			return nil, err
		}
	}

	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = signer.DefaultAlgorithm
	}

	cc, err := signer.NewCredentialContext(c.chainID, creds, algorithm)
	if err != nil {
		return nil, err
	}

	verify := true
	if opts.Verify != nil {
		verify = *opts.Verify
	}

	c.dispatcher, err = adapter.NewHTTPDispatcher(signer.New(cc), adapter.Options{
		Endpoint: endpoint,
		Verify:   verify,
		Timeout:  opts.Timeout,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating dispatcher: %w", err)
	}

	c.logger.Debug().
		Str("chain_id", c.chainID).
		Str("endpoint", c.dispatcher.Endpoint()).
		Str("algorithm", algorithm.String()).
		Bool("verify", verify).
		Msg("client created")

	return c, nil
}

// ChainID returns the chain the client signs for.
func (c *Client) ChainID() string {
	return c.chainID
}

// Endpoint returns the base URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.dispatcher.Endpoint()
}

// smartContractID is read on every call so a contract sees its current
// environment.
func (c *Client) smartContractID() string {
	return credentials.SmartContractID(c.environ)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (models.Response, error) {
	return c.dispatcher.Dispatch(ctx, models.DispatchRequest{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) delete(ctx context.Context, path string) (models.Response, error) {
	return c.dispatcher.Dispatch(ctx, models.DispatchRequest{Method: http.MethodDelete, Path: path})
}

func (c *Client) post(ctx context.Context, path string, body any, callbackURL string) (models.Response, error) {
	return c.send(ctx, http.MethodPost, path, body, callbackURL)
}

func (c *Client) put(ctx context.Context, path string, body any) (models.Response, error) {
	return c.send(ctx, http.MethodPut, path, body, "")
}

func (c *Client) send(ctx context.Context, method, path string, body any, callbackURL string) (models.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return models.Response{}, fmt.Errorf("error encoding request body: %w", err)
	}

	return c.dispatcher.Dispatch(ctx, models.DispatchRequest{
		Method:      method,
		Path:        path,
		Body:        data,
		CallbackURL: callbackURL,
	})
}
