// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"context"

	"github.com/MKhiriev/dragonchain-go/internal/logger"
	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/spf13/afero"
)

// Resolver walks the resolution chains. It holds no state between calls:
// the environment and the credentials file are read again every time.
type Resolver struct {
	fs         afero.Fs
	environ    map[string]string
	registry   RegistryClient
	configPath string
	secretsDir string
	logger     *logger.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFs sets the filesystem used for the credentials file and the secret
// mount. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithEnvironment replaces the process environment with vars. A nil map
// restores the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(r *Resolver) { r.environ = vars }
}

// WithRegistry sets the registration service client.
func WithRegistry(rc RegistryClient) Option {
	return func(r *Resolver) { r.registry = rc }
}

// WithConfigPath sets the credentials file location. Defaults to
// HostConfigPath.
func WithConfigPath(path string) Option {
	return func(r *Resolver) { r.configPath = path }
}

// WithSecretsDir sets the smart contract secret mount. Defaults to
// SecretsDir.
func WithSecretsDir(dir string) Option {
	return func(r *Resolver) { r.secretsDir = dir }
}

// WithLogger sets the logger. Resolution steps log at debug level only.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver returns a Resolver with the given options applied over the
// defaults.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:         afero.NewOsFs(),
		secretsDir: SecretsDir,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.registry == nil {
		r.registry = NewRegistryClient(RegistryURL)
	}
	if r.configPath == "" {
		r.configPath = HostConfigPath()
	}
	r.logger = logger.OrNop(r.logger).Component("credentials")

	return r
}

// ConfigPath returns the credentials file location in use.
func (r *Resolver) ConfigPath() string {
	return r.configPath
}

// ResolveChainID returns the chain id from DRAGONCHAIN_ID or from the
// [default] section of the credentials file. There is no remote fallback.
func (r *Resolver) ResolveChainID(_ context.Context) (string, error) {
	if id, ok := r.env().chainID().Get(); ok {
		return id, nil
	}

	if file := r.file(); file != nil {
		if id, ok := file.chainID().Get(); ok {
			return id, nil
		}
	}

	return "", models.NewNotFound("could not find a dragonchain id: set %s or add dragonchain_id to [%s] in %s",
		EnvChainID, defaultSection, r.configPath)
}

// ResolveEndpoint returns the endpoint of chainID from DRAGONCHAIN_ENDPOINT,
// the chain's section of the credentials file or the registration service,
// in that order. A failed remote lookup is reported as NOT_FOUND with the
// cause wrapped.
func (r *Resolver) ResolveEndpoint(ctx context.Context, chainID string) (string, error) {
	if endpoint, ok := r.env().endpoint().Get(); ok {
		return endpoint, nil
	}

	if file := r.file(); file != nil {
		if endpoint, ok := file.endpoint(chainID).Get(); ok {
			return endpoint, nil
		}
	}

	endpoint, err := r.registry.LookupEndpoint(ctx, chainID)
	if err != nil {
		r.logger.Debug().Err(err).Str("chain_id", chainID).Msg("registration lookup failed")
		return "", models.NewNotFound("failure to retrieve dragonchain endpoint from remote service for %q", chainID).
			WithCause(err)
	}

	return endpoint, nil
}

// ResolveCredentials returns the key pair for chainID from AUTH_KEY and
// AUTH_KEY_ID, the chain's section of the credentials file or the smart
// contract secret mount. Each source must supply both halves or it is
// skipped.
func (r *Resolver) ResolveCredentials(_ context.Context, chainID string) (models.Credentials, error) {
	e := r.env()
	if creds, ok := e.credentials().Get(); ok {
		return creds, nil
	}

	if file := r.file(); file != nil {
		if creds, ok := file.credentials(chainID).Get(); ok {
			return creds, nil
		}
	}

	res, err := secretCredentials(r.fs, r.secretsDir, e.SmartContractID)
	if err != nil {
		r.logger.Debug().Err(err).Str("smart_contract_id", e.SmartContractID).Msg("error loading credentials from smart contract secrets")
	}
	if creds, ok := res.Get(); ok {
		return creds, nil
	}

	return models.Credentials{}, models.NewNotFound("could not find credentials for chain %q", chainID)
}

// Resolve runs all three chains. An empty chainID is resolved first.
func (r *Resolver) Resolve(ctx context.Context, chainID string) (models.Resolution, error) {
	var err error
	if chainID == "" {
		if chainID, err = r.ResolveChainID(ctx); err != nil {
			return models.Resolution{}, err
		}
	}

	endpoint, err := r.ResolveEndpoint(ctx, chainID)
	if err != nil {
		return models.Resolution{}, err
	}

	creds, err := r.ResolveCredentials(ctx, chainID)
	if err != nil {
		return models.Resolution{}, err
	}

	return models.Resolution{ChainID: chainID, Endpoint: endpoint, Credentials: creds}, nil
}

// env parses the environment. A parse failure is logged and treated as an
// empty environment.
func (r *Resolver) env() environment {
	e, err := parseEnvironment(r.environ)
	if err != nil {
		r.logger.Debug().Err(err).Msg("error reading environment")
		return environment{}
	}
	return e
}

// file loads the credentials file, or returns nil when it is missing or
// malformed.
func (r *Resolver) file() *credentialsFile {
	f, err := loadCredentialsFile(r.fs, r.configPath)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", r.configPath).Msg("error loading config file")
		return nil
	}
	return f
}
