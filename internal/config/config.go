// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/dragonchain-go/internal/client"
	"github.com/MKhiriev/dragonchain-go/internal/credentials"
	"github.com/MKhiriev/dragonchain-go/internal/logger"
	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every env tag of [StructuredConfig].
const EnvPrefix = "DRAGONCHAIN_"

// StructuredConfig is the runtime configuration of dcctl. It is populated by
// merging values from command-line flags, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - env: environment variable name without [EnvPrefix] (caarlos0/env).
type StructuredConfig struct {
	// ChainID selects the chain. When empty it is resolved from
	// DRAGONCHAIN_ID or the credentials file.
	// Flag: --chain-id
	ChainID string

	// Endpoint overrides endpoint resolution.
	// Flag: --endpoint
	Endpoint string

	// Algorithm is the HMAC algorithm name (SHA256, SHA3-256, BLAKE2b512).
	// Normalised to its canonical spelling by validation.
	// Env: DRAGONCHAIN_ALGORITHM, Flag: --algorithm
	Algorithm string `env:"ALGORITHM"`

	// Verify toggles TLS certificate verification. Nil means true.
	// Env: DRAGONCHAIN_VERIFY, Flag: --insecure (sets false)
	Verify *bool `env:"VERIFY"`

	// RequestTimeout bounds each request to the node (e.g. "30s").
	// Env: DRAGONCHAIN_REQUEST_TIMEOUT, Flag: --timeout
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CredentialsPath overrides the per-OS credentials file location.
	// Env: DRAGONCHAIN_CREDENTIALS, Flag: --credentials
	CredentialsPath string `env:"CREDENTIALS"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from flags and environment variables.
	// Env: DRAGONCHAIN_CONFIG, Flag: -c / --config
	JSONFilePath string `env:"CONFIG"`
}

// Sources are the inputs of [Load]. A nil Flags skips flag parsing; nil
// Environment and Fs select the process environment and the OS filesystem.
type Sources struct {
	// Flags is a flag set on which [RegisterFlags] was called. Only flags
	// changed by the user take part in the merge.
	Flags *pflag.FlagSet

	// Environment replaces the process environment when non-nil.
	Environment map[string]string

	// Fs is used to read the JSON file.
	Fs afero.Fs
}

// Load loads, merges, and validates the configuration from all available
// sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Load(src Sources) (*StructuredConfig, error) {
	return newConfigBuilder(src.Fs).
		withFlags(src.Flags).
		withEnv(src.Environment).
		withJSON().
		build()
}

// VerifyTLS reports whether TLS certificates are verified.
func (cfg *StructuredConfig) VerifyTLS() bool {
	return cfg.Verify == nil || *cfg.Verify
}

// Resolver returns a credentials resolver honouring CredentialsPath. A nil
// fs or environ selects the OS filesystem and the process environment.
func (cfg *StructuredConfig) Resolver(fs afero.Fs, environ map[string]string, l *logger.Logger) *credentials.Resolver {
	opts := []credentials.Option{
		credentials.WithEnvironment(environ),
		credentials.WithConfigPath(cfg.CredentialsPath),
		credentials.WithLogger(l),
	}
	if fs != nil {
		opts = append(opts, credentials.WithFs(fs))
	}
	return credentials.NewResolver(opts...)
}

// ClientOptions maps the configuration onto [client.Options]. Values left
// empty are resolved by the client through [StructuredConfig.Resolver].
func (cfg *StructuredConfig) ClientOptions(fs afero.Fs, environ map[string]string, l *logger.Logger) client.Options {
	verify := cfg.VerifyTLS()

	return client.Options{
		ChainID:     cfg.ChainID,
		Endpoint:    cfg.Endpoint,
		Algorithm:   signer.Algorithm(cfg.Algorithm),
		Verify:      &verify,
		Timeout:     cfg.RequestTimeout,
		Resolver:    cfg.Resolver(fs, environ, l),
		Fs:          fs,
		Environment: environ,
		Logger:      l,
	}
}
