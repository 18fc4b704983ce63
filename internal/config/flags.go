package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagChainID     = "chain-id"
	FlagEndpoint    = "endpoint"
	FlagAlgorithm   = "algorithm"
	FlagInsecure    = "insecure"
	FlagTimeout     = "timeout"
	FlagCredentials = "credentials"
	FlagConfig      = "config"
)

// RegisterFlags defines the configuration flags on fs.
//
// Flags:
//
//	--chain-id      dragonchain id
//	--endpoint      node base URL
//	--algorithm     HMAC algorithm (SHA256, SHA3-256, BLAKE2b512)
//	--insecure      skip TLS certificate verification
//	--timeout       request timeout (e.g., "30s", "1m")
//	--credentials   credentials file path
//	-c/--config     json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagChainID, "", "Dragonchain id")
	fs.String(FlagEndpoint, "", "Node endpoint URL")
	fs.String(FlagAlgorithm, "", "HMAC algorithm: SHA256, SHA3-256 or BLAKE2b512")
	fs.Bool(FlagInsecure, false, "Skip TLS certificate verification")
	fs.Duration(FlagTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagCredentials, "", "Credentials file path")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the flags the user changed. Defaults never take part in
// the merge, so they cannot shadow environment or JSON values.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	if fs.Changed(FlagChainID) {
		if cfg.ChainID, err = fs.GetString(FlagChainID); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagChainID, err)
		}
	}
	if fs.Changed(FlagEndpoint) {
		if cfg.Endpoint, err = fs.GetString(FlagEndpoint); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagEndpoint, err)
		}
	}
	if fs.Changed(FlagAlgorithm) {
		if cfg.Algorithm, err = fs.GetString(FlagAlgorithm); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagAlgorithm, err)
		}
	}
	if fs.Changed(FlagInsecure) {
		insecure, err := fs.GetBool(FlagInsecure)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagInsecure, err)
		}
		verify := !insecure
		cfg.Verify = &verify
	}
	if fs.Changed(FlagTimeout) {
		if cfg.RequestTimeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagTimeout, err)
		}
	}
	if fs.Changed(FlagCredentials) {
		if cfg.CredentialsPath, err = fs.GetString(FlagCredentials); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagCredentials, err)
		}
	}
	if fs.Changed(FlagConfig) {
		if cfg.JSONFilePath, err = fs.GetString(FlagConfig); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagConfig, err)
		}
	}

	return cfg, nil
}
