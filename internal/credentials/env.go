package credentials

import (
	"fmt"

	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/caarlos0/env/v11"
)

// Environment variables read by the resolver.
const (
	EnvChainID         = "DRAGONCHAIN_ID"
	EnvEndpoint        = "DRAGONCHAIN_ENDPOINT"
	EnvAuthKey         = "AUTH_KEY"
	EnvAuthKeyID       = "AUTH_KEY_ID"
	EnvSmartContractID = "SMART_CONTRACT_ID"
	EnvLocalAppData    = "LOCALAPPDATA"
)

// environment is the process environment as seen by one resolution call.
// It is parsed fresh on every call so changes made after construction are
// honoured.
type environment struct {
	ChainID         string `env:"DRAGONCHAIN_ID"`
	Endpoint        string `env:"DRAGONCHAIN_ENDPOINT"`
	AuthKey         string `env:"AUTH_KEY"`
	AuthKeyID       string `env:"AUTH_KEY_ID"`
	SmartContractID string `env:"SMART_CONTRACT_ID"`
}

// parseEnvironment decodes vars, or the process environment when vars is
// nil, using caarlos0/env.
func parseEnvironment(vars map[string]string) (environment, error) {
	var e environment

	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}

	if err := env.ParseWithOptions(&e, opts); err != nil {
		return environment{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return e, nil
}

// SmartContractID returns SMART_CONTRACT_ID from vars, or from the process
// environment when vars is nil. It is empty outside a smart contract.
func SmartContractID(vars map[string]string) string {
	e, err := parseEnvironment(vars)
	if err != nil {
		return ""
	}
	return e.SmartContractID
}

func (e environment) chainID() Result[string] {
	return nonEmpty(e.ChainID)
}

func (e environment) endpoint() Result[string] {
	return nonEmpty(e.Endpoint)
}

// credentials is found only when both AUTH_KEY and AUTH_KEY_ID are set.
func (e environment) credentials() Result[models.Credentials] {
	creds := models.Credentials{AuthKey: e.AuthKey, AuthKeyID: e.AuthKeyID}
	if !creds.IsComplete() {
		return NotFound[models.Credentials]()
	}
	return Found(creds)
}

func nonEmpty(v string) Result[string] {
	if v == "" {
		return NotFound[string]()
	}
	return Found(v)
}
