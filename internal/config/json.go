package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"
)

type StructuredJSONConfig struct {
	ChainID         string   `json:"chain_id"`
	Endpoint        string   `json:"endpoint"`
	Algorithm       string   `json:"algorithm"`
	Verify          *bool    `json:"verify"`
	RequestTimeout  Duration `json:"request_timeout"`
	CredentialsPath string   `json:"credentials_path"`
}

func parseJSON(fs afero.Fs, jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := fs.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		ChainID:         jsonCfg.ChainID,
		Endpoint:        jsonCfg.Endpoint,
		Algorithm:       jsonCfg.Algorithm,
		Verify:          jsonCfg.Verify,
		RequestTimeout:  time.Duration(jsonCfg.RequestTimeout),
		CredentialsPath: jsonCfg.CredentialsPath,
		JSONFilePath:    "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
