package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	fs      afero.Fs
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(fs afero.Fs) *configBuilder {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &configBuilder{
		fs:      fs,
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// build merges the collected configs. mergo only fills zero fields, so a
// config added earlier wins over the ones after it. Pointers are not
// dereferenced: an explicit false for Verify is kept.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withEnv(vars map[string]string) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, vars); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *pflag.FlagSet) *configBuilder {
	if flags == nil {
		return b
	}

	flagCfg, err := parseFlags(flags)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON merges the file named by the first config that sets
// JSONFilePath. The file itself cannot name another one.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(b.fs, path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}
