package config

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeJSONFile(t *testing.T, fs afero.Fs, path, body string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o600))
}

func boolPtr(v bool) *bool {
	return &v
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, an empty configs slice and a filesystem.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.NotNil(t, b.fs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{Algorithm: "SHA256"}, cfg)
	assert.True(t, cfg.VerifyTLS())
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierConfigWins verifies that a non-zero field of an earlier
// config is not replaced by a later one, while zero fields are filled.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{ChainID: "first"},
		&StructuredConfig{ChainID: "second", Endpoint: "https://node"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.ChainID)
	assert.Equal(t, "https://node", cfg.Endpoint)
}

// TestBuild_ExplicitFalseVerifyIsKept verifies that pointers are not
// dereferenced during the merge.
func TestBuild_ExplicitFalseVerifyIsKept(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{Verify: boolPtr(false)},
		&StructuredConfig{Verify: boolPtr(true)},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Verify)
	assert.False(t, *cfg.Verify)
	assert.False(t, cfg.VerifyTLS())
}

// TestBuild_Validation verifies that the merged config is validated.
func TestBuild_Validation(t *testing.T) {
	t.Run("algorithm normalised", func(t *testing.T) {
		b := newConfigBuilder(nil)
		b.configs = append(b.configs, &StructuredConfig{Algorithm: "sha3-256"})

		cfg, err := b.build()
		require.NoError(t, err)
		assert.Equal(t, "SHA3-256", cfg.Algorithm)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		b := newConfigBuilder(nil)
		b.configs = append(b.configs, &StructuredConfig{Algorithm: "MD5"})

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrInvalidAlgorithm)
	})

	t.Run("negative timeout", func(t *testing.T) {
		b := newConfigBuilder(nil)
		b.configs = append(b.configs, &StructuredConfig{RequestTimeout: -time.Second})

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrInvalidTimeout)
	})
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that no file is read without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs()).withEnv(map[string]string{}).withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFile verifies that a configured but missing file is an
// error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs()).
		withEnv(map[string]string{"DRAGONCHAIN_CONFIG": "/nope.json"}).
		withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Priority verifies flags > environment > JSON.
func TestLoad_Priority(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSONFile(t, fs, "/etc/dcctl.json", `{
		"chain_id": "from-json",
		"endpoint": "https://json.example",
		"algorithm": "BLAKE2b512",
		"verify": false,
		"request_timeout": "45s",
		"credentials_path": "/json/credentials"
	}`)

	cfg, err := Load(Sources{
		Flags: newFlagSet(t, "--chain-id", "from-flag", "--timeout", "5s"),
		Environment: map[string]string{
			"DRAGONCHAIN_CONFIG":          "/etc/dcctl.json",
			"DRAGONCHAIN_ALGORITHM":       "sha3-256",
			"DRAGONCHAIN_REQUEST_TIMEOUT": "10s",
		},
		Fs: fs,
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.ChainID)
	assert.Equal(t, "https://json.example", cfg.Endpoint)
	assert.Equal(t, "SHA3-256", cfg.Algorithm)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/json/credentials", cfg.CredentialsPath)
	assert.False(t, cfg.VerifyTLS())
	assert.Equal(t, "/etc/dcctl.json", cfg.JSONFilePath)
}

// TestLoad_ConfigFlagSelectsJSON verifies that -c points at the JSON file
// and beats DRAGONCHAIN_CONFIG.
func TestLoad_ConfigFlagSelectsJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSONFile(t, fs, "/flag.json", `{"chain_id": "flag-file"}`)
	writeJSONFile(t, fs, "/env.json", `{"chain_id": "env-file"}`)

	cfg, err := Load(Sources{
		Flags:       newFlagSet(t, "-c", "/flag.json"),
		Environment: map[string]string{"DRAGONCHAIN_CONFIG": "/env.json"},
		Fs:          fs,
	})
	require.NoError(t, err)
	assert.Equal(t, "flag-file", cfg.ChainID)
}

// TestLoad_InsecureFlagBeatsEnvironment verifies that --insecure disables
// verification even when DRAGONCHAIN_VERIFY is true.
func TestLoad_InsecureFlagBeatsEnvironment(t *testing.T) {
	cfg, err := Load(Sources{
		Flags:       newFlagSet(t, "--insecure"),
		Environment: map[string]string{"DRAGONCHAIN_VERIFY": "true"},
		Fs:          afero.NewMemMapFs(),
	})
	require.NoError(t, err)
	assert.False(t, cfg.VerifyTLS())
}

// TestLoad_InvalidAlgorithmFromEnvironment verifies validation of env input.
func TestLoad_InvalidAlgorithmFromEnvironment(t *testing.T) {
	cfg, err := Load(Sources{
		Environment: map[string]string{"DRAGONCHAIN_ALGORITHM": "crc32"},
		Fs:          afero.NewMemMapFs(),
	})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)
}

// ── ClientOptions ─────────────────────────────────────────────────────────────

// TestClientOptions verifies the mapping onto client options.
func TestClientOptions(t *testing.T) {
	cfg := &StructuredConfig{
		ChainID:        "chain",
		Endpoint:       "https://node",
		Algorithm:      "SHA3-256",
		Verify:         boolPtr(false),
		RequestTimeout: 3 * time.Second,
	}
	fs := afero.NewMemMapFs()
	environ := map[string]string{"SMART_CONTRACT_ID": "sc"}

	opts := cfg.ClientOptions(fs, environ, nil)
	assert.Equal(t, "chain", opts.ChainID)
	assert.Equal(t, "https://node", opts.Endpoint)
	assert.Equal(t, "SHA3-256", opts.Algorithm.String())
	require.NotNil(t, opts.Verify)
	assert.False(t, *opts.Verify)
	assert.Equal(t, 3*time.Second, opts.Timeout)
	assert.NotNil(t, opts.Resolver)
	assert.Equal(t, fs, opts.Fs)
	assert.Equal(t, environ, opts.Environment)
}

// TestResolver_CredentialsPath verifies that the credentials file location
// is taken from the config, falling back to the per-OS default.
func TestResolver_CredentialsPath(t *testing.T) {
	cfg := &StructuredConfig{CredentialsPath: "/custom/credentials"}
	assert.Equal(t, "/custom/credentials", cfg.Resolver(nil, map[string]string{}, nil).ConfigPath())

	cfg.CredentialsPath = ""
	assert.NotEmpty(t, cfg.Resolver(nil, map[string]string{}, nil).ConfigPath())
}

// TestResolver_ReadsCredentialsFile verifies that the resolver reads the
// configured file from the given filesystem.
func TestResolver_ReadsCredentialsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/creds", []byte(
		"[default]\ndragonchain_id = chain\n\n[chain]\nauth_key = key\nauth_key_id = id\n"), 0o600))

	cfg := &StructuredConfig{CredentialsPath: "/creds"}
	r := cfg.Resolver(fs, map[string]string{}, nil)

	chainID, err := r.ResolveChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "chain", chainID)

	creds, err := r.ResolveCredentials(context.Background(), chainID)
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AuthKeyID)
	assert.Equal(t, "key", creds.AuthKey)
}
