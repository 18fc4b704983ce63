package credentials

import (
	"fmt"

	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// defaultSection holds the default chain id. Per-chain sections are named by
// the chain id itself.
const defaultSection = "default"

// Key names inside the credentials file. The snake_case names are the ones
// written by existing Dragonchain tooling; the camelCase aliases are accepted
// as well.
var (
	chainIDKeys   = []string{"dragonchain_id", "chainId"}
	endpointKeys  = []string{"endpoint"}
	authKeyKeys   = []string{"auth_key", "authKey"}
	authKeyIDKeys = []string{"auth_key_id", "authKeyId"}
)

// credentialsFile is a parsed INI credentials file.
type credentialsFile struct {
	cfg *ini.File
}

// loadCredentialsFile reads and parses the file at path from fs.
func loadCredentialsFile(fs afero.Fs, path string) (*credentialsFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileUnreadable, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileMalformed, err)
	}

	return &credentialsFile{cfg: cfg}, nil
}

// value returns the first non-empty key of section among names.
func (f *credentialsFile) value(section string, names ...string) Result[string] {
	if section == "" {
		return NotFound[string]()
	}

	sec, err := f.cfg.GetSection(section)
	if err != nil {
		return NotFound[string]()
	}

	for _, name := range names {
		if !sec.HasKey(name) {
			continue
		}
		if v := sec.Key(name).String(); v != "" {
			return Found(v)
		}
	}

	return NotFound[string]()
}

func (f *credentialsFile) chainID() Result[string] {
	return f.value(defaultSection, chainIDKeys...)
}

func (f *credentialsFile) endpoint(chainID string) Result[string] {
	return f.value(chainID, endpointKeys...)
}

// credentials returns the key pair of chainID only when both halves are set.
func (f *credentialsFile) credentials(chainID string) Result[models.Credentials] {
	key, okKey := f.value(chainID, authKeyKeys...).Get()
	keyID, okID := f.value(chainID, authKeyIDKeys...).Get()
	if !okKey || !okID {
		return NotFound[models.Credentials]()
	}
	return Found(models.Credentials{AuthKey: key, AuthKeyID: keyID})
}
