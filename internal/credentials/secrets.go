package credentials

import (
	"fmt"
	"path"

	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/spf13/afero"
)

// SecretsDir is where OpenFaaS mounts the secrets of a smart contract.
const SecretsDir = "/var/openfaas/secrets"

// Secret names of the smart contract key pair.
const (
	SecretAuthKey   = "secret-key"
	SecretAuthKeyID = "auth-key-id"
)

// SecretPath returns the mount path of secret name for smartContractID.
func SecretPath(dir, smartContractID, name string) string {
	return path.Join(dir, "sc-"+smartContractID+"-"+name)
}

// ReadSecret reads a secret mounted for the smart contract. Content is
// returned as-is.
func ReadSecret(fs afero.Fs, dir, smartContractID, name string) (string, error) {
	data, err := afero.ReadFile(fs, SecretPath(dir, smartContractID, name))
	if err != nil {
		return "", fmt.Errorf("read secret %q: %w", name, err)
	}
	return string(data), nil
}

// secretCredentials reads the key pair mounted for smartContractID.
func secretCredentials(fs afero.Fs, dir, smartContractID string) (Result[models.Credentials], error) {
	if smartContractID == "" {
		return NotFound[models.Credentials](), nil
	}

	keyID, err := ReadSecret(fs, dir, smartContractID, SecretAuthKeyID)
	if err != nil {
		return NotFound[models.Credentials](), err
	}

	key, err := ReadSecret(fs, dir, smartContractID, SecretAuthKey)
	if err != nil {
		return NotFound[models.Credentials](), err
	}

	creds := models.Credentials{AuthKey: key, AuthKeyID: keyID}
	if !creds.IsComplete() {
		return NotFound[models.Credentials](), nil
	}
	return Found(creds), nil
}
