package validators

import (
	"errors"

	"github.com/MKhiriev/dragonchain-go/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTransactionIDRequired   = errors.New("parameter `transactionId` is required")
	ErrTransactionTypeRequired = errors.New("parameter `transactionType` is required")
	ErrTransactionListRequired = errors.New("parameter `transactionList` is required")
	ErrBlockIDRequired         = errors.New("parameter `blockId` is required")
	ErrInvalidLevel            = errors.New("parameter `level` must be between 1 and 5")
	ErrInvalidPaging           = errors.New("parameters `offset` and `limit` cannot be negative")
	ErrKeyIDRequired           = errors.New("parameter `keyId` is required")
	ErrNicknameRequired        = errors.New("parameter `nickname` is required")
	ErrCustomIndexPathRequired = errors.New("parameter `customIndexFields[].path` is required")
	ErrCustomIndexNameRequired = errors.New("parameter `customIndexFields[].fieldName` is required")
	ErrInvalidCustomIndexType  = errors.New("parameter `customIndexFields[].type` must be `tag`, `text`, or `number`")
	ErrSmartContractSelector   = errors.New("exactly one of `smartContractId` or `transactionType` must be supplied")
	ErrSmartContractIDRequired = errors.New("parameter `smartContractId` is required when not running within a smart contract")
	ErrKeyRequired             = errors.New("parameter `key` is required")
	ErrPrefixKeyTrailingSlash  = errors.New("parameter `prefixKey` cannot end with '/'")
	ErrSecretNameRequired      = errors.New("parameter `secretName` is required")
	ErrInvalidSecretName       = errors.New("parameter `secretName` must be a single file name")
	ErrInvalidTail             = errors.New("parameter `tail` cannot be negative")
)

// paramError reports err to callers as a PARAM_ERROR failure. err stays
// reachable through errors.Is.
func paramError(err error) error {
	return models.NewParamError("%s", err.Error()).WithCause(err)
}
