package models

// GetSmartContractRequest selects a smart contract by exactly one of its id
// or its transaction type.
type GetSmartContractRequest struct {
	SmartContractID string
	TransactionType string
}

// SmartContractRequest selects a smart contract by id.
type SmartContractRequest struct {
	SmartContractID string
}

// SmartContractObjectRequest reads one key from a smart contract heap. When
// SmartContractID is empty the SMART_CONTRACT_ID of the running contract is
// used.
type SmartContractObjectRequest struct {
	Key             string
	SmartContractID string
}

// ListSmartContractObjectsRequest lists keys under a heap folder.
type ListSmartContractObjectsRequest struct {
	PrefixKey       string
	SmartContractID string
}

// SmartContractSecretRequest reads a secret mounted into a running contract.
type SmartContractSecretRequest struct {
	SecretName string
}

// SmartContractLogsRequest reads the logs of a smart contract. Tail limits
// the number of lines, Since is an RFC 3339 lower bound.
type SmartContractLogsRequest struct {
	SmartContractID string
	Tail            int
	Since           string
}
