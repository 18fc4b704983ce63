package validators

import (
	"context"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/dragonchain-go/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldTransactionID   = "transaction_id"
	FieldTransactionType = "transaction_type"
	FieldTransactions    = "transactions"
	FieldBlockID         = "block_id"
	FieldLevel           = "level"
	FieldPaging          = "paging"
	FieldKeyID           = "key_id"
	FieldNickname        = "nickname"
	FieldCustomIndexes   = "custom_indexes"

	// FieldSmartContractSelector requires exactly one of smart contract id
	// and transaction type.
	FieldSmartContractSelector = "smart_contract_selector"
	FieldSmartContractID       = "smart_contract_id"
	FieldKey                   = "key"
	FieldPrefixKey             = "prefix_key"
	FieldSecretName            = "secret_name"
	FieldTail                  = "tail"
)

var allowedIndexTypes = []models.CustomIndexType{
	models.IndexTag,
	models.IndexText,
	models.IndexNumber,
}

// RequestValidator implements the Validator interface for every request
// model accepted by the client facade. Both value and pointer forms are
// accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the rules of the dynamic type of obj.
// Optional fields restrict validation to the named subset; when omitted,
// every rule of the type is checked.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := deref(obj).(type) {
	case models.GetTransactionRequest:
		return v.check(fields, []string{FieldTransactionID}, func(string) error {
			return required(value.TransactionID, ErrTransactionIDRequired)
		})
	case models.CreateTransactionRequest:
		return v.check(fields, []string{FieldTransactionType}, func(string) error {
			return required(value.TransactionType, ErrTransactionTypeRequired)
		})
	case models.CreateBulkTransactionRequest:
		return v.validateBulk(value, fields...)
	case models.QueryTransactionsRequest:
		return v.check(fields, []string{FieldPaging}, func(string) error {
			return paging(value.Offset, value.Limit)
		})
	case models.QueryBlocksRequest:
		return v.check(fields, []string{FieldPaging}, func(string) error {
			return paging(value.Offset, value.Limit)
		})
	case models.GetBlockRequest:
		return v.check(fields, []string{FieldBlockID}, func(string) error {
			return required(value.BlockID, ErrBlockIDRequired)
		})
	case models.GetVerificationsRequest:
		return v.validateVerifications(value, fields...)
	case models.CreateAPIKeyRequest:
		return v.check(fields, nil, nil)
	case models.APIKeyRequest:
		return v.check(fields, []string{FieldKeyID}, func(string) error {
			return required(value.KeyID, ErrKeyIDRequired)
		})
	case models.UpdateAPIKeyRequest:
		return v.check(fields, []string{FieldKeyID, FieldNickname}, func(f string) error {
			if f == FieldKeyID {
				return required(value.KeyID, ErrKeyIDRequired)
			}
			return required(value.Nickname, ErrNicknameRequired)
		})
	case models.CreateTransactionTypeRequest:
		return v.check(fields, []string{FieldTransactionType, FieldCustomIndexes}, func(f string) error {
			if f == FieldTransactionType {
				return required(value.TransactionType, ErrTransactionTypeRequired)
			}
			return v.validateCustomIndexes(value.CustomIndexFields)
		})
	case models.TransactionTypeRequest:
		return v.check(fields, []string{FieldTransactionType}, func(string) error {
			return required(value.TransactionType, ErrTransactionTypeRequired)
		})
	case models.GetSmartContractRequest:
		return v.check(fields, []string{FieldSmartContractSelector}, func(string) error {
			if (value.SmartContractID == "") == (value.TransactionType == "") {
				return paramError(ErrSmartContractSelector)
			}
			return nil
		})
	case models.SmartContractRequest:
		return v.check(fields, []string{FieldSmartContractID}, func(string) error {
			return required(value.SmartContractID, ErrSmartContractIDRequired)
		})
	case models.SmartContractLogsRequest:
		return v.check(fields, []string{FieldSmartContractID, FieldTail}, func(f string) error {
			if f == FieldSmartContractID {
				return required(value.SmartContractID, ErrSmartContractIDRequired)
			}
			if value.Tail < 0 {
				return paramError(ErrInvalidTail)
			}
			return nil
		})
	case models.SmartContractObjectRequest:
		return v.check(fields, []string{FieldKey, FieldSmartContractID}, func(f string) error {
			if f == FieldKey {
				return required(value.Key, ErrKeyRequired)
			}
			return required(value.SmartContractID, ErrSmartContractIDRequired)
		})
	case models.ListSmartContractObjectsRequest:
		return v.check(fields, []string{FieldSmartContractID, FieldPrefixKey}, func(f string) error {
			if f == FieldSmartContractID {
				return required(value.SmartContractID, ErrSmartContractIDRequired)
			}
			if strings.HasSuffix(value.PrefixKey, "/") {
				return paramError(ErrPrefixKeyTrailingSlash)
			}
			return nil
		})
	case models.SmartContractSecretRequest:
		return v.check(fields, []string{FieldSecretName}, func(string) error {
			if err := required(value.SecretName, ErrSecretNameRequired); err != nil {
				return err
			}
			return fileName(value.SecretName, ErrInvalidSecretName)
		})
	default:
		return ErrUnsupportedType
	}
}

// check runs rule for each requested field, or for every supported field
// when none is requested. A field outside supported yields ErrUnknownField.
func (v *RequestValidator) check(fields, supported []string, rule func(field string) error) error {
	if len(fields) == 0 {
		fields = supported
	}

	for _, f := range fields {
		if !slices.Contains(supported, f) {
			return ErrUnknownField
		}
		if err := rule(f); err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateBulk(request models.CreateBulkTransactionRequest, fields ...string) error {
	return v.check(fields, []string{FieldTransactions}, func(string) error {
		if len(request.Transactions) == 0 {
			return paramError(ErrTransactionListRequired)
		}
		for i, txn := range request.Transactions {
			if txn.TransactionType == "" {
				return models.NewParamError("validation error at index %d: %s", i, ErrTransactionTypeRequired).
					WithCause(ErrTransactionTypeRequired)
			}
		}
		return nil
	})
}

func (v *RequestValidator) validateVerifications(request models.GetVerificationsRequest, fields ...string) error {
	return v.check(fields, []string{FieldBlockID, FieldLevel}, func(f string) error {
		if f == FieldBlockID {
			return required(request.BlockID, ErrBlockIDRequired)
		}
		// zero selects every level
		if request.Level < 0 || request.Level > 5 {
			return paramError(ErrInvalidLevel)
		}
		return nil
	})
}

func (v *RequestValidator) validateCustomIndexes(indexes []models.CustomIndexField) error {
	for i, index := range indexes {
		var err error
		switch {
		case index.Path == "":
			err = ErrCustomIndexPathRequired
		case index.FieldName == "":
			err = ErrCustomIndexNameRequired
		case !slices.Contains(allowedIndexTypes, index.Type):
			err = ErrInvalidCustomIndexType
		}
		if err != nil {
			return models.NewParamError("validation error at index %d: %s", i, err).WithCause(err)
		}
	}
	return nil
}

func required(value string, err error) error {
	if value == "" {
		return paramError(err)
	}
	return nil
}

// fileName rejects values that would leave the directory they are joined
// onto.
func fileName(value string, err error) error {
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		return paramError(err)
	}
	return nil
}

func paging(offset, limit int) error {
	if offset < 0 || limit < 0 {
		return paramError(ErrInvalidPaging)
	}
	return nil
}

// deref returns the value a non-nil pointer points to, or obj unchanged.
func deref(obj any) any {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return obj
}
