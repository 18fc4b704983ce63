package credentials

import "errors"

// Causes attached to a NOT_FOUND failure. They are visible through
// errors.Unwrap and in debug logs; callers should branch on
// models.ErrNotFound instead.
var (
	// ErrRegistryUnavailable indicates the registration service could not be
	// reached or did not answer in time.
	ErrRegistryUnavailable = errors.New("registration service unavailable")
	// ErrMalformedRegistration indicates the registration service answered
	// without a usable "url" field.
	ErrMalformedRegistration = errors.New("registration response has no endpoint url")
	// ErrConfigFileUnreadable indicates the credentials file is missing or
	// cannot be opened.
	ErrConfigFileUnreadable = errors.New("credentials file could not be read")
	// ErrConfigFileMalformed indicates the credentials file is not valid INI.
	ErrConfigFileMalformed = errors.New("credentials file is not valid INI")
)
