package types

import "errors"

// Store errors.
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrNotFound        = errors.New("contact not found")
	ErrPersistence     = errors.New("persist contacts")
)

// Config validation errors.
var (
	ErrFileEmpty         = errors.New("backing file path must not be empty")
	ErrLoadPolicyUnknown = errors.New("unknown load policy")
)
