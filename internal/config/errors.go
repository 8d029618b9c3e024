package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue     = errors.New("config value invalid")
	ErrSchemaViolation  = errors.New("document does not match schema")
	ErrConfigLoadFailed = errors.New("failed to load usage document")
)

// NewErrInvalidValue returns an error for an invalid document value.
func NewErrInvalidValue(key string, value string) error {
	return fmt.Errorf("%w: '%s' (value: '%s')", ErrInvalidValue, key, value)
}
