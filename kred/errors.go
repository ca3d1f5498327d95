package kred

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError under errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a rule that makes the chain unusable, such as an
// empty founder list (which would divide the founder share by zero).
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
