package locale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is the root of every catalogue construction failure.
var ErrConfiguration = errors.New("locale: invalid catalogue configuration")

var (
	ErrEmptyLocale     = fmt.Errorf("%w: empty locale code", ErrConfiguration)
	ErrEmptyRegion     = fmt.Errorf("%w: empty region subtag", ErrConfiguration)
	ErrDuplicateLocale = fmt.Errorf("%w: duplicate locale code", ErrConfiguration)
	ErrSeparatorInCode = fmt.Errorf("%w: simple locale code contains the separator", ErrConfiguration)
)

// ConfigurationError reports a malformed catalogue definition. It is fatal at
// startup; catalogues are never partially built.
type ConfigurationError struct {
	Code string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ErrConfiguration.Error()
	}
	err := e.Err
	if err == nil {
		err = ErrConfiguration
	}
	if code := strings.TrimSpace(e.Code); code != "" {
		return fmt.Sprintf("%s: code=%s", err.Error(), code)
	}
	return err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	if e == nil || e.Err == nil {
		return ErrConfiguration
	}
	return e.Err
}

// Is lets errors.Is match the ErrConfiguration root even when the wrapped
// cause comes from outside this package, such as config validation errors.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
