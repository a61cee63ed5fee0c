package translatable

import "github.com/goliatone/go-translatable/internal/runtimeconfig"

var (
	ErrSeparatorInvalid      = runtimeconfig.ErrSeparatorInvalid
	ErrDefaultLocaleRequired = runtimeconfig.ErrDefaultLocaleRequired
	ErrLocalesRequired       = runtimeconfig.ErrLocalesRequired
)

type (
	Config      = runtimeconfig.Config
	LocaleEntry = runtimeconfig.LocaleEntry
)

// DefaultSeparator joins language and region subtags when none is configured.
const DefaultSeparator = runtimeconfig.DefaultSeparator

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
