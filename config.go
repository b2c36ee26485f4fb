package catalog

import "github.com/goliatone/go-catalog/internal/runtimeconfig"

var (
	ErrAPIBaseURLRequired       = runtimeconfig.ErrAPIBaseURLRequired
	ErrNoLocalesConfigured      = runtimeconfig.ErrNoLocalesConfigured
	ErrDefaultLocaleUnsupported = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrLocaleCodeRequired       = runtimeconfig.ErrLocaleCodeRequired
	ErrDuplicateLocale          = runtimeconfig.ErrDuplicateLocale
	ErrAPITimeoutInvalid        = runtimeconfig.ErrAPITimeoutInvalid
	ErrCommandTimeoutInvalid    = runtimeconfig.ErrCommandTimeoutInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	LocaleConfig     = runtimeconfig.LocaleConfig
	APIConfig        = runtimeconfig.APIConfig
	PreferenceConfig = runtimeconfig.PreferenceConfig
	CommandsConfig   = runtimeconfig.CommandsConfig
	Features         = runtimeconfig.Features
	LoggingConfig    = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
