package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrAPIBaseURLRequired indicates the remote catalog API endpoint is missing.
var ErrAPIBaseURLRequired = errors.New("catalog config: api base url is required")

// ErrNoLocalesConfigured indicates the supported locale set is empty.
var ErrNoLocalesConfigured = errors.New("catalog config: at least one locale is required")

// ErrDefaultLocaleUnsupported ensures the default locale belongs to the supported set.
var ErrDefaultLocaleUnsupported = errors.New("catalog config: default locale is not in the supported set")

var ErrLocaleCodeRequired = errors.New("catalog config: locale code cannot be empty")
var ErrDuplicateLocale = errors.New("catalog config: duplicate locale code")
var ErrAPITimeoutInvalid = errors.New("catalog config: api timeout must be zero or positive")
var ErrCommandTimeoutInvalid = errors.New("catalog config: command timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("catalog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("catalog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("catalog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("catalog config: logging format is invalid")

// Config aggregates adapter bindings for the catalog console module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	DefaultLocale string
	Locales       []LocaleConfig
	API           APIConfig
	Preference    PreferenceConfig
	Commands      CommandsConfig
	Features      Features
	Logging       LoggingConfig
}

// LocaleConfig describes one supported locale.
type LocaleConfig struct {
	Code    string
	Display string
	RTL     bool
}

// APIConfig wires the remote catalog API transport.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// RouteConfig overrides the default go-urlkit route table built from BaseURL.
	RouteConfig *urlkit.Config
}

// PreferenceConfig controls where the current-locale preference is persisted.
type PreferenceConfig struct {
	// Path is the preference file location. Empty keeps the preference in memory only.
	Path string
}

// CommandsConfig tunes the mutation command layer.
type CommandsConfig struct {
	Timeout time.Duration
}

// Features toggles module functionality.
type Features struct {
	Logger bool
	// StaleFetchSuppression discards out-of-order bundle fetch responses.
	StaleFetchSuppression bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration: the three supported
// locales with english as default, stale-fetch suppression on, and gologger
// JSON logging.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		Locales: []LocaleConfig{
			{Code: "en", Display: "English"},
			{Code: "ar", Display: "العربية", RTL: true},
			{Code: "zh", Display: "中文"},
		},
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Preference: PreferenceConfig{},
		Commands:   CommandsConfig{},
		Features: Features{
			StaleFetchSuppression: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Locales) == 0 {
		return ErrNoLocalesConfigured
	}

	seen := make(map[string]struct{}, len(cfg.Locales))
	for _, locale := range cfg.Locales {
		code := strings.ToLower(strings.TrimSpace(locale.Code))
		if code == "" {
			return ErrLocaleCodeRequired
		}
		if _, dup := seen[code]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLocale, code)
		}
		seen[code] = struct{}{}
	}

	defaultLocale := strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))
	if defaultLocale != "" {
		if _, ok := seen[defaultLocale]; !ok {
			return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, defaultLocale)
		}
	}

	if cfg.API.Timeout < 0 {
		return ErrAPITimeoutInvalid
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}

	if cfg.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
