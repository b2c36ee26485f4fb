package runtimeconfig

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate_DefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidate_RequiresLocales(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locales = nil
	if err := cfg.Validate(); !errors.Is(err, ErrNoLocalesConfigured) {
		t.Fatalf("expected ErrNoLocalesConfigured, got %v", err)
	}
}

func TestConfigValidate_RejectsDuplicateLocales(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locales = append(cfg.Locales, LocaleConfig{Code: "EN", Display: "English (again)"})
	if err := cfg.Validate(); !errors.Is(err, ErrDuplicateLocale) {
		t.Fatalf("expected ErrDuplicateLocale, got %v", err)
	}
}

func TestConfigValidate_DefaultLocaleMustBeSupported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLocale = "fr"
	if err := cfg.Validate(); !errors.Is(err, ErrDefaultLocaleUnsupported) {
		t.Fatalf("expected ErrDefaultLocaleUnsupported, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeTimeouts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Timeout = -time.Second
	if err := cfg.Validate(); !errors.Is(err, ErrAPITimeoutInvalid) {
		t.Fatalf("expected ErrAPITimeoutInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Commands.Timeout = -time.Second
	if err := cfg.Validate(); !errors.Is(err, ErrCommandTimeoutInvalid) {
		t.Fatalf("expected ErrCommandTimeoutInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
