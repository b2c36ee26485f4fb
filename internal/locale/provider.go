package locale

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Direction is the text direction derived from the current locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

var (
	// ErrUnsupportedLocale indicates Set was called with a code outside the supported set.
	ErrUnsupportedLocale = errors.New("locale: unsupported locale code")
	// ErrNoLocales indicates the provider was constructed without locales.
	ErrNoLocales = errors.New("locale: at least one locale is required")
)

// Locale describes one supported language.
type Locale struct {
	Code    string
	Display string
	RTL     bool
}

// Listener is invoked after the current locale changes. Callbacks run
// synchronously on the goroutine that called Set.
type Listener func(code string)

// MirrorFunc receives the text direction whenever the current locale changes
// so the host can mirror the root rendering context. It also fires once at
// construction time with the initial direction.
type MirrorFunc func(dir Direction)

// Provider holds the process-wide current locale. The current value is always
// a member of the supported set; unknown stored preferences fall back to the
// default locale.
type Provider struct {
	mu        sync.RWMutex
	supported map[string]Locale
	order     []string
	fallback  string
	current   string

	store     Store
	mirror    MirrorFunc
	listeners []Listener
	logger    interfaces.Logger
}

// Option configures the provider at construction time.
type Option func(*Provider)

// WithStore persists locale changes and restores the preference at startup.
func WithStore(store Store) Option {
	return func(p *Provider) {
		p.store = store
	}
}

// WithDirectionMirror registers the side-effect that mirrors text direction
// onto the root rendering context.
func WithDirectionMirror(mirror MirrorFunc) Option {
	return func(p *Provider) {
		p.mirror = mirror
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider constructs a locale provider over the supported set. The stored
// preference wins over defaultCode when it names a supported locale.
func NewProvider(locales []Locale, defaultCode string, opts ...Option) (*Provider, error) {
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}

	p := &Provider{
		supported: make(map[string]Locale, len(locales)),
		order:     make([]string, 0, len(locales)),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, l := range locales {
		code := normalizeCode(l.Code)
		if code == "" {
			return nil, ErrNoLocales
		}
		if _, dup := p.supported[code]; dup {
			return nil, fmt.Errorf("locale: duplicate locale %q", code)
		}
		l.Code = code
		p.supported[code] = l
		p.order = append(p.order, code)
	}

	fallback := normalizeCode(defaultCode)
	if _, ok := p.supported[fallback]; !ok {
		fallback = p.order[0]
	}
	p.fallback = fallback
	p.current = fallback

	if p.store != nil {
		stored, err := p.store.Load()
		switch {
		case err != nil:
			p.logger.Warn("locale preference load failed, using default", "error", err, "default", fallback)
		default:
			code := normalizeCode(stored)
			if _, ok := p.supported[code]; ok {
				p.current = code
			} else if code != "" {
				p.logger.Warn("stored locale is unsupported, using default", "stored", code, "default", fallback)
			}
		}
	}

	if p.mirror != nil {
		p.mirror(directionOf(p.supported[p.current]))
	}

	return p, nil
}

// Current returns the active locale code.
func (p *Provider) Current() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// CurrentInfo returns the full record for the active locale.
func (p *Provider) CurrentInfo() Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.supported[p.current]
}

// Default returns the fallback locale code.
func (p *Provider) Default() string {
	return p.fallback
}

// Supported lists the locales in registration order.
func (p *Provider) Supported() []Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Locale, 0, len(p.order))
	for _, code := range p.order {
		out = append(out, p.supported[code])
	}
	return out
}

// IsSupported reports whether code names a supported locale.
func (p *Provider) IsSupported(code string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.supported[normalizeCode(code)]
	return ok
}

// IsRTL reports whether the active locale renders right-to-left.
func (p *Provider) IsRTL() bool {
	return p.CurrentInfo().RTL
}

// Direction returns the text direction for the active locale.
func (p *Provider) Direction() Direction {
	return directionOf(p.CurrentInfo())
}

// Set switches the current locale. The change is persisted, the direction
// mirror fires, and registered listeners run so locale-scoped data reloads.
// Setting the already-current locale is a no-op.
func (p *Provider) Set(code string) error {
	code = normalizeCode(code)

	p.mu.Lock()
	record, ok := p.supported[code]
	if !ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnsupportedLocale, code)
	}
	if code == p.current {
		p.mu.Unlock()
		return nil
	}
	p.current = code
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	if p.store != nil {
		if err := p.store.Save(code); err != nil {
			// The in-memory switch already happened; a failed save only costs
			// the preference on next start.
			p.logger.Warn("locale preference save failed", "locale", code, "error", err)
		}
	}

	if p.mirror != nil {
		p.mirror(directionOf(record))
	}

	for _, listener := range listeners {
		if listener != nil {
			listener(code)
		}
	}
	return nil
}

// Subscribe registers a change listener and returns its removal function.
func (p *Provider) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}

	p.mu.Lock()
	p.listeners = append(p.listeners, listener)
	index := len(p.listeners) - 1
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if index < len(p.listeners) {
			p.listeners[index] = nil
		}
	}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func directionOf(l Locale) Direction {
	if l.RTL {
		return DirectionRTL
	}
	return DirectionLTR
}
