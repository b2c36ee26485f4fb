package locale

import (
	"errors"
	"path/filepath"
	"testing"
)

func testLocales() []Locale {
	return []Locale{
		{Code: "en", Display: "English"},
		{Code: "ar", Display: "العربية", RTL: true},
		{Code: "zh", Display: "中文"},
	}
}

func TestProvider_DefaultsToConfiguredLocale(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(testLocales(), "en")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if got := p.Current(); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
	if p.IsRTL() {
		t.Fatal("en should not be RTL")
	}
	if dir := p.Direction(); dir != DirectionLTR {
		t.Fatalf("expected ltr, got %q", dir)
	}
}

func TestProvider_SetRejectsUnsupportedLocale(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(testLocales(), "en")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if err := p.Set("fr"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
	if got := p.Current(); got != "en" {
		t.Fatalf("current locale should be unchanged, got %q", got)
	}
}

func TestProvider_SetPersistsAndMirrorsDirection(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	var directions []Direction
	p, err := NewProvider(testLocales(), "en",
		WithStore(store),
		WithDirectionMirror(func(dir Direction) {
			directions = append(directions, dir)
		}),
	)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	if err := p.Set("ar"); err != nil {
		t.Fatalf("set ar: %v", err)
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if saved != "ar" {
		t.Fatalf("expected stored preference ar, got %q", saved)
	}
	if len(directions) != 2 || directions[0] != DirectionLTR || directions[1] != DirectionRTL {
		t.Fatalf("expected mirror calls [ltr rtl], got %v", directions)
	}
}

func TestProvider_StoredPreferenceWinsOverDefault(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if err := store.Save("zh"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	p, err := NewProvider(testLocales(), "en", WithStore(store))
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if got := p.Current(); got != "zh" {
		t.Fatalf("expected zh from store, got %q", got)
	}
}

func TestProvider_UnsupportedStoredPreferenceFallsBack(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if err := store.Save("de"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	p, err := NewProvider(testLocales(), "en", WithStore(store))
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if got := p.Current(); got != "en" {
		t.Fatalf("expected fallback en, got %q", got)
	}
}

func TestProvider_ListenersFireOnChangeOnly(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(testLocales(), "en")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	var calls []string
	unsubscribe := p.Subscribe(func(code string) {
		calls = append(calls, code)
	})

	if err := p.Set("en"); err != nil {
		t.Fatalf("set current locale: %v", err)
	}
	if len(calls) != 0 {
		t.Fatalf("setting the current locale should not notify, got %v", calls)
	}

	if err := p.Set("zh"); err != nil {
		t.Fatalf("set zh: %v", err)
	}
	if len(calls) != 1 || calls[0] != "zh" {
		t.Fatalf("expected [zh], got %v", calls)
	}

	unsubscribe()
	if err := p.Set("ar"); err != nil {
		t.Fatalf("set ar: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("unsubscribed listener should not fire, got %v", calls)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs", "locale.json")
	store := NewFileStore(path)

	if code, err := store.Load(); err != nil || code != "" {
		t.Fatalf("missing file should load empty, got %q err %v", code, err)
	}

	if err := store.Save("ar"); err != nil {
		t.Fatalf("save: %v", err)
	}
	code, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if code != "ar" {
		t.Fatalf("expected ar, got %q", code)
	}
}
