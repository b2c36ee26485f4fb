package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-catalog/internal/layout"
)

type staticLocale string

func (s staticLocale) Current() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, locale string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL,
		Locales: staticLocale(locale),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNew_RequiresLocaleSourceAndBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{BaseURL: "http://x"}); !errors.Is(err, ErrLocaleSourceRequired) {
		t.Fatalf("expected ErrLocaleSourceRequired, got %v", err)
	}
	if _, err := New(Config{Locales: staticLocale("en")}); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func TestFetchBundle_AppendsLocaleQuery(t *testing.T) {
	t.Parallel()

	var gotPath, gotLocale string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLocale = r.URL.Query().Get("locale")
		_ = json.NewEncoder(w).Encode(map[string]any{"locale": "ar"})
	}, "ar")

	raw, err := client.FetchBundle(context.Background(), "insulation-board")
	if err != nil {
		t.Fatalf("fetch bundle: %v", err)
	}
	if gotPath != "/products/insulation-board" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotLocale != "ar" {
		t.Fatalf("expected locale query ar, got %q", gotLocale)
	}
	if raw.Locale != "ar" {
		t.Fatalf("expected decoded locale ar, got %q", raw.Locale)
	}
}

func TestCreateContent_InjectsLocaleIntoEnvelope(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}, "en")

	data := map[string]any{
		"title":      "Durability",
		"subtitle":   "",
		"full_text":  "Built to last.",
		"sort_order": 2,
	}
	if err := client.CreateContent(context.Background(), 42, "paragraphs", data); err != nil {
		t.Fatalf("create content: %v", err)
	}

	if body["locale"] != "en" {
		t.Fatalf("expected injected locale en, got %v", body["locale"])
	}
	payload, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope, got %v", body)
	}
	if payload["title"] != "Durability" || payload["full_text"] != "Built to last." {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestDeleteTranslation_TargetsLocalePath(t *testing.T) {
	t.Parallel()

	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
	}, "en")

	if err := client.DeleteTranslation(context.Background(), 42, "lists", 200, "zh"); err != nil {
		t.Fatalf("delete translation: %v", err)
	}
	if gotPath != "/products/42/contents/lists/200/zh" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestResponseErrors_AreTyped(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such product", http.StatusNotFound)
	}, "en")

	_, err := client.FetchBundle(context.Background(), "ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Resource != "product" || notFound.Key != "ghost" {
		t.Fatalf("unexpected not-found details: %+v", notFound)
	}

	client = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"title too long"}`, http.StatusUnprocessableEntity)
	}, "en")

	err = client.UpdateContent(context.Background(), 42, "tables", 400, map[string]any{"title": "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.IsValidation() {
		t.Fatalf("422 should classify as validation, got %+v", apiErr)
	}
	if !strings.Contains(apiErr.Body, "title too long") {
		t.Fatalf("expected body excerpt, got %q", apiErr.Body)
	}
}

func TestCommitLayoutOrder_SendsChangedPairsOnly(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/products/42/layout/order" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
	}, "en")

	changes := []layout.OrderChange{
		{BlockID: 10, SortOrder: 2},
		{BlockID: 11, SortOrder: 1},
	}
	if err := client.CommitLayoutOrder(context.Background(), 42, changes); err != nil {
		t.Fatalf("commit layout order: %v", err)
	}

	if body["locale"] != "en" {
		t.Fatalf("expected injected locale, got %v", body["locale"])
	}
	order, ok := body["order"].([]any)
	if !ok || len(order) != 2 {
		t.Fatalf("expected two order pairs, got %v", body["order"])
	}
	first, _ := order[0].(map[string]any)
	if first["block_id"] != float64(10) || first["sort_order"] != float64(2) {
		t.Fatalf("unexpected first pair: %v", first)
	}
}
