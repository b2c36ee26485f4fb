package contents

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-catalog/internal/bundle"
)

type fakeAPI struct {
	createCalls []apiCall
	updateCalls []apiCall
	deleteCalls []apiCall
	translCalls []apiCall
	err         error
}

type apiCall struct {
	productID int64
	segment   string
	contentID int64
	locale    string
	data      any
}

func (f *fakeAPI) CreateContent(_ context.Context, productID int64, segment string, data any) error {
	f.createCalls = append(f.createCalls, apiCall{productID: productID, segment: segment, data: data})
	return f.err
}

func (f *fakeAPI) UpdateContent(_ context.Context, productID int64, segment string, contentID int64, data any) error {
	f.updateCalls = append(f.updateCalls, apiCall{productID: productID, segment: segment, contentID: contentID, data: data})
	return f.err
}

func (f *fakeAPI) DeleteContent(_ context.Context, productID int64, segment string, contentID int64) error {
	f.deleteCalls = append(f.deleteCalls, apiCall{productID: productID, segment: segment, contentID: contentID})
	return f.err
}

func (f *fakeAPI) DeleteTranslation(_ context.Context, productID int64, segment string, contentID int64, locale string) error {
	f.translCalls = append(f.translCalls, apiCall{productID: productID, segment: segment, contentID: contentID, locale: locale})
	return f.err
}

type fixedLocale string

func (l fixedLocale) Current() string { return string(l) }

func TestKind_Registry(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind    Kind
		segment string
		block   bundle.BlockType
	}{
		{KindParagraph, "paragraphs", bundle.BlockParagraph},
		{KindList, "lists", bundle.BlockList},
		{KindSpecGroup, "spec-groups", bundle.BlockSpecGroup},
		{KindTable, "tables", bundle.BlockTable},
	}
	for _, tc := range cases {
		if !tc.kind.Valid() {
			t.Errorf("%s should be valid", tc.kind)
		}
		if got := tc.kind.PathSegment(); got != tc.segment {
			t.Errorf("%s segment: got %q want %q", tc.kind, got, tc.segment)
		}
		if got := tc.kind.BlockType(); got != tc.block {
			t.Errorf("%s block type: got %q want %q", tc.kind, got, tc.block)
		}
		back, ok := KindForBlock(tc.block)
		if !ok || back != tc.kind {
			t.Errorf("KindForBlock(%s): got %q %v", tc.block, back, ok)
		}
	}

	if Kind("video").Valid() {
		t.Fatal("unknown kind should not validate")
	}
	if _, ok := KindForBlock(bundle.BlockImages); ok {
		t.Fatal("system blocks must not map to editable kinds")
	}
}

func TestParagraphPayload_NormalizedTrims(t *testing.T) {
	t.Parallel()

	payload := ParagraphPayload{
		Title:    "  Durability  ",
		Subtitle: "\t",
		FullText: " Built to last. \n",
	}

	got := payload.Normalized()
	want := ParagraphPayload{Title: "Durability", Subtitle: "", FullText: "Built to last."}
	if got != want {
		t.Fatalf("normalized: got %+v want %+v", got, want)
	}
	if again := got.Normalized(); again != got {
		t.Fatalf("normalization must be idempotent, got %+v", again)
	}
}

func TestListPayload_NormalizedFiltersEmptyItems(t *testing.T) {
	t.Parallel()

	payload := ListPayload{
		Slug:  " Thermal Specs ",
		Title: " Features ",
		Items: []string{" fire resistant ", "", "   ", "recyclable"},
	}

	got := payload.Normalized()
	if got.Slug != "thermal-specs" {
		t.Fatalf("expected normalized slug, got %q", got.Slug)
	}
	if got.Title != "Features" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}
	if want := []string{"fire resistant", "recyclable"}; !reflect.DeepEqual(got.Items, want) {
		t.Fatalf("items: got %v want %v", got.Items, want)
	}
	if again := got.Normalized(); !reflect.DeepEqual(again, got) {
		t.Fatalf("normalization must be idempotent, got %+v", again)
	}
}

func TestSpecGroupPayload_NormalizedKeepsPartialRows(t *testing.T) {
	t.Parallel()

	payload := SpecGroupPayload{
		Title: "Thermal",
		Items: []SpecItemPayload{
			{Key: " r_value ", Value: " 6.5 ", Unit: " m²K/W "},
			{Key: "", Value: "", Unit: "mm"},
			{Key: "density", Value: ""},
		},
	}

	got := payload.Normalized()
	want := []SpecItemPayload{
		{Key: "r_value", Value: "6.5", Unit: "m²K/W"},
		{Key: "density", Value: ""},
	}
	if !reflect.DeepEqual(got.Items, want) {
		t.Fatalf("items: got %+v want %+v", got.Items, want)
	}
}

func TestTablePayload_NormalizedDropsBlankRows(t *testing.T) {
	t.Parallel()

	payload := TablePayload{
		Columns: []string{" Thickness ", "R-Value", ""},
		Rows: [][]string{
			{" 50mm ", "2.2", "x"},
			{"", "  ", ""},
			{"100mm", "4.4"},
		},
	}

	got := payload.Normalized()
	if want := []string{"Thickness", "R-Value", ""}; !reflect.DeepEqual(got.Columns, want) {
		t.Fatalf("columns: got %v want %v", got.Columns, want)
	}
	wantRows := [][]string{
		{"50mm", "2.2", "x"},
		{"100mm", "4.4"},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Fatalf("rows: got %v want %v", got.Rows, wantRows)
	}
}

func TestPayload_ValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}

	if err := (ParagraphPayload{Title: string(long)}).Validate(); err == nil {
		t.Fatal("overlong title should fail validation")
	}
	if err := (ListPayload{Slug: "Not A Slug!"}).Validate(); err == nil {
		t.Fatal("invalid slug should fail validation")
	}
	if err := (TablePayload{SortOrder: -1}).Validate(); err == nil {
		t.Fatal("negative sort order should fail validation")
	}
	if err := (SpecGroupPayload{Title: "Thermal", Slug: "thermal"}).Validate(); err != nil {
		t.Fatalf("valid payload should pass, got %v", err)
	}
}

func TestService_CreateNormalizesBeforeSend(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	svc := NewService(api, fixedLocale("en"))

	payload := ListPayload{Title: " Features ", Items: []string{" a ", ""}}
	if err := svc.Create(context.Background(), 42, payload); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(api.createCalls) != 1 {
		t.Fatalf("expected one create call, got %d", len(api.createCalls))
	}
	call := api.createCalls[0]
	if call.productID != 42 || call.segment != "lists" {
		t.Fatalf("unexpected call target: %+v", call)
	}
	sent, ok := call.data.(ListPayload)
	if !ok {
		t.Fatalf("expected ListPayload, got %T", call.data)
	}
	if sent.Title != "Features" || !reflect.DeepEqual(sent.Items, []string{"a"}) {
		t.Fatalf("payload not normalized: %+v", sent)
	}
}

func TestService_ValidatesTargets(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	svc := NewService(api, fixedLocale("en"))
	ctx := context.Background()

	if err := svc.Create(ctx, 0, ParagraphPayload{}); !errors.Is(err, ErrProductIDRequired) {
		t.Fatalf("expected ErrProductIDRequired, got %v", err)
	}
	if err := svc.Create(ctx, 42, nil); !errors.Is(err, ErrPayloadRequired) {
		t.Fatalf("expected ErrPayloadRequired, got %v", err)
	}
	if err := svc.Update(ctx, 42, 0, ParagraphPayload{}); !errors.Is(err, ErrContentIDRequired) {
		t.Fatalf("expected ErrContentIDRequired, got %v", err)
	}
	if err := svc.DeleteEntity(ctx, 42, Kind("video"), 7); !errors.Is(err, ErrKindInvalid) {
		t.Fatalf("expected ErrKindInvalid, got %v", err)
	}
	if err := svc.DeleteTranslation(ctx, 42, KindTable, 0); !errors.Is(err, ErrContentIDRequired) {
		t.Fatalf("expected ErrContentIDRequired, got %v", err)
	}
	if len(api.createCalls)+len(api.updateCalls)+len(api.deleteCalls)+len(api.translCalls) != 0 {
		t.Fatal("invalid requests must not reach the API")
	}
}

func TestService_DeleteTranslationUsesCurrentLocale(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	svc := NewService(api, fixedLocale("zh"))

	if err := svc.DeleteTranslation(context.Background(), 42, KindList, 200); err != nil {
		t.Fatalf("delete translation: %v", err)
	}
	call := api.translCalls[0]
	if call.locale != "zh" || call.segment != "lists" || call.contentID != 200 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestService_WrapsAPIErrors(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	svc := NewService(&fakeAPI{err: sentinel}, fixedLocale("en"))

	err := svc.Update(context.Background(), 42, 7, ParagraphPayload{Title: "x"})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped API error, got %v", err)
	}
}
