package view

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-catalog/internal/bundle"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/internal/locale"
)

func ref(id int64) *int64 { return &id }

func testBundle() *bundle.Bundle {
	return &bundle.Bundle{
		Locale:  "en",
		Product: bundle.BaseInfo{ID: 42, Slug: "insulation-board", Type: bundle.ProductTypeProduct, Status: bundle.StatusPublished},
		Paragraphs: map[int64]*bundle.Paragraph{
			100: {ID: 100, Translation: &bundle.ParagraphTranslation{
				Locale: "en", Title: "Durability", Body: "Built to last.",
			}},
			101: {ID: 101}, // no translation in this locale
		},
		Lists: map[int64]*bundle.List{
			200: {ID: 200, Slug: "features", Translation: &bundle.ListTranslation{
				Locale: "en", Title: "Features", Items: []string{"fire resistant", "recyclable"},
			}},
		},
		SpecGroups: map[int64]*bundle.SpecGroup{
			300: {ID: 300, Slug: "thermal", Translation: &bundle.SpecGroupTranslation{
				Locale: "en", Title: "Thermal",
				Items: []bundle.SpecItem{{Key: "r_value", Value: "6.5", Unit: "m²K/W"}},
			}},
		},
		Tables: map[int64]*bundle.Table{
			400: {ID: 400, Translation: &bundle.TableTranslation{
				Locale:  "en",
				Title:   "Dimensions",
				Columns: []string{"Thickness", "R-Value", "Weight"},
				Rows:    [][]string{{"50mm", "2.2", "1.5kg"}, {"100mm", "4.4"}},
			}},
		},
	}
}

func TestBuildPage_DispatchesEveryBlockType(t *testing.T) {
	t.Parallel()

	blocks := []bundle.Block{
		{ID: 1, Type: bundle.BlockImages, RefID: ref(900), SortOrder: 10},
		{ID: 2, Type: bundle.BlockParagraph, RefID: ref(100), SortOrder: 20},
		{ID: 3, Type: bundle.BlockList, RefID: ref(200), SortOrder: 30},
		{ID: 4, Type: bundle.BlockSpecGroup, RefID: ref(300), SortOrder: 40},
		{ID: 5, Type: bundle.BlockTable, RefID: ref(400), SortOrder: 50},
	}

	page := BuildPage(testBundle(), blocks, locale.DirectionLTR)
	if page.Locale != "en" || page.Product.Slug != "insulation-board" {
		t.Fatalf("unexpected page header: %+v", page)
	}
	if len(page.Blocks) != 5 {
		t.Fatalf("expected 5 views, got %d", len(page.Blocks))
	}

	system, ok := page.Blocks[0].(SystemView)
	if !ok || system.Type != bundle.BlockImages || system.RefID != 900 {
		t.Fatalf("expected SystemView for images, got %#v", page.Blocks[0])
	}

	paragraph, ok := page.Blocks[1].(ParagraphView)
	if !ok || !paragraph.HasTranslation || paragraph.Title != "Durability" {
		t.Fatalf("unexpected paragraph view: %#v", page.Blocks[1])
	}
	if paragraph.Kind != contents.KindParagraph || paragraph.ContentID != 100 {
		t.Fatalf("unexpected paragraph meta: %+v", paragraph.BlockMeta)
	}

	list, ok := page.Blocks[2].(ListView)
	if !ok || len(list.Items) != 2 {
		t.Fatalf("unexpected list view: %#v", page.Blocks[2])
	}

	specs, ok := page.Blocks[3].(SpecGroupView)
	if !ok || specs.Items[0].Unit != "m²K/W" {
		t.Fatalf("unexpected spec view: %#v", page.Blocks[3])
	}

	table, ok := page.Blocks[4].(TableView)
	if !ok || table.Title != "Dimensions" {
		t.Fatalf("unexpected table view: %#v", page.Blocks[4])
	}
}

func TestBuildPage_PadsShortTableRows(t *testing.T) {
	t.Parallel()

	blocks := []bundle.Block{{ID: 5, Type: bundle.BlockTable, RefID: ref(400), SortOrder: 10}}
	page := BuildPage(testBundle(), blocks, locale.DirectionLTR)

	table := page.Blocks[0].(TableView)
	want := [][]string{
		{"50mm", "2.2", "1.5kg"},
		{"100mm", "4.4", ""},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Fatalf("rows: got %v want %v", table.Rows, want)
	}
}

func TestBuildPage_MissingTranslationIsExplicit(t *testing.T) {
	t.Parallel()

	blocks := []bundle.Block{{ID: 2, Type: bundle.BlockParagraph, RefID: ref(101), SortOrder: 10}}
	page := BuildPage(testBundle(), blocks, locale.DirectionLTR)

	paragraph := page.Blocks[0].(ParagraphView)
	if paragraph.Missing {
		t.Fatal("entity exists, block must not be marked missing")
	}
	if paragraph.HasTranslation {
		t.Fatal("expected HasTranslation false for untranslated entity")
	}
	if paragraph.Title != "" || paragraph.Body != "" {
		t.Fatalf("untranslated view should carry empty fields: %+v", paragraph)
	}
}

func TestBuildPage_DanglingRefIsMarkedMissing(t *testing.T) {
	t.Parallel()

	blocks := []bundle.Block{
		{ID: 3, Type: bundle.BlockList, RefID: ref(999), SortOrder: 10},
		{ID: 4, Type: bundle.BlockTable, SortOrder: 20}, // nil ref
	}
	page := BuildPage(testBundle(), blocks, locale.DirectionRTL)

	list := page.Blocks[0].(ListView)
	if !list.Missing {
		t.Fatal("dangling ref must be marked missing")
	}
	table := page.Blocks[1].(TableView)
	if !table.Missing {
		t.Fatal("nil ref must be marked missing")
	}
	if page.Direction != locale.DirectionRTL {
		t.Fatalf("expected rtl direction, got %q", page.Direction)
	}
}

func TestBuildPage_NilBundle(t *testing.T) {
	t.Parallel()

	page := BuildPage(nil, []bundle.Block{{ID: 1, Type: bundle.BlockBasic}}, locale.DirectionLTR)
	if len(page.Blocks) != 0 {
		t.Fatalf("nil bundle should produce no blocks, got %d", len(page.Blocks))
	}
}
