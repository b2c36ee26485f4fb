// Command example walks the catalog console module end to end against an
// in-memory catalog API: load a product bundle, edit content, reorder the
// layout, and switch locales.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http/httptest"
	"os"

	catalog "github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/pkg/testsupport/fakeapi"
)

func main() {
	ctx := context.Background()

	api, err := fakeapi.New()
	if err != nil {
		log.Fatalf("start fake api: %v", err)
	}
	defer api.Close()
	if err := seed(ctx, api); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	server := httptest.NewServer(api)
	defer server.Close()

	cfg := catalog.DefaultConfig()
	cfg.API.BaseURL = server.URL
	cfg.Features.Logger = true
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "console"

	module, err := catalog.New(cfg, catalog.WithNotifier(catalog.NotifierFunc(func(n catalog.Notification) {
		fmt.Printf("[%s] %s\n", n.Severity, n.Message)
	})))
	if err != nil {
		log.Fatalf("initialise catalog: %v", err)
	}
	session := module.Session()
	defer session.Close()

	if err := session.Load(ctx, "insulated-panel"); err != nil {
		log.Fatalf("load product: %v", err)
	}
	prettyPrint("page (en)", summarizePage(session.Page()))

	// Add a paragraph through the single editor slot.
	draft, err := session.AddContent(catalog.KindParagraph)
	if err != nil {
		log.Fatalf("open add form: %v", err)
	}
	paragraph := draft.(*catalog.ParagraphDraft)
	paragraph.Title = "Warranty"
	paragraph.FullText = "Covered for 25 years under normal installation conditions."
	if err := session.SubmitDraft(ctx); err != nil {
		log.Fatalf("submit draft: %v", err)
	}

	// Stage a block move and persist only the changed pairs.
	page := session.Page()
	lastBlock := page.Blocks[len(page.Blocks)-1].(catalog.ParagraphView)
	if err := session.MoveBlock(lastBlock.BlockID, catalog.MoveUp); err != nil {
		log.Fatalf("move block: %v", err)
	}
	if err := session.CommitLayout(ctx); err != nil {
		log.Fatalf("commit layout: %v", err)
	}
	prettyPrint("page after edits (en)", summarizePage(session.Page()))

	// Switching locale refetches the bundle and mirrors direction for RTL.
	if err := module.Locales().Set("ar"); err != nil {
		log.Fatalf("switch locale: %v", err)
	}
	prettyPrint("page (ar)", summarizePage(session.Page()))
}

func seed(ctx context.Context, api *fakeapi.Server) error {
	productID, err := api.SeedProduct(ctx, "insulated-panel", "IP-400")
	if err != nil {
		return err
	}
	if _, _, err := api.SeedContent(ctx, productID, "paragraphs", "", 10, map[string]map[string]any{
		"en": {"title": "Durability", "subtitle": "Field proven", "full_text": "Built to last."},
		"ar": {"title": "المتانة", "subtitle": "", "full_text": "صُنع ليدوم."},
	}); err != nil {
		return err
	}
	if _, _, err := api.SeedContent(ctx, productID, "spec-groups", "thermal", 20, map[string]map[string]any{
		"en": {
			"title": "Thermal Performance",
			"specs": []map[string]any{
				{"key": "U-value", "value": "0.21", "unit": "W/m²K"},
				{"key": "Core thickness", "value": "100", "unit": "mm"},
			},
		},
	}); err != nil {
		return err
	}
	_, err = api.SeedSystemBlock(ctx, productID, "images", 30)
	return err
}

func summarizePage(page catalog.Page) map[string]any {
	blocks := make([]map[string]any, 0, len(page.Blocks))
	for _, block := range page.Blocks {
		switch v := block.(type) {
		case catalog.ParagraphView:
			blocks = append(blocks, map[string]any{
				"kind": v.Kind, "title": v.Title, "translated": v.HasTranslation, "sort": v.SortOrder,
			})
		case catalog.ListView:
			blocks = append(blocks, map[string]any{
				"kind": v.Kind, "title": v.Title, "items": len(v.Items), "sort": v.SortOrder,
			})
		case catalog.SpecGroupView:
			blocks = append(blocks, map[string]any{
				"kind": v.Kind, "title": v.Title, "specs": len(v.Items), "sort": v.SortOrder,
			})
		case catalog.TableView:
			blocks = append(blocks, map[string]any{
				"kind": v.Kind, "title": v.Title, "columns": len(v.Columns), "sort": v.SortOrder,
			})
		case catalog.SystemView:
			blocks = append(blocks, map[string]any{
				"kind": "system", "type": v.Type, "sort": v.SortOrder,
			})
		}
	}
	return map[string]any{
		"locale":    page.Locale,
		"direction": page.Direction,
		"product":   page.Product.Slug,
		"blocks":    blocks,
	}
}

func prettyPrint(label string, payload any) {
	fmt.Printf("\n%s:\n", label)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		log.Printf("pretty print %s: %v", label, err)
	}
}
