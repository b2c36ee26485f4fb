package view

import (
	"github.com/goliatone/go-catalog/internal/bundle"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/internal/locale"
)

// BlockView is one renderable slot in layout order. The concrete types form a
// closed set; renderers switch over them exhaustively.
type BlockView interface {
	blockView()
}

// BlockMeta carries the fields every view shares. Missing means the block
// references an entity the bundle does not contain; HasTranslation means the
// entity carries a facet for the active locale. Renderers show an explicit
// "not translated" affordance instead of hiding the block, so admins can see
// what still needs translating.
type BlockMeta struct {
	BlockID        int64
	ContentID      int64
	Kind           contents.Kind
	SortOrder      int
	Missing        bool
	HasTranslation bool
}

// ParagraphView renders a paragraph block.
type ParagraphView struct {
	BlockMeta
	Title    string
	Subtitle string
	Body     string
}

func (ParagraphView) blockView() {}

// ListView renders a list block.
type ListView struct {
	BlockMeta
	Slug        string
	Title       string
	Description string
	Items       []string
}

func (ListView) blockView() {}

// SpecRow is one rendered key/value/unit line.
type SpecRow struct {
	Key   string
	Value string
	Unit  string
}

// SpecGroupView renders a spec group block.
type SpecGroupView struct {
	BlockMeta
	Slug        string
	Title       string
	Description string
	Items       []SpecRow
}

func (SpecGroupView) blockView() {}

// TableView renders a table block. Rows are padded to the column count so
// templates can iterate without bounds checks.
type TableView struct {
	BlockMeta
	Title    string
	Subtitle string
	Columns  []string
	Rows     [][]string
	Notes    string
}

func (TableView) blockView() {}

// SystemView renders a non-editable block (images, markup, aggregates). The
// console shows these read-only in layout position.
type SystemView struct {
	BlockID   int64
	Type      bundle.BlockType
	RefID     int64
	SortOrder int
}

func (SystemView) blockView() {}

// Page is the fully resolved product page for one locale.
type Page struct {
	Locale    string
	Direction locale.Direction
	Product   bundle.BaseInfo
	Blocks    []BlockView
}

// BuildPage resolves the ordered blocks against the bundle. blocks usually
// come from the layout engine so staged reorders show immediately.
func BuildPage(b *bundle.Bundle, blocks []bundle.Block, dir locale.Direction) Page {
	page := Page{
		Direction: dir,
		Blocks:    make([]BlockView, 0, len(blocks)),
	}
	if b == nil {
		return page
	}
	page.Locale = b.Locale
	page.Product = b.Product
	for _, block := range blocks {
		page.Blocks = append(page.Blocks, buildBlock(b, block))
	}
	return page
}

func buildBlock(b *bundle.Bundle, block bundle.Block) BlockView {
	kind, editable := contents.KindForBlock(block.Type)
	if !editable {
		view := SystemView{
			BlockID:   block.ID,
			Type:      block.Type,
			SortOrder: block.SortOrder,
		}
		if block.RefID != nil {
			view.RefID = *block.RefID
		}
		return view
	}

	meta := BlockMeta{
		BlockID:   block.ID,
		Kind:      kind,
		SortOrder: block.SortOrder,
	}
	if block.RefID == nil {
		meta.Missing = true
	} else {
		meta.ContentID = *block.RefID
	}

	switch kind {
	case contents.KindParagraph:
		return buildParagraph(b, meta)
	case contents.KindList:
		return buildList(b, meta)
	case contents.KindSpecGroup:
		return buildSpecGroup(b, meta)
	default:
		return buildTable(b, meta)
	}
}

func buildParagraph(b *bundle.Bundle, meta BlockMeta) ParagraphView {
	view := ParagraphView{BlockMeta: meta}
	if meta.Missing {
		return view
	}
	entity, ok := b.Paragraph(meta.ContentID)
	if !ok {
		view.Missing = true
		return view
	}
	if entity.Translation == nil {
		return view
	}
	view.HasTranslation = true
	view.Title = entity.Translation.Title
	view.Subtitle = entity.Translation.Subtitle
	view.Body = entity.Translation.Body
	return view
}

func buildList(b *bundle.Bundle, meta BlockMeta) ListView {
	view := ListView{BlockMeta: meta, Items: []string{}}
	if meta.Missing {
		return view
	}
	entity, ok := b.List(meta.ContentID)
	if !ok {
		view.Missing = true
		return view
	}
	view.Slug = entity.Slug
	if entity.Translation == nil {
		return view
	}
	view.HasTranslation = true
	view.Title = entity.Translation.Title
	view.Description = entity.Translation.Description
	view.Items = append([]string(nil), entity.Translation.Items...)
	if view.Items == nil {
		view.Items = []string{}
	}
	return view
}

func buildSpecGroup(b *bundle.Bundle, meta BlockMeta) SpecGroupView {
	view := SpecGroupView{BlockMeta: meta, Items: []SpecRow{}}
	if meta.Missing {
		return view
	}
	entity, ok := b.SpecGroup(meta.ContentID)
	if !ok {
		view.Missing = true
		return view
	}
	view.Slug = entity.Slug
	if entity.Translation == nil {
		return view
	}
	view.HasTranslation = true
	view.Title = entity.Translation.Title
	view.Description = entity.Translation.Description
	for _, item := range entity.Translation.Items {
		view.Items = append(view.Items, SpecRow{Key: item.Key, Value: item.Value, Unit: item.Unit})
	}
	return view
}

func buildTable(b *bundle.Bundle, meta BlockMeta) TableView {
	view := TableView{BlockMeta: meta, Columns: []string{}, Rows: [][]string{}}
	if meta.Missing {
		return view
	}
	entity, ok := b.Table(meta.ContentID)
	if !ok {
		view.Missing = true
		return view
	}
	if entity.Translation == nil {
		return view
	}
	view.HasTranslation = true
	view.Title = entity.Translation.Title
	view.Subtitle = entity.Translation.Subtitle
	view.Notes = entity.Translation.Notes
	view.Columns = append([]string(nil), entity.Translation.Columns...)
	if view.Columns == nil {
		view.Columns = []string{}
	}
	view.Rows = padRows(entity.Translation.Rows, len(view.Columns))
	return view
}

// padRows copies rows, extending each with empty cells up to width. Rows
// longer than the header list keep their extra cells.
func padRows(rows [][]string, width int) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, max(len(row), width))
		cells = append(cells, row...)
		for len(cells) < width {
			cells = append(cells, "")
		}
		out = append(out, cells)
	}
	return out
}
