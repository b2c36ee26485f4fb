package bundle

import "time"

// ProductType is the closed product classification enum.
type ProductType string

const (
	ProductTypeProduct  ProductType = "product"
	ProductTypeMaterial ProductType = "material"
	ProductTypeService  ProductType = "service"
)

// Status is the closed publication status enum.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// BlockType tags a layout block. Only the four content kinds are editable by
// the console; the remaining types render as inert system cards.
type BlockType string

const (
	BlockImages    BlockType = "images"
	BlockImageSet  BlockType = "image_set"
	BlockBasic     BlockType = "basic"
	BlockHTML      BlockType = "custom_html"
	BlockTableSet  BlockType = "table_group"
	BlockSpecsAll  BlockType = "specs_all"
	BlockParagraph BlockType = "content_paragraph"
	BlockList      BlockType = "list"
	BlockSpecGroup BlockType = "spec_group"
	BlockTable     BlockType = "table"
)

// Editable reports whether the console can create/edit/delete content behind
// this block type.
func (t BlockType) Editable() bool {
	switch t {
	case BlockParagraph, BlockList, BlockSpecGroup, BlockTable:
		return true
	default:
		return false
	}
}

// Known reports whether the tag belongs to the closed block type set.
func (t BlockType) Known() bool {
	switch t {
	case BlockImages, BlockImageSet, BlockBasic, BlockHTML, BlockTableSet,
		BlockSpecsAll, BlockParagraph, BlockList, BlockSpecGroup, BlockTable:
		return true
	default:
		return false
	}
}

// BaseInfo is the untranslatable identity of a product. Name and description
// resolve per locale through the content entities, not here.
type BaseInfo struct {
	ID          int64
	Slug        string
	Code        string
	Type        ProductType
	Status      Status
	PublishedAt *time.Time
	CategoryID  int64
}

// Layout is the single ordered block sequence of a product.
type Layout struct {
	ID        int64
	Name      string
	IsDefault bool
	Blocks    []Block
}

// Block is one ordered slot in the layout. RefID points at the content entity
// of the matching type and is nil for system blocks.
type Block struct {
	ID        int64
	Type      BlockType
	RefID     *int64
	SortOrder int
}

// ParagraphTranslation is the locale-specific payload of a paragraph.
type ParagraphTranslation struct {
	Locale   string
	Title    string
	Subtitle string
	Body     string
}

// Paragraph is a language-independent content entity carrying at most one
// translation for the bundle's locale. Translation is nil when the entity has
// no translation in that locale; viewers must render an explicit empty state.
type Paragraph struct {
	ID          int64
	SortOrder   int
	Translation *ParagraphTranslation
}

// ListTranslation is the locale-specific payload of a list.
type ListTranslation struct {
	Locale      string
	Title       string
	Description string
	Items       []string
}

// List is an ordered free-text item collection entity.
type List struct {
	ID          int64
	Slug        string
	SortOrder   int
	Translation *ListTranslation
}

// SpecItem is one key/value/unit triple of a spec group.
type SpecItem struct {
	Key   string
	Value string
	Unit  string
}

// SpecGroupTranslation is the locale-specific payload of a spec group.
type SpecGroupTranslation struct {
	Locale      string
	Title       string
	Description string
	Items       []SpecItem
}

// SpecGroup is a technical specification entity.
type SpecGroup struct {
	ID          int64
	Slug        string
	SortOrder   int
	Translation *SpecGroupTranslation
}

// TableTranslation is the locale-specific payload of a table. Rows may be
// shorter than Columns; viewers pad missing cells with empty strings.
type TableTranslation struct {
	Locale   string
	Title    string
	Subtitle string
	Columns  []string
	Rows     [][]string
	Notes    string
}

// Table is a tabular content entity.
type Table struct {
	ID          int64
	SortOrder   int
	Translation *TableTranslation
}

// Image is a single uploaded image.
type Image struct {
	ID        int64
	URL       string
	Alt       string
	SortOrder int
}

// ImageGroup is a named bucket of ordered images. Image groups live outside
// the polymorphic block model; the bundle carries them for the gallery
// section.
type ImageGroup struct {
	ID        int64
	Name      string
	SortOrder int
	Images    []Image
}

// Bundle is the full normalized client-side snapshot of one product's content
// in one locale. It is discarded and rebuilt on navigation, locale change,
// and after every successful mutation.
type Bundle struct {
	Locale      string
	Product     BaseInfo
	Layout      Layout
	Paragraphs  map[int64]*Paragraph
	Lists       map[int64]*List
	SpecGroups  map[int64]*SpecGroup
	Tables      map[int64]*Table
	ImageGroups []ImageGroup
}

// Paragraph resolves a paragraph entity by content id.
func (b *Bundle) Paragraph(id int64) (*Paragraph, bool) {
	p, ok := b.Paragraphs[id]
	return p, ok
}

// List resolves a list entity by content id.
func (b *Bundle) List(id int64) (*List, bool) {
	l, ok := b.Lists[id]
	return l, ok
}

// SpecGroup resolves a spec group entity by content id.
func (b *Bundle) SpecGroup(id int64) (*SpecGroup, bool) {
	s, ok := b.SpecGroups[id]
	return s, ok
}

// Table resolves a table entity by content id.
func (b *Bundle) Table(id int64) (*Table, bool) {
	t, ok := b.Tables[id]
	return t, ok
}
