package bundle

import (
	"encoding/json"
	"time"
)

// RawBundle mirrors the wire shape of GET /products/{slug}. Every field is
// optional; the normalizer supplies defaults so downstream code never
// null-checks. The list/spec/table collections arrive as arrays of single-key
// wrapper objects (one object per entry keyed like "list-<id>"), an artifact
// of how the API groups per-type content without a relational join.
type RawBundle struct {
	Locale      string            `json:"locale"`
	Product     *RawProduct       `json:"product"`
	Layout      *RawLayout        `json:"layout"`
	Paragraphs  []RawContentEntry `json:"paragraphs"`
	Lists       []WrappedEntry    `json:"lists"`
	SpecGroups  []WrappedEntry    `json:"spec_groups"`
	Tables      []WrappedEntry    `json:"tables"`
	ImageGroups []RawImageGroup   `json:"image_groups"`
}

// RawProduct carries the untranslatable product identity.
type RawProduct struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Code        *string    `json:"code"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	CategoryID  *int64     `json:"category_id"`
}

// RawLayout carries the ordered block list.
type RawLayout struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	IsDefault bool       `json:"is_default"`
	Blocks    []RawBlock `json:"blocks"`
}

// RawBlock is one layout entry on the wire.
type RawBlock struct {
	ID        int64  `json:"id"`
	BlockType string `json:"block_type"`
	RefID     *int64 `json:"ref_id"`
	SortOrder int    `json:"sort_order"`
}

// WrappedEntry is the single-key wrapper object used by the list/spec/table
// collections. The sole key is a composite string such as "list-12" and the
// value is the denormalized content payload.
type WrappedEntry map[string]json.RawMessage

// RawContentEntry is the denormalized payload for any of the four editable
// content kinds. Translated fields sit flat next to the entity identity; the
// locale field marks whether a translation exists for the requested locale.
type RawContentEntry struct {
	ID        *int64  `json:"id"`
	Slug      *string `json:"slug"`
	SortOrder *int    `json:"sort_order"`
	Locale    *string `json:"locale"`

	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Body        *string `json:"full_text"`

	Items   []string      `json:"items"`
	Specs   []RawSpecItem `json:"specs"`
	Columns []string      `json:"columns"`
	Rows    [][]string    `json:"rows"`
	Notes   *string       `json:"notes"`
}

// RawSpecItem is one spec triple on the wire.
type RawSpecItem struct {
	Key   *string `json:"key"`
	Value *string `json:"value"`
	Unit  *string `json:"unit"`
}

// RawImageGroup is a named image bucket on the wire.
type RawImageGroup struct {
	ID        int64      `json:"id"`
	Name      *string    `json:"name"`
	SortOrder *int       `json:"sort_order"`
	Images    []RawImage `json:"images"`
}

// RawImage is one uploaded image on the wire.
type RawImage struct {
	ID        int64   `json:"id"`
	URL       *string `json:"url"`
	Alt       *string `json:"alt"`
	SortOrder *int    `json:"sort_order"`
}
