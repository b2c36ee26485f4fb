package fakeapi

import "github.com/uptrace/bun"

// ProductRow is the untranslatable product identity.
type ProductRow struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID     int64  `bun:"id,pk,autoincrement"`
	Slug   string `bun:"slug,notnull,unique"`
	Code   string `bun:"code"`
	Type   string `bun:"type"`
	Status string `bun:"status"`
}

// BlockRow is one ordered layout slot. RefID is null for system blocks.
type BlockRow struct {
	bun.BaseModel `bun:"table:layout_blocks,alias:b"`

	ID        int64  `bun:"id,pk,autoincrement"`
	ProductID int64  `bun:"product_id,notnull"`
	BlockType string `bun:"block_type,notnull"`
	RefID     *int64 `bun:"ref_id"`
	SortOrder int    `bun:"sort_order"`
}

// ContentRow is a language-independent content entity. Segment holds the API
// path segment of its kind ("paragraphs", "lists", "spec-groups", "tables").
type ContentRow struct {
	bun.BaseModel `bun:"table:contents,alias:c"`

	ID        int64  `bun:"id,pk,autoincrement"`
	ProductID int64  `bun:"product_id,notnull"`
	Segment   string `bun:"segment,notnull"`
	Slug      string `bun:"slug"`
	SortOrder int    `bun:"sort_order"`
}

// TranslationRow is one locale's payload for a content entity, stored as the
// JSON object the client sent in the request envelope's data field.
type TranslationRow struct {
	bun.BaseModel `bun:"table:content_translations,alias:t"`

	ID        int64  `bun:"id,pk,autoincrement"`
	ContentID int64  `bun:"content_id,notnull"`
	Locale    string `bun:"locale,notnull"`
	Payload   string `bun:"payload,notnull"`
}

// ImageGroupRow is a named image bucket.
type ImageGroupRow struct {
	bun.BaseModel `bun:"table:image_groups,alias:g"`

	ID        int64  `bun:"id,pk,autoincrement"`
	ProductID int64  `bun:"product_id,notnull"`
	Name      string `bun:"name"`
	SortOrder int    `bun:"sort_order"`
}

// ImageRow is one uploaded image inside a group.
type ImageRow struct {
	bun.BaseModel `bun:"table:images,alias:i"`

	ID        int64  `bun:"id,pk,autoincrement"`
	ProductID int64  `bun:"product_id,notnull"`
	GroupID   int64  `bun:"group_id,notnull"`
	URL       string `bun:"url"`
	Alt       string `bun:"alt"`
	SortOrder int    `bun:"sort_order"`
}
