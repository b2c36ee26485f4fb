package contents

import (
	"context"
	"errors"

	"github.com/goliatone/go-catalog/internal/bundle"
)

// Kind identifies one of the four editable content types. Everything else in
// a layout is a system block the console cannot edit.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
	KindSpecGroup Kind = "spec_group"
	KindTable     Kind = "table"
)

var (
	ErrKindInvalid       = errors.New("contents: unknown content kind")
	ErrKindMismatch      = errors.New("contents: payload kind does not match request")
	ErrProductIDRequired = errors.New("contents: product id required")
	ErrContentIDRequired = errors.New("contents: content id required")
	ErrPayloadRequired   = errors.New("contents: payload required")
)

// Kinds lists the editable kinds in display order.
func Kinds() []Kind {
	return []Kind{KindParagraph, KindList, KindSpecGroup, KindTable}
}

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case KindParagraph, KindList, KindSpecGroup, KindTable:
		return true
	default:
		return false
	}
}

// BlockType returns the layout block tag created for this kind.
func (k Kind) BlockType() bundle.BlockType {
	switch k {
	case KindParagraph:
		return bundle.BlockParagraph
	case KindList:
		return bundle.BlockList
	case KindSpecGroup:
		return bundle.BlockSpecGroup
	case KindTable:
		return bundle.BlockTable
	default:
		return ""
	}
}

// PathSegment returns the API path segment for this kind.
func (k Kind) PathSegment() string {
	switch k {
	case KindParagraph:
		return "paragraphs"
	case KindList:
		return "lists"
	case KindSpecGroup:
		return "spec-groups"
	case KindTable:
		return "tables"
	default:
		return ""
	}
}

// KindForBlock maps an editable block type back to its content kind.
func KindForBlock(t bundle.BlockType) (Kind, bool) {
	switch t {
	case bundle.BlockParagraph:
		return KindParagraph, true
	case bundle.BlockList:
		return KindList, true
	case bundle.BlockSpecGroup:
		return KindSpecGroup, true
	case bundle.BlockTable:
		return KindTable, true
	default:
		return "", false
	}
}

// API is the transport slice the contents service depends on.
type API interface {
	CreateContent(ctx context.Context, productID int64, typeSegment string, data any) error
	UpdateContent(ctx context.Context, productID int64, typeSegment string, contentID int64, data any) error
	DeleteContent(ctx context.Context, productID int64, typeSegment string, contentID int64) error
	DeleteTranslation(ctx context.Context, productID int64, typeSegment string, contentID int64, locale string) error
}

// LocaleSource supplies the active locale for translation-scoped deletes.
type LocaleSource interface {
	Current() string
}

// Service exposes the locale-scoped content mutation protocol. Create always
// produces a brand-new entity plus a layout block (server side); Update
// overwrites only the active locale's translation; the two delete operations
// are disjoint on purpose: DeleteTranslation removes one locale's facet while
// the entity survives, DeleteEntity removes the entity and its block from
// every locale.
type Service interface {
	Create(ctx context.Context, productID int64, payload Payload) error
	Update(ctx context.Context, productID, contentID int64, payload Payload) error
	DeleteEntity(ctx context.Context, productID int64, kind Kind, contentID int64) error
	DeleteTranslation(ctx context.Context, productID int64, kind Kind, contentID int64) error
}
