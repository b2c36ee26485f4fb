package contents

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Payload is the locale-facet body for a create or update. Normalization is
// pure and idempotent: callers can normalize a draft any number of times and
// the second pass is a no-op.
type Payload interface {
	Kind() Kind
	Validate() error
	normalized() any
}

// ParagraphPayload carries one locale's paragraph fields.
type ParagraphPayload struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	FullText  string `json:"full_text"`
	SortOrder int    `json:"sort_order"`
}

func (p ParagraphPayload) Kind() Kind { return KindParagraph }

// Normalized trims every text field.
func (p ParagraphPayload) Normalized() ParagraphPayload {
	p.Title = strings.TrimSpace(p.Title)
	p.Subtitle = strings.TrimSpace(p.Subtitle)
	p.FullText = strings.TrimSpace(p.FullText)
	return p
}

func (p ParagraphPayload) normalized() any { return p.Normalized() }

func (p ParagraphPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(0, 255)),
		validation.Field(&p.SortOrder, validation.Min(0)),
	)
}

// ListPayload carries one locale's list fields. Slug only matters on create;
// the server ignores it on translation updates.
type ListPayload struct {
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	SortOrder   int      `json:"sort_order"`
}

func (p ListPayload) Kind() Kind { return KindList }

// Normalized trims text fields, normalizes the slug, and drops items that are
// empty after trimming.
func (p ListPayload) Normalized() ListPayload {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if trimmed := strings.TrimSpace(p.Slug); trimmed != "" {
		if normalized, err := slug.Normalize(trimmed); err == nil {
			p.Slug = normalized
		} else {
			p.Slug = trimmed
		}
	} else {
		p.Slug = ""
	}

	items := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	p.Items = items
	return p
}

func (p ListPayload) normalized() any { return p.Normalized() }

func (p ListPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(0, 255)),
		validation.Field(&p.Slug, validation.By(validSlug)),
		validation.Field(&p.SortOrder, validation.Min(0)),
	)
}

// SpecItemPayload is a single key/value/unit row in a spec group.
type SpecItemPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// SpecGroupPayload carries one locale's spec-group fields.
type SpecGroupPayload struct {
	Slug        string            `json:"slug,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Items       []SpecItemPayload `json:"items"`
	SortOrder   int               `json:"sort_order"`
}

func (p SpecGroupPayload) Kind() Kind { return KindSpecGroup }

// Normalized trims all cells and drops rows where both key and value are
// empty. Rows with only one side filled survive so the admin can see and fix
// them after a round trip.
func (p SpecGroupPayload) Normalized() SpecGroupPayload {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if trimmed := strings.TrimSpace(p.Slug); trimmed != "" {
		if normalized, err := slug.Normalize(trimmed); err == nil {
			p.Slug = normalized
		} else {
			p.Slug = trimmed
		}
	} else {
		p.Slug = ""
	}

	items := make([]SpecItemPayload, 0, len(p.Items))
	for _, item := range p.Items {
		item.Key = strings.TrimSpace(item.Key)
		item.Value = strings.TrimSpace(item.Value)
		item.Unit = strings.TrimSpace(item.Unit)
		if item.Key == "" && item.Value == "" {
			continue
		}
		items = append(items, item)
	}
	p.Items = items
	return p
}

func (p SpecGroupPayload) normalized() any { return p.Normalized() }

func (p SpecGroupPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(0, 255)),
		validation.Field(&p.Slug, validation.By(validSlug)),
		validation.Field(&p.SortOrder, validation.Min(0)),
	)
}

// TablePayload carries one locale's table fields. Rows may be shorter than the
// column list; rendering pads them, the API stores them as-is.
type TablePayload struct {
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Notes     string     `json:"notes"`
	SortOrder int        `json:"sort_order"`
}

func (p TablePayload) Kind() Kind { return KindTable }

// Normalized trims headers, cells, and text fields, and drops rows whose
// cells are all empty. Empty headers stay so cell positions keep their
// column alignment.
func (p TablePayload) Normalized() TablePayload {
	p.Title = strings.TrimSpace(p.Title)
	p.Subtitle = strings.TrimSpace(p.Subtitle)
	p.Notes = strings.TrimSpace(p.Notes)

	columns := make([]string, len(p.Columns))
	for i, column := range p.Columns {
		columns[i] = strings.TrimSpace(column)
	}
	p.Columns = columns

	rows := make([][]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		cells := make([]string, len(row))
		blank := true
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
			if cells[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, cells)
	}
	p.Rows = rows
	return p
}

func (p TablePayload) normalized() any { return p.Normalized() }

func (p TablePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(0, 255)),
		validation.Field(&p.SortOrder, validation.Min(0)),
	)
}

func validSlug(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !slug.IsValid(s) {
		return validation.NewError("validation_slug", "must be a valid slug")
	}
	return nil
}
