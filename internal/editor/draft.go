package editor

import (
	"errors"

	"github.com/goliatone/go-catalog/internal/contents"
)

var ErrIndexOutOfRange = errors.New("editor: index out of range")

// Draft is the mutable working copy behind an open form. Drafts hold raw
// input; trimming and empty-entry filtering happen on submit, so the admin
// can type freely without the form fighting back.
type Draft interface {
	Kind() contents.Kind
	Payload() contents.Payload
}

// ParagraphDraft edits one locale's paragraph fields.
type ParagraphDraft struct {
	Title     string
	Subtitle  string
	FullText  string
	SortOrder int
}

func (d *ParagraphDraft) Kind() contents.Kind { return contents.KindParagraph }

func (d *ParagraphDraft) Payload() contents.Payload {
	return contents.ParagraphPayload{
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		FullText:  d.FullText,
		SortOrder: d.SortOrder,
	}
}

// ListDraft edits one locale's list fields with index-based item operations.
type ListDraft struct {
	Slug        string
	Title       string
	Description string
	Items       []string
	SortOrder   int
}

func (d *ListDraft) Kind() contents.Kind { return contents.KindList }

func (d *ListDraft) Payload() contents.Payload {
	return contents.ListPayload{
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		Items:       append([]string(nil), d.Items...),
		SortOrder:   d.SortOrder,
	}
}

// AppendItem adds a new item row at the end.
func (d *ListDraft) AppendItem(item string) {
	d.Items = append(d.Items, item)
}

// RemoveItem deletes the item at index.
func (d *ListDraft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrIndexOutOfRange
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// MoveItem relocates the item at from to position to.
func (d *ListDraft) MoveItem(from, to int) error {
	return moveIndex(d.Items, from, to)
}

// SpecGroupDraft edits one locale's spec rows.
type SpecGroupDraft struct {
	Slug        string
	Title       string
	Description string
	Items       []contents.SpecItemPayload
	SortOrder   int
}

func (d *SpecGroupDraft) Kind() contents.Kind { return contents.KindSpecGroup }

func (d *SpecGroupDraft) Payload() contents.Payload {
	return contents.SpecGroupPayload{
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		Items:       append([]contents.SpecItemPayload(nil), d.Items...),
		SortOrder:   d.SortOrder,
	}
}

// AppendItem adds a blank or pre-filled spec row at the end.
func (d *SpecGroupDraft) AppendItem(item contents.SpecItemPayload) {
	d.Items = append(d.Items, item)
}

// RemoveItem deletes the spec row at index.
func (d *SpecGroupDraft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrIndexOutOfRange
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// MoveItem relocates the spec row at from to position to.
func (d *SpecGroupDraft) MoveItem(from, to int) error {
	return moveIndex(d.Items, from, to)
}

// TableDraft edits one locale's table. Column operations keep every row's
// cells aligned with the header list.
type TableDraft struct {
	Title     string
	Subtitle  string
	Columns   []string
	Rows      [][]string
	Notes     string
	SortOrder int
}

func (d *TableDraft) Kind() contents.Kind { return contents.KindTable }

func (d *TableDraft) Payload() contents.Payload {
	rows := make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return contents.TablePayload{
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		Columns:   append([]string(nil), d.Columns...),
		Rows:      rows,
		Notes:     d.Notes,
		SortOrder: d.SortOrder,
	}
}

// AppendRow adds a row sized to the current column count.
func (d *TableDraft) AppendRow() {
	d.Rows = append(d.Rows, make([]string, len(d.Columns)))
}

// RemoveRow deletes the row at index.
func (d *TableDraft) RemoveRow(index int) error {
	if index < 0 || index >= len(d.Rows) {
		return ErrIndexOutOfRange
	}
	d.Rows = append(d.Rows[:index], d.Rows[index+1:]...)
	return nil
}

// MoveRow relocates the row at from to position to.
func (d *TableDraft) MoveRow(from, to int) error {
	return moveIndex(d.Rows, from, to)
}

// AppendColumn adds a header and grows every row by one cell.
func (d *TableDraft) AppendColumn(header string) {
	d.Columns = append(d.Columns, header)
	for i := range d.Rows {
		d.Rows[i] = append(d.Rows[i], "")
	}
}

// RemoveColumn deletes the header at index and the matching cell from every row.
func (d *TableDraft) RemoveColumn(index int) error {
	if index < 0 || index >= len(d.Columns) {
		return ErrIndexOutOfRange
	}
	d.Columns = append(d.Columns[:index], d.Columns[index+1:]...)
	for i, row := range d.Rows {
		if index < len(row) {
			d.Rows[i] = append(row[:index], row[index+1:]...)
		}
	}
	return nil
}

// SetCell writes one cell, growing the row if the table gained columns since
// the row was created.
func (d *TableDraft) SetCell(row, col int, value string) error {
	if row < 0 || row >= len(d.Rows) {
		return ErrIndexOutOfRange
	}
	if col < 0 || col >= len(d.Columns) {
		return ErrIndexOutOfRange
	}
	for len(d.Rows[row]) <= col {
		d.Rows[row] = append(d.Rows[row], "")
	}
	d.Rows[row][col] = value
	return nil
}

// NewDraft returns an empty draft for the given kind.
func NewDraft(kind contents.Kind) (Draft, error) {
	switch kind {
	case contents.KindParagraph:
		return &ParagraphDraft{}, nil
	case contents.KindList:
		return &ListDraft{Items: []string{}}, nil
	case contents.KindSpecGroup:
		return &SpecGroupDraft{Items: []contents.SpecItemPayload{}}, nil
	case contents.KindTable:
		return &TableDraft{Columns: []string{}, Rows: [][]string{}}, nil
	default:
		return nil, contents.ErrKindInvalid
	}
}

// DraftFromPayload seeds a draft with an existing translation's fields.
func DraftFromPayload(payload contents.Payload) (Draft, error) {
	switch p := payload.(type) {
	case contents.ParagraphPayload:
		return &ParagraphDraft{
			Title:     p.Title,
			Subtitle:  p.Subtitle,
			FullText:  p.FullText,
			SortOrder: p.SortOrder,
		}, nil
	case contents.ListPayload:
		return &ListDraft{
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Items:       append([]string(nil), p.Items...),
			SortOrder:   p.SortOrder,
		}, nil
	case contents.SpecGroupPayload:
		return &SpecGroupDraft{
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Items:       append([]contents.SpecItemPayload(nil), p.Items...),
			SortOrder:   p.SortOrder,
		}, nil
	case contents.TablePayload:
		rows := make([][]string, len(p.Rows))
		for i, row := range p.Rows {
			rows[i] = append([]string(nil), row...)
		}
		return &TableDraft{
			Title:     p.Title,
			Subtitle:  p.Subtitle,
			Columns:   append([]string(nil), p.Columns...),
			Rows:      rows,
			Notes:     p.Notes,
			SortOrder: p.SortOrder,
		}, nil
	default:
		return nil, contents.ErrKindInvalid
	}
}

func moveIndex[T any](items []T, from, to int) error {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	item := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = item
	return nil
}
