package bundle

import (
	"encoding/json"
	"sort"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// Normalize transforms a raw API bundle into the uniform in-memory model.
// It is total: missing optional fields become explicit defaults, the
// item/column/row/spec collections are always non-nil, and wrapper-keyed
// entries are unwrapped so the wire quirk never leaks past this boundary.
// Entries whose payload carries no content id cannot be keyed and are
// dropped.
func Normalize(raw *RawBundle, locale string) *Bundle {
	b := &Bundle{
		Locale:     strings.TrimSpace(locale),
		Paragraphs: make(map[int64]*Paragraph),
		Lists:      make(map[int64]*List),
		SpecGroups: make(map[int64]*SpecGroup),
		Tables:     make(map[int64]*Table),
	}
	if raw == nil {
		return b
	}
	if code := strings.TrimSpace(raw.Locale); code != "" {
		b.Locale = code
	}

	b.Product = normalizeProduct(raw.Product)
	b.Layout = normalizeLayout(raw.Layout)

	for _, entry := range raw.Paragraphs {
		if entry.ID == nil {
			continue
		}
		b.Paragraphs[*entry.ID] = &Paragraph{
			ID:          *entry.ID,
			SortOrder:   intValue(entry.SortOrder),
			Translation: paragraphTranslation(entry, b.Locale),
		}
	}

	for _, wrapped := range raw.Lists {
		key, entry, ok := unwrapEntry(wrapped)
		if !ok || entry.ID == nil {
			continue
		}
		b.Lists[*entry.ID] = &List{
			ID:          *entry.ID,
			Slug:        slugOrFallback(entry.Slug, key),
			SortOrder:   intValue(entry.SortOrder),
			Translation: listTranslation(entry, b.Locale),
		}
	}

	for _, wrapped := range raw.SpecGroups {
		key, entry, ok := unwrapEntry(wrapped)
		if !ok || entry.ID == nil {
			continue
		}
		b.SpecGroups[*entry.ID] = &SpecGroup{
			ID:          *entry.ID,
			Slug:        slugOrFallback(entry.Slug, key),
			SortOrder:   intValue(entry.SortOrder),
			Translation: specGroupTranslation(entry, b.Locale),
		}
	}

	for _, wrapped := range raw.Tables {
		_, entry, ok := unwrapEntry(wrapped)
		if !ok || entry.ID == nil {
			continue
		}
		b.Tables[*entry.ID] = &Table{
			ID:          *entry.ID,
			SortOrder:   intValue(entry.SortOrder),
			Translation: tableTranslation(entry, b.Locale),
		}
	}

	b.ImageGroups = normalizeImageGroups(raw.ImageGroups)
	return b
}

func normalizeProduct(raw *RawProduct) BaseInfo {
	if raw == nil {
		return BaseInfo{Type: ProductTypeProduct, Status: StatusDraft}
	}

	info := BaseInfo{
		ID:          raw.ID,
		Slug:        strings.TrimSpace(raw.Slug),
		Code:        stringValue(raw.Code),
		Type:        ProductType(strings.TrimSpace(raw.Type)),
		Status:      Status(strings.TrimSpace(raw.Status)),
		PublishedAt: raw.PublishedAt,
	}
	if raw.CategoryID != nil {
		info.CategoryID = *raw.CategoryID
	}
	if info.Type == "" {
		info.Type = ProductTypeProduct
	}
	if info.Status == "" {
		info.Status = StatusDraft
	}
	return info
}

func normalizeLayout(raw *RawLayout) Layout {
	if raw == nil {
		return Layout{Blocks: []Block{}}
	}

	layout := Layout{
		ID:        raw.ID,
		Name:      strings.TrimSpace(raw.Name),
		IsDefault: raw.IsDefault,
		Blocks:    make([]Block, 0, len(raw.Blocks)),
	}
	for _, rb := range raw.Blocks {
		block := Block{
			ID:        rb.ID,
			Type:      BlockType(strings.TrimSpace(rb.BlockType)),
			SortOrder: rb.SortOrder,
		}
		if rb.RefID != nil {
			ref := *rb.RefID
			block.RefID = &ref
		}
		layout.Blocks = append(layout.Blocks, block)
	}
	return layout
}

// unwrapEntry extracts the sole key and payload of a wrapper object. Wrappers
// with no key are skipped; when the API misbehaves and sends several keys the
// lexically smallest wins so the result stays deterministic.
func unwrapEntry(wrapped WrappedEntry) (string, RawContentEntry, bool) {
	if len(wrapped) == 0 {
		return "", RawContentEntry{}, false
	}

	keys := make([]string, 0, len(wrapped))
	for key := range wrapped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	key := keys[0]
	var entry RawContentEntry
	if err := json.Unmarshal(wrapped[key], &entry); err != nil {
		return key, RawContentEntry{}, false
	}
	return key, entry, true
}

// slugOrFallback prefers the payload slug and otherwise derives one from the
// wrapper key, e.g. "list-12" for an unnamed list.
func slugOrFallback(payloadSlug *string, wrapperKey string) string {
	if s := strings.TrimSpace(stringValue(payloadSlug)); s != "" {
		return s
	}
	derived, err := slug.Normalize(wrapperKey)
	if err != nil {
		return ""
	}
	return derived
}

func paragraphTranslation(entry RawContentEntry, locale string) *ParagraphTranslation {
	if !hasTranslation(entry) {
		return nil
	}
	return &ParagraphTranslation{
		Locale:   translationLocale(entry, locale),
		Title:    stringValue(entry.Title),
		Subtitle: stringValue(entry.Subtitle),
		Body:     stringValue(entry.Body),
	}
}

func listTranslation(entry RawContentEntry, locale string) *ListTranslation {
	if !hasTranslation(entry) {
		return nil
	}
	items := entry.Items
	if items == nil {
		items = []string{}
	}
	return &ListTranslation{
		Locale:      translationLocale(entry, locale),
		Title:       stringValue(entry.Title),
		Description: stringValue(entry.Description),
		Items:       items,
	}
}

func specGroupTranslation(entry RawContentEntry, locale string) *SpecGroupTranslation {
	if !hasTranslation(entry) {
		return nil
	}
	items := make([]SpecItem, 0, len(entry.Specs))
	for _, item := range entry.Specs {
		items = append(items, SpecItem{
			Key:   stringValue(item.Key),
			Value: stringValue(item.Value),
			Unit:  stringValue(item.Unit),
		})
	}
	return &SpecGroupTranslation{
		Locale:      translationLocale(entry, locale),
		Title:       stringValue(entry.Title),
		Description: stringValue(entry.Description),
		Items:       items,
	}
}

func tableTranslation(entry RawContentEntry, locale string) *TableTranslation {
	if !hasTranslation(entry) {
		return nil
	}
	columns := entry.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := make([][]string, 0, len(entry.Rows))
	for _, row := range entry.Rows {
		if row == nil {
			row = []string{}
		}
		rows = append(rows, row)
	}
	return &TableTranslation{
		Locale:   translationLocale(entry, locale),
		Title:    stringValue(entry.Title),
		Subtitle: stringValue(entry.Subtitle),
		Columns:  columns,
		Rows:     rows,
		Notes:    stringValue(entry.Notes),
	}
}

// hasTranslation reports whether the denormalized payload carries any
// translated data for the requested locale. An entity with none is still
// valid; it renders as a missing-translation placeholder.
func hasTranslation(entry RawContentEntry) bool {
	if entry.Locale != nil && strings.TrimSpace(*entry.Locale) != "" {
		return true
	}
	return entry.Title != nil || entry.Subtitle != nil || entry.Description != nil ||
		entry.Body != nil || entry.Notes != nil ||
		entry.Items != nil || entry.Specs != nil || entry.Columns != nil || entry.Rows != nil
}

func translationLocale(entry RawContentEntry, fallback string) string {
	if entry.Locale != nil {
		if code := strings.TrimSpace(*entry.Locale); code != "" {
			return code
		}
	}
	return fallback
}

func normalizeImageGroups(raw []RawImageGroup) []ImageGroup {
	groups := make([]ImageGroup, 0, len(raw))
	for _, rg := range raw {
		group := ImageGroup{
			ID:        rg.ID,
			Name:      stringValue(rg.Name),
			SortOrder: intValue(rg.SortOrder),
			Images:    make([]Image, 0, len(rg.Images)),
		}
		for _, ri := range rg.Images {
			group.Images = append(group.Images, Image{
				ID:        ri.ID,
				URL:       stringValue(ri.URL),
				Alt:       stringValue(ri.Alt),
				SortOrder: intValue(ri.SortOrder),
			})
		}
		sort.SliceStable(group.Images, func(i, j int) bool {
			if group.Images[i].SortOrder != group.Images[j].SortOrder {
				return group.Images[i].SortOrder < group.Images[j].SortOrder
			}
			return group.Images[i].ID < group.Images[j].ID
		})
		groups = append(groups, group)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].SortOrder != groups[j].SortOrder {
			return groups[i].SortOrder < groups[j].SortOrder
		}
		return groups[i].ID < groups[j].ID
	})
	return groups
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func intValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
