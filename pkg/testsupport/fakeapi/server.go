// Package fakeapi hosts an in-memory rendition of the catalog REST API for
// integration tests. It persists to SQLite through bun and serves the same
// wire shapes as the production backend, including the wrapper-keyed arrays
// on the bundle endpoint.
package fakeapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-catalog/pkg/testsupport"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// blockTypeForSegment maps a contents path segment to the layout block type
// the backend creates alongside a new entity.
var blockTypeForSegment = map[string]string{
	"paragraphs":  "content_paragraph",
	"lists":       "list",
	"spec-groups": "spec_group",
	"tables":      "table",
}

// wrapperPrefixForSegment names the single-key wrapper objects on the bundle
// endpoint, e.g. "list-12".
var wrapperPrefixForSegment = map[string]string{
	"lists":       "list",
	"spec-groups": "spec-group",
	"tables":      "table",
}

// Server is an http.Handler implementing the catalog API surface the console
// client talks to. Wrap it in httptest.NewServer and point the module's API
// base URL at it.
type Server struct {
	db *bun.DB
}

// New opens a fresh in-memory database and creates the schema.
func New() (*Server, error) {
	db, err := testsupport.NewBunDB()
	if err != nil {
		return nil, err
	}
	s := &Server{db: db}
	if err := s.createTables(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Server) Close() error {
	return s.db.Close()
}

// DB exposes the store for test assertions beyond the HTTP surface.
func (s *Server) DB() *bun.DB {
	return s.db
}

func (s *Server) createTables(ctx context.Context) error {
	models := []any{
		(*ProductRow)(nil),
		(*BlockRow)(nil),
		(*ContentRow)(nil),
		(*TranslationRow)(nil),
		(*ImageGroupRow)(nil),
		(*ImageRow)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("fakeapi: create table: %w", err)
		}
	}
	return nil
}

// SeedProduct inserts a product and returns its id.
func (s *Server) SeedProduct(ctx context.Context, slug, code string) (int64, error) {
	row := &ProductRow{Slug: slug, Code: code, Type: "product", Status: "published"}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return 0, fmt.Errorf("fakeapi: seed product: %w", err)
	}
	return row.ID, nil
}

// SeedSystemBlock inserts a layout block with no content reference.
func (s *Server) SeedSystemBlock(ctx context.Context, productID int64, blockType string, sortOrder int) (int64, error) {
	row := &BlockRow{ProductID: productID, BlockType: blockType, SortOrder: sortOrder}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return 0, fmt.Errorf("fakeapi: seed block: %w", err)
	}
	return row.ID, nil
}

// SeedContent inserts a content entity, its layout block, and one translation
// row per locale in translations. It returns the content and block ids.
func (s *Server) SeedContent(ctx context.Context, productID int64, segment, slug string, sortOrder int, translations map[string]map[string]any) (contentID, blockID int64, err error) {
	blockType, ok := blockTypeForSegment[segment]
	if !ok {
		return 0, 0, fmt.Errorf("fakeapi: unknown content segment %q", segment)
	}

	content := &ContentRow{ProductID: productID, Segment: segment, Slug: slug, SortOrder: sortOrder}
	if _, err := s.db.NewInsert().Model(content).Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("fakeapi: seed content: %w", err)
	}

	ref := content.ID
	block := &BlockRow{ProductID: productID, BlockType: blockType, RefID: &ref, SortOrder: sortOrder}
	if _, err := s.db.NewInsert().Model(block).Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("fakeapi: seed content block: %w", err)
	}

	for locale, payload := range translations {
		if err := s.insertTranslation(ctx, content.ID, locale, payload); err != nil {
			return 0, 0, err
		}
	}
	return content.ID, block.ID, nil
}

// SeedImageGroup inserts a named image bucket.
func (s *Server) SeedImageGroup(ctx context.Context, productID int64, name string, sortOrder int) (int64, error) {
	row := &ImageGroupRow{ProductID: productID, Name: name, SortOrder: sortOrder}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return 0, fmt.Errorf("fakeapi: seed image group: %w", err)
	}
	return row.ID, nil
}

// SeedImage inserts one image into a group.
func (s *Server) SeedImage(ctx context.Context, productID, groupID int64, url, alt string, sortOrder int) (int64, error) {
	row := &ImageRow{ProductID: productID, GroupID: groupID, URL: url, Alt: alt, SortOrder: sortOrder}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return 0, fmt.Errorf("fakeapi: seed image: %w", err)
	}
	return row.ID, nil
}

func (s *Server) insertTranslation(ctx context.Context, contentID int64, locale string, payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("fakeapi: marshal translation payload: %w", err)
	}
	row := &TranslationRow{ContentID: contentID, Locale: locale, Payload: string(data)}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("fakeapi: insert translation: %w", err)
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path)
	if len(parts) < 2 || parts[0] != "products" {
		writeError(w, http.StatusNotFound, "unknown route")
		return
	}

	if len(parts) == 2 {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleBundle(w, r, parts[1])
		return
	}

	productID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "invalid product id")
		return
	}

	switch parts[2] {
	case "contents":
		s.routeContents(w, r, productID, parts[3:])
	case "image-groups":
		if len(parts) == 3 && r.Method == http.MethodPost {
			s.handleCreateImageGroup(w, r, productID)
			return
		}
		writeError(w, http.StatusNotFound, "unknown route")
	case "images":
		switch {
		case len(parts) == 3 && r.Method == http.MethodPost:
			s.handleUploadImages(w, r, productID)
		case len(parts) == 4 && r.Method == http.MethodDelete:
			s.handleDeleteImage(w, r, productID, parts[3])
		default:
			writeError(w, http.StatusNotFound, "unknown route")
		}
	case "layout":
		if len(parts) == 4 && parts[3] == "order" && r.Method == http.MethodPut {
			s.handleLayoutOrder(w, r, productID)
			return
		}
		writeError(w, http.StatusNotFound, "unknown route")
	default:
		writeError(w, http.StatusNotFound, "unknown route")
	}
}

func (s *Server) routeContents(w http.ResponseWriter, r *http.Request, productID int64, rest []string) {
	if len(rest) == 0 {
		writeError(w, http.StatusNotFound, "unknown route")
		return
	}
	segment := rest[0]
	if _, ok := blockTypeForSegment[segment]; !ok {
		writeError(w, http.StatusNotFound, "unknown content type")
		return
	}

	switch {
	case len(rest) == 1 && r.Method == http.MethodPost:
		s.handleCreateContent(w, r, productID, segment)
	case len(rest) == 2 && r.Method == http.MethodPut:
		s.handleUpdateContent(w, r, productID, segment, rest[1])
	case len(rest) == 2 && r.Method == http.MethodDelete:
		s.handleDeleteContent(w, r, productID, segment, rest[1])
	case len(rest) == 3 && r.Method == http.MethodDelete:
		s.handleDeleteTranslation(w, r, productID, segment, rest[1], rest[2])
	default:
		writeError(w, http.StatusNotFound, "unknown route")
	}
}

// contentEnvelope is the {locale, data} body shape of the contents endpoints.
type contentEnvelope struct {
	Locale string         `json:"locale"`
	Data   map[string]any `json:"data"`
}

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request, productID int64, segment string) {
	ctx := r.Context()
	if !s.requireProduct(ctx, w, productID) {
		return
	}

	var body contentEnvelope
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if body.Locale == "" {
		writeError(w, http.StatusBadRequest, "locale is required")
		return
	}
	if body.Data == nil {
		writeError(w, http.StatusBadRequest, "data is required")
		return
	}

	content := &ContentRow{
		ProductID: productID,
		Segment:   segment,
		Slug:      dataString(body.Data, "slug"),
		SortOrder: dataInt(body.Data, "sort_order"),
	}
	if _, err := s.db.NewInsert().Model(content).Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ref := content.ID
	block := &BlockRow{
		ProductID: productID,
		BlockType: blockTypeForSegment[segment],
		RefID:     &ref,
		SortOrder: content.SortOrder,
	}
	if _, err := s.db.NewInsert().Model(block).Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.insertTranslation(ctx, content.ID, body.Locale, body.Data); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": content.ID, "block_id": block.ID})
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request, productID int64, segment, rawID string) {
	ctx := r.Context()
	contentID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "invalid content id")
		return
	}

	var body contentEnvelope
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if body.Locale == "" {
		writeError(w, http.StatusBadRequest, "locale is required")
		return
	}
	if body.Data == nil {
		writeError(w, http.StatusBadRequest, "data is required")
		return
	}

	content := new(ContentRow)
	err = s.db.NewSelect().Model(content).
		Where("id = ?", contentID).
		Where("product_id = ?", productID).
		Where("segment = ?", segment).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, ok := body.Data["sort_order"]; ok {
		content.SortOrder = dataInt(body.Data, "sort_order")
	}
	if slug := dataString(body.Data, "slug"); slug != "" {
		content.Slug = slug
	}
	if _, err := s.db.NewUpdate().Model(content).WherePK().Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Upsert the locale's translation.
	if _, err := s.db.NewDelete().Model((*TranslationRow)(nil)).
		Where("content_id = ?", contentID).
		Where("locale = ?", body.Locale).
		Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.insertTranslation(ctx, contentID, body.Locale, body.Data); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": contentID})
}

func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request, productID int64, segment, rawID string) {
	ctx := r.Context()
	contentID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "invalid content id")
		return
	}

	res, err := s.db.NewDelete().Model((*ContentRow)(nil)).
		Where("id = ?", contentID).
		Where("product_id = ?", productID).
		Where("segment = ?", segment).
		Exec(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}

	if _, err := s.db.NewDelete().Model((*TranslationRow)(nil)).
		Where("content_id = ?", contentID).
		Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if _, err := s.db.NewDelete().Model((*BlockRow)(nil)).
		Where("product_id = ?", productID).
		Where("block_type = ?", blockTypeForSegment[segment]).
		Where("ref_id = ?", contentID).
		Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTranslation(w http.ResponseWriter, r *http.Request, productID int64, segment, rawID, locale string) {
	ctx := r.Context()
	contentID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "invalid content id")
		return
	}

	exists, err := s.db.NewSelect().Model((*ContentRow)(nil)).
		Where("id = ?", contentID).
		Where("product_id = ?", productID).
		Where("segment = ?", segment).
		Exists(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}

	res, err := s.db.NewDelete().Model((*TranslationRow)(nil)).
		Where("content_id = ?", contentID).
		Where("locale = ?", locale).
		Exec(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		writeError(w, http.StatusNotFound, "translation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateImageGroup(w http.ResponseWriter, r *http.Request, productID int64) {
	ctx := r.Context()
	if !s.requireProduct(ctx, w, productID) {
		return
	}

	var body struct {
		Name   string `json:"name"`
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	count, err := s.db.NewSelect().Model((*ImageGroupRow)(nil)).
		Where("product_id = ?", productID).
		Count(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	row := &ImageGroupRow{ProductID: productID, Name: body.Name, SortOrder: count}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": row.ID})
}

func (s *Server) handleUploadImages(w http.ResponseWriter, r *http.Request, productID int64) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	groupID, err := strconv.ParseInt(r.FormValue("group_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "group_id is required")
		return
	}
	exists, err := s.db.NewSelect().Model((*ImageGroupRow)(nil)).
		Where("id = ?", groupID).
		Where("product_id = ?", productID).
		Exists(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "image group not found")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "at least one file is required")
		return
	}
	alts := r.MultipartForm.Value["alt"]

	count, err := s.db.NewSelect().Model((*ImageRow)(nil)).
		Where("group_id = ?", groupID).
		Count(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ids := make([]int64, 0, len(files))
	for i, header := range files {
		alt := ""
		if i < len(alts) {
			alt = alts[i]
		}
		row := &ImageRow{
			ProductID: productID,
			GroupID:   groupID,
			URL:       "/media/" + uuid.NewString() + "-" + header.Filename,
			Alt:       alt,
			SortOrder: count + i,
		}
		if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		ids = append(ids, row.ID)
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ids": ids})
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request, productID int64, rawID string) {
	imageID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "invalid image id")
		return
	}

	res, err := s.db.NewDelete().Model((*ImageRow)(nil)).
		Where("id = ?", imageID).
		Where("product_id = ?", productID).
		Exec(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLayoutOrder(w http.ResponseWriter, r *http.Request, productID int64) {
	ctx := r.Context()
	if !s.requireProduct(ctx, w, productID) {
		return
	}

	var body struct {
		Order []struct {
			BlockID   int64 `json:"block_id"`
			SortOrder int   `json:"sort_order"`
		} `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if len(body.Order) == 0 {
		writeError(w, http.StatusBadRequest, "order is required")
		return
	}

	for _, change := range body.Order {
		res, err := s.db.NewUpdate().Model((*BlockRow)(nil)).
			Set("sort_order = ?", change.SortOrder).
			Where("id = ?", change.BlockID).
			Where("product_id = ?", productID).
			Exec(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			writeError(w, http.StatusNotFound, "block not found")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": len(body.Order)})
}

// handleBundle assembles the denormalized per-locale bundle: flat paragraph
// entries, wrapper-keyed list/spec/table entries, layout blocks, and image
// groups.
func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request, slug string) {
	ctx := r.Context()
	locale := r.URL.Query().Get("locale")

	product := new(ProductRow)
	err := s.db.NewSelect().Model(product).Where("slug = ?", slug).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var blocks []BlockRow
	if err := s.db.NewSelect().Model(&blocks).
		Where("product_id = ?", product.ID).
		Order("sort_order ASC", "id ASC").
		Scan(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rawBlocks := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		rawBlocks = append(rawBlocks, map[string]any{
			"id":         b.ID,
			"block_type": b.BlockType,
			"ref_id":     b.RefID,
			"sort_order": b.SortOrder,
		})
	}

	var contentRows []ContentRow
	if err := s.db.NewSelect().Model(&contentRows).
		Where("product_id = ?", product.ID).
		Order("sort_order ASC", "id ASC").
		Scan(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	paragraphs := make([]map[string]any, 0)
	wrapped := map[string][]map[string]map[string]any{
		"lists":       {},
		"spec-groups": {},
		"tables":      {},
	}
	for _, row := range contentRows {
		entry, err := s.contentEntry(ctx, row, locale)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if row.Segment == "paragraphs" {
			paragraphs = append(paragraphs, entry)
			continue
		}
		key := fmt.Sprintf("%s-%d", wrapperPrefixForSegment[row.Segment], row.ID)
		wrapped[row.Segment] = append(wrapped[row.Segment], map[string]map[string]any{key: entry})
	}

	imageGroups, err := s.imageGroups(ctx, product.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"locale": locale,
		"product": map[string]any{
			"id":     product.ID,
			"slug":   product.Slug,
			"code":   product.Code,
			"type":   product.Type,
			"status": product.Status,
		},
		"layout": map[string]any{
			"id":         product.ID,
			"name":       "default",
			"is_default": true,
			"blocks":     rawBlocks,
		},
		"paragraphs":   paragraphs,
		"lists":        wrapped["lists"],
		"spec_groups":  wrapped["spec-groups"],
		"tables":       wrapped["tables"],
		"image_groups": imageGroups,
	})
}

// contentEntry merges the locale's stored translation payload under the
// entity identity fields. Entities without a translation travel with identity
// fields only, which downstream treats as a missing translation.
func (s *Server) contentEntry(ctx context.Context, row ContentRow, locale string) (map[string]any, error) {
	entry := map[string]any{}

	translation := new(TranslationRow)
	err := s.db.NewSelect().Model(translation).
		Where("content_id = ?", row.ID).
		Where("locale = ?", locale).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal([]byte(translation.Payload), &entry); err != nil {
			return nil, fmt.Errorf("fakeapi: decode translation payload: %w", err)
		}
		entry["locale"] = translation.Locale
	}

	entry["id"] = row.ID
	entry["sort_order"] = row.SortOrder
	if row.Slug != "" {
		entry["slug"] = row.Slug
	} else {
		delete(entry, "slug")
	}
	return entry, nil
}

func (s *Server) imageGroups(ctx context.Context, productID int64) ([]map[string]any, error) {
	var groups []ImageGroupRow
	if err := s.db.NewSelect().Model(&groups).
		Where("product_id = ?", productID).
		Order("sort_order ASC", "id ASC").
		Scan(ctx); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(groups))
	for _, group := range groups {
		var images []ImageRow
		if err := s.db.NewSelect().Model(&images).
			Where("group_id = ?", group.ID).
			Order("sort_order ASC", "id ASC").
			Scan(ctx); err != nil {
			return nil, err
		}
		rawImages := make([]map[string]any, 0, len(images))
		for _, image := range images {
			rawImages = append(rawImages, map[string]any{
				"id":         image.ID,
				"url":        image.URL,
				"alt":        image.Alt,
				"sort_order": image.SortOrder,
			})
		}
		out = append(out, map[string]any{
			"id":         group.ID,
			"name":       group.Name,
			"sort_order": group.SortOrder,
			"images":     rawImages,
		})
	}
	return out, nil
}

func (s *Server) requireProduct(ctx context.Context, w http.ResponseWriter, productID int64) bool {
	exists, err := s.db.NewSelect().Model((*ProductRow)(nil)).
		Where("id = ?", productID).
		Exists(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return false
	}
	if !exists {
		writeError(w, http.StatusNotFound, "product not found")
		return false
	}
	return true
}

func dataString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// dataInt reads a numeric field. JSON numbers decode as float64.
func dataInt(data map[string]any, key string) int {
	if v, ok := data[key].(float64); ok {
		return int(v)
	}
	return 0
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
