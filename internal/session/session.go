package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-catalog/internal/bundle"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/internal/editor"
	"github.com/goliatone/go-catalog/internal/images"
	"github.com/goliatone/go-catalog/internal/layout"
	"github.com/goliatone/go-catalog/internal/locale"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/view"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

var (
	ErrFetcherRequired   = errors.New("session: fetcher is required")
	ErrCommitterRequired = errors.New("session: order committer is required")
	ErrLocalesRequired   = errors.New("session: locale provider is required")
	ErrContentsRequired  = errors.New("session: contents service is required")
	ErrImagesRequired    = errors.New("session: image service is required")
	ErrNoProductLoaded   = errors.New("session: no product loaded")
	ErrStaleFetch        = errors.New("session: fetch superseded by a newer request")
	ErrBlockNotEditable  = errors.New("session: block is not editable")
	ErrBlockNotFound     = errors.New("session: block not found")
	ErrEntityNotFound    = errors.New("session: content entity not found in bundle")
)

// Fetcher loads raw product bundles.
type Fetcher interface {
	FetchBundle(ctx context.Context, slug string) (*bundle.RawBundle, error)
}

// OrderCommitter persists changed layout order pairs.
type OrderCommitter interface {
	CommitLayoutOrder(ctx context.Context, productID int64, changes []layout.OrderChange) error
}

// Config wires a product page session.
type Config struct {
	Fetcher   Fetcher
	Committer OrderCommitter
	Locales   *locale.Provider
	Contents  contents.Service
	Images    images.Service
	Notifier  interfaces.Notifier
	Logger    interfaces.Logger

	// SuppressStaleFetches drops fetch results that were superseded by a
	// newer load or locale change while in flight. Off means last writer
	// wins, matching the legacy console.
	SuppressStaleFetches bool
}

// Session owns the state of one open product page: the normalized bundle for
// the active locale, the layout engine with any staged reorder, and the
// single editor slot. Every successful mutation reloads the bundle from the
// server; the session never patches its snapshot locally.
type Session struct {
	mu         sync.Mutex
	slug       string
	bundle     *bundle.Bundle
	generation uint64

	engine *layout.Engine
	editor *editor.Editor

	fetcher   Fetcher
	committer OrderCommitter
	locales   *locale.Provider
	contents  contents.Service
	images    images.Service
	notifier  interfaces.Notifier
	logger    interfaces.Logger
	suppress  bool

	unsubscribe func()
}

// New builds a Session and subscribes it to locale changes: switching locale
// re-fetches the open product in the new locale automatically.
func New(cfg Config) (*Session, error) {
	if cfg.Fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if cfg.Locales == nil {
		return nil, ErrLocalesRequired
	}
	if cfg.Committer == nil {
		return nil, ErrCommitterRequired
	}
	if cfg.Contents == nil {
		return nil, ErrContentsRequired
	}
	if cfg.Images == nil {
		return nil, ErrImagesRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = interfaces.NotifierFunc(nil)
	}

	s := &Session{
		engine:    layout.NewEngine(nil),
		editor:    editor.New(cfg.Contents, editor.WithLogger(logger)),
		fetcher:   cfg.Fetcher,
		committer: cfg.Committer,
		locales:   cfg.Locales,
		contents:  cfg.Contents,
		images:    cfg.Images,
		notifier:  notifier,
		logger:    logger,
		suppress:  cfg.SuppressStaleFetches,
	}

	s.unsubscribe = cfg.Locales.Subscribe(func(code string) {
		s.onLocaleChange(code)
	})
	return s, nil
}

// Close detaches the session from locale change notifications.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// Load fetches and installs the bundle for a product slug in the current
// locale. Loading a product discards any staged layout draft and open editor
// form from the previous page.
func (s *Session) Load(ctx context.Context, slug string) error {
	s.mu.Lock()
	s.slug = slug
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	return s.fetchInto(ctx, slug, generation)
}

// Reload re-fetches the currently open product.
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	slug := s.slug
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	if slug == "" {
		return ErrNoProductLoaded
	}
	return s.fetchInto(ctx, slug, generation)
}

func (s *Session) fetchInto(ctx context.Context, slug string, generation uint64) error {
	localeCode := s.locales.Current()
	raw, err := s.fetcher.FetchBundle(ctx, slug)
	if err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("failed to load %s: %v", slug, err), true)
		return fmt.Errorf("session: load %s: %w", slug, err)
	}

	normalized := bundle.Normalize(raw, localeCode)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suppress && generation != s.generation {
		s.logger.Debug("discarding stale bundle",
			"slug", slug,
			"locale", localeCode,
			"generation", generation,
			"current", s.generation,
		)
		return ErrStaleFetch
	}
	s.bundle = normalized
	s.engine.Reload(normalized.Layout.Blocks)
	s.editor.Cancel()
	s.logger.Info("bundle installed", "slug", slug, "locale", normalized.Locale, "blocks", len(normalized.Layout.Blocks))
	return nil
}

// onLocaleChange refreshes the open page in the new locale. It runs on the
// goroutine that changed the locale; failures surface through the notifier
// since there is no caller to return to.
func (s *Session) onLocaleChange(code string) {
	s.mu.Lock()
	slug := s.slug
	s.mu.Unlock()
	if slug == "" {
		return
	}

	s.logger.Debug("locale changed, refreshing page", "slug", slug, "locale", code)
	if err := s.Reload(context.Background()); err != nil && !errors.Is(err, ErrStaleFetch) {
		s.logger.Error("locale refresh failed", "slug", slug, "locale", code, "error", err)
	}
}

// Bundle returns the installed snapshot, if any.
func (s *Session) Bundle() (*bundle.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bundle, s.bundle != nil
}

// Layout exposes the layout engine for staging block moves.
func (s *Session) Layout() *layout.Engine { return s.engine }

// Editor exposes the single form slot.
func (s *Session) Editor() *editor.Editor { return s.editor }

// Page builds the renderable page from the current bundle and the engine's
// block order, so staged reorders are visible before commit.
func (s *Session) Page() view.Page {
	s.mu.Lock()
	b := s.bundle
	s.mu.Unlock()
	return view.BuildPage(b, s.engine.Blocks(), s.locales.Direction())
}

// AddContent opens an add form for the given kind. The draft's sort order is
// seeded past the last block so the new entry lands at the end of the layout.
func (s *Session) AddContent(kind contents.Kind) (editor.Draft, error) {
	draft, err := s.editor.StartAdd(kind)
	if err != nil {
		return nil, err
	}
	next := s.nextSortOrder()
	switch d := draft.(type) {
	case *editor.ParagraphDraft:
		d.SortOrder = next
	case *editor.ListDraft:
		d.SortOrder = next
	case *editor.SpecGroupDraft:
		d.SortOrder = next
	case *editor.TableDraft:
		d.SortOrder = next
	}
	return draft, nil
}

// EditBlock opens an edit form seeded with the entity behind a layout block.
func (s *Session) EditBlock(blockID int64) (editor.Draft, error) {
	s.mu.Lock()
	b := s.bundle
	s.mu.Unlock()
	if b == nil {
		return nil, ErrNoProductLoaded
	}

	block, ok := findBlock(s.engine.Blocks(), blockID)
	if !ok {
		return nil, ErrBlockNotFound
	}
	kind, editable := contents.KindForBlock(block.Type)
	if !editable {
		return nil, ErrBlockNotEditable
	}
	if block.RefID == nil {
		return nil, ErrEntityNotFound
	}

	seed, err := seedPayload(b, kind, *block.RefID)
	if err != nil {
		return nil, err
	}
	return s.editor.StartEdit(*block.RefID, seed)
}

// SubmitDraft submits the open form and reloads the bundle on success.
func (s *Session) SubmitDraft(ctx context.Context) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}

	if err := s.editor.Submit(ctx, productID); err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("save failed: %v", err), false)
		return err
	}
	s.notify(interfaces.SeveritySuccess, "content saved", false)
	return s.Reload(ctx)
}

// DeleteEntity removes a content entity in every locale, then reloads.
func (s *Session) DeleteEntity(ctx context.Context, kind contents.Kind, contentID int64) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}

	if err := s.contents.DeleteEntity(ctx, productID, kind, contentID); err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("delete failed: %v", err), false)
		return err
	}
	s.notify(interfaces.SeveritySuccess, "content deleted", false)
	return s.Reload(ctx)
}

// DeleteTranslation removes the active locale's facet only, then reloads.
func (s *Session) DeleteTranslation(ctx context.Context, kind contents.Kind, contentID int64) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}

	if err := s.contents.DeleteTranslation(ctx, productID, kind, contentID); err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("delete failed: %v", err), false)
		return err
	}
	s.notify(interfaces.SeveritySuccess, "translation removed", false)
	return s.Reload(ctx)
}

// MoveBlock stages a one-step block move in the layout engine.
func (s *Session) MoveBlock(blockID int64, dir layout.Direction) error {
	return s.engine.Move(blockID, dir)
}

// CommitLayout persists the staged order and reloads on success. A failed
// commit keeps the staged draft for retry.
func (s *Session) CommitLayout(ctx context.Context) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}
	err = s.engine.Commit(ctx, func(ctx context.Context, changes []layout.OrderChange) error {
		return s.committer.CommitLayoutOrder(ctx, productID, changes)
	})
	if err != nil {
		if !errors.Is(err, layout.ErrNothingToCommit) {
			s.notify(interfaces.SeverityError, fmt.Sprintf("saving layout failed: %v", err), false)
		}
		return err
	}
	s.notify(interfaces.SeveritySuccess, "layout saved", false)
	return s.Reload(ctx)
}

// CreateImageGroup creates a named image bucket, then reloads.
func (s *Session) CreateImageGroup(ctx context.Context, name string) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}
	if err := s.images.CreateGroup(ctx, productID, name); err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("creating group failed: %v", err), false)
		return err
	}
	s.notify(interfaces.SeveritySuccess, "image group created", false)
	return s.Reload(ctx)
}

// UploadImages appends files to an image group, then reloads.
func (s *Session) UploadImages(ctx context.Context, groupID int64, files []images.File) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}
	if err := s.images.Upload(ctx, productID, groupID, files); err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("upload failed: %v", err), false)
		return err
	}
	s.notify(interfaces.SeveritySuccess, "images uploaded", false)
	return s.Reload(ctx)
}

// RemoveImage deletes one image, then reloads.
func (s *Session) RemoveImage(ctx context.Context, imageID int64) error {
	productID, err := s.productID()
	if err != nil {
		return err
	}
	if err := s.images.Remove(ctx, productID, imageID); err != nil {
		s.notify(interfaces.SeverityError, fmt.Sprintf("removing image failed: %v", err), false)
		return err
	}
	s.notify(interfaces.SeveritySuccess, "image removed", false)
	return s.Reload(ctx)
}

func (s *Session) productID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bundle == nil {
		return 0, ErrNoProductLoaded
	}
	return s.bundle.Product.ID, nil
}

func (s *Session) nextSortOrder() int {
	blocks := s.engine.Blocks()
	next := 0
	for _, block := range blocks {
		if block.SortOrder >= next {
			next = block.SortOrder + 1
		}
	}
	return next
}

func (s *Session) notify(severity interfaces.Severity, message string, blocking bool) {
	s.notifier.Notify(interfaces.Notification{
		Severity: severity,
		Message:  message,
		Blocking: blocking,
	})
}

func findBlock(blocks []bundle.Block, blockID int64) (bundle.Block, bool) {
	for _, block := range blocks {
		if block.ID == blockID {
			return block, true
		}
	}
	return bundle.Block{}, false
}

// seedPayload converts a bundle entity's current-locale facet into an
// editable payload. An entity without a translation seeds an empty form,
// which is exactly the add-translation flow.
func seedPayload(b *bundle.Bundle, kind contents.Kind, contentID int64) (contents.Payload, error) {
	switch kind {
	case contents.KindParagraph:
		entity, ok := b.Paragraph(contentID)
		if !ok {
			return nil, ErrEntityNotFound
		}
		payload := contents.ParagraphPayload{SortOrder: entity.SortOrder}
		if entity.Translation != nil {
			payload.Title = entity.Translation.Title
			payload.Subtitle = entity.Translation.Subtitle
			payload.FullText = entity.Translation.Body
		}
		return payload, nil
	case contents.KindList:
		entity, ok := b.List(contentID)
		if !ok {
			return nil, ErrEntityNotFound
		}
		payload := contents.ListPayload{Slug: entity.Slug, SortOrder: entity.SortOrder}
		if entity.Translation != nil {
			payload.Title = entity.Translation.Title
			payload.Description = entity.Translation.Description
			payload.Items = append([]string(nil), entity.Translation.Items...)
		}
		return payload, nil
	case contents.KindSpecGroup:
		entity, ok := b.SpecGroup(contentID)
		if !ok {
			return nil, ErrEntityNotFound
		}
		payload := contents.SpecGroupPayload{Slug: entity.Slug, SortOrder: entity.SortOrder}
		if entity.Translation != nil {
			payload.Title = entity.Translation.Title
			payload.Description = entity.Translation.Description
			for _, item := range entity.Translation.Items {
				payload.Items = append(payload.Items, contents.SpecItemPayload{
					Key:   item.Key,
					Value: item.Value,
					Unit:  item.Unit,
				})
			}
		}
		return payload, nil
	case contents.KindTable:
		entity, ok := b.Table(contentID)
		if !ok {
			return nil, ErrEntityNotFound
		}
		payload := contents.TablePayload{SortOrder: entity.SortOrder}
		if entity.Translation != nil {
			payload.Title = entity.Translation.Title
			payload.Subtitle = entity.Translation.Subtitle
			payload.Notes = entity.Translation.Notes
			payload.Columns = append([]string(nil), entity.Translation.Columns...)
			for _, row := range entity.Translation.Rows {
				payload.Rows = append(payload.Rows, append([]string(nil), row...))
			}
		}
		return payload, nil
	default:
		return nil, contents.ErrKindInvalid
	}
}
