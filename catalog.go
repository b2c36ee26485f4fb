package catalog

import (
	"github.com/goliatone/go-catalog/internal/bundle"
	contentcmd "github.com/goliatone/go-catalog/internal/commands/content"
	imagescmd "github.com/goliatone/go-catalog/internal/commands/images"
	layoutcmd "github.com/goliatone/go-catalog/internal/commands/layout"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/internal/di"
	"github.com/goliatone/go-catalog/internal/editor"
	"github.com/goliatone/go-catalog/internal/images"
	"github.com/goliatone/go-catalog/internal/layout"
	"github.com/goliatone/go-catalog/internal/locale"
	"github.com/goliatone/go-catalog/internal/session"
	"github.com/goliatone/go-catalog/internal/transport"
	"github.com/goliatone/go-catalog/internal/view"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Locale exports.
type (
	Locale         = locale.Locale
	LocaleProvider = locale.Provider
	LocaleStore    = locale.Store
	Direction      = locale.Direction
)

const (
	DirectionLTR = locale.DirectionLTR
	DirectionRTL = locale.DirectionRTL
)

// Bundle exports: the normalized per-locale product snapshot.
type (
	Bundle     = bundle.Bundle
	BaseInfo   = bundle.BaseInfo
	Block      = bundle.Block
	BlockType  = bundle.BlockType
	ImageGroup = bundle.ImageGroup
)

// Content exports: the four editable kinds and their payloads.
type (
	Kind             = contents.Kind
	ContentService   = contents.Service
	Payload          = contents.Payload
	ParagraphPayload = contents.ParagraphPayload
	ListPayload      = contents.ListPayload
	SpecGroupPayload = contents.SpecGroupPayload
	SpecItemPayload  = contents.SpecItemPayload
	TablePayload     = contents.TablePayload
)

const (
	KindParagraph = contents.KindParagraph
	KindList      = contents.KindList
	KindSpecGroup = contents.KindSpecGroup
	KindTable     = contents.KindTable
)

// Layout exports: the ordering engine and its staged-change types.
type (
	LayoutEngine  = layout.Engine
	MoveDirection = layout.Direction
	OrderChange   = layout.OrderChange
)

const (
	MoveUp   = layout.MoveUp
	MoveDown = layout.MoveDown
)

// Editor exports: the single-slot form state machine.
type (
	Editor         = editor.Editor
	EditorState    = editor.State
	EditorMode     = editor.Mode
	Draft          = editor.Draft
	ParagraphDraft = editor.ParagraphDraft
	ListDraft      = editor.ListDraft
	SpecGroupDraft = editor.SpecGroupDraft
	TableDraft     = editor.TableDraft
)

const (
	ModeViewing = editor.ModeViewing
	ModeAdding  = editor.ModeAdding
	ModeEditing = editor.ModeEditing
)

// View exports: the renderable page model.
type (
	Page          = view.Page
	BlockView     = view.BlockView
	ParagraphView = view.ParagraphView
	ListView      = view.ListView
	SpecGroupView = view.SpecGroupView
	SpecRow       = view.SpecRow
	TableView     = view.TableView
	SystemView    = view.SystemView
)

// Session and service exports.
type (
	Session      = session.Session
	ImageService = images.Service
	ImageFile    = images.File
	Client       = transport.Client
	Upload       = transport.Upload
)

// Transport error exports so hosts can classify API failures.
type (
	NotFoundError = transport.NotFoundError
	APIError      = transport.APIError
)

// Notification exports.
type (
	Notifier     = interfaces.Notifier
	NotifierFunc = interfaces.NotifierFunc
	Notification = interfaces.Notification
	Severity     = interfaces.Severity
)

const (
	SeverityInfo    = interfaces.SeverityInfo
	SeveritySuccess = interfaces.SeveritySuccess
	SeverityError   = interfaces.SeverityError
)

// Command exports for hosts that dispatch mutations as messages.
type (
	CreateContentCommand     = contentcmd.CreateContentCommand
	UpdateContentCommand     = contentcmd.UpdateContentCommand
	DeleteContentCommand     = contentcmd.DeleteContentCommand
	DeleteTranslationCommand = contentcmd.DeleteTranslationCommand
	CommitLayoutCommand      = layoutcmd.CommitLayoutCommand
	CreateGroupCommand       = imagescmd.CreateGroupCommand
	UploadImagesCommand      = imagescmd.UploadImagesCommand
	RemoveImageCommand       = imagescmd.RemoveImageCommand
)

// Container option re-exports.
var (
	WithLoggerProvider  = di.WithLoggerProvider
	WithNotifier        = di.WithNotifier
	WithHTTPClient      = di.WithHTTPClient
	WithLocaleStore     = di.WithLocaleStore
	WithDirectionMirror = di.WithDirectionMirror
)

// Option mutates the underlying container before it is finalised.
type Option = di.Option

// Module is the top level catalog console runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a catalog module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Session returns the product page session.
func (m *Module) Session() *Session {
	return m.container.Session()
}

// Locales returns the locale provider.
func (m *Module) Locales() *LocaleProvider {
	return m.container.Locales()
}

// Contents returns the content mutation service.
func (m *Module) Contents() ContentService {
	return m.container.ContentService()
}

// Images returns the image group service.
func (m *Module) Images() ImageService {
	return m.container.ImageService()
}

// Client returns the catalog API client.
func (m *Module) Client() *Client {
	return m.container.Client()
}

// Editor returns the single form slot of the page session.
func (m *Module) Editor() *Editor {
	return m.Session().Editor()
}

// Layout returns the layout ordering engine of the page session.
func (m *Module) Layout() *LayoutEngine {
	return m.Session().Layout()
}

// CreateContent dispatches a create command through the command pipeline.
func (m *Module) CreateContent() *contentcmd.CreateContentHandler {
	return m.container.CreateContentHandler()
}

// UpdateContent dispatches an update command through the command pipeline.
func (m *Module) UpdateContent() *contentcmd.UpdateContentHandler {
	return m.container.UpdateContentHandler()
}

// DeleteContent dispatches a whole-entity delete through the command pipeline.
func (m *Module) DeleteContent() *contentcmd.DeleteContentHandler {
	return m.container.DeleteContentHandler()
}

// DeleteTranslation dispatches a single-locale delete through the command pipeline.
func (m *Module) DeleteTranslation() *contentcmd.DeleteTranslationHandler {
	return m.container.DeleteTranslationHandler()
}

// CommitLayout dispatches a layout order commit through the command pipeline.
func (m *Module) CommitLayout() *layoutcmd.CommitLayoutHandler {
	return m.container.CommitLayoutHandler()
}

// CreateImageGroup dispatches an image group creation through the command pipeline.
func (m *Module) CreateImageGroup() *imagescmd.CreateGroupHandler {
	return m.container.CreateImageGroupHandler()
}

// UploadImages dispatches an image upload through the command pipeline.
func (m *Module) UploadImages() *imagescmd.UploadImagesHandler {
	return m.container.UploadImagesHandler()
}

// RemoveImage dispatches an image removal through the command pipeline.
func (m *Module) RemoveImage() *imagescmd.RemoveImageHandler {
	return m.container.RemoveImageHandler()
}
