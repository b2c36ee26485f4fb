package di

import (
	"net/http"

	"github.com/goliatone/go-catalog/internal/commands"
	contentcmd "github.com/goliatone/go-catalog/internal/commands/content"
	imagescmd "github.com/goliatone/go-catalog/internal/commands/images"
	layoutcmd "github.com/goliatone/go-catalog/internal/commands/layout"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/internal/images"
	"github.com/goliatone/go-catalog/internal/locale"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/logging/gologger"
	"github.com/goliatone/go-catalog/internal/runtimeconfig"
	"github.com/goliatone/go-catalog/internal/session"
	"github.com/goliatone/go-catalog/internal/transport"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Container wires the console runtime: locale provider, API client, content
// and image services, the page session, and the command handlers.
type Container struct {
	config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	notifier       interfaces.Notifier
	httpClient     *http.Client
	localeStore    locale.Store
	mirror         locale.MirrorFunc

	locales  *locale.Provider
	client   *transport.Client
	contents contents.Service
	images   images.Service
	session  *session.Session

	createContent     *contentcmd.CreateContentHandler
	updateContent     *contentcmd.UpdateContentHandler
	deleteContent     *contentcmd.DeleteContentHandler
	deleteTranslation *contentcmd.DeleteTranslationHandler
	commitLayout      *layoutcmd.CommitLayoutHandler
	createImageGroup  *imagescmd.CreateGroupHandler
	uploadImages      *imagescmd.UploadImagesHandler
	removeImage       *imagescmd.RemoveImageHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithNotifier sets the sink for user-facing notifications.
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(c *Container) {
		c.notifier = notifier
	}
}

// WithHTTPClient overrides the API client's underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithLocaleStore overrides the file-backed locale preference store.
func WithLocaleStore(store locale.Store) Option {
	return func(c *Container) {
		c.localeStore = store
	}
}

// WithDirectionMirror registers the host callback that mirrors text direction.
func WithDirectionMirror(mirror locale.MirrorFunc) Option {
	return func(c *Container) {
		c.mirror = mirror
	}
}

// NewContainer validates the configuration and builds the full runtime graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if err := c.buildLocales(); err != nil {
		return nil, err
	}
	if err := c.buildClient(); err != nil {
		return nil, err
	}
	c.buildServices()
	if err := c.buildSession(); err != nil {
		return nil, err
	}
	c.buildHandlers()
	return c, nil
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger || cfg.Logging.Provider == "noop" {
		return logging.NoOpProvider(), nil
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
}

func (c *Container) buildLocales() error {
	supported := make([]locale.Locale, 0, len(c.config.Locales))
	for _, l := range c.config.Locales {
		supported = append(supported, locale.Locale{
			Code:    l.Code,
			Display: l.Display,
			RTL:     l.RTL,
		})
	}

	localeOpts := []locale.Option{
		locale.WithLogger(logging.LocaleLogger(c.loggerProvider)),
	}
	store := c.localeStore
	if store == nil && c.config.Preference.Path != "" {
		store = locale.NewFileStore(c.config.Preference.Path)
	}
	if store != nil {
		localeOpts = append(localeOpts, locale.WithStore(store))
	}
	if c.mirror != nil {
		localeOpts = append(localeOpts, locale.WithDirectionMirror(c.mirror))
	}

	provider, err := locale.NewProvider(supported, c.config.DefaultLocale, localeOpts...)
	if err != nil {
		return err
	}
	c.locales = provider
	return nil
}

func (c *Container) buildClient() error {
	client, err := transport.New(transport.Config{
		BaseURL:     c.config.API.BaseURL,
		Timeout:     c.config.API.Timeout,
		RouteConfig: c.config.API.RouteConfig,
		HTTPClient:  c.httpClient,
		Locales:     c.locales,
		Logger:      logging.TransportLogger(c.loggerProvider),
	})
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

func (c *Container) buildServices() {
	c.contents = contents.NewService(c.client, c.locales,
		contents.WithLogger(logging.ContentsLogger(c.loggerProvider)),
	)
	c.images = images.NewService(c.client,
		images.WithLogger(logging.ImagesLogger(c.loggerProvider)),
	)
}

func (c *Container) buildSession() error {
	sess, err := session.New(session.Config{
		Fetcher:              c.client,
		Committer:            c.client,
		Locales:              c.locales,
		Contents:             c.contents,
		Images:               c.images,
		Notifier:             c.notifier,
		Logger:               logging.SessionLogger(c.loggerProvider),
		SuppressStaleFetches: c.config.Features.StaleFetchSuppression,
	})
	if err != nil {
		return err
	}
	c.session = sess
	return nil
}

func (c *Container) buildHandlers() {
	timeout := c.config.Commands.Timeout
	if timeout <= 0 {
		timeout = commands.DefaultCommandTimeout
	}

	c.createContent = contentcmd.NewCreateContentHandler(c.contents,
		commands.CommandLogger(c.loggerProvider, "content"),
		commands.WithTimeout[contentcmd.CreateContentCommand](timeout),
	)
	c.updateContent = contentcmd.NewUpdateContentHandler(c.contents,
		commands.CommandLogger(c.loggerProvider, "content"),
		commands.WithTimeout[contentcmd.UpdateContentCommand](timeout),
	)
	c.deleteContent = contentcmd.NewDeleteContentHandler(c.contents,
		commands.CommandLogger(c.loggerProvider, "content"),
		commands.WithTimeout[contentcmd.DeleteContentCommand](timeout),
	)
	c.deleteTranslation = contentcmd.NewDeleteTranslationHandler(c.contents,
		commands.CommandLogger(c.loggerProvider, "content"),
		commands.WithTimeout[contentcmd.DeleteTranslationCommand](timeout),
	)
	c.commitLayout = layoutcmd.NewCommitLayoutHandler(c.session.Layout(), c.client,
		commands.CommandLogger(c.loggerProvider, "layout"),
		commands.WithTimeout[layoutcmd.CommitLayoutCommand](timeout),
	)
	c.createImageGroup = imagescmd.NewCreateGroupHandler(c.images,
		commands.CommandLogger(c.loggerProvider, "images"),
		commands.WithTimeout[imagescmd.CreateGroupCommand](timeout),
	)
	c.uploadImages = imagescmd.NewUploadImagesHandler(c.images,
		commands.CommandLogger(c.loggerProvider, "images"),
		commands.WithTimeout[imagescmd.UploadImagesCommand](timeout),
	)
	c.removeImage = imagescmd.NewRemoveImageHandler(c.images,
		commands.CommandLogger(c.loggerProvider, "images"),
		commands.WithTimeout[imagescmd.RemoveImageCommand](timeout),
	)
}

// Config returns the validated runtime configuration.
func (c *Container) Config() runtimeconfig.Config { return c.config }

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Locales returns the locale provider.
func (c *Container) Locales() *locale.Provider { return c.locales }

// Client returns the catalog API client.
func (c *Container) Client() *transport.Client { return c.client }

// ContentService returns the content mutation service.
func (c *Container) ContentService() contents.Service { return c.contents }

// ImageService returns the image group service.
func (c *Container) ImageService() images.Service { return c.images }

// Session returns the product page session.
func (c *Container) Session() *session.Session { return c.session }

// CreateContentHandler returns the create content command handler.
func (c *Container) CreateContentHandler() *contentcmd.CreateContentHandler { return c.createContent }

// UpdateContentHandler returns the update content command handler.
func (c *Container) UpdateContentHandler() *contentcmd.UpdateContentHandler { return c.updateContent }

// DeleteContentHandler returns the delete entity command handler.
func (c *Container) DeleteContentHandler() *contentcmd.DeleteContentHandler { return c.deleteContent }

// DeleteTranslationHandler returns the delete translation command handler.
func (c *Container) DeleteTranslationHandler() *contentcmd.DeleteTranslationHandler {
	return c.deleteTranslation
}

// CommitLayoutHandler returns the layout commit command handler.
func (c *Container) CommitLayoutHandler() *layoutcmd.CommitLayoutHandler { return c.commitLayout }

// CreateImageGroupHandler returns the image group creation command handler.
func (c *Container) CreateImageGroupHandler() *imagescmd.CreateGroupHandler {
	return c.createImageGroup
}

// UploadImagesHandler returns the image upload command handler.
func (c *Container) UploadImagesHandler() *imagescmd.UploadImagesHandler { return c.uploadImages }

// RemoveImageHandler returns the image removal command handler.
func (c *Container) RemoveImageHandler() *imagescmd.RemoveImageHandler { return c.removeImage }
