package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/goliatone/go-catalog/internal/bundle"
	"github.com/goliatone/go-catalog/internal/layout"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"
)

// LocaleSource supplies the current locale for automatic propagation. Every
// outgoing request carries it: GET/DELETE via query string, POST/PUT/PATCH via
// an injected body field. Call sites never pass the locale themselves.
type LocaleSource interface {
	Current() string
}

// Upload is one file handed to UploadImages.
type Upload struct {
	Filename string
	Alt      string
	Reader   io.Reader
}

// Config wires the HTTP client for the remote catalog API.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	RouteConfig *urlkit.Config
	HTTPClient  *http.Client
	Locales     LocaleSource
	Logger      interfaces.Logger
}

// Client talks to the catalog REST API. It owns URL construction, locale
// propagation, and error typing; it deliberately has no retry or backoff
// (failures surface to the admin, who retries the action).
type Client struct {
	http    *http.Client
	routes  *urlkit.RouteManager
	locales LocaleSource
	logger  interfaces.Logger
}

// New constructs a Client. RouteConfig defaults to DefaultRouteConfig(BaseURL).
func New(cfg Config) (*Client, error) {
	if cfg.Locales == nil {
		return nil, ErrLocaleSourceRequired
	}

	routeConfig := cfg.RouteConfig
	if routeConfig == nil {
		if cfg.BaseURL == "" {
			return nil, ErrBaseURLRequired
		}
		routeConfig = DefaultRouteConfig(cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Client{
		http:    httpClient,
		routes:  urlkit.NewRouteManager(routeConfig),
		locales: cfg.Locales,
		logger:  logger,
	}, nil
}

// FetchBundle loads the raw bundle for a product slug in the current locale.
func (c *Client) FetchBundle(ctx context.Context, slug string) (*bundle.RawBundle, error) {
	url, err := c.buildURL(routeProductShow, map[string]any{"slug": slug}, true)
	if err != nil {
		return nil, err
	}

	var raw bundle.RawBundle
	if err := c.do(ctx, http.MethodGet, url, nil, &raw, "product", slug); err != nil {
		return nil, err
	}
	return &raw, nil
}

// CreateContent creates a new content entity plus its first translation and
// layout block. typeSegment is the API path segment of the content kind.
func (c *Client) CreateContent(ctx context.Context, productID int64, typeSegment string, data any) error {
	url, err := c.buildURL(routeContents, map[string]any{
		"id":   productID,
		"type": typeSegment,
	}, false)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, url, envelope(data), nil, "product", strconv.FormatInt(productID, 10))
}

// UpdateContent upserts the current locale's translation on an existing entity.
func (c *Client) UpdateContent(ctx context.Context, productID int64, typeSegment string, contentID int64, data any) error {
	url, err := c.buildURL(routeContent, map[string]any{
		"id":         productID,
		"type":       typeSegment,
		"content_id": contentID,
	}, false)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, url, envelope(data), nil, "content", strconv.FormatInt(contentID, 10))
}

// DeleteContent removes the whole entity: every locale's translation and the
// referencing block.
func (c *Client) DeleteContent(ctx context.Context, productID int64, typeSegment string, contentID int64) error {
	url, err := c.buildURL(routeContent, map[string]any{
		"id":         productID,
		"type":       typeSegment,
		"content_id": contentID,
	}, true)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, url, nil, nil, "content", strconv.FormatInt(contentID, 10))
}

// DeleteTranslation removes one locale's translation only; the entity and its
// other translations survive.
func (c *Client) DeleteTranslation(ctx context.Context, productID int64, typeSegment string, contentID int64, localeCode string) error {
	url, err := c.buildURL(routeContentLocale, map[string]any{
		"id":         productID,
		"type":       typeSegment,
		"content_id": contentID,
		"locale":     localeCode,
	}, true)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, url, nil, nil, "translation", localeCode)
}

// CreateImageGroup creates a named image bucket.
func (c *Client) CreateImageGroup(ctx context.Context, productID int64, name string) error {
	url, err := c.buildURL(routeImageGroups, map[string]any{"id": productID}, false)
	if err != nil {
		return err
	}
	body := map[string]any{"name": name}
	return c.do(ctx, http.MethodPost, url, body, nil, "product", strconv.FormatInt(productID, 10))
}

// UploadImages appends files to an existing image group via multipart form.
func (c *Client) UploadImages(ctx context.Context, productID, groupID int64, uploads []Upload) error {
	url, err := c.buildURL(routeImages, map[string]any{"id": productID}, false)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("group_id", strconv.FormatInt(groupID, 10)); err != nil {
		return fmt.Errorf("transport: write group field: %w", err)
	}
	if err := writer.WriteField("locale", c.locales.Current()); err != nil {
		return fmt.Errorf("transport: write locale field: %w", err)
	}
	for i, upload := range uploads {
		part, err := writer.CreateFormFile("files", upload.Filename)
		if err != nil {
			return fmt.Errorf("transport: create file part: %w", err)
		}
		if _, err := io.Copy(part, upload.Reader); err != nil {
			return fmt.Errorf("transport: copy upload %d: %w", i, err)
		}
		if upload.Alt != "" {
			if err := writer.WriteField("alt", upload.Alt); err != nil {
				return fmt.Errorf("transport: write alt field: %w", err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("transport: close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("transport: new request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, nil, "product", strconv.FormatInt(productID, 10))
}

// DeleteImage removes a single image.
func (c *Client) DeleteImage(ctx context.Context, productID, imageID int64) error {
	url, err := c.buildURL(routeImage, map[string]any{
		"id":       productID,
		"image_id": imageID,
	}, true)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, url, nil, nil, "image", strconv.FormatInt(imageID, 10))
}

// CommitLayoutOrder persists staged block reorders. Only changed pairs travel.
func (c *Client) CommitLayoutOrder(ctx context.Context, productID int64, changes []layout.OrderChange) error {
	url, err := c.buildURL(routeLayoutOrder, map[string]any{"id": productID}, false)
	if err != nil {
		return err
	}

	order := make([]map[string]any, 0, len(changes))
	for _, change := range changes {
		order = append(order, map[string]any{
			"block_id":   change.BlockID,
			"sort_order": change.SortOrder,
		})
	}
	body := map[string]any{"order": order}
	return c.do(ctx, http.MethodPut, url, body, nil, "product", strconv.FormatInt(productID, 10))
}

// buildURL resolves a named route. withLocaleQuery appends the current locale
// as a query parameter (the GET/DELETE propagation path).
func (c *Client) buildURL(route string, params map[string]any, withLocaleQuery bool) (string, error) {
	group, err := c.group()
	if err != nil {
		return "", err
	}

	builder := group.Builder(route)
	for key, value := range params {
		builder = builder.WithParam(key, fmt.Sprint(value))
	}
	if withLocaleQuery {
		builder = builder.WithQuery("locale", c.locales.Current())
	}

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("transport: build %s url: %w", route, err)
	}
	return url, nil
}

func (c *Client) group() (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("transport: route group %q not found", routeGroup)
		}
	}()
	group = c.routes.Group(routeGroup)
	return group, err
}

// do issues a JSON request. Bodies on POST/PUT/PATCH get the current locale
// injected as a top-level field unless the caller already set one.
func (c *Client) do(ctx context.Context, method, url string, body any, out any, resource, key string) error {
	var reader io.Reader
	if body != nil {
		data, err := c.encodeBody(method, body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("transport: new request: %w", err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, out, resource, key)
}

func (c *Client) send(req *http.Request, out any, resource, key string) error {
	requestID := uuid.NewString()
	logger := c.logger.WithContext(logging.ContextWithFields(req.Context(), map[string]any{
		"request_id": requestID,
	}))
	logger.Debug("api request",
		"method", req.Method,
		"url", req.URL.String(),
		"locale", c.locales.Current(),
		"request_id", requestID,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("api request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return fmt.Errorf("transport: %s %s: %w", req.Method, req.URL.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := responseError(req.Method, req.URL.String(), resp, resource, key)
		logger.Warn("api rejected request",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
		)
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("transport: decode response: %w", err)
		}
	}
	return nil
}

// encodeBody marshals body and injects the locale field for mutating verbs.
func (c *Client) encodeBody(method string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("transport: marshal request body: %w", err)
	}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return data, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		// Non-object bodies travel untouched.
		return data, nil
	}
	if _, exists := fields["locale"]; !exists {
		fields["locale"] = c.locales.Current()
		if data, err = json.Marshal(fields); err != nil {
			return nil, fmt.Errorf("transport: marshal request body: %w", err)
		}
	}
	return data, nil
}

// envelope wraps type-specific fields in the {locale, data} body shape the
// contents endpoints expect. The locale field is filled by encodeBody.
func envelope(data any) map[string]any {
	return map[string]any{"data": data}
}
