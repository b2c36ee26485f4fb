package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrBaseURLRequired indicates the client was built without an API endpoint.
	ErrBaseURLRequired = errors.New("transport: api base url is required")
	// ErrLocaleSourceRequired indicates the client was built without a locale source.
	ErrLocaleSourceRequired = errors.New("transport: locale source is required")
)

// NotFoundError represents a 404 from the catalog API.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// APIError carries the status and response excerpt of a rejected request.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsValidation reports whether the API rejected the payload itself.
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

const maxErrorBodyBytes = 2048

// responseError converts a non-2xx response into a typed error. The body is
// drained (bounded) so the excerpt can surface in notifications.
func responseError(method, url string, resp *http.Response, resource, key string) error {
	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: resource, Key: key}
	}

	excerpt := ""
	if resp.Body != nil {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		excerpt = strings.TrimSpace(string(data))
	}
	return &APIError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       excerpt,
	}
}
