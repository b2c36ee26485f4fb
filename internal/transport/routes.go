package transport

import (
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names inside the api group.
const (
	routeGroup = "api"

	routeProductShow   = "product_show"
	routeContents      = "contents"
	routeContent       = "content"
	routeContentLocale = "content_locale"
	routeImageGroups   = "image_groups"
	routeImages        = "images"
	routeImage         = "image"
	routeLayoutOrder   = "layout_order"
)

// DefaultRouteConfig builds the go-urlkit route table for the catalog API.
// Hosts with a different path scheme can supply their own config through
// runtimeconfig.APIConfig.RouteConfig.
func DefaultRouteConfig(baseURL string) *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroup,
				BaseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					routeProductShow:   "/products/:slug",
					routeContents:      "/products/:id/contents/:type",
					routeContent:       "/products/:id/contents/:type/:content_id",
					routeContentLocale: "/products/:id/contents/:type/:content_id/:locale",
					routeImageGroups:   "/products/:id/image-groups",
					routeImages:        "/products/:id/images",
					routeImage:         "/products/:id/images/:image_id",
					routeLayoutOrder:   "/products/:id/layout/order",
				},
			},
		},
	}
}
