package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

const responseBodyReadLimit int64 = 1024

var errEndpointsRequired = errors.New("renderer route and shelf urls are required")

// Client talks to the two external visualization services. Both calls are
// fire-and-forget from the API's perspective: one attempt, no retry, and a
// failure surfaces to the caller as a dependency error.
type Client struct {
	httpClient *http.Client
	routeURL   string
	shelfURL   string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds the renderer client from config.
func NewClient(cfg config.RendererConfig, opts ...Option) (*Client, error) {
	routeURL := strings.TrimSpace(cfg.RouteURL)
	shelfURL := strings.TrimSpace(cfg.ShelfURL)
	if routeURL == "" || shelfURL == "" {
		return nil, errEndpointsRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &Client{
		routeURL:   routeURL,
		shelfURL:   shelfURL,
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// ShelfBox is the layout payload sent to both renderers.
type ShelfBox struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Depth     float64 `json:"depth"`
	LocationX float64 `json:"location_x"`
	LocationY float64 `json:"location_y"`
}

// RouteRequest asks the route renderer to animate a path to the target shelf.
type RouteRequest struct {
	Shelves       []ShelfBox `json:"shelves"`
	TargetShelfID string     `json:"target_shelf_id"`
}

// ShelfSceneRequest asks the shelf renderer to draw the full floor layout.
type ShelfSceneRequest struct {
	Shelves []ShelfBox `json:"shelves"`
}

// RenderRoute posts the layout and target to the route renderer and returns
// the animation URL it produced.
func (c *Client) RenderRoute(ctx context.Context, req RouteRequest) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "renderer client not configured")
	}
	if strings.TrimSpace(req.TargetShelfID) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "target shelf id is required")
	}
	return c.post(ctx, c.routeURL, req, "route render")
}

// RenderShelves posts the layout to the shelf renderer and returns the scene URL.
func (c *Client) RenderShelves(ctx context.Context, req ShelfSceneRequest) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "renderer client not configured")
	}
	return c.post(ctx, c.shelfURL, req, "shelf render")
}

func (c *Client) post(ctx context.Context, endpoint string, payload any, op string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal "+op+" request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build "+op+" request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute "+op+" request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), op+" request failed")
	}

	var apiResp struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode "+op+" response")
	}
	if strings.TrimSpace(apiResp.URL) == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, op+" returned no url")
	}

	return apiResp.URL, nil
}
