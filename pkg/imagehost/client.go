package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

const responseBodyReadLimit int64 = 1024

var errUploadURLRequired = errors.New("image host upload url is required")

// Client uploads face images to the external image host. Only the returned
// URL is kept; the image bytes never touch local storage.
type Client struct {
	httpClient  *http.Client
	uploadURL   string
	apiKey      string
	folder      string
	maxUploadMB int
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

// NewClient builds the image host client from config.
func NewClient(cfg config.ImageHostConfig, opts ...Option) (*Client, error) {
	uploadURL := strings.TrimSpace(cfg.UploadURL)
	if uploadURL == "" {
		return nil, errUploadURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := &Client{
		uploadURL:   uploadURL,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		folder:      cfg.Folder,
		maxUploadMB: cfg.MaxUploadMB,
		httpClient:  &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Upload sends the image as a multipart form and returns the hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "image host client not configured")
	}
	if strings.TrimSpace(filename) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image filename is required")
	}
	if content == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image content is required")
	}

	if c.maxUploadMB > 0 {
		content = io.LimitReader(content, int64(c.maxUploadMB)<<20)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if c.folder != "" {
		if err := writer.WriteField("folder", c.folder); err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write folder field")
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create multipart part")
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "copy image content")
	}
	if err := writer.Close(); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finalize multipart body")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build upload request")
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute upload request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "upload request failed")
	}

	var apiResp struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode upload response")
	}
	if strings.TrimSpace(apiResp.URL) == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "image host returned no url")
	}

	return apiResp.URL, nil
}
