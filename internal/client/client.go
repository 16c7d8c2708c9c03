// Package client implements the device-side resolution policy for tip page
// operations. Every operation is tried against the configured remote backend
// first and falls back to a local on-device store when the backend is
// unconfigured or unreachable. Creation never hard-fails on network trouble:
// it degrades to a device-local page, and the result says which path served
// it so the caller can warn that an offline link is not shareable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"tipjar/internal/config"
	apperrors "tipjar/internal/errors"
	"tipjar/internal/logger"
	"tipjar/internal/models"
	"tipjar/internal/services"
	"tipjar/internal/store"
)

// Origin reports which path served an operation.
type Origin string

const (
	// OriginRemote means the configured backend handled the operation, so
	// the resulting link resolves for anyone.
	OriginRemote Origin = "remote"

	// OriginLocal means the operation was satisfied by the device-local
	// store; the link only resolves on this device.
	OriginLocal Origin = "local"
)

// Offline reports whether the origin is the device-local store.
func (o Origin) Offline() bool { return o == OriginLocal }

// CreateResult is the outcome of a create operation.
type CreateResult struct {
	Token  string
	Origin Origin
}

// TipPageResult is the outcome of a get operation: the public fields of the
// record plus the path that served them.
type TipPageResult struct {
	DisplayName    string
	Message        string
	PaymentMethods models.PaymentMethods
	Origin         Origin
}

// Options configures a Client.
type Options struct {
	// BaseURL of the remote backend. Empty or equal to the placeholder
	// keeps the client in offline mode.
	BaseURL string

	// Timeout bounds each remote attempt before falling back.
	Timeout time.Duration

	// Dir is the device-local directory holding the offline page store and
	// the bookmark list.
	Dir string
}

// Client resolves tip page operations against a remote backend with a
// device-local fallback.
type Client struct {
	mu      sync.RWMutex
	baseURL string

	http  *http.Client
	local services.TipPageServicer
	links *BookmarkList
}

// New creates a Client. The local fallback store lives under opts.Dir and is
// created eagerly so a later network failure cannot also fail on setup.
func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	localStore, err := store.NewFileStore(filepath.Join(opts.Dir, "pages"))
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	links, err := NewBookmarkList(filepath.Join(opts.Dir, "links"))
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark list: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		local:   services.NewTipPageService(localStore),
		links:   links,
	}, nil
}

// SetBaseURL reconfigures the remote backend address for this session.
func (c *Client) SetBaseURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(u, "/")
}

// BaseURL returns the configured backend address, which may be empty.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Configured reports whether a usable backend address has been set. The
// placeholder shipped in client builds does not count.
func (c *Client) Configured() bool {
	u := c.BaseURL()
	return u != "" && u != config.PlaceholderBaseURL
}

// Links returns the bookmark list of pages created from this device.
func (c *Client) Links() ([]models.LinkBookmark, error) {
	return c.links.All()
}

// DeleteLink removes a bookmark. The page itself, wherever it lives, is
// untouched; anyone holding the token can still resolve it.
func (c *Client) DeleteLink(token string) error {
	return c.links.Delete(token)
}

// CreateTipPage creates a tip page, remotely when possible and locally
// otherwise. Validation failures are permanent and returned as-is; every
// other remote failure falls back silently to the local store. A bookmark is
// saved for the new page either way.
func (c *Client) CreateTipPage(ctx context.Context, input models.TipPageInput) (*CreateResult, error) {
	if c.Configured() {
		tok, err := c.remoteCreate(ctx, input)
		switch {
		case err == nil:
			c.bookmark(tok, input.DisplayName)
			return &CreateResult{Token: tok, Origin: OriginRemote}, nil
		case errors.Is(err, apperrors.ErrInvalidData):
			return nil, err
		default:
			logger.Get().Warnw("remote create failed, using local store",
				"base_url", c.BaseURL(),
				"error", err.Error(),
			)
		}
	}

	tok, err := c.local.CreateTipPage(input)
	if err != nil {
		return nil, err
	}
	c.bookmark(tok, input.DisplayName)
	return &CreateResult{Token: tok, Origin: OriginLocal}, nil
}

// GetTipPage resolves a token, remotely when possible. A remote miss or
// failure still consults the local store, so pages created offline on this
// device stay viewable; if neither side knows the token the result is not
// found.
func (c *Client) GetTipPage(ctx context.Context, token string) (*TipPageResult, error) {
	if token == "" {
		return nil, apperrors.ErrTokenRequired
	}

	if c.Configured() {
		res, err := c.remoteGet(ctx, token)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, apperrors.ErrTipPageNotFound) {
			logger.Get().Warnw("remote get failed, using local store",
				"base_url", c.BaseURL(),
				"error", err.Error(),
			)
		}
	}

	page, err := c.local.GetTipPage(token)
	if err != nil {
		return nil, err
	}
	return &TipPageResult{
		DisplayName:    page.DisplayName,
		Message:        page.Message,
		PaymentMethods: page.PaymentMethods,
		Origin:         OriginLocal,
	}, nil
}

// TipPageURL renders the shareable form of a token: a real URL when a
// backend is configured, otherwise a human-readable offline notice that
// still carries the token.
func (c *Client) TipPageURL(token string) string {
	if c.Configured() {
		return c.BaseURL() + "/tip/" + url.PathEscape(token)
	}
	return fmt.Sprintf("Anonymous Tip Token: %s\n(This is an offline tip page - data stored locally on this device)", token)
}

func (c *Client) bookmark(token, displayName string) {
	err := c.links.Save(models.LinkBookmark{
		Token:       token,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		// The page exists either way; losing the bookmark only hides it
		// from the convenience list.
		logger.Get().Warnw("failed to save link bookmark", "error", err.Error())
	}
}

type createResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Error   string `json:"error"`
}

type getResponse struct {
	Success        bool                  `json:"success"`
	DisplayName    string                `json:"displayName"`
	Message        string                `json:"message"`
	PaymentMethods models.PaymentMethods `json:"paymentMethods"`
	Error          string                `json:"error"`
}

func (c *Client) remoteCreate(ctx context.Context, input models.TipPageInput) (string, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL()+"/api/create-tip-page", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed createResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}

	// A 400 is the backend rejecting the input, not the backend being
	// unreachable; retrying the same input locally would reject it too.
	if resp.StatusCode == http.StatusBadRequest {
		return "", apperrors.WithMessage(apperrors.ErrInvalidData, parsed.Error)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success || parsed.Token == "" {
		return "", fmt.Errorf("backend returned status %d: %s", resp.StatusCode, parsed.Error)
	}
	return parsed.Token, nil
}

func (c *Client) remoteGet(ctx context.Context, token string) (*TipPageResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL()+"/api/tip/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed getResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrTipPageNotFound
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, parsed.Error)
	}

	return &TipPageResult{
		DisplayName:    parsed.DisplayName,
		Message:        parsed.Message,
		PaymentMethods: parsed.PaymentMethods,
		Origin:         OriginRemote,
	}, nil
}
