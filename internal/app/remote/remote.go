// internal/app/remote/remote.go

// Package remote is the HTTP boundary to the Pulse platform API. It owns
// request construction, bearer auth, response decoding, and the error
// taxonomy. The per-resource clients in the subpackages compose a *Client
// the way stores compose a database handle.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RequestIDHeader carries a fresh UUID on every outbound call so that relay
// and platform logs can be joined.
const RequestIDHeader = "X-Request-ID"

// Config holds what the client needs to reach the platform.
type Config struct {
	BaseURL string
	Token   string        // service bearer token; empty sends no Authorization header
	Timeout time.Duration // per-request ceiling; callers usually also pass shorter contexts
}

// Client is a shared, concurrency-safe handle to the platform API.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// ValidateBaseURL reports whether raw can serve as the platform base URL.
// Config validation calls this at startup so a bad URL fails fast instead of
// on the first request.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid platform base URL %q", raw)
	}
	return nil
}

// New validates cfg and builds a Client. When a token is configured, the
// underlying transport injects it as a Bearer Authorization header.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if err := ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	u, _ := url.Parse(strings.TrimSpace(cfg.BaseURL))

	hc := &http.Client{}
	if token := strings.TrimSpace(cfg.Token); token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		hc = oauth2.NewClient(context.Background(), src)
	}
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{base: u, http: hc, log: logger}, nil
}

// Get issues a GET and decodes the response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE. The platform returns no body on success.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Ping verifies the platform is reachable and answering.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// platformError is the platform's rejection envelope.
type platformError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("%s %s: marshal request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	c.log.Debug("platform call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ErrForbidden)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)

	case resp.StatusCode >= 500:
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, ErrUnavailable)

	default:
		apiErr := &APIError{Status: resp.StatusCode}
		var pe platformError
		if err := json.Unmarshal(respBody, &pe); err == nil && strings.TrimSpace(pe.Message) != "" {
			apiErr.Message = pe.Message
			apiErr.Code = pe.Code
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}
}
