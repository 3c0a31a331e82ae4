// Package gateway is the thin HTTP client for the remote storefront
// backend. It attaches the bearer token when one is stored, maps
// transport and HTTP failures onto the app error taxonomy, and owns no
// state of its own.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopfront/internal/apperr"
)

// TokenSource yields the current bearer token, or "" when logged out.
// The gateway only reads the token; discarding it on a 401 is the
// session coordinator's job.
type TokenSource interface {
	AuthToken() string
}

type Client struct {
	base   string
	hc     *http.Client
	tokens TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		hc:     &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
	}
}

// errBody matches the shapes backends use for error payloads.
type errBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperr.InvalidFormat("could not encode request", err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return apperr.Network(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.tokens.AuthToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return apperr.Network(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperr.Network(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return apperr.Unauthenticated(remoteMessage(raw))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.Remote(resp.StatusCode, remoteMessage(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperr.InvalidFormat("could not decode server response", err)
		}
	}
	return nil
}

func remoteMessage(raw []byte) string {
	var eb errBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return ""
}
